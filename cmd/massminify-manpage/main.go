package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/massminify/cmd/massminify"
	"github.com/arthur-debert/massminify/internal/version"
)

func main() {
	rootCmd := massminify.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MASSMINIFY",
		Section: "1",
		Source:  "massminify " + version.Version,
		Manual:  "massminify manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
