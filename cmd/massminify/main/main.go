package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/massminify/cmd/massminify"
	"github.com/arthur-debert/massminify/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := massminify.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if details := errors.GetErrorDetails(err); len(details) > 0 {
			for k, v := range details {
				fmt.Fprintf(os.Stderr, "  %s: %v\n", k, v)
			}
		}
		switch {
		case errors.IsConfigError(err):
			fmt.Fprintln(os.Stderr, massminify.MsgHintConfig)
		case errors.IsScanError(err):
			fmt.Fprintln(os.Stderr, massminify.MsgHintScan)
		}
		stop()
		os.Exit(1)
	}
}
