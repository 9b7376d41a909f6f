package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Renderer writes manifests and summaries in one format
type Renderer struct {
	writer io.Writer
	format Format
}

// NewRenderer creates a renderer. FormatAuto must be resolved by the caller;
// it is rendered as text.
func NewRenderer(w io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = FormatText
	}
	logger := logging.GetLogger("output.renderer")
	logger.Debug().
		Str("format", format.String()).
		Msg("Creating renderer")
	return &Renderer{writer: w, format: format}
}

// Format returns the effective format
func (r *Renderer) Format() Format {
	return r.format
}

// RenderManifest writes the resolved sequence
func (r *Renderer) RenderManifest(m Manifest) error {
	switch r.format {
	case FormatJSON, FormatYAML, FormatTOML:
		return r.encode(m)
	case FormatTerminal:
		return r.manifestTerminal(m)
	default:
		return r.manifestText(m)
	}
}

// RenderSummary writes the outcome of a run
func (r *Renderer) RenderSummary(s Summary) error {
	switch r.format {
	case FormatJSON, FormatYAML, FormatTOML:
		return r.encode(s)
	case FormatTerminal:
		return r.summaryTerminal(s)
	default:
		return r.summaryText(s)
	}
}

func (r *Renderer) encode(v interface{}) error {
	var err error
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.writer)
		enc.SetIndent(2)
		err = enc.Encode(v)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(r.writer).Encode(v)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to encode %s output", r.format)
	}
	return nil
}

func (r *Renderer) manifestText(m Manifest) error {
	if len(m.Entries) == 0 {
		_, err := fmt.Fprintf(r.writer, "No files to process in %s\n", m.Root)
		return err
	}
	tw := tabwriter.NewWriter(r.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POSITION\tCLASS\tPATH")
	for _, e := range m.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Position, e.Class, e.Path)
	}
	return tw.Flush()
}

func (r *Renderer) manifestTerminal(m Manifest) error {
	if _, err := fmt.Fprintln(r.writer, titleStyle.Render("Order of "+m.Root)); err != nil {
		return err
	}
	if len(m.Entries) == 0 {
		_, err := fmt.Fprintln(r.writer, mutedStyle.Render("No files to process"))
		return err
	}

	data := pterm.TableData{{"Position", "Class", "Path"}}
	for _, e := range m.Entries {
		data = append(data, []string{
			strconv.Itoa(e.Position),
			classStyle(e.Class).Sprint(" " + e.Class.String() + " "),
			pathStyle.Render(e.Path),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	if _, err := fmt.Fprintln(r.writer, table); err != nil {
		return err
	}
	if m.Gap > 0 {
		_, err = fmt.Fprintln(r.writer, mutedStyle.Render(fmt.Sprintf("Unordered files fill position %d", m.Gap)))
	}
	return err
}

func (r *Renderer) summaryText(s Summary) error {
	header := "massminify"
	if s.DryRun {
		header += " (dry run)"
	}
	fmt.Fprintf(r.writer, "%s: %d files, %d outputs, %d failures\n", header, s.Files, len(s.Outputs), len(s.Failures))

	tw := tabwriter.NewWriter(r.writer, 0, 0, 2, ' ', 0)
	for _, o := range s.Outputs {
		fmt.Fprintf(tw, "wrote\t%s\t%d bytes\t%d sources\n", o.Path, o.Bytes, len(o.Sources))
	}
	for _, f := range s.Failures {
		fmt.Fprintf(tw, "failed\t%s\t%s\t%s\n", f.Path, f.Code, f.Message)
	}
	return tw.Flush()
}

func (r *Renderer) summaryTerminal(s Summary) error {
	header := "massminify"
	if s.DryRun {
		header += " (dry run)"
	}
	fmt.Fprintln(r.writer, titleStyle.Render(header)+" "+
		mutedStyle.Render(fmt.Sprintf("%d files in %s", s.Files, s.Root)))

	for _, o := range s.Outputs {
		fmt.Fprintf(r.writer, "  %s %s %s\n",
			successStyle.Render("✓"),
			pathStyle.Render(o.Path),
			mutedStyle.Render(fmt.Sprintf("%d bytes from %d sources", o.Bytes, len(o.Sources))))
	}
	for _, f := range s.Failures {
		fmt.Fprintf(r.writer, "  %s %s %s\n",
			errorStyle.Render("✗"),
			pathStyle.Render(f.Path),
			errorStyle.Render(f.Message))
	}

	_, err := fmt.Fprintf(r.writer, "%s outputs, %s failures\n",
		successStyle.Render(strconv.Itoa(len(s.Outputs))),
		errorStyle.Render(strconv.Itoa(len(s.Failures))))
	return err
}
