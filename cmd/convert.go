// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → normalize → render → write (or insert).
//
// It handles flag validation and renderer selection.
package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gaurav-prasanna/pastewiki/core"
	"github.com/gaurav-prasanna/pastewiki/core/extract"
	"github.com/gaurav-prasanna/pastewiki/core/fetch"
	"github.com/gaurav-prasanna/pastewiki/core/normalize"
	"github.com/gaurav-prasanna/pastewiki/core/output"
	"github.com/gaurav-prasanna/pastewiki/core/render"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagWiki       bool
	flagMarkdown   bool
	flagJSON       bool
	flagRaw        bool
	flagOutputDir  string
	flagInsertInto string
	flagAt         int
	flagEnd        int
	flagVerbose    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|url|-]",
	Short: "Convert pasted HTML to the specified output format",
	Long: `Convert reads HTML from a file, a URL, or standard input, strips noise,
converts it to Jira wiki markup and writes it as one escaped line.

Examples:
  xclip -o -t text/html | pastewiki convert
  pastewiki convert paste.html --raw
  pastewiki convert https://example.com/page --json --output_dir ./out
  pastewiki convert paste.html --insert_into issue.json --at 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagWiki, "wiki", false, "Output escaped single-line wiki markup (default)")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output GitHub-flavoured Markdown")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	convertCmd.Flags().BoolVar(&flagRaw, "raw", false, "With --wiki, output multi-line markup without escaping")

	// Destination.
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: standard output)")
	convertCmd.Flags().StringVar(&flagInsertInto, "insert_into", "", "Splice the output into this file")
	convertCmd.Flags().IntVar(&flagAt, "at", -1, "Rune offset to insert at (default: end of file)")
	convertCmd.Flags().IntVar(&flagEnd, "end", -1, "End of the rune range replaced by the insert (default: --at)")

	convertCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Report pipeline stages on stderr")
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := "-"
	if len(args) == 1 {
		source = args[0]
	}

	// --- Validate flags ---
	if err := validateFlags(); err != nil {
		return err
	}

	normalizer, renderer := selectPipeline()

	// Initialize pipeline components.
	fetcher := &fetch.SourceFetcher{
		HTTP: fetch.NewHTTP(),
		File: &fetch.FileFetcher{Stdin: cmd.InOrStdin()},
	}
	extractor := extract.New()
	logf := progress(cmd.ErrOrStderr())

	data, err := processSource(cmd.Context(), source, fetcher, extractor, normalizer, renderer, logf)
	if err != nil {
		return err
	}

	if flagInsertInto != "" {
		end := flagEnd
		if end < 0 {
			end = flagAt
		}
		cursor, err := output.InsertIntoFile(flagInsertInto, flagAt, end, string(data))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Inserted into %s, cursor at %d\n", flagInsertInto, cursor)
		return nil
	}

	writer, err := output.New(flagOutputDir, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	path, err := writer.Write(source, data, renderer.Extension())
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Written: %s\n", path)
	}
	return nil
}

// processSource runs a single source through the full pipeline.
func processSource(
	ctx context.Context,
	source string,
	fetcher core.Fetcher,
	extractor core.Extractor,
	normalizer core.Normalizer,
	renderer core.Renderer,
	logf func(format string, args ...any),
) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Fetch
	result, err := fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	logf("fetched %d bytes from %s", len(result.HTML), result.Source)

	// 2. Extract the pasted fragment
	fragment, err := extractor.Extract(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	logf("extracted %d bytes of content", len(fragment))

	// 3. Normalize to markup
	markup, err := normalizer.Normalize(fragment)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	logf("converted to %d bytes of %s markup", len(markup), normalizer.Format())

	meta := core.Metadata{
		Source:      result.Source,
		Title:       extract.Title(result.HTML),
		Format:      normalizer.Format(),
		ConvertedAt: time.Now().UTC().Format(time.RFC3339),
	}

	// 4. Render to output format
	data, err := renderer.Render(markup, meta)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}

// progress returns a logger writing stage lines to w when --verbose is set.
func progress(w io.Writer) func(format string, args ...any) {
	return func(format string, args ...any) {
		if flagVerbose {
			fmt.Fprintf(w, "• "+format+"\n", args...)
		}
	}
}

// validateFlags checks that at most one output format is chosen and that the
// destination flags are consistent.
func validateFlags() error {
	// Count output formats.
	formatCount := 0
	if flagWiki {
		formatCount++
	}
	if flagMarkdown {
		formatCount++
	}
	if flagJSON {
		formatCount++
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	if flagRaw && (flagMarkdown || flagJSON) {
		return fmt.Errorf("--raw only applies to --wiki output")
	}
	if flagInsertInto != "" && flagOutputDir != "" {
		return fmt.Errorf("--insert_into and --output_dir are mutually exclusive")
	}
	if flagInsertInto == "" && (flagAt >= 0 || flagEnd >= 0) {
		return fmt.Errorf("--at and --end require --insert_into")
	}
	if flagEnd >= 0 && flagEnd < flagAt {
		return fmt.Errorf("--end (%d) must not be before --at (%d)", flagEnd, flagAt)
	}

	return nil
}

// selectPipeline picks the Normalizer and Renderer based on flags.
func selectPipeline() (core.Normalizer, core.Renderer) {
	switch {
	case flagMarkdown:
		return normalize.NewMarkdown(), render.NewPassthroughRenderer(".md")
	case flagJSON:
		return normalize.NewWiki(), render.NewJSONRenderer()
	case flagRaw:
		return normalize.NewWiki(), render.NewPassthroughRenderer(".wiki")
	default:
		return normalize.NewWiki(), render.NewEscapedRenderer()
	}
}
