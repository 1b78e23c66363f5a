package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/resume-importer/internal/importer"
	"github.com/jonathan/resume-importer/internal/observability"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse resume documents into structured JSON",
	Long: `Parse one or more resume documents (PDF, DOCX, HTML, Markdown or plain text) into resume JSON.
Use "-" to read plain text from stdin and --url to fetch documents over HTTP.
Without --out a single resume is printed to stdout; several are printed as a JSON array.`,
	RunE: runParse,
}

var (
	parseURLs        []string
	parseOutDir      string
	parseValidate    bool
	parsePretty      bool
	parseFailFast    bool
	parseConcurrency int
	parseUseBrowser  bool
)

func init() {
	parseCmd.Flags().StringArrayVarP(&parseURLs, "url", "u", nil, "URL to fetch a resume from (repeatable)")
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Output directory for <name>.resume.json and <name>.meta.json")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Check results against the resume schema")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "Indent JSON output")
	parseCmd.Flags().BoolVar(&parseFailFast, "fail-fast", false, "Stop at the first failed import")
	parseCmd.Flags().IntVar(&parseConcurrency, "concurrency", 0, "Parallel imports (default from config)")
	parseCmd.Flags().BoolVar(&parseUseBrowser, "use-browser", false, "Render short HTML pages with a headless browser")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(parseURLs) == 0 {
		return fmt.Errorf("at least one file or --url must be provided")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = parseOutDir
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = parseConcurrency
	}
	cfg.ValidateOutput = cfg.ValidateOutput || parseValidate
	cfg.Pretty = cfg.Pretty || parsePretty
	cfg.UseBrowser = cfg.UseBrowser || parseUseBrowser
	cfg.FailFast = cfg.FailFast || parseFailFast
	if err := cfg.Validate(); err != nil {
		return err
	}

	sources, err := parseSources(cmd.InOrStdin(), args, parseURLs)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	im := importer.NewFromConfig(cfg, logger)

	start := time.Now()
	results, err := im.ImportAll(cmd.Context(), sources)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.ErrOrStderr())
	failures := make(map[string]error)
	failed := 0
	var succeeded []*importer.Result
	for i, res := range results {
		if res.Err != nil {
			failed++
			key := res.Source
			if _, dup := failures[key]; dup {
				key = fmt.Sprintf("%s (source %d)", res.Source, i+1)
			}
			failures[key] = res.Err
			continue
		}
		succeeded = append(succeeded, res)
		if cfg.Verbose {
			printer.PrintMetadata(res.Metadata)
			printer.PrintResume(res.Resume)
		}
	}

	if cfg.OutDir != "" {
		if err := writeResults(cmd.OutOrStdout(), cfg.OutDir, results, cfg.Pretty); err != nil {
			return err
		}
	} else if err := printResults(cmd.OutOrStdout(), succeeded, cfg.Pretty); err != nil {
		return err
	}

	if cfg.Verbose || failed > 0 {
		printer.PrintFailures(failures)
		printer.PrintSummary(len(results), failed, time.Since(start))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d imports failed", failed, len(results))
	}
	return nil
}

// parseSources maps file arguments and URLs to import sources; "-" reads stdin once.
func parseSources(stdin io.Reader, files, urls []string) ([]importer.Source, error) {
	sources := make([]importer.Source, 0, len(files)+len(urls))
	readStdin := false
	for _, f := range files {
		if f != "-" {
			sources = append(sources, importer.Source{Path: f})
			continue
		}
		if readStdin {
			return nil, fmt.Errorf("stdin can only be read once")
		}
		readStdin = true
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		sources = append(sources, importer.Source{Name: "stdin.txt", ContentType: "text/plain", Data: data})
	}
	for _, u := range urls {
		sources = append(sources, importer.Source{URL: u})
	}
	return sources, nil
}

func writeResults(out io.Writer, outDir string, results []*importer.Result, pretty bool) error {
	names := importer.OutputNames(results)
	for i, res := range results {
		if res.Err != nil {
			continue
		}
		path, err := importer.WriteOutput(outDir, names[i], res, pretty)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s -> %s\n", res.Source, path)
	}
	return nil
}

func printResults(out io.Writer, results []*importer.Result, pretty bool) error {
	if len(results) == 1 {
		data, err := importer.MarshalResume(results[0], pretty)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	if len(results) == 0 {
		return nil
	}

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(results)
}
