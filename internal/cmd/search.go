package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/crashlens/internal/config"
	"github.com/crimson-sun/crashlens/internal/eventlog"
	"github.com/crimson-sun/crashlens/internal/logging"
	"github.com/crimson-sun/crashlens/internal/output"
	fileout "github.com/crimson-sun/crashlens/internal/output/file"
	"github.com/crimson-sun/crashlens/internal/output/multi"
	"github.com/crimson-sun/crashlens/internal/output/ndjson"
	"github.com/crimson-sun/crashlens/internal/output/text"
	"github.com/crimson-sun/crashlens/internal/search"

	// Register event-log source implementations.
	_ "github.com/crimson-sun/crashlens/internal/eventlog/replay"
	_ "github.com/crimson-sun/crashlens/internal/eventlog/winlog"
)

var searchFlags struct {
	exe        string
	days       int
	deep       bool
	dedup      bool
	source     string
	replayFile string
	format     string
	out        string
	timeout    time.Duration
	logLevel   string
	logJSON    bool
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "search the event log for crashes of an executable",
	Example: `  crashlens search --exe "C:\Games\Foo\bin\Win64\Foo.exe" --days 7
  crashlens search --exe Foo.exe --deep --format ndjson
  crashlens search --exe Foo.exe --source replay --replay-file dump.ndjson`,
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchFlags.exe, "exe", "", "path to the executable to search for (required)")
	f.IntVar(&searchFlags.days, "days", 0, "search period in days: 2, 3, 7 or 14")
	f.BoolVar(&searchFlags.deep, "deep", false, "deep scan: fuzzy and folder matching")
	f.BoolVar(&searchFlags.dedup, "dedup", false, "collapse repeated identical crashes")
	f.StringVar(&searchFlags.source, "source", "", "event-log source (windows, replay)")
	f.StringVar(&searchFlags.replayFile, "replay-file", "", "NDJSON dump for the replay source")
	f.StringVar(&searchFlags.format, "format", "", "output format: text or ndjson")
	f.StringVar(&searchFlags.out, "out", "", "also write the report to this file")
	f.DurationVar(&searchFlags.timeout, "timeout", 0, "abort the query after this duration")
	f.StringVar(&searchFlags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&searchFlags.logJSON, "log-json", false, "log as JSON to stderr")
	searchCmd.MarkFlagRequired("exe") //nolint:errcheck
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	overlayFlags(cmd, &cfg)

	logging.Init(cfg.Log.JSON || cfg.Output.Format == "ndjson", logging.ParseLevel(cfg.Log.Level))

	ctor, err := eventlog.Get(cfg.Source.Provider)
	if err != nil {
		return err
	}
	srcCfg := eventlog.Config{Provider: cfg.Source.Provider}
	if cfg.Source.ReplayFile != "" {
		srcCfg.Extra = map[string]string{"file": cfg.Source.ReplayFile}
	}

	searcher := search.New(ctor(), srcCfg)
	rep, err := searcher.Run(cmd.Context(), search.Config{
		ExecutablePath: searchFlags.exe,
		DayWindow:      cfg.Search.DayWindow,
		DeepScan:       cfg.Search.DeepScan,
		Timeout:        cfg.Search.TimeoutDuration(),
		Dedup:          cfg.Search.Dedup,
	})
	if err != nil {
		printGuidance(err)
		return err
	}

	out, err := buildOutput(cfg)
	if err != nil {
		return err
	}
	defer out.Close()

	return out.Write(cmd.Context(), rep)
}

// overlayFlags applies explicitly-set flags on top of the loaded config.
func overlayFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("days") {
		cfg.Search.DayWindow = searchFlags.days
	}
	if flags.Changed("deep") {
		cfg.Search.DeepScan = searchFlags.deep
	}
	if flags.Changed("dedup") {
		cfg.Search.Dedup = searchFlags.dedup
	}
	if flags.Changed("timeout") {
		cfg.Search.Timeout = searchFlags.timeout.String()
	}
	if flags.Changed("source") {
		cfg.Source.Provider = searchFlags.source
	}
	if flags.Changed("replay-file") {
		cfg.Source.ReplayFile = searchFlags.replayFile
	}
	if flags.Changed("format") {
		cfg.Output.Format = searchFlags.format
	}
	if flags.Changed("out") {
		cfg.Output.File = searchFlags.out
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = searchFlags.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = searchFlags.logJSON
	}
}

// buildOutput assembles the output chain from config: text or ndjson on
// stdout, fanned out to a file copy when requested.
func buildOutput(cfg config.Config) (output.Output, error) {
	var primary output.Output
	switch cfg.Output.Format {
	case "", "text":
		primary = text.New()
	case "ndjson":
		primary = ndjson.New()
	default:
		return nil, fmt.Errorf("unknown output format: %s", cfg.Output.Format)
	}

	if cfg.Output.File == "" {
		return primary, nil
	}
	fo, err := fileout.New(cfg.Output.File)
	if err != nil {
		return nil, err
	}
	return multi.New(primary, fo), nil
}

// printGuidance writes an actionable, non-technical message for the error
// taxonomy before the raw error is reported.
func printGuidance(err error) {
	switch {
	case errors.Is(err, eventlog.ErrAccessDenied):
		fmt.Fprintln(os.Stderr, "Access to the event log was denied. Run crashlens from an elevated (Administrator) prompt and try again.")
	case errors.Is(err, eventlog.ErrSourceUnavailable):
		fmt.Fprintln(os.Stderr, "The event log could not be reached on this system. Check that the Windows Event Log service is running.")
	case errors.Is(err, eventlog.ErrTimeout):
		fmt.Fprintln(os.Stderr, "The event log query timed out. Try again, pick a shorter period, or raise --timeout.")
	}
}
