package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	bserrors "github.com/matzehuels/bitsquat/pkg/errors"
	"github.com/matzehuels/bitsquat/pkg/integrations"
	"github.com/matzehuels/bitsquat/pkg/integrations/npm"
	"github.com/matzehuels/bitsquat/pkg/squat"
)

// scanOpts holds the command-line flags for the scan command.
// Zero values mean "use the config file or default".
type scanOpts struct {
	config      string        // config file path
	registry    string        // registry base URL
	concurrency int           // maximum in-flight lookups
	workers     int           // parallel target scans
	timeout     time.Duration // per-lookup timeout
	format      string        // text, json or markdown
	noClassify  bool          // skip registry lookups
}

// scanCommand creates the scan command.
func (c *CLI) scanCommand() *cobra.Command {
	opts := scanOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "scan <targets-file> <universe-file>",
		Short: "Find bit-flip squats of target packages",
		Long: `Find packages in the universe whose names are one bit away from a target,
then check whether each one's latest release depends on the target.

Both files list one package name per line. Use "-" to read one of them
from standard input.

Examples:
  bitsquat scan popular.txt all-packages.txt
  bitsquat scan --format json popular.txt all-packages.txt > report.json
  bitsquat scan --format markdown popular.txt all-packages.txt > REPORT.md
  cat all-packages.txt | bitsquat scan --no-classify popular.txt -`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScan(cmd.Context(), cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default ~/.config/bitsquat/config.toml)")
	cmd.Flags().StringVar(&opts.registry, "registry", "", "npm registry base URL")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "maximum concurrent registry lookups")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel target scans (default GOMAXPROCS)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "per-lookup timeout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json or markdown")
	cmd.Flags().BoolVar(&opts.noClassify, "no-classify", false, "report matches without registry lookups")

	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatText, formatJSON, formatMarkdown}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// apply overlays flags that were set on top of cfg.
func (o scanOpts) apply(cfg Config) Config {
	if o.registry != "" {
		cfg.Registry = o.registry
	}
	if o.concurrency != 0 {
		cfg.Concurrency = o.concurrency
	}
	if o.workers != 0 {
		cfg.Workers = o.workers
	}
	if o.timeout != 0 {
		cfg.Timeout = duration{o.timeout}
	}
	return cfg
}

func (c *CLI) runScan(ctx context.Context, cmd *cobra.Command, opts scanOpts, targetsPath, universePath string) error {
	logger := loggerFromContext(ctx)

	if err := bserrors.ValidateFormat(opts.format, formatText, formatJSON, formatMarkdown); err != nil {
		return err
	}
	if targetsPath == stdinPath && universePath == stdinPath {
		return bserrors.New(bserrors.ErrCodeInvalidInput, "only one name list can be read from stdin")
	}

	fileCfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	cfg := opts.apply(fileCfg)
	if err := cfg.validate(); err != nil {
		return err
	}
	logger.Debug("effective config\n" + cfg.String())

	// Input errors abort before any scanning.
	targets, err := readNamesFile(targetsPath, cmd.InOrStdin())
	if err != nil {
		return err
	}
	names, err := readNamesFile(universePath, cmd.InOrStdin())
	if err != nil {
		return err
	}
	universe := squat.NewUniverse(names)
	logger.Infof("Loaded %d targets and %d known packages", len(targets), universe.Len())

	report, err := c.scan(ctx, cmd.ErrOrStderr(), logger, cfg, opts, targets, universe)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatJSON:
		return writeJSONReport(out, report)
	case formatMarkdown:
		return writeMarkdownReport(out, report)
	default:
		writeTextReport(out, report)
		return nil
	}
}

func (c *CLI) scan(ctx context.Context, stderr io.Writer, logger *log.Logger, cfg Config, opts scanOpts, targets []string, universe *squat.Universe) (*squat.Report, error) {
	hc := integrations.NewHTTPClient(cfg.Timeout.Duration, cfg.Concurrency)
	client := npm.NewClient(hc, cfg.Registry, map[string]string{"User-Agent": cfg.UserAgent})

	scanner := squat.NewScanner(universe, client, squat.Options{
		Scan: squat.ScanOptions{Workers: cfg.Workers},
		Classify: squat.ClassifyOptions{
			Concurrency: cfg.Concurrency,
			Timeout:     cfg.Timeout.Duration,
			Logger:      func(msg string, args ...any) { logger.Warnf(msg, args...) },
		},
		SkipClassify: opts.noClassify,
	})

	prog := newProgress(logger)
	var spin *Spinner
	if !opts.noClassify && logger.GetLevel() > log.DebugLevel {
		spin = newSpinner(ctx, stderr, fmt.Sprintf("Searching %d targets and checking matches against %s...", len(targets), client.BaseURL()))
		spin.Start()
	}

	report, err := scanner.Run(ctx, targets)
	if spin != nil {
		if err != nil {
			spin.StopWithError("scan interrupted")
		} else {
			spin.Stop()
		}
	}
	if err != nil {
		return nil, err
	}

	if report.Classified {
		prog.done(fmt.Sprintf("Found %d matches, %d cyclical, %d unknown",
			len(report.Results), report.Count(squat.Cyclical), report.Count(squat.Unknown)))
	} else {
		prog.done(fmt.Sprintf("Found %d matches", len(report.Results)))
	}
	return report, nil
}
