package analyzer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/es-debug/nginx-log-analyzer/internal/logging"
	"github.com/es-debug/nginx-log-analyzer/internal/parser"
	"github.com/es-debug/nginx-log-analyzer/internal/report"
	"github.com/es-debug/nginx-log-analyzer/internal/stats"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
)

const appName = "nginxstat"

// Start runs one analysis for the given command-line arguments. The report
// goes to stdout; usage and diagnostics go to stderr.
func Start(ctx context.Context, args []string, stdout, stderr io.Writer, version string) error {
	flags, err := readCMDFlags(args, stderr)
	if err != nil {
		return err
	}

	if flags.help {
		return nil
	}

	if flags.version {
		fmt.Fprintf(stdout, "%s version %s\n", appName, version)

		return nil
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	logger, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	return Run(ctx, cfg, stdout, logger)
}

// Run writes the banner, reads cfg.Path once and renders every report.
// Nothing but the banner is written when the file cannot be opened or holds
// no usable line.
func Run(ctx context.Context, cfg Config, stdout io.Writer, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.New()
	logger = logger.With("run_id", runID.String())

	var opts []report.Option
	if cfg.NoColor {
		opts = append(opts, report.WithColorProfile(termenv.Ascii))
	}

	renderer := report.New(stdout, opts...)

	if _, err := io.WriteString(stdout, renderer.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	logger.Debug("analysis started",
		"path", cfg.Path,
		"config", cfg.ConfigPath,
		"top_ips", cfg.TopAddresses,
		"top_paths", cfg.TopPaths,
	)

	state, err := ingest(ctx, cfg.Path, logger)
	if err != nil {
		return err
	}

	if state.Empty() {
		return ErrNoData{Path: cfg.Path}
	}

	summary := state.Summary(cfg.TopAddresses, cfg.TopPaths)

	if _, err := io.WriteString(stdout, renderer.Render(summary)+renderer.Footer()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func ingest(ctx context.Context, path string, logger *slog.Logger) (*stats.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewErrSourceUnavailable(path, err)
	}
	defer f.Close()

	state := stats.NewState()

	res, err := parser.NewParser().Parse(ctx, f, state)
	if err != nil {
		return nil, NewErrRead(path, err)
	}

	logger.Info("log file parsed",
		"path", path,
		"lines", res.Lines,
		"accepted", res.Accepted,
		"skipped", res.Skipped,
	)

	return state, nil
}
