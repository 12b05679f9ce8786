package analyzer

import (
	"errors"
	"fmt"
	"io"

	"github.com/es-debug/nginx-log-analyzer/internal/logging"
	"github.com/spf13/pflag"
)

type cmdFlags struct {
	set     *pflag.FlagSet
	path    string
	config  string
	help    bool
	version bool
}

func newFlagSet(output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringP("config", "c", "", "config file (default is $HOME/.config/nginxstat/config.yml)")
	fs.Int(keyTopAddresses, defaultTopAddresses, "number of top IP addresses to display")
	fs.Int(keyTopPaths, defaultTopPaths, "number of top requested paths to display")
	fs.String(keyLogLevel, logging.DefaultLevel, "diagnostic log level: debug, info, warn, error")
	fs.Bool(keyNoColor, false, "disable colours in the report")
	fs.BoolP("version", "v", false, "print version information")

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [options] <log_file>\n\n", appName)
		fmt.Fprintf(output, "Analyze nginx access logs and display ASCII art visualizations.\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nExamples:\n")
		fmt.Fprintf(output, "  %s /var/log/nginx/access.log\n", appName)
		fmt.Fprintf(output, "  %s access.log --top-ips 20\n", appName)
		fmt.Fprintf(output, "  %s access.log --top-paths 15\n", appName)
	}

	return fs
}

func readCMDFlags(args []string, output io.Writer) (cmdFlags, error) {
	fs := newFlagSet(output)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cmdFlags{
				help: true,
			}, nil
		}

		return cmdFlags{}, NewErrFlag(err.Error())
	}

	version, err := fs.GetBool("version")
	if err != nil {
		return cmdFlags{}, fmt.Errorf("read version flag: %w", err)
	}

	if version {
		return cmdFlags{
			version: true,
		}, nil
	}

	config, err := fs.GetString("config")
	if err != nil {
		return cmdFlags{}, fmt.Errorf("read config flag: %w", err)
	}

	switch fs.NArg() {
	case 0:
		return cmdFlags{}, ErrEmptyLogPath{}
	case 1:
	default:
		return cmdFlags{}, NewErrFlag(fmt.Sprintf("unexpected arguments: %v", fs.Args()[1:]))
	}

	return cmdFlags{
		set:    fs,
		path:   fs.Arg(0),
		config: config,
	}, nil
}
