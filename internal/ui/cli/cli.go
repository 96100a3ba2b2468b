package cli

import (
	"flag"
	"strings"
)

const versionString = "1.0.0"
const defaultConfigPath = "./docuscan.toml"

type cliOptions struct {
	configPath  string
	once        bool
	watch       bool
	ui          bool
	formats     string
	outDir      string
	trend       bool
	trendWindow string
	scaffold    string
	verbose     bool
	version     bool
	args        []string
}

func parseOptions(args []string) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("docuscan", flag.ContinueOnError)

	fs.StringVar(&opts.configPath, "config", defaultConfigPath, "Path to config file")
	fs.BoolVar(&opts.once, "once", false, "Run a single documentation pass and exit")
	fs.BoolVar(&opts.watch, "watch", false, "Keep running and re-document files as they change")
	fs.BoolVar(&opts.ui, "ui", false, "Enable terminal UI mode (implies -watch)")
	fs.StringVar(&opts.formats, "format", "", "Comma-separated output formats (text,html,markdown), overrides config")
	fs.StringVar(&opts.outDir, "out", "", "Output directory, or - to print text output to stdout")
	fs.BoolVar(&opts.trend, "trend", false, "Print the run history trend report and exit (requires db.enabled)")
	fs.StringVar(&opts.trendWindow, "trend-window", "24h", "Moving-window duration for trend averages (requires -trend)")
	fs.StringVar(&opts.scaffold, "scaffold", "", "Print a docstring skeleton for the named function and exit")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	opts.args = fs.Args()
	return opts, nil
}

func (o cliOptions) formatList() []string {
	if strings.TrimSpace(o.formats) == "" {
		return nil
	}
	parts := strings.Split(o.formats, ",")
	formats := make([]string, 0, len(parts))
	for _, part := range parts {
		if f := strings.TrimSpace(part); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
