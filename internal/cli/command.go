package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"

	"github.com/TengGit/LargeFiles/internal/fstree"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// options holds the parsed command line.
type options struct {
	Path          string
	Threshold     float64
	Output        string
	File          string
	ProgressEvery int64
	Version       bool
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		largefiles scans a directory tree and reports where the bytes went.

		Usage:

			largefiles [flags] [path]

		Positional Arguments:
		  path                   Directory to scan. Defaults to current directory if not specified.

		Each directory level lists its largest entries individually and folds the
		rest into one "(N others)" line carrying their total, average and standard
		deviation. Raise --threshold to fold more entries, lower it to list more.

		Unreadable entries are reported on stderr and counted as zero bytes; the
		scan itself never aborts on them.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var opts options

	allowedOutputs := []string{"text", "html"}

	pflag.Float64VarP(
		&opts.Threshold,
		"threshold",
		"t",
		fstree.DefaultThreshold,
		"Significance threshold; an entry is listed when its size is at least parent*threshold/children",
	)
	pflag.StringVarP(&opts.Output, "output", "o", "text", "Output format: text or html")
	pflag.StringVarP(&opts.File, "file", "f", "", "Write the report to a file instead of stdout")
	pflag.Int64Var(&opts.ProgressEvery, "progress-every", fstree.DefaultProgressEvery, "Entries between progress updates")
	pflag.BoolVarP(&opts.Version, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if opts.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if !slices.Contains(allowedOutputs, opts.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", opts.Output, allowedOutputs)
	}

	if opts.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %v", opts.Threshold)
	}

	if opts.ProgressEvery <= 0 {
		return errors.New("progress-every must be positive")
	}

	if pflag.NArg() == 0 {
		opts.Path = "."
	} else {
		opts.Path = pflag.Args()[0]
	}

	return logic(opts)
}
