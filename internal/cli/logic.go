package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/TengGit/LargeFiles/internal/fstree"
)

// stderrDiags reports non-fatal scan problems on stderr.
type stderrDiags struct{}

func (stderrDiags) Issue(path string, err error) {
	fmt.Fprintf(os.Stderr, "largefiles: %s: %v\n", path, err)
}

func logic(opts options) error {
	enableProgress := isatty.IsTerminal(os.Stderr.Fd())

	var progress func(entries int64, path string)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progress = func(entries int64, path string) {
			msg := fmt.Sprintf("Scanning… %s entries, at %s", humanize.Comma(entries), path)
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	root, err := fstree.Scan(opts.Path, fstree.ScanOptions{
		Diags:         stderrDiags{},
		Progress:      progress,
		ProgressEvery: opts.ProgressEvery,
	})

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	render := func(sink io.Writer) error {
		switch opts.Output {
		case "html":
			return fstree.RenderHTML(root, opts.Threshold, sink)
		default:
			return fstree.RenderText(root, opts.Threshold, sink)
		}
	}

	if opts.File != "" {
		file, err := os.Create(opts.File)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}

		if err := render(file); err != nil {
			file.Close()

			return err
		}

		// A failed close can mean a lost flush; a truncated report must
		// not exit cleanly.
		if err := file.Close(); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
	} else if err := render(os.Stdout); err != nil {
		return err
	}

	if enableProgress {
		fmt.Fprintf(os.Stderr, "Total: %s\n",
			humanize.IBytes(uint64(root.Size()))) //nolint:gosec // Sizes are never negative
	}

	return nil
}
