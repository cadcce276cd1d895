package fstree

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// DefaultThreshold is the default significance threshold for rendering.
const DefaultThreshold = 1.2

// othersStats summarizes the children at one level that fell below the
// admission threshold.
type othersStats struct {
	total  int64
	count  int
	mean   float64
	stddev float64
}

// partition sorts d's children descending by size and splits them into
// the ones significant enough to render individually and a statistical
// aggregate of the rest. A child is significant when its size is at least
// d.Size() * threshold / len(children). Relative order among equal-size
// children is unspecified: the sort is not stable.
//
// Must not be called on an empty directory.
func partition(d *Dir, threshold float64) (shown []Node, others *othersStats) {
	children := append([]Node(nil), d.Children()...)

	sort.Slice(children, func(i, j int) bool {
		return children[i].Size() > children[j].Size()
	})

	minSize := float64(d.Size()) * threshold / float64(len(children))

	var sizes []int64

	for _, child := range children {
		if float64(child.Size()) >= minSize {
			shown = append(shown, child)
		} else {
			sizes = append(sizes, child.Size())
		}
	}

	if len(sizes) == 0 {
		return shown, nil
	}

	return shown, summarize(sizes)
}

// summarize computes total, count, mean and population standard deviation
// of the deferred sizes.
func summarize(sizes []int64) *othersStats {
	var total int64

	for _, size := range sizes {
		total += size
	}

	mean := float64(total) / float64(len(sizes))

	var sumSq float64

	for _, size := range sizes {
		diff := float64(size) - mean
		sumSq += diff * diff
	}

	return &othersStats{
		total:  total,
		count:  len(sizes),
		mean:   mean,
		stddev: math.Sqrt(sumSq / float64(len(sizes))),
	}
}

// checkThreshold rejects thresholds that would make the report
// meaningless before any output is produced.
func checkThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %v", threshold)
	}

	return nil
}

// RenderText writes the tree as indented plain text, one entry per line.
//
// Depth is marked with one pipe character per level before a '+' bullet:
//
//	+ 1015B root
//	|+ 1000B big
//	|+ 15B (2 others) avg=7.5B stddev=2.5B
//
// Empty directories get a single "(empty)" marker. Rendering reads the
// tree only; calling it twice on the same tree produces identical output.
func RenderText(root Node, threshold float64, w io.Writer) error {
	if err := checkThreshold(threshold); err != nil {
		return err
	}

	return writeText(w, root, threshold, 0)
}

func writeText(w io.Writer, node Node, threshold float64, level int) error {
	indent := strings.Repeat("|", level)

	_, err := fmt.Fprintf(w, "%s+ %s %s\n", indent, FormatSize(float64(node.Size())), node.Name())
	if err != nil {
		return err
	}

	dir, ok := node.(*Dir)
	if !ok {
		return nil
	}

	if len(dir.Children()) == 0 {
		_, err := fmt.Fprintf(w, "%s  (empty)\n", indent)

		return err
	}

	shown, others := partition(dir, threshold)

	for _, child := range shown {
		if err := writeText(w, child, threshold, level+1); err != nil {
			return err
		}
	}

	if others != nil {
		_, err := fmt.Fprintf(w, "%s|+ %s (%d others) avg=%s stddev=%s\n",
			indent,
			FormatSize(float64(others.total)),
			others.count,
			FormatSize(others.mean),
			FormatSize(others.stddev),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
