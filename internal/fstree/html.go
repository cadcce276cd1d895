package fstree

import (
	_ "embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"strings"
)

// reportShell wraps the rendered tree body with the document head and
// stylesheet.
//
//go:embed report.gohtml
var reportShell string

// RenderHTML writes the tree as a single self-contained HTML document.
//
// Each directory becomes a collapsible container: a hidden checkbox
// toggle bound to a label carrying the size and name, followed by the
// nested children. Toggle ids increase monotonically across the whole
// render pass so no id is ever reused within one document. All names and
// size strings are escaped before embedding.
func RenderHTML(root Node, threshold float64, w io.Writer) error {
	if err := checkThreshold(threshold); err != nil {
		return err
	}

	tmpl, err := template.New("report").Parse(reportShell)
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}

	var (
		body   strings.Builder
		nextID int
	)

	writeHTML(&body, root, threshold, 0, &nextID)

	if err := tmpl.Execute(w, map[string]any{
		"Body": template.HTML(body.String()), //nolint:gosec // Built from escaped fragments only
	}); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	return nil
}

// writeHTML appends the markup for one node. nextID is the single toggle
// id counter threaded through the whole pass.
func writeHTML(b *strings.Builder, node Node, threshold float64, level int, nextID *int) {
	indent := strings.Repeat(" ", level)
	size := html.EscapeString(FormatSize(float64(node.Size())))
	name := html.EscapeString(node.Name())

	dir, ok := node.(*Dir)
	if !ok {
		fmt.Fprintf(b, "%s<div class=\"file\"><span class=\"size\">(%s)</span> <span class=\"file-name\">%s</span></div>\n",
			indent, size, name)

		return
	}

	id := *nextID
	*nextID++

	fmt.Fprintf(b, "%s<div class=\"folder\">\n", indent)
	fmt.Fprintf(b, "%s <input type=\"checkbox\" class=\"folder-check\" id=\"%d\"><label for=\"%d\" class=\"folder-name\"><span class=\"size\">(%s)</span> %s</label>\n",
		indent, id, id, size, name)

	if len(dir.Children()) == 0 {
		fmt.Fprintf(b, "%s <div class=\"others\">(empty)</div>\n", indent)
	} else {
		shown, others := partition(dir, threshold)

		for _, child := range shown {
			writeHTML(b, child, threshold, level+1, nextID)
		}

		if others != nil {
			fmt.Fprintf(b, "%s <div class=\"others\"><span class=\"size\">(%s)</span> (%d others avg=%s stddev=%s)</div>\n",
				indent,
				html.EscapeString(FormatSize(float64(others.total))),
				others.count,
				html.EscapeString(FormatSize(others.mean)),
				html.EscapeString(FormatSize(others.stddev)),
			)
		}
	}

	fmt.Fprintf(b, "%s</div>\n", indent)
}
