package render

import (
	"html"
	"strings"

	"github.com/path2map/path2map/pkg/mapping/core"
)

// htmlHeader is the document preamble preceding the tree.
var htmlHeader = []string{
	"<!doctype html>",
	`<html lang="en">`,
	"<head>",
	`  <meta charset="utf-8">`,
	`  <meta name="viewport" content="width=device-width, initial-scale=1">`,
	"  <title>path2map</title>",
	"  <style>",
	"    body { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; margin: 1rem; }",
	"    ul.tree { list-style: none; padding-left: 1rem; }",
	"    ul.tree ul { list-style: none; padding-left: 1.25rem; }",
	"    .node { white-space: pre; }",
	"    details > summary { cursor: pointer; }",
	"  </style>",
	"</head>",
	"<body>",
}

// htmlFooter is the document epilogue following the tree.
var htmlFooter = []string{
	"</body>",
	"</html>",
}

// htmlRenderer renders a static document with collapsible directories.
type htmlRenderer struct{}

// Render implements Renderer.Render.
func (r *htmlRenderer) Render(model *core.Model, options *Options) (string, error) {
	if err := ensureModel(model); err != nil {
		return "", err
	}
	state, err := newState(options, false)
	if err != nil {
		return "", err
	}

	// Assemble the document.
	var lines []string
	lines = append(lines, htmlHeader...)
	lines = state.appendHTMLList(lines, []*core.Node{model.Root}, "", true)
	lines = append(lines, htmlFooter...)
	return strings.Join(lines, "\n"), nil
}

// appendHTMLList appends a list of nodes, with their visible descendants, at
// the specified indentation.
func (s *state) appendHTMLList(lines []string, nodes []*core.Node, indent string, root bool) []string {
	if root {
		lines = append(lines, indent+`<ul class="tree">`)
	} else {
		lines = append(lines, indent+"<ul>")
	}
	for _, node := range nodes {
		label := html.EscapeString(s.plainLabel(node, root))
		children := s.visibleChildren(node)
		if len(children) == 0 {
			lines = append(lines, indent+`  <li><span class="node">`+label+"</span></li>")
			continue
		}
		lines = append(lines,
			indent+"  <li>",
			indent+`    <details open><summary class="node">`+label+"</summary>",
		)
		lines = s.appendHTMLList(lines, children, indent+"      ", false)
		lines = append(lines,
			indent+"    </details>",
			indent+"  </li>",
		)
	}
	return append(lines, indent+"</ul>")
}
