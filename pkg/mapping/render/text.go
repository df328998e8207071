package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/path2map/path2map/pkg/mapping/core"
	"github.com/path2map/path2map/pkg/platform/terminal"
)

const (
	// branchMiddle connects a non-final child to its parent.
	branchMiddle = "├── "
	// branchLast connects a final child to its parent.
	branchLast = "└── "
	// continuationMiddle continues the tree beneath a non-final child.
	continuationMiddle = "│   "
	// continuationLast pads beneath a final child.
	continuationLast = "    "
	// columnGap separates the label column from metadata columns, and
	// metadata columns from each other.
	columnGap = "  "
)

// widthCondition measures display widths independently of the locale, so that
// column layout is reproducible.
var widthCondition = &runewidth.Condition{}

// textLine is a single line of text output, kept in parts so that columns can
// be aligned on display width before colors are applied.
type textLine struct {
	// branch is the tree drawing prefix.
	branch string
	// node is the node described by the line.
	node *core.Node
	// root indicates whether or not the node is the root.
	root bool
}

// textRenderer renders box-drawing trees.
type textRenderer struct{}

// Render implements Renderer.Render.
func (r *textRenderer) Render(model *core.Model, options *Options) (string, error) {
	if err := ensureModel(model); err != nil {
		return "", err
	}
	state, err := newState(options, true)
	if err != nil {
		return "", err
	}
	return state.text(model), nil
}

// text renders a model as a box-drawing tree.
func (s *state) text(model *core.Model) string {
	// Compute lines.
	lines := []*textLine{{node: model.Root, root: true}}
	s.appendTextLines(&lines, model.Root, "")

	// Format lines.
	formatted := make([]string, len(lines))
	if s.options.DetailsStyle == DetailsStyleColumns {
		s.formatColumns(lines, formatted)
	} else {
		for l, line := range lines {
			formatted[l] = s.formatInline(line)
		}
	}

	// Done.
	return strings.Join(formatted, "\n")
}

// appendTextLines appends the lines for a node's visible descendants.
func (s *state) appendTextLines(lines *[]*textLine, node *core.Node, prefix string) {
	children := s.visibleChildren(node)
	for c, child := range children {
		last := c == len(children)-1
		branch, continuation := branchMiddle, continuationMiddle
		if last {
			branch, continuation = branchLast, continuationLast
		}
		*lines = append(*lines, &textLine{branch: prefix + branch, node: child})
		s.appendTextLines(lines, child, prefix+continuation)
	}
}

// name returns the uncolored name portion of a line, including any glyph and
// symbolic link target.
func (s *state) name(node *core.Node) string {
	return s.glyph(node) +
		terminal.NeutralizeControlCharacters(node.Name) +
		terminal.NeutralizeControlCharacters(linkSuffix(node))
}

// styledName returns the colorized name portion of a line.
func (s *state) styledName(node *core.Node) string {
	text := s.name(node)
	switch {
	case node.SymbolicLink:
		return s.palette.symbolicLink.Sprint(text)
	case node.IsDirectory():
		return s.palette.directory.Sprint(text)
	default:
		return s.palette.file.Sprint(text)
	}
}

// styledMarkers returns the colorized markers for a line, each preceded by a
// space.
func (s *state) styledMarkers(line *textLine) string {
	var builder strings.Builder
	for _, marker := range s.markers(line.node, line.root) {
		builder.WriteString(" ")
		builder.WriteString(s.palette.marker.Sprint(marker))
	}
	return builder.String()
}

// formatInline formats a line with metadata in parentheses after the name.
func (s *state) formatInline(line *textLine) string {
	var builder strings.Builder
	builder.WriteString(s.palette.branch.Sprint(line.branch))
	builder.WriteString(s.styledName(line.node))
	if details := s.details(line.node); len(details) > 0 {
		builder.WriteString(" ")
		builder.WriteString(s.palette.details.Sprint("(" + strings.Join(details, ", ") + ")"))
	}
	builder.WriteString(s.styledMarkers(line))
	return builder.String()
}

// formatColumns formats lines with metadata aligned in columns to the right of
// the tree. Lines without metadata aren't padded.
func (s *state) formatColumns(lines []*textLine, formatted []string) {
	// Compute the display width of the widest label.
	widths := make([]int, len(lines))
	var maximum int
	for l, line := range lines {
		plain := line.branch + s.name(line.node)
		for _, marker := range s.markers(line.node, line.root) {
			plain += " " + marker
		}
		widths[l] = widthCondition.StringWidth(plain)
		if widths[l] > maximum {
			maximum = widths[l]
		}
	}

	// Format each line.
	for l, line := range lines {
		var builder strings.Builder
		builder.WriteString(s.palette.branch.Sprint(line.branch))
		builder.WriteString(s.styledName(line.node))
		builder.WriteString(s.styledMarkers(line))
		if details := s.details(line.node); len(details) > 0 {
			builder.WriteString(strings.Repeat(" ", maximum-widths[l]))
			builder.WriteString(columnGap)
			builder.WriteString(s.palette.details.Sprint(strings.Join(details, columnGap)))
		}
		formatted[l] = builder.String()
	}
}
