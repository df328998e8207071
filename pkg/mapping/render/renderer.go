// Package render converts logical tree models into their output formats.
package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/path2map/path2map/pkg/mapping/core"
)

const (
	// emptyFolderMarker annotates empty non-root directories when comments are
	// enabled.
	emptyFolderMarker = "[Empty folder]"
	// cycleMarker annotates symbolic links whose expansion would form a cycle.
	cycleMarker = "[cycle]"
	// directoryGlyph prefixes directory labels when emojis are enabled.
	directoryGlyph = "📁 "
	// fileGlyph prefixes file labels when emojis are enabled.
	fileGlyph = "📄 "
)

// Renderer is the interface implemented by output formats.
type Renderer interface {
	// Render renders a model to its textual form. A nil options object
	// renders with default options. Rendering the same model with the same
	// options always yields identical output.
	Render(model *core.Model, options *Options) (string, error)
}

// For returns the renderer for the specified format. The default format
// resolves to plain text.
func For(format Format) (Renderer, error) {
	switch format.Resolve() {
	case FormatText:
		return &textRenderer{}, nil
	case FormatMarkdown:
		return &markdownRenderer{}, nil
	case FormatJSON:
		return &jsonRenderer{}, nil
	case FormatCSV:
		return &csvRenderer{}, nil
	case FormatHTML:
		return &htmlRenderer{}, nil
	case FormatYAML:
		return &yamlRenderer{}, nil
	default:
		return nil, errors.New("unknown output format")
	}
}

// Render is a convenience function that renders a model in the specified
// format.
func Render(model *core.Model, format Format, options *Options) (string, error) {
	renderer, err := For(format)
	if err != nil {
		return "", err
	}
	return renderer.Render(model, options)
}

// ensureModel verifies that a model can be rendered.
func ensureModel(model *core.Model) error {
	if err := model.EnsureValid(); err != nil {
		return fmt.Errorf("invalid model: %w", err)
	}
	return nil
}

// visibleChildren returns the children of a node that should be displayed in
// tree-shaped output, in display order. The node's own children are never
// re-ordered in place.
func (s *state) visibleChildren(node *core.Node) []*core.Node {
	// Filter out files if necessary.
	children := node.Children
	if s.options.FoldersOnly {
		children = make([]*core.Node, 0, len(node.Children))
		for _, child := range node.Children {
			if child.IsDirectory() {
				children = append(children, child)
			}
		}
	}

	// Sort if necessary.
	if s.options.Sort {
		sorted := make([]*core.Node, len(children))
		copy(sorted, children)
		sort.SliceStable(sorted, func(i, j int) bool {
			return core.DefaultLess(
				&core.Candidate{Name: sorted[i].Name, Directory: sorted[i].IsDirectory()},
				&core.Candidate{Name: sorted[j].Name, Directory: sorted[j].IsDirectory()},
			)
		})
		children = sorted
	}

	// Done.
	return children
}

// size returns the formatted size of a node, or an empty string if sizes
// weren't requested or are unknown.
func (s *state) size(node *core.Node) string {
	if !s.options.Details.IncludesSize() || node.Size == nil {
		return ""
	}
	return s.options.SizeFormat.Format(*node.Size)
}

// modificationTime returns the formatted modification time of a node, or an
// empty string if modification times weren't requested or are unknown.
func (s *state) modificationTime(node *core.Node) string {
	if !s.options.Details.IncludesModificationTime() || node.ModificationTime == nil {
		return ""
	}
	return s.timeFormatter.FormatString(*node.ModificationTime)
}

// details returns the known, requested metadata values for a node.
func (s *state) details(node *core.Node) []string {
	var values []string
	if size := s.size(node); size != "" {
		values = append(values, size)
	}
	if modificationTime := s.modificationTime(node); modificationTime != "" {
		values = append(values, modificationTime)
	}
	return values
}

// glyph returns the emoji prefix for a node, if enabled.
func (s *state) glyph(node *core.Node) string {
	if !s.options.Emojis {
		return ""
	} else if node.IsDirectory() {
		return directoryGlyph
	}
	return fileGlyph
}

// linkSuffix returns the symbolic link target annotation for a node.
func linkSuffix(node *core.Node) string {
	if !node.SymbolicLink || node.SymbolicLinkTarget == "" {
		return ""
	}
	return " -> " + node.SymbolicLinkTarget
}

// markers returns the bracketed annotations for a node.
func (s *state) markers(node *core.Node, root bool) []string {
	var result []string
	if node.SymbolicLinkCycle {
		result = append(result, cycleMarker)
	}
	if s.options.Comments && !s.options.FoldersOnly &&
		!root && node.IsDirectory() && len(node.Children) == 0 {
		result = append(result, emptyFolderMarker)
	}
	return result
}

// plainLabel returns the complete uncolored label for a node.
func (s *state) plainLabel(node *core.Node, root bool) string {
	var builder strings.Builder
	builder.WriteString(s.glyph(node))
	builder.WriteString(node.Name)
	builder.WriteString(linkSuffix(node))
	if details := s.details(node); len(details) > 0 {
		builder.WriteString(" (")
		builder.WriteString(strings.Join(details, ", "))
		builder.WriteString(")")
	}
	for _, marker := range s.markers(node, root) {
		builder.WriteString(" ")
		builder.WriteString(marker)
	}
	return builder.String()
}
