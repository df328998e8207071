package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/path2map/path2map/pkg/mapping/core"
)

// yamlNull is the encoded form of requested but unknown metadata.
func yamlNull() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

// yamlNode is the YAML representation of a node. It mirrors the JSON shape.
type yamlNode struct {
	Path               string      `yaml:"path"`
	Name               string      `yaml:"name"`
	Type               string      `yaml:"type"`
	Extension          string      `yaml:"ext"`
	Depth              int         `yaml:"depth"`
	Children           []*yamlNode `yaml:"children"`
	Size               *yaml.Node  `yaml:"size,omitempty"`
	ModificationTime   *yaml.Node  `yaml:"mtime,omitempty"`
	SymbolicLink       bool        `yaml:"is_symlink,omitempty"`
	SymbolicLinkTarget string      `yaml:"symlink_target,omitempty"`
	SymbolicLinkCycle  bool        `yaml:"symlink_cycle,omitempty"`
}

// yamlNode converts a node and its descendants to their YAML representation.
func (s *state) yamlNode(node *core.Node) *yamlNode {
	result := &yamlNode{
		Path:               node.Path,
		Name:               node.Name,
		Type:               node.Kind.String(),
		Extension:          node.Extension,
		Depth:              node.Depth,
		Children:           make([]*yamlNode, 0, len(node.Children)),
		SymbolicLink:       node.SymbolicLink,
		SymbolicLinkTarget: node.SymbolicLinkTarget,
		SymbolicLinkCycle:  node.SymbolicLinkCycle,
	}
	if s.options.Details.IncludesSize() {
		result.Size = yamlNull()
		if node.Size != nil {
			result.Size = &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!int",
				Value: strconv.FormatUint(*node.Size, 10),
			}
		}
	}
	if s.options.Details.IncludesModificationTime() {
		result.ModificationTime = yamlNull()
		if node.ModificationTime != nil {
			result.ModificationTime = &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: s.timeFormatter.FormatString(*node.ModificationTime),
			}
		}
	}
	for _, child := range node.Children {
		result.Children = append(result.Children, s.yamlNode(child))
	}
	return result
}

// yamlRenderer renders nested YAML mappings.
type yamlRenderer struct{}

// Render implements Renderer.Render.
func (r *yamlRenderer) Render(model *core.Model, options *Options) (string, error) {
	if err := ensureModel(model); err != nil {
		return "", err
	}
	state, err := newState(options, false)
	if err != nil {
		return "", err
	}

	// Encode the tree.
	buffer := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(state.yamlNode(model.Root)); err != nil {
		return "", fmt.Errorf("unable to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("unable to finalize YAML: %w", err)
	}

	// Strip the trailing newline.
	return strings.TrimSuffix(buffer.String(), "\n"), nil
}
