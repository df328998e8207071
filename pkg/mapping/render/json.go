package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/path2map/path2map/pkg/mapping/core"
)

// jsonNull is the encoded form of requested but unknown metadata.
var jsonNull = json.RawMessage("null")

// jsonNode is the JSON representation of a node. Field order determines key
// order in the output.
type jsonNode struct {
	Path               string          `json:"path"`
	Name               string          `json:"name"`
	Type               string          `json:"type"`
	Extension          string          `json:"ext"`
	Depth              int             `json:"depth"`
	Children           []*jsonNode     `json:"children"`
	Size               json.RawMessage `json:"size,omitempty"`
	ModificationTime   json.RawMessage `json:"mtime,omitempty"`
	SymbolicLink       bool            `json:"is_symlink,omitempty"`
	SymbolicLinkTarget string          `json:"symlink_target,omitempty"`
	SymbolicLinkCycle  bool            `json:"symlink_cycle,omitempty"`
}

// jsonNode converts a node and its descendants to their JSON representation.
// Metadata keys are present only when requested, with null values if unknown.
func (s *state) jsonNode(node *core.Node) (*jsonNode, error) {
	result := &jsonNode{
		Path:               node.Path,
		Name:               node.Name,
		Type:               node.Kind.String(),
		Extension:          node.Extension,
		Depth:              node.Depth,
		Children:           make([]*jsonNode, 0, len(node.Children)),
		SymbolicLink:       node.SymbolicLink,
		SymbolicLinkTarget: node.SymbolicLinkTarget,
		SymbolicLinkCycle:  node.SymbolicLinkCycle,
	}
	if s.options.Details.IncludesSize() {
		result.Size = jsonNull
		if node.Size != nil {
			result.Size = json.RawMessage(strconv.FormatUint(*node.Size, 10))
		}
	}
	if s.options.Details.IncludesModificationTime() {
		result.ModificationTime = jsonNull
		if node.ModificationTime != nil {
			encoded, err := json.Marshal(s.timeFormatter.FormatString(*node.ModificationTime))
			if err != nil {
				return nil, fmt.Errorf("unable to encode modification time: %w", err)
			}
			result.ModificationTime = encoded
		}
	}
	for _, child := range node.Children {
		converted, err := s.jsonNode(child)
		if err != nil {
			return nil, err
		}
		result.Children = append(result.Children, converted)
	}
	return result, nil
}

// jsonRenderer renders nested JSON objects.
type jsonRenderer struct{}

// Render implements Renderer.Render.
func (r *jsonRenderer) Render(model *core.Model, options *Options) (string, error) {
	if err := ensureModel(model); err != nil {
		return "", err
	}
	state, err := newState(options, false)
	if err != nil {
		return "", err
	}

	// Convert the tree.
	root, err := state.jsonNode(model.Root)
	if err != nil {
		return "", err
	}

	// Encode the tree.
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(root); err != nil {
		return "", fmt.Errorf("unable to encode JSON: %w", err)
	}

	// Strip the trailing newline added by the encoder.
	return strings.TrimSuffix(buffer.String(), "\n"), nil
}
