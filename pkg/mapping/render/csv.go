package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/path2map/path2map/pkg/mapping/core"
)

// csvHeader is the CSV header row.
var csvHeader = []string{"path", "name", "type", "ext", "depth", "size", "mtime"}

// csvRenderer renders one row per node in preorder.
type csvRenderer struct{}

// Render implements Renderer.Render.
func (r *csvRenderer) Render(model *core.Model, options *Options) (string, error) {
	if err := ensureModel(model); err != nil {
		return "", err
	}
	state, err := newState(options, false)
	if err != nil {
		return "", err
	}

	// Write rows. Sizes are written as raw byte counts so that the output
	// remains machine-readable.
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	if err := writer.Write(csvHeader); err != nil {
		return "", fmt.Errorf("unable to write CSV header: %w", err)
	}
	for _, node := range model.Preorder() {
		var size string
		if state.options.Details.IncludesSize() && node.Size != nil {
			size = strconv.FormatUint(*node.Size, 10)
		}
		row := []string{
			node.Path,
			node.Name,
			node.Kind.String(),
			node.Extension,
			strconv.Itoa(node.Depth),
			size,
			state.modificationTime(node),
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("unable to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("unable to flush CSV output: %w", err)
	}

	// Strip the trailing line terminator.
	return strings.TrimSuffix(buffer.String(), "\n"), nil
}
