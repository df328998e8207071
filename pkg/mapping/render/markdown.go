package render

import (
	"github.com/path2map/path2map/pkg/mapping/core"
)

// markdownRenderer renders the text tree inside a fenced code block.
type markdownRenderer struct{}

// Render implements Renderer.Render.
func (r *markdownRenderer) Render(model *core.Model, options *Options) (string, error) {
	if err := ensureModel(model); err != nil {
		return "", err
	}

	// Markdown output is never colorized.
	state, err := newState(options, false)
	if err != nil {
		return "", err
	}
	return "```text\n" + state.text(model) + "\n```", nil
}
