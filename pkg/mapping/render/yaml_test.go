package render

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestYAMLRendering(t *testing.T) {
	rendered, err := Render(nestedFixture(123), FormatYAML, &Options{
		Details:    DetailsSizeAndModificationTime,
		TimeFormat: "%Y-%m-%d",
	})
	if err != nil {
		t.Fatal("unable to render:", err)
	}

	// Decode the output.
	type node struct {
		Path             string      `yaml:"path"`
		Name             string      `yaml:"name"`
		Type             string      `yaml:"type"`
		Extension        string      `yaml:"ext"`
		Depth            int         `yaml:"depth"`
		Children         []*node     `yaml:"children"`
		Size             interface{} `yaml:"size"`
		ModificationTime interface{} `yaml:"mtime"`
	}
	var root node
	if err := yaml.Unmarshal([]byte(rendered), &root); err != nil {
		t.Fatal("unable to decode output:", err)
	}

	// Verify structure.
	if root.Path != "." || root.Name != "project" || root.Type != "directory" || root.Depth != 0 {
		t.Error("root node mismatch:", root.Path, root.Name, root.Type, root.Depth)
	}
	if root.Size != nil || root.ModificationTime != nil {
		t.Error("unknown root metadata not rendered as null")
	}
	if len(root.Children) != 1 || len(root.Children[0].Children) != 1 {
		t.Fatal("unexpected tree shape")
	}
	main := root.Children[0].Children[0]
	if main.Path != "src/main.py" || main.Extension != ".py" || main.Depth != 2 {
		t.Error("file node mismatch:", main.Path, main.Extension, main.Depth)
	}
	if main.Size != 123 {
		t.Error("size mismatch:", main.Size)
	}
	if main.ModificationTime != "2026-01-02" {
		t.Error("modification time mismatch:", main.ModificationTime)
	}
	if main.Children == nil || len(main.Children) != 0 {
		t.Error("file children not rendered as empty sequence")
	}

	// Verify key order.
	var previous int
	for _, key := range []string{"path:", "name:", "type:", "ext:", "depth:", "children:", "size:", "mtime:"} {
		index := strings.Index(rendered, key)
		if index < previous {
			t.Errorf("key %s out of order", key)
		}
		previous = index
	}
}

func TestYAMLOmitsUnrequestedMetadata(t *testing.T) {
	rendered, err := Render(nestedFixture(123), FormatYAML, nil)
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	if strings.Contains(rendered, "size:") || strings.Contains(rendered, "mtime:") {
		t.Error("unrequested metadata present:", rendered)
	}
	if strings.HasSuffix(rendered, "\n") {
		t.Error("output has trailing newline")
	}
}

func TestYAMLQuotesAmbiguousScalars(t *testing.T) {
	root := directory(".", "project", 0,
		file("true", "true", 1, ""),
		file("007", "007", 1, ""),
	)
	rendered, err := Render(model(root), FormatYAML, nil)
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	var decoded struct {
		Children []struct {
			Name string `yaml:"name"`
		} `yaml:"children"`
	}
	if err := yaml.Unmarshal([]byte(rendered), &decoded); err != nil {
		t.Fatal("unable to decode output:", err)
	}
	if len(decoded.Children) != 2 || decoded.Children[0].Name != "true" || decoded.Children[1].Name != "007" {
		t.Error("names did not round-trip:", rendered)
	}
}
