package render

import (
	"strings"
	"testing"
)

func TestHTMLDocumentStructure(t *testing.T) {
	rendered, err := Render(nestedFixture(10), FormatHTML, nil)
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	if !strings.HasPrefix(rendered, "<!doctype html>\n") {
		t.Error("document does not start with doctype")
	}
	if !strings.HasSuffix(rendered, "</body>\n</html>") {
		t.Error("document not terminated correctly")
	}
	expected := strings.Join([]string{
		"<body>",
		`<ul class="tree">`,
		"  <li>",
		`    <details open><summary class="node">project</summary>`,
		"      <ul>",
		"        <li>",
		`          <details open><summary class="node">src</summary>`,
		"            <ul>",
		`              <li><span class="node">main.py</span></li>`,
		"            </ul>",
		"          </details>",
		"        </li>",
		"      </ul>",
		"    </details>",
		"  </li>",
		"</ul>",
		"</body>",
	}, "\n")
	if !strings.Contains(rendered, expected) {
		t.Errorf("tree markup mismatch:\n%s", rendered)
	}
}

func TestHTMLDetailsAndEscaping(t *testing.T) {
	model := nestedFixture(10)
	model.Root.Children[0].Name = "<src>"
	rendered, err := Render(model, FormatHTML, &Options{
		Details:    DetailsSizeAndModificationTime,
		TimeFormat: "%Y-%m-%d",
	})
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	if !strings.Contains(rendered, "&lt;src&gt;") {
		t.Error("label not escaped")
	}
	if !strings.Contains(rendered, "main.py (10 B, 2026-01-02)") {
		t.Error("details missing")
	}
}

func TestHTMLOptions(t *testing.T) {
	testCases := []struct {
		options *Options
		present []string
		absent  []string
	}{
		{&Options{Comments: true}, []string{`<li><span class="node">docs [Empty folder]</span></li>`}, nil},
		{&Options{FoldersOnly: true}, []string{`<li><span class="node">src</span></li>`}, []string{"main.py", "z.txt"}},
		{&Options{Emojis: true}, []string{"📁 project", "📄 z.txt"}, nil},
	}

	for i, testCase := range testCases {
		rendered, err := Render(treeFixture(), FormatHTML, testCase.options)
		if err != nil {
			t.Errorf("test index %d: unable to render: %v", i, err)
			continue
		}
		for _, fragment := range testCase.present {
			if !strings.Contains(rendered, fragment) {
				t.Errorf("test index %d: output missing %q", i, fragment)
			}
		}
		for _, fragment := range testCase.absent {
			if strings.Contains(rendered, fragment) {
				t.Errorf("test index %d: output unexpectedly contains %q", i, fragment)
			}
		}
	}
}

func TestHTMLRenderingIsDeterministic(t *testing.T) {
	options := &Options{Sort: true, Comments: true}
	first, err := Render(treeFixture(), FormatHTML, options)
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	second, err := Render(treeFixture(), FormatHTML, options)
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	if first != second {
		t.Error("rendering is not deterministic")
	}
}
