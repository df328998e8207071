package render

import (
	"strings"
	"testing"

	"github.com/path2map/path2map/pkg/mapping/core"
)

func TestTextRendering(t *testing.T) {
	testCases := []struct {
		options  *Options
		expected []string
	}{
		{nil, []string{
			"project",
			"├── z.txt",
			"├── docs",
			"└── src",
			"    ├── main.py",
			"    └── readme.md",
		}},
		{&Options{Sort: true}, []string{
			"project",
			"├── docs",
			"├── src",
			"│   ├── main.py",
			"│   └── readme.md",
			"└── z.txt",
		}},
		{&Options{FoldersOnly: true}, []string{
			"project",
			"├── docs",
			"└── src",
		}},
		{&Options{Comments: true}, []string{
			"project",
			"├── z.txt",
			"├── docs [Empty folder]",
			"└── src",
			"    ├── main.py",
			"    └── readme.md",
		}},
		{&Options{Comments: true, FoldersOnly: true}, []string{
			"project",
			"├── docs",
			"└── src",
		}},
		{&Options{Emojis: true, Details: DetailsSizeAndModificationTime, TimeFormat: "%Y-%m-%d"}, []string{
			"📁 project",
			"├── 📄 z.txt",
			"├── 📁 docs",
			"└── 📁 src",
			"    ├── 📄 main.py (12 B, 2026-01-02)",
			"    └── 📄 readme.md",
		}},
		{&Options{Details: DetailsModificationTime}, []string{
			"project",
			"├── z.txt",
			"├── docs",
			"└── src",
			"    ├── main.py (2026-01-02 03:04)",
			"    └── readme.md",
		}},
	}

	for i, testCase := range testCases {
		text, err := Render(treeFixture(), FormatText, testCase.options)
		if err != nil {
			t.Errorf("test index %d: unable to render: %v", i, err)
			continue
		}
		if expected := strings.Join(testCase.expected, "\n"); text != expected {
			t.Errorf("test index %d: output mismatch:\n%s\n!=\n%s", i, text, expected)
		}
	}
}

func TestTextSortDoesNotReorderModel(t *testing.T) {
	model := treeFixture()
	if _, err := Render(model, FormatText, &Options{Sort: true}); err != nil {
		t.Fatal("unable to render:", err)
	}
	if model.Root.Children[0].Name != "z.txt" {
		t.Error("rendering re-ordered model children")
	}
}

func TestTextSizeFormats(t *testing.T) {
	testCases := []struct {
		format   SizeFormat
		expected string
	}{
		{SizeFormatDefault, "main.py (1.5 KiB)"},
		{SizeFormatBinary, "main.py (1.5 KiB)"},
		{SizeFormatDecimal, "main.py (1.5 kB)"},
	}

	for i, testCase := range testCases {
		text, err := Render(nestedFixture(1536), FormatText, &Options{
			Details:    DetailsSize,
			SizeFormat: testCase.format,
		})
		if err != nil {
			t.Errorf("test index %d: unable to render: %v", i, err)
		} else if !strings.Contains(text, testCase.expected) {
			t.Errorf("test index %d: output missing %q:\n%s", i, testCase.expected, text)
		}
	}
}

func TestTextColumnsDetailsStyle(t *testing.T) {
	text, err := Render(nestedFixture(12), FormatText, &Options{
		Details:      DetailsSizeAndModificationTime,
		DetailsStyle: DetailsStyleColumns,
		TimeFormat:   "%Y-%m-%d",
	})
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	expected := strings.Join([]string{
		"project",
		"└── src",
		"    └── main.py  12 B  2026-01-02",
	}, "\n")
	if text != expected {
		t.Errorf("output mismatch:\n%s\n!=\n%s", text, expected)
	}
}

func TestTextColumnsAlignOnDisplayWidth(t *testing.T) {
	root := directory(".", "project", 0,
		withMetadata(file("a.txt", "a.txt", 1, ".txt"), 1),
		withMetadata(file("文書.txt", "文書.txt", 1, ".txt"), 2),
	)
	text, err := Render(model(root), FormatText, &Options{
		Details:      DetailsSize,
		DetailsStyle: DetailsStyleColumns,
	})
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	expected := strings.Join([]string{
		"project",
		"├── a.txt     1 B",
		"└── 文書.txt  2 B",
	}, "\n")
	if text != expected {
		t.Errorf("output mismatch:\n%s\n!=\n%s", text, expected)
	}
}

func TestTextColor(t *testing.T) {
	testCases := []struct {
		options  *Options
		expected bool
	}{
		{&Options{Color: ColorModeAlways}, true},
		{&Options{Color: ColorModeAlways, Theme: ThemeMono}, true},
		{&Options{Color: ColorModeAlways, Theme: ThemeOcean}, true},
		{&Options{Color: ColorModeNever}, false},
		{&Options{Color: ColorModeNever, Terminal: true}, false},
		{&Options{Color: ColorModeAuto}, false},
		{nil, false},
	}

	for i, testCase := range testCases {
		text, err := Render(treeFixture(), FormatText, testCase.options)
		if err != nil {
			t.Errorf("test index %d: unable to render: %v", i, err)
		} else if colored := strings.Contains(text, "\x1b["); colored != testCase.expected {
			t.Errorf("test index %d: colorization mismatch: %t != %t", i, colored, testCase.expected)
		}
	}
}

func TestTextColorAutoRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	text, err := Render(treeFixture(), FormatText, &Options{Color: ColorModeAuto, Terminal: true})
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	if strings.Contains(text, "\x1b[") {
		t.Error("output colorized despite NO_COLOR")
	}
}

func TestTextSymbolicLinks(t *testing.T) {
	link := directory("link", "link", 1)
	link.SymbolicLink = true
	link.SymbolicLinkTarget = ".."
	link.SymbolicLinkCycle = true
	alias := file("alias.txt", "alias.txt", 1, ".txt")
	alias.SymbolicLink = true
	alias.SymbolicLinkTarget = "target.txt"
	root := directory(".", "project", 0, link, alias)

	text, err := Render(model(root), FormatText, &Options{Comments: true})
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	expected := strings.Join([]string{
		"project",
		"├── link -> .. [cycle] [Empty folder]",
		"└── alias.txt -> target.txt",
	}, "\n")
	if text != expected {
		t.Errorf("output mismatch:\n%s\n!=\n%s", text, expected)
	}
}

func TestTextNeutralizesControlCharacters(t *testing.T) {
	root := directory(".", "project", 0, file("evil\x1b[2J.txt", "evil\x1b[2J.txt", 1, ".txt"))
	text, err := Render(model(root), FormatText, nil)
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	if strings.Contains(text, "\x1b") {
		t.Error("control character not neutralized")
	}
	if !strings.Contains(text, "evil^[[2J.txt") {
		t.Error("neutralized name missing:", text)
	}
}

func TestTextRenderingIsDeterministic(t *testing.T) {
	options := &Options{Sort: true, Details: DetailsSizeAndModificationTime, Color: ColorModeAlways}
	first, err := Render(treeFixture(), FormatText, options)
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	second, err := Render(treeFixture(), FormatText, options)
	if err != nil {
		t.Fatal("unable to render:", err)
	}
	if first != second {
		t.Error("rendering is not deterministic")
	}
}

func TestRenderRejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		model   *core.Model
		options *Options
	}{
		{nil, nil},
		{&core.Model{}, nil},
		{treeFixture(), &Options{TimeFormat: "%Y-%"}},
		{treeFixture(), &Options{Details: Details(100)}},
		{treeFixture(), &Options{Theme: Theme(100)}},
	}

	for i, testCase := range testCases {
		for _, format := range []Format{FormatText, FormatMarkdown, FormatJSON, FormatCSV, FormatHTML, FormatYAML} {
			if _, err := Render(testCase.model, format, testCase.options); err == nil {
				t.Errorf("test index %d: %s rendering succeeded unexpectedly", i, format)
			}
		}
	}
}

func TestForUnknownFormat(t *testing.T) {
	if _, err := For(Format(100)); err == nil {
		t.Error("unknown format accepted")
	}
}
