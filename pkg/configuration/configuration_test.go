package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/path2map/path2map/pkg/mapping/core"
	"github.com/path2map/path2map/pkg/mapping/render"
)

const (
	testConfigurationGibberish = "[a+1a4"
	testConfigurationValid     = `output:
  type: json
  path: maps
scan:
  maxDepth: 3
  symlinks: follow
ignore:
  noDefaults: true
  file: custom.ignore
  patterns:
    - "\\.log$"
filters:
  - "^src/"
display:
  sort: true
  emojis: true
  color: never
  theme: ocean
  details: size,mtime
  timeFormat: "%Y-%m-%d"
  sizeFormat: decimal
  detailsStyle: columns
`
	testConfigurationUnknownKey      = "display:\n  colour: never\n"
	testConfigurationInvalidEnum     = "output:\n  type: xml\n"
	testConfigurationNegativeDepth   = "scan:\n  maxDepth: -1\n"
	testConfigurationInvalidTime     = "display:\n  timeFormat: \"%Y-%\"\n"
	testConfigurationInvalidSymlinks = "scan:\n  symlinks: portable\n"
)

// writeConfiguration writes configuration content to a temporary file and
// returns its path.
func writeConfiguration(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), GlobalConfigurationName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal("unable to write configuration:", err)
	}
	return path
}

func TestLoadNonExistent(t *testing.T) {
	if _, err := Load("/this/does/not/exist"); !os.IsNotExist(err) {
		t.Error("expected non-existence error, got:", err)
	}
	if c, err := LoadOptional("/this/does/not/exist"); err != nil {
		t.Error("optional load from non-existent path failed:", err)
	} else if c == nil {
		t.Error("optional load from non-existent path returned nil configuration")
	}
}

func TestLoadEmpty(t *testing.T) {
	if c, err := Load(writeConfiguration(t, "")); err != nil {
		t.Error("load from empty file failed:", err)
	} else if c == nil {
		t.Error("load from empty file returned nil configuration")
	}
}

func TestLoadInvalid(t *testing.T) {
	testCases := []string{
		testConfigurationGibberish,
		testConfigurationUnknownKey,
		testConfigurationInvalidEnum,
		testConfigurationNegativeDepth,
		testConfigurationInvalidTime,
		testConfigurationInvalidSymlinks,
	}

	for i, content := range testCases {
		if _, err := Load(writeConfiguration(t, content)); err == nil {
			t.Errorf("test index %d: load succeeded unexpectedly", i)
		}
	}
}

func TestLoadValid(t *testing.T) {
	c, err := Load(writeConfiguration(t, testConfigurationValid))
	if err != nil {
		t.Fatal("load from valid configuration failed:", err)
	}
	if c.Output.Type != render.FormatJSON || c.Output.Path != "maps" || c.Output.Stdout {
		t.Error("output settings mismatch:", c.Output)
	}
	if c.Scan.MaximumDepth == nil || *c.Scan.MaximumDepth != 3 {
		t.Error("maximum depth mismatch")
	}
	if c.Scan.Symlinks != core.SymbolicLinkModeFollow {
		t.Error("symbolic link mode mismatch:", c.Scan.Symlinks)
	}
	if !c.Ignore.NoDefaults || c.Ignore.NoFile || c.Ignore.File != "custom.ignore" {
		t.Error("ignore settings mismatch:", c.Ignore)
	}
	if len(c.Ignore.Patterns) != 1 || c.Ignore.Patterns[0] != `\.log$` {
		t.Error("ignore patterns mismatch:", c.Ignore.Patterns)
	}
	if len(c.Filters) != 1 || c.Filters[0] != "^src/" {
		t.Error("filters mismatch:", c.Filters)
	}
	if !c.Display.Sort || !c.Display.Emojis || c.Display.FoldersOnly || c.Display.Comments {
		t.Error("display switches mismatch:", c.Display)
	}
	if c.Display.Color != render.ColorModeNever || c.Display.Theme != render.ThemeOcean {
		t.Error("color settings mismatch")
	}
	if c.Display.Details != render.DetailsSizeAndModificationTime || c.Display.TimeFormat != "%Y-%m-%d" {
		t.Error("details settings mismatch")
	}
	if c.Display.SizeFormat != render.SizeFormatDecimal || c.Display.DetailsStyle != render.DetailsStyleColumns {
		t.Error("details formatting mismatch")
	}
}

func TestMerge(t *testing.T) {
	lowerDepth, higherDepth := 2, 5
	lower := &Configuration{}
	lower.Output.Type = render.FormatCSV
	lower.Output.Path = "lower"
	lower.Scan.MaximumDepth = &lowerDepth
	lower.Scan.Symlinks = core.SymbolicLinkModeSkip
	lower.Ignore.Patterns = []string{"a"}
	lower.Filters = []string{"x"}
	lower.Display.Sort = true
	lower.Display.Theme = render.ThemeMono
	higher := &Configuration{}
	higher.Output.Type = render.FormatHTML
	higher.Scan.MaximumDepth = &higherDepth
	higher.Ignore.Patterns = []string{"b"}
	higher.Display.Emojis = true
	higher.Display.TimeFormat = "%H:%M"

	merged := Merge(lower, higher)
	if merged.Output.Type != render.FormatHTML || merged.Output.Path != "lower" {
		t.Error("output settings not merged correctly:", merged.Output)
	}
	if merged.Scan.MaximumDepth == nil || *merged.Scan.MaximumDepth != 5 {
		t.Error("maximum depth not overridden")
	}
	if merged.Scan.Symlinks != core.SymbolicLinkModeSkip {
		t.Error("unspecified symbolic link mode overrode lower setting")
	}
	if len(merged.Ignore.Patterns) != 2 || merged.Ignore.Patterns[0] != "a" || merged.Ignore.Patterns[1] != "b" {
		t.Error("ignore patterns not concatenated:", merged.Ignore.Patterns)
	}
	if len(merged.Filters) != 1 || merged.Filters[0] != "x" {
		t.Error("filters not preserved:", merged.Filters)
	}
	if !merged.Display.Sort || !merged.Display.Emojis || merged.Display.Theme != render.ThemeMono {
		t.Error("display settings not merged correctly:", merged.Display)
	}
	if merged.Display.TimeFormat != "%H:%M" {
		t.Error("time format not overridden")
	}
	if len(lower.Ignore.Patterns) != 1 {
		t.Error("merge modified its input")
	}
}

func TestMergeNil(t *testing.T) {
	if Merge(nil, nil) == nil {
		t.Error("merge of nil configurations returned nil")
	}
	single := &Configuration{}
	single.Display.Sort = true
	if merged := Merge(nil, single); !merged.Display.Sort || merged == single {
		t.Error("merge with nil lower configuration incorrect")
	}
	if merged := Merge(single, nil); !merged.Display.Sort || merged == single {
		t.Error("merge with nil higher configuration incorrect")
	}
}
