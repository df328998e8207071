package ignore

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/path2map/path2map/pkg/logging"
	"github.com/path2map/path2map/pkg/mapping/core"
)

// Configuration encodes the settings for all exclusion stages.
type Configuration struct {
	// DisableDefaults disables the built-in default patterns.
	DisableDefaults bool
	// DisableRulesFile disables loading of the rules file.
	DisableRulesFile bool
	// RulesFilePath overrides the rules file location. If empty, the rules
	// file is looked up in the scan root.
	RulesFilePath string
	// CLIIgnore is a comma-separated list of regular expressions.
	CLIIgnore string
}

// EnsureValid ensures that the configuration is valid. It doesn't access the
// filesystem.
func (c *Configuration) EnsureValid() error {
	// A nil configuration is not considered valid.
	if c == nil {
		return errors.New("nil configuration")
	}

	// Ensure that the command line expressions compile.
	if _, err := CompileCLIPatterns(c.CLIIgnore); err != nil {
		return err
	}

	// Success.
	return nil
}

// ShouldIgnore indicates whether or not an entry is excluded by the exclusion
// stages: default patterns (if useDefaults is set), then rules (last match
// wins), then command line expressions (matched anywhere in the path).
// Evaluation stops at the first stage that excludes the entry.
func ShouldIgnore(entry core.PathEntry, useDefaults bool, rules *RuleSet, expressions []*regexp.Regexp) bool {
	path := core.NormalizePath(entry.Path)
	if useDefaults && matchesDefault(path, entry.Directory) {
		return true
	}
	if rules != nil && rules.ignored(path, entry.Directory) {
		return true
	}
	return matchesAny(expressions, path)
}

// Ignorer applies all exclusion stages for a particular scan root.
type Ignorer struct {
	// useDefaults indicates whether or not default patterns are applied.
	useDefaults bool
	// rules are the parsed rules file rules.
	rules *RuleSet
	// expressions are the compiled command line expressions.
	expressions []*regexp.Regexp
}

// NewIgnorer creates a new ignorer for the specified (resolved) scan root,
// loading the rules file unless disabled. A missing rules file yields no
// rules, though a missing override file is logged.
func NewIgnorer(scanRoot string, configuration *Configuration, logger *logging.Logger) (*Ignorer, error) {
	// Validate the configuration.
	if err := configuration.EnsureValid(); err != nil {
		return nil, fmt.Errorf("invalid ignore configuration: %w", err)
	}

	// Compile command line expressions.
	expressions, err := CompileCLIPatterns(configuration.CLIIgnore)
	if err != nil {
		return nil, err
	}

	// Load rules.
	var rules []Rule
	if !configuration.DisableRulesFile {
		path := RulesPath(scanRoot, configuration.RulesFilePath)
		if rules, err = LoadRules(scanRoot, configuration.RulesFilePath); err != nil {
			return nil, err
		} else if configuration.RulesFilePath != "" {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				logger.Warnf("Ignore file %s does not exist", path)
			}
		}
		logger.Debugf("Loaded %d rules from %s", len(rules), path)
	}
	// Success.
	return &Ignorer{
		useDefaults: !configuration.DisableDefaults,
		rules:       NewRuleSet(rules),
		expressions: expressions,
	}, nil
}

// Ignored indicates whether or not the ignorer excludes the specified entry.
func (i *Ignorer) Ignored(entry core.PathEntry) bool {
	path := core.NormalizePath(entry.Path)
	if i.useDefaults && matchesDefault(path, entry.Directory) {
		return true
	} else if i.rules.ignored(path, entry.Directory) {
		return true
	}
	return matchesAny(i.expressions, path)
}

// Filter returns the entries that aren't excluded, preserving order.
func (i *Ignorer) Filter(entries []core.PathEntry) []core.PathEntry {
	result := make([]core.PathEntry, 0, len(entries))
	for _, entry := range entries {
		if !i.Ignored(entry) {
			result = append(result, entry)
		}
	}
	return result
}
