package ignore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/path2map/path2map/pkg/mapping/core"
)

const (
	// RulesFileName is the name of the rules file looked up in the scan root.
	RulesFileName = ".p2mignore"
)

// Rule is a single rules file entry.
type Rule struct {
	// Pattern is the glob pattern, without any negation prefix.
	Pattern string
	// Negated indicates whether or not the rule re-includes matching paths.
	Negated bool
}

// ParseRules parses rules file content. Lines are trimmed, blank lines and
// lines starting with "#" are skipped, and a leading "!" marks a negated rule.
// A negation with no pattern is dropped. Patterns can't be malformed, since
// characters that don't form wildcard syntax match literally.
func ParseRules(r io.Reader) ([]Rule, error) {
	scanner := bufio.NewScanner(r)
	var rules []Rule
	for scanner.Scan() {
		// Trim the line and skip blanks and comments.
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Handle negation.
		rule := Rule{Pattern: line}
		if strings.HasPrefix(line, "!") {
			rule.Pattern = strings.TrimSpace(line[1:])
			rule.Negated = true
			if rule.Pattern == "" {
				continue
			}
		}

		// Record the rule.
		rules = append(rules, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read rules: %w", err)
	}
	return rules, nil
}

// RulesPath computes the rules file path for a scan root, honoring an override
// path if one is specified.
func RulesPath(scanRoot, overridePath string) string {
	if overridePath != "" {
		return overridePath
	}
	return filepath.Join(scanRoot, RulesFileName)
}

// LoadRules loads rules from the rules file for the specified scan root (or
// from overridePath if it's non-empty). A missing rules file yields no rules.
func LoadRules(scanRoot, overridePath string) ([]Rule, error) {
	// Open the rules file.
	file, err := os.Open(RulesPath(scanRoot, overridePath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to open rules file: %w", err)
	}
	defer file.Close()

	// Parse the rules.
	rules, err := ParseRules(file)
	if err != nil {
		return nil, fmt.Errorf("unable to parse rules file: %w", err)
	}
	return rules, nil
}

// RuleSet is a parsed list of rules, evaluated in order with the last matching
// rule winning.
type RuleSet struct {
	// rules are the parsed rules. Rules whose patterns can never match are
	// omitted.
	rules []parsedRule
	// negatedCount is the number of negated rules in the set.
	negatedCount int
}

// parsedRule is a rule with its parsed pattern.
type parsedRule struct {
	*pattern
	// negated indicates whether or not the rule is negated.
	negated bool
}

// NewRuleSet parses a list of rules.
func NewRuleSet(rules []Rule) *RuleSet {
	result := &RuleSet{}
	for _, rule := range rules {
		p := parsePattern(rule.Pattern)
		if p == nil {
			continue
		}
		result.rules = append(result.rules, parsedRule{p, rule.Negated})
		if rule.Negated {
			result.negatedCount++
		}
	}
	return result
}

// Ignored indicates whether or not the rules exclude a root-relative path. A
// nil rule set excludes nothing.
func (s *RuleSet) Ignored(path string, directory bool) bool {
	if s == nil {
		return false
	}
	return s.ignored(core.NormalizePath(path), directory)
}

// ignored is the implementation of Ignored for normalized paths.
func (s *RuleSet) ignored(path string, directory bool) bool {
	var ignored bool
	negatedRemaining := s.negatedCount
	for _, rule := range s.rules {
		// If we're already ignored and no negated rules remain, then nothing
		// can change the outcome.
		if ignored && negatedRemaining == 0 {
			break
		}
		if rule.negated {
			negatedRemaining--
		}

		// Skip rules that can't change the current state.
		if rule.negated != ignored {
			continue
		}

		// Update the state if the rule matches.
		if rule.matches(path, directory) {
			ignored = !rule.negated
		}
	}
	return ignored
}
