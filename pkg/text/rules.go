package text

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// ReplacementRule defines a single ordered literal substitution
type ReplacementRule struct {
	// FromText is the text to replace
	FromText string

	// ToText is the replacement text
	ToText string

	// FileFilterGlob is a glob pattern restricting which file paths the rule applies to
	FileFilterGlob string
}

// ValidateRules checks that all rules carry the required fields
func ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.FileFilterGlob == "" {
			return errors.Errorf("rule %d: file_filter_glob is required", i)
		}
	}
	return nil
}

// FilterRulesForPath returns the rules whose FileFilterGlob matches path.
// Paths are normalized to forward slashes before matching.
func FilterRulesForPath(rules []ReplacementRule, path string) ([]ReplacementRule, error) {
	slashed := filepath.ToSlash(path)

	var matched []ReplacementRule
	for i, rule := range rules {
		ok, err := doublestar.Match(rule.FileFilterGlob, slashed)
		if err != nil {
			return nil, errors.Errorf("rule %d: matching glob %q: %w", i, rule.FileFilterGlob, err)
		}
		if ok {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}
