// =============================================================================
// POS Report Processor - Dish Name Cleaner
// =============================================================================
//
// Normalizes the dish-name column of the merged report. Kitchen staff key
// dish names in by hand, so the raw values carry portion counts, shorthand
// ("W/", "&"), stray punctuation, and inconsistent casing. The cleanup is
// an explicit, ordered rule set loaded from configuration rather than
// hard-coded, because the rules change whenever the menu system does.
//
// =============================================================================

package cleaner

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ginjaninja78/pos-report-processor/internal/config"
)

// Cleaner applies a configured rule set to dish-name values.
type Cleaner struct {
	rules config.CleaningRules
}

// New creates a Cleaner for the given rule set.
func New(rules config.CleaningRules) *Cleaner {
	return &Cleaner{rules: rules}
}

// Clean normalizes a single dish name. Stages run in a fixed order:
// character stripping, literal replacements, digit removal, case folding,
// whitespace collapsing. Each stage is a no-op when disabled.
func (c *Cleaner) Clean(text string) string {
	if text == "" {
		return ""
	}

	for _, ch := range c.rules.StripChars {
		text = strings.ReplaceAll(text, string(ch), "")
	}

	for _, r := range c.rules.Replacements {
		if r.Find == "" {
			continue
		}
		text = strings.ReplaceAll(text, r.Find, r.Replace)
	}

	if enabled(c.rules.StripDigits) {
		text = strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) {
				return -1
			}
			return r
		}, text)
	}

	if enabled(c.rules.Uppercase) {
		text = strings.ToUpper(text)
	}

	if enabled(c.rules.CollapseWhitespace) {
		text = strings.Join(strings.Fields(text), " ")
	}

	return text
}

// Describe returns one human-readable line per active rule, in the order
// the rules are applied. Used by the `rules` command.
func (c *Cleaner) Describe() []string {
	var lines []string

	for _, ch := range c.rules.StripChars {
		lines = append(lines, fmt.Sprintf("strip character %q", string(ch)))
	}
	for _, r := range c.rules.Replacements {
		if r.Find == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("replace %q with %q", r.Find, r.Replace))
	}
	if enabled(c.rules.StripDigits) {
		lines = append(lines, "strip decimal digits")
	}
	if enabled(c.rules.Uppercase) {
		lines = append(lines, "convert to upper case")
	}
	if enabled(c.rules.CollapseWhitespace) {
		lines = append(lines, "collapse whitespace and trim")
	}

	return lines
}

// enabled treats an unset switch as off; config defaults decide the rest.
func enabled(b *bool) bool {
	return b != nil && *b
}
