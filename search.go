package analysis

import (
	"fmt"
	"regexp"
)

// SearchByDescription returns the transactions whose description matches the
// pattern, preserving input order. The pattern is a regular expression and is
// matched case-insensitively; callers that want a literal substring match must
// escape metacharacters themselves (regexp.QuoteMeta).
//
// An uncompilable pattern fails the whole call: no partial results.
func SearchByDescription(transactions []Transaction, pattern string) ([]Transaction, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		Log().Info().Str("pattern", pattern).Err(err).Msg("search rejected")
		return nil, fmt.Errorf("%w: bad search pattern %q: %v", ErrInvalidInput, pattern, err)
	}

	matches := make([]Transaction, 0)
	for _, t := range transactions {
		if t.Description == "" {
			continue
		}
		if re.MatchString(t.Description) {
			matches = append(matches, t)
		}
	}
	return matches, nil
}
