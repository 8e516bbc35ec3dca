package data

import (
	"strings"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
)

// FilterChecks narrows checks by a case-insensitive substring over the code,
// customer name, customer phone and operator name. A missing field never
// matches. An empty search returns the input unchanged.
func FilterChecks(checks []api.Check, search string) []api.Check {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return checks
	}

	out := make([]api.Check, 0, len(checks))
	for _, c := range checks {
		if matchesCheck(c, needle) {
			out = append(out, c)
		}
	}
	return out
}

func matchesCheck(c api.Check, needle string) bool {
	if contains(c.Code, needle) || contains(c.CustomerName, needle) || contains(c.CustomerPhone, needle) {
		return true
	}
	if c.Operator != nil && (contains(c.Operator.FullName, needle) || contains(c.Operator.Username, needle)) {
		return true
	}
	return false
}

func contains(haystack, needle string) bool {
	if haystack == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}
