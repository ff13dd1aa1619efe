package schema

import (
	"strings"
)

// nameHeaderAliases lists normalized header spellings that hold a full name,
// most specific first.
var nameHeaderAliases = []string{
	"fullname",
	"displayname",
	"personname",
	"employeename",
	"customername",
	"clientname",
	"accountname",
	"name",
	"cn",
}

// headerMatchThreshold is the minimum similarity for a fuzzy header match.
const headerMatchThreshold = 0.85

// ResolveColumn finds the 0-based index of the header that best matches want.
// The lookup cascade is:
//  1. Normalized exact match against want (first occurrence wins)
//  2. When want is itself a full-name alias, any other alias in priority order
//  3. Highest similarity at or above 0.85
//  4. Not found -> (-1, false)
func ResolveColumn(headers []string, want string) (int, bool) {
	target := normalizeHeader(want)
	if target == "" {
		return -1, false
	}

	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	// Step 1: exact
	for i, h := range normalized {
		if h == target {
			return i, true
		}
	}

	// Step 2: alias table
	if isNameAlias(target) {
		for _, alias := range nameHeaderAliases {
			for i, h := range normalized {
				if h == alias {
					return i, true
				}
			}
		}
	}

	// Step 3: fuzzy
	best, bestScore := -1, 0.0
	for i, h := range normalized {
		if score := similarity(target, h); score >= headerMatchThreshold && score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, best >= 0
}

func isNameAlias(normalized string) bool {
	for _, alias := range nameHeaderAliases {
		if alias == normalized {
			return true
		}
	}
	return false
}

// normalizeHeader lowercases a header string and strips whitespace, underscores, hyphens and dots.
func normalizeHeader(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.NewReplacer(" ", "", "_", "", "-", "", ".", "").Replace(s)
}
