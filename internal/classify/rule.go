package classify

import (
	"regexp"
	"strings"
)

// Matcher reports whether a lower-cased question satisfies a rule.
type Matcher func(q string) bool

// Rule pairs a matcher with the label it assigns.
type Rule[L ~string] struct {
	Label L
	Match Matcher
}

// FirstMatch evaluates rules in order and returns the label of the first
// rule that matches, or def when none do.
func FirstMatch[L ~string](rules []Rule[L], q string, def L) L {
	if l, ok := firstMatch(rules, q); ok {
		return l
	}
	return def
}

func firstMatch[L ~string](rules []Rule[L], q string) (L, bool) {
	for _, r := range rules {
		if r.Match(q) {
			return r.Label, true
		}
	}
	var zero L
	return zero, false
}

func hasPrefix(prefixes ...string) Matcher {
	return func(q string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(q, p) {
				return true
			}
		}
		return false
	}
}

func containsAny(phrases ...string) Matcher {
	return func(q string) bool {
		for _, p := range phrases {
			if strings.Contains(q, p) {
				return true
			}
		}
		return false
	}
}

func containsAll(phrases ...string) Matcher {
	return func(q string) bool {
		for _, p := range phrases {
			if !strings.Contains(q, p) {
				return false
			}
		}
		return true
	}
}

func matches(re *regexp.Regexp) Matcher {
	return re.MatchString
}

func anyOf(ms ...Matcher) Matcher {
	return func(q string) bool {
		for _, m := range ms {
			if m(q) {
				return true
			}
		}
		return false
	}
}
