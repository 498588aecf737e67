package microauthz

// MatcherKind identifies which variant a Matcher holds.
type MatcherKind int

const (
	// MatchAny matches every string.
	MatchAny MatcherKind = iota
	// MatchExact matches exactly one string, byte-for-byte.
	MatchExact
	// MatchOneOf matches iff the input equals some element of a fixed list.
	MatchOneOf
)

// Matcher is a principal/action/resource matching primitive. It is a closed,
// pure, allocation-free predicate over a single string.
type Matcher struct {
	kind  MatcherKind
	exact string
	oneOf []string
}

// Any returns a Matcher that matches every string.
func Any() Matcher { return Matcher{kind: MatchAny} }

// Exact returns a Matcher that matches exactly s.
func Exact(s string) Matcher { return Matcher{kind: MatchExact, exact: s} }

// OneOf returns a Matcher that matches iff the input equals some element of
// xs. Duplicates are permitted; order is preserved for inspection but does
// not affect the match outcome. An empty list never matches.
func OneOf(xs ...string) Matcher {
	cp := make([]string, len(xs))
	copy(cp, xs)
	return Matcher{kind: MatchOneOf, oneOf: cp}
}

// Kind reports which variant m holds.
func (m Matcher) Kind() MatcherKind { return m.kind }

// ExactValue returns the literal m matches against, valid only when Kind() ==
// MatchExact.
func (m Matcher) ExactValue() string { return m.exact }

// OneOfValues returns the candidate list, valid only when Kind() ==
// MatchOneOf. The returned slice is a copy.
func (m Matcher) OneOfValues() []string {
	cp := make([]string, len(m.oneOf))
	copy(cp, m.oneOf)
	return cp
}

// Matches reports whether s satisfies m.
//
//   - Any matches every string.
//   - Exact(e) matches iff e == s, byte-exact.
//   - OneOf(xs) matches iff some x in xs equals s; it short-circuits on the
//     first hit and reports false for an empty list.
func (m Matcher) Matches(s string) bool {
	switch m.kind {
	case MatchAny:
		return true
	case MatchExact:
		return m.exact == s
	case MatchOneOf:
		for _, x := range m.oneOf {
			if x == s {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// maxLiteralLen returns the longest string literal m carries, for
// PolicyConfig.MaxStringLength enforcement.
func (m Matcher) maxLiteralLen() int {
	switch m.kind {
	case MatchExact:
		return len(m.exact)
	case MatchOneOf:
		max := 0
		for _, x := range m.oneOf {
			if len(x) > max {
				max = len(x)
			}
		}
		return max
	default:
		return 0
	}
}
