package microauthz

// MissingAttributeMode selects how Condition evaluation treats a context
// attribute that a Equals/NotEquals leaf references but the request does
// not carry.
//
// The default, ModeStrict, surfaces this as AttributeMissingError,
// propagated up to the caller of Evaluate/EvaluateWithStats — this is the
// conservative, audit-friendly choice spec.md fixes as the core's default.
// ModeIgnoreAndSkip, selected explicitly at Policy construction, instead
// treats the whole condition as false ("condition does not match", even
// under a Not) so the rule does not match, and continues
// evaluating the rest of the rule set. See spec.md §4.3/§9's open question
// and DESIGN.md for why both are implemented.
type MissingAttributeMode int

const (
	// ModeStrict surfaces a missing attribute as an evaluation error. This
	// is the default.
	ModeStrict MissingAttributeMode = iota
	// ModeIgnoreAndSkip treats a missing attribute as a non-matching
	// condition: the rule that holds it does not match.
	ModeIgnoreAndSkip
)

// PolicyConfig bounds the construction and evaluation of a Policy. Defaults
// (DefaultPolicyConfig) are conservative: generous enough for realistic
// rule sets, small enough to keep evaluation cost predictable.
type PolicyConfig struct {
	// MaxRules bounds how many rules a single Policy may hold.
	MaxRules int
	// MaxConditionDepth bounds the depth of any rule's Condition tree (a
	// bare leaf has depth 1).
	MaxConditionDepth int
	// MaxContextEntries bounds how many (key, Value) bindings a Request's
	// Context may carry.
	MaxContextEntries int
	// MaxStringLength bounds, in bytes, any string literal in a Matcher or
	// Condition leaf.
	MaxStringLength int
	// MissingAttributeMode selects strict (default) vs. ignore-and-skip
	// handling of a missing context attribute during Condition evaluation.
	MissingAttributeMode MissingAttributeMode
}

// DefaultPolicyConfig returns the engine's conservative default bounds:
//
//   - MaxRules: 1024
//   - MaxConditionDepth: 32
//   - MaxContextEntries: 256
//   - MaxStringLength: 4096 bytes
//   - MissingAttributeMode: ModeStrict
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		MaxRules:             1024,
		MaxConditionDepth:    32,
		MaxContextEntries:    256,
		MaxStringLength:      4096,
		MissingAttributeMode: ModeStrict,
	}
}
