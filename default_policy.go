package microauthz

// defaultDenyReason is the ReasonCode attached to the single Deny rule a
// DefaultDenyAllPolicy holds.
const defaultDenyReason ReasonCode = 0

// DefaultDenyAllPolicy returns a Policy that denies every request,
// regardless of Principal, Action, or Resource. It is a convenience for
// embedders that want a safe starting point — "nothing is authorized
// until rules say otherwise" — without hand-assembling a PolicyBuilder
// call for the common case. The returned Policy is built under cfg; a
// caller that only wants the bounds, not the specific rule, can still use
// DefaultPolicyConfig() directly with their own PolicyBuilder.
//
// The single Deny rule this builds has an implicit True() condition (depth
// 1) and no string literals, so it can only ever fail MaxRules or
// MaxConditionDepth — including both bounds' zero values in a
// caller-supplied PolicyConfig{}, and a MaxConditionDepth above the
// evaluator's work-stack capacity. Both are raised to at least 1, and
// MaxConditionDepth is capped at that capacity, before Build is called, so
// DefaultDenyAllPolicy never panics regardless of what cfg a caller passes.
func DefaultDenyAllPolicy(cfg PolicyConfig) *Policy {
	if cfg.MaxRules < 1 {
		cfg.MaxRules = 1
	}
	if cfg.MaxConditionDepth < 1 {
		cfg.MaxConditionDepth = 1
	}
	if cfg.MaxConditionDepth > evalStackCap {
		cfg.MaxConditionDepth = evalStackCap
	}
	policy, err := NewPolicyBuilder().
		Config(cfg).
		Rule(DenyRule(AnyTarget(), defaultDenyReason)).
		Build()
	if err != nil {
		// Unreachable: MaxRules and MaxConditionDepth are both at least 1
		// above, MaxConditionDepth is at most evalStackCap, and a single Deny
		// rule with AnyTarget() can never violate MaxStringLength.
		panic("microauthz: DefaultDenyAllPolicy: " + err.Error())
	}
	return policy
}
