package microauthz

import (
	"io"
	"log/slog"
)

// discardLogger is the zero-value logging destination used when a
// PolicyBuilder is not given one explicitly — build-time diagnostics are
// opt-in, never required, and never touch the evaluation path.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// PolicyBuilder accumulates Rules and an optional PolicyConfig, then
// validates and freezes them into an immutable Policy via Build. A
// PolicyBuilder is not safe for concurrent use; build one Policy per
// builder on a single goroutine, then share the resulting *Policy freely.
type PolicyBuilder struct {
	rules  []Rule
	cfg    PolicyConfig
	cfgSet bool
	logger *slog.Logger
}

// NewPolicyBuilder returns an empty PolicyBuilder. Its Policy, once built,
// uses DefaultPolicyConfig unless Config is called first.
func NewPolicyBuilder() *PolicyBuilder {
	return &PolicyBuilder{}
}

// Rule appends r to the builder's rule list, preserving declaration order
// — the order Policy.Evaluate honors per spec.md §3 invariant 4.
func (b *PolicyBuilder) Rule(r Rule) *PolicyBuilder {
	b.rules = append(b.rules, r)
	return b
}

// Config sets the PolicyConfig bounds the built Policy will enforce. The
// last call to Config before Build wins.
func (b *PolicyBuilder) Config(cfg PolicyConfig) *PolicyBuilder {
	b.cfg = cfg
	b.cfgSet = true
	return b
}

// Logger attaches a structured logger for build-time diagnostics (rule
// counts, validation failures). It is never consulted during evaluation. A
// nil logger, or no call to Logger at all, discards these diagnostics.
func (b *PolicyBuilder) Logger(logger *slog.Logger) *PolicyBuilder {
	b.logger = logger
	return b
}

// Build validates the accumulated rules against the builder's
// PolicyConfig and, on success, returns an immutable Policy. Validation is
// total and deterministic: it scans rules in declaration order and reports
// the first violation.
func (b *PolicyBuilder) Build() (*Policy, error) {
	logger := b.logger
	if logger == nil {
		logger = discardLogger
	}

	cfg := DefaultPolicyConfig()
	if b.cfgSet {
		cfg = b.cfg
	}

	if cfg.MaxConditionDepth > evalStackCap {
		logger.Warn("policy build rejected: MaxConditionDepth exceeds evaluator capacity", "max_condition_depth", cfg.MaxConditionDepth, "cap", evalStackCap)
		return nil, &InvalidPolicyConfigError{Field: "MaxConditionDepth", Value: cfg.MaxConditionDepth, Limit: evalStackCap}
	}

	if len(b.rules) > cfg.MaxRules {
		logger.Warn("policy build rejected: too many rules", "count", len(b.rules), "max", cfg.MaxRules)
		return nil, &TooManyRulesError{Count: len(b.rules), Max: cfg.MaxRules}
	}

	lastDenyIndex := -1
	exactTargets := make([]bool, len(b.rules))
	for i, r := range b.rules {
		if r.Reason.isReserved() {
			logger.Warn("policy build rejected: reserved reason code", "rule_index", i, "reason", uint32(r.Reason))
			return nil, &InvalidReasonCodeError{RuleIndex: i, Reason: r.Reason}
		}

		cond := r.effectiveCondition()
		if depth := cond.Depth(); depth > cfg.MaxConditionDepth {
			logger.Warn("policy build rejected: condition too deep", "rule_index", i, "depth", depth, "max", cfg.MaxConditionDepth)
			return nil, &ConditionTooDeepError{RuleIndex: i, Depth: depth, Max: cfg.MaxConditionDepth}
		}

		if n := r.maxLiteralLen(); n > cfg.MaxStringLength {
			logger.Warn("policy build rejected: string too long", "rule_index", i, "len", n, "max", cfg.MaxStringLength)
			return nil, &StringTooLongError{RuleIndex: i, Len: n, Max: cfg.MaxStringLength}
		}

		if r.Effect == Deny {
			lastDenyIndex = i
		}
		exactTargets[i] = r.Target.isAllExact()
	}

	rules := make([]Rule, len(b.rules))
	copy(rules, b.rules)

	logger.Info("policy built", "rules", len(rules), "max_rules", cfg.MaxRules, "max_condition_depth", cfg.MaxConditionDepth)

	return &Policy{
		rules:         rules,
		config:        cfg,
		lastDenyIndex: lastDenyIndex,
		exactTargets:  exactTargets,
	}, nil
}
