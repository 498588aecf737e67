package microauthz

// Policy is an immutable, validated, ordered list of Rules plus the
// PolicyConfig that bounded its construction. Once built, rules cannot be
// added, removed, or reordered. A Policy is safe for concurrent use by
// many goroutines: evaluation mutates only stack-local state, per
// spec.md §5.
type Policy struct {
	rules  []Rule
	config PolicyConfig

	// lastDenyIndex is the declaration-order index of the last Deny rule
	// in rules, or -1 if the policy has none. It lets Evaluate stop
	// scanning as soon as a matching Allow is recorded and no unprocessed
	// rule could still contain a Deny that would override it. Such an Allow
	// already fixes the decision, so stopping there changes only the
	// rules_checked count (as in spec.md §8 scenario S4), never the
	// decision; a later Deny rule is still reached (§8 scenario S3).
	lastDenyIndex int

	// exactTargets records, per rule, whether its Target is all-Exact.
	// This is introspection only — evaluation order is always declaration
	// order regardless of this field's values.
	exactTargets []bool
}

// Rules returns a copy of p's rules in declaration order.
func (p *Policy) Rules() []Rule {
	cp := make([]Rule, len(p.rules))
	copy(cp, p.rules)
	return cp
}

// RuleCount returns the number of rules in p.
func (p *Policy) RuleCount() int { return len(p.rules) }

// IsExactTargetRule reports whether the rule at declaration-order index i
// has an all-Exact Target (no Any or OneOf matcher). It is introspection
// only: Evaluate always scans rules in declaration order regardless of
// this value. It panics if i is out of range, consistent with slice
// indexing elsewhere in this package.
func (p *Policy) IsExactTargetRule(i int) bool { return p.exactTargets[i] }

// Config returns the PolicyConfig bounds p was built with.
func (p *Policy) Config() PolicyConfig { return p.config }

// Evaluate matches req against p's rules in declaration order and returns
// the resulting Decision under deny-overrides-allow conflict resolution.
// See EvaluateWithStats to additionally receive EvaluationStats.
func (p *Policy) Evaluate(req Request) (Decision, error) {
	d, _, err := p.evaluate(req)
	return d, err
}

// EvaluateWithStats behaves like Evaluate but additionally reports how
// much work the evaluation did.
func (p *Policy) EvaluateWithStats(req Request) (Decision, EvaluationStats, error) {
	return p.evaluate(req)
}

func (p *Policy) evaluate(req Request) (Decision, EvaluationStats, error) {
	var stats EvaluationStats

	if req.Context.Len() > p.config.MaxContextEntries {
		return Decision{}, stats, &ContextTooLargeError{Max: p.config.MaxContextEntries}
	}

	internalMode := modeStrict
	if p.config.MissingAttributeMode == ModeIgnoreAndSkip {
		internalMode = modeIgnoreAndSkip
	}

	var (
		firstDenySet, firstAllowSet bool
		firstDenyReason             ReasonCode
		firstAllowReason            ReasonCode
	)

	for i := range p.rules {
		rule := &p.rules[i]
		stats.incRulesChecked()

		if !rule.Target.Matches(req) {
			continue
		}

		matched := true
		if rule.Condition != nil {
			stats.incConditionEvals()
			ok, err := rule.Condition.eval(req.Context, internalMode)
			if err != nil {
				return Decision{}, stats, err
			}
			matched = ok
		}
		if !matched {
			continue
		}

		switch rule.Effect {
		case Deny:
			if !firstDenySet {
				firstDenySet = true
				firstDenyReason = rule.Reason
			}
			// Deny is terminal under deny-overrides-allow: no later rule
			// can change the outcome.
			return Decision{Effect: Deny, Reason: firstDenyReason}, stats, nil
		case Allow:
			if !firstAllowSet {
				firstAllowSet = true
				firstAllowReason = rule.Reason
			}
			if i >= p.lastDenyIndex {
				// No unprocessed rule can be a Deny; the outcome is fixed.
				return Decision{Effect: Allow, Reason: firstAllowReason}, stats, nil
			}
		}
	}

	if firstAllowSet {
		return Decision{Effect: Allow, Reason: firstAllowReason}, stats, nil
	}
	return Decision{Effect: Deny, Reason: NoMatchingRule}, stats, nil
}
