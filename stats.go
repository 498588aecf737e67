package microauthz

// maxUint16 is the saturation ceiling for EvaluationStats counters.
const maxUint16 = ^uint16(0)

// EvaluationStats reports how much work Policy.EvaluateWithStats did for a
// single Request. It is a plain value returned alongside a Decision, not
// shared mutable state — a Policy may be evaluated concurrently from many
// goroutines without any stats races, per spec.md §5.
//
// Counters saturate at their maximum representable value (65535) rather
// than wrapping silently; no realistic PolicyConfig.MaxRules makes this
// reachable, but a single evaluation's total work is always finite and
// provably bounded regardless.
type EvaluationStats struct {
	RulesChecked   uint16
	ConditionEvals uint16
}

// incRulesChecked increments RulesChecked, saturating at maxUint16.
func (s *EvaluationStats) incRulesChecked() {
	if s.RulesChecked < maxUint16 {
		s.RulesChecked++
	}
}

// incConditionEvals increments ConditionEvals, saturating at maxUint16.
func (s *EvaluationStats) incConditionEvals() {
	if s.ConditionEvals < maxUint16 {
		s.ConditionEvals++
	}
}
