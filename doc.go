// Package microauthz is a small, auditable micro-policy engine.
//
// Given a (principal, action, resource, context) request, a built Policy
// returns a deterministic binary Decision — Allow or Deny — plus a stable
// reason code identifying the rule that produced it. Every evaluation
// terminates in bounded time, is byte-identical for byte-identical inputs,
// and never panics.
//
// A Policy is built once, via PolicyBuilder, and is immutable and safe for
// concurrent use afterward:
//
//	pol, err := microauthz.NewPolicyBuilder().
//		Rule(microauthz.Rule{
//			Effect: microauthz.Allow,
//			Target: microauthz.Target{
//				Principal: microauthz.Exact("alice"),
//				Action:    microauthz.Exact("read"),
//				Resource:  microauthz.Exact("doc"),
//			},
//			Reason: 7,
//		}).
//		Build()
//	if err != nil {
//		// handle build-time validation failure
//	}
//
//	req := microauthz.NewRequest("alice", "read", "doc")
//	decision, err := pol.Evaluate(req)
//
// The engine itself never performs network or file I/O, never loads rules
// dynamically, and never recurses on the Go call stack while evaluating a
// Condition — see Condition and PolicyConfig for the bounds that make this
// provable rather than merely likely.
package microauthz
