package microauthz

import "testing"

func TestCondition_eval_Leaves(t *testing.T) {
	ctx := NewContext()

	tr := True()
	if ok, err := tr.eval(ctx, modeStrict); err != nil || !ok {
		t.Errorf("True().eval() = %v, %v, want true, nil", ok, err)
	}

	fl := False()
	if ok, err := fl.eval(ctx, modeStrict); err != nil || ok {
		t.Errorf("False().eval() = %v, %v, want false, nil", ok, err)
	}
}

func TestCondition_eval_EqualsNotEquals(t *testing.T) {
	ctx := NewContext(KV{Key: "role", Value: String("admin")})

	eq := Equals("role", String("admin"))
	if ok, err := eq.eval(ctx, modeStrict); err != nil || !ok {
		t.Errorf("Equals match = %v, %v, want true, nil", ok, err)
	}

	neq := NotEquals("role", String("admin"))
	if ok, err := neq.eval(ctx, modeStrict); err != nil || ok {
		t.Errorf("NotEquals on matching value = %v, %v, want false, nil", ok, err)
	}

	neq2 := NotEquals("role", String("guest"))
	if ok, err := neq2.eval(ctx, modeStrict); err != nil || !ok {
		t.Errorf("NotEquals on differing value = %v, %v, want true, nil", ok, err)
	}
}

func TestCondition_eval_MissingAttribute_Strict(t *testing.T) {
	ctx := NewContext()
	cond := Equals("role", String("admin"))

	_, err := cond.eval(ctx, modeStrict)
	if err == nil {
		t.Fatal("expected AttributeMissingError, got nil")
	}
	if _, ok := err.(*AttributeMissingError); !ok {
		t.Errorf("error type = %T, want *AttributeMissingError", err)
	}
}

func TestCondition_eval_MissingAttribute_IgnoreAndSkip(t *testing.T) {
	ctx := NewContext()
	cond := Equals("role", String("admin"))

	ok, err := cond.eval(ctx, modeIgnoreAndSkip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("missing attribute under ignore-and-skip should evaluate false")
	}
}

func TestCondition_eval_NotEquals_MissingAttribute_StillErrors(t *testing.T) {
	ctx := NewContext()
	cond := NotEquals("role", String("admin"))

	_, err := cond.eval(ctx, modeStrict)
	if _, ok := err.(*AttributeMissingError); !ok {
		t.Errorf("NotEquals on missing attribute: error = %v, want *AttributeMissingError", err)
	}
}

func TestCondition_eval_And_ShortCircuits(t *testing.T) {
	ctx := NewContext(KV{Key: "a", Value: Bool(false)})

	// Equals("b", ...) would error (missing attribute); if the right side
	// were evaluated despite the false left side, this test would fail
	// with an error instead of (false, nil).
	cond := And(Equals("a", Bool(true)), Equals("b", Bool(true)))

	ok, err := cond.eval(ctx, modeStrict)
	if err != nil {
		t.Fatalf("unexpected error, right side must not have been evaluated: %v", err)
	}
	if ok {
		t.Error("And with false left side should be false")
	}
}

func TestCondition_eval_Or_ShortCircuits(t *testing.T) {
	ctx := NewContext(KV{Key: "a", Value: Bool(true)})

	cond := Or(Equals("a", Bool(true)), Equals("b", Bool(true)))

	ok, err := cond.eval(ctx, modeStrict)
	if err != nil {
		t.Fatalf("unexpected error, right side must not have been evaluated: %v", err)
	}
	if !ok {
		t.Error("Or with true left side should be true")
	}
}

func TestCondition_eval_And_Or_Not_Combinations(t *testing.T) {
	ctx := NewContext(
		KV{Key: "a", Value: Bool(true)},
		KV{Key: "b", Value: Bool(false)},
	)

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{"and both true", And(True(), True()), true},
		{"and one false", And(Equals("a", Bool(true)), Equals("b", Bool(true))), false},
		{"or one true", Or(Equals("a", Bool(true)), Equals("b", Bool(true))), true},
		{"or both false", Or(False(), Equals("b", Bool(true))), false},
		{"not true is false", Not(True()), false},
		{"not false is true", Not(False()), true},
		{"nested and-or", And(Equals("a", Bool(true)), Or(Equals("b", Bool(true)), True())), true},
		{"double negation", Not(Not(Equals("a", Bool(true)))), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cond.eval(ctx, modeStrict)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("eval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCondition_Depth(t *testing.T) {
	tests := []struct {
		name string
		cond Condition
		want int
	}{
		{"bare leaf", True(), 1},
		{"single and", And(True(), False()), 2},
		{"not of leaf", Not(True()), 2},
		{"deeper left", And(And(True(), False()), True()), 3},
		{"deeper right", And(True(), And(True(), False())), 3},
		{"deep chain of not", Not(Not(Not(True()))), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Depth(); got != tt.want {
				t.Errorf("Depth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCondition_maxStringLen(t *testing.T) {
	cond := And(
		Equals("short", String("x")),
		Equals("a-much-longer-attribute-name", String("y")),
	)
	want := len("a-much-longer-attribute-name")
	if got := cond.maxStringLen(); got != want {
		t.Errorf("maxStringLen() = %d, want %d", got, want)
	}
}

func TestCondition_eval_DeepButWithinCapacity(t *testing.T) {
	ctx := NewContext()
	cond := True()
	for i := 0; i < 100; i++ {
		cond = Not(cond)
	}

	ok, err := cond.eval(ctx, modeStrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 100 negations of true: even count -> true.
	if !ok {
		t.Error("eval() = false, want true after 100 negations")
	}
}
