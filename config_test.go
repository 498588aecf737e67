package microauthz

import "testing"

func TestDefaultPolicyConfig(t *testing.T) {
	cfg := DefaultPolicyConfig()

	if cfg.MaxRules != 1024 {
		t.Errorf("MaxRules = %d, want 1024", cfg.MaxRules)
	}
	if cfg.MaxConditionDepth != 32 {
		t.Errorf("MaxConditionDepth = %d, want 32", cfg.MaxConditionDepth)
	}
	if cfg.MaxContextEntries != 256 {
		t.Errorf("MaxContextEntries = %d, want 256", cfg.MaxContextEntries)
	}
	if cfg.MaxStringLength != 4096 {
		t.Errorf("MaxStringLength = %d, want 4096", cfg.MaxStringLength)
	}
	if cfg.MissingAttributeMode != ModeStrict {
		t.Errorf("MissingAttributeMode = %v, want ModeStrict", cfg.MissingAttributeMode)
	}
}
