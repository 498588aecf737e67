// Package configfile loads microauthz.PolicyConfig bounds from a YAML file
// and/or environment variables, for embedders that want their engine's
// limits operator-tunable without a recompile. It deliberately does not
// load Rules: rule sets are Go-native closed sum types (microauthz.Target,
// microauthz.Condition) with no generic file encoding, so embedders
// construct those with microauthz.PolicyBuilder in code. See DESIGN.md.
package configfile

import (
	"fmt"

	"github.com/microauthz/microauthz"
)

// FileConfig is the on-disk/env shape of a PolicyConfig. Field names use
// snake_case in YAML and SCREAMING_SNAKE_CASE (under the MICROAUTHZ_
// prefix) as environment variables, matching the convention Sentinel
// Gate's own config package uses for its OSSConfig.
type FileConfig struct {
	MaxRules             int    `yaml:"max_rules" mapstructure:"max_rules" validate:"gte=1"`
	MaxConditionDepth    int    `yaml:"max_condition_depth" mapstructure:"max_condition_depth" validate:"gte=1"`
	MaxContextEntries    int    `yaml:"max_context_entries" mapstructure:"max_context_entries" validate:"gte=0"`
	MaxStringLength      int    `yaml:"max_string_length" mapstructure:"max_string_length" validate:"gte=1"`
	MissingAttributeMode string `yaml:"missing_attribute_mode" mapstructure:"missing_attribute_mode" validate:"oneof=strict ignore_and_skip"`
}

// defaultFileConfig mirrors microauthz.DefaultPolicyConfig so that a
// missing config file, or a config file that sets only some fields, still
// produces the engine's conservative defaults for the rest.
func defaultFileConfig() FileConfig {
	d := microauthz.DefaultPolicyConfig()
	return FileConfig{
		MaxRules:             d.MaxRules,
		MaxConditionDepth:    d.MaxConditionDepth,
		MaxContextEntries:    d.MaxContextEntries,
		MaxStringLength:      d.MaxStringLength,
		MissingAttributeMode: "strict",
	}
}

// toPolicyConfig converts a validated FileConfig into a microauthz.PolicyConfig.
func (f FileConfig) toPolicyConfig() (microauthz.PolicyConfig, error) {
	var mode microauthz.MissingAttributeMode
	switch f.MissingAttributeMode {
	case "strict":
		mode = microauthz.ModeStrict
	case "ignore_and_skip":
		mode = microauthz.ModeIgnoreAndSkip
	default:
		// Unreachable once validation has run; kept defensive since
		// toPolicyConfig is unexported but not otherwise guarded.
		return microauthz.PolicyConfig{}, fmt.Errorf("configfile: unknown missing_attribute_mode %q", f.MissingAttributeMode)
	}
	return microauthz.PolicyConfig{
		MaxRules:             f.MaxRules,
		MaxConditionDepth:    f.MaxConditionDepth,
		MaxContextEntries:    f.MaxContextEntries,
		MaxStringLength:      f.MaxStringLength,
		MissingAttributeMode: mode,
	}, nil
}
