package configfile

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/microauthz/microauthz"
)

// LoadPolicyConfig reads a PolicyConfig from path (YAML), overlaid by
// MICROAUTHZ_-prefixed environment variables, validates it, and returns
// the resulting microauthz.PolicyConfig. If path is empty, only
// environment variables and defaults apply.
//
// Example:
//
//	cfg, err := configfile.LoadPolicyConfig("policy-config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	policy, err := microauthz.NewPolicyBuilder().Config(cfg).Rule(...).Build()
func LoadPolicyConfig(path string) (microauthz.PolicyConfig, error) {
	v := viper.New()

	d := defaultFileConfig()
	v.SetDefault("max_rules", d.MaxRules)
	v.SetDefault("max_condition_depth", d.MaxConditionDepth)
	v.SetDefault("max_context_entries", d.MaxContextEntries)
	v.SetDefault("max_string_length", d.MaxStringLength)
	v.SetDefault("missing_attribute_mode", d.MissingAttributeMode)

	v.SetEnvPrefix("MICROAUTHZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return microauthz.PolicyConfig{}, fmt.Errorf("configfile: read config file: %w", err)
		}
	}

	var fc FileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return microauthz.PolicyConfig{}, fmt.Errorf("configfile: unmarshal config: %w", err)
	}

	if err := validateFileConfig(&fc); err != nil {
		return microauthz.PolicyConfig{}, fmt.Errorf("configfile: validation failed: %w", err)
	}

	return fc.toPolicyConfig()
}
