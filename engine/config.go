// Package engine implements the multi-pattern substring replacement engine.
//
// The engine coordinates four parts:
//   - Cluster builder: groups patterns into prefix clusters keyed by their
//     shortest member (the anchor), once per compilation
//   - Candidate scanner: probes the text at the cursor by anchor length and
//     enumerates the patterns actually present there
//   - Selector: the caller-supplied (or predefined) policy picking zero or
//     one candidate, with an optional advance override
//   - Driver: the left-to-right control loop tying scanning, selection and
//     output accumulation together with a guaranteed minimum advance of 1
//
// An optional Aho-Corasick prefilter over the anchors lets the driver
// bulk-copy stretches of input that provably cannot start any candidate;
// it never changes observable output.
package engine

// Config controls engine behavior.
//
// Example:
//
//	config := engine.DefaultConfig()
//	config.EnablePrefilter = false // probe every position
//	e := engine.New(rules, config)
type Config struct {
	// EnablePrefilter enables the Aho-Corasick anchor prefilter.
	// When false, the driver probes every position individually.
	// Default: true
	EnablePrefilter bool

	// MinPrefilterAnchors is the minimum number of clusters required
	// before the prefilter is built. Building an automaton for one or two
	// anchors costs more than it saves on short inputs.
	// Default: 4
	MinPrefilterAnchors int
}

// DefaultConfig returns a configuration with sensible defaults: prefilter
// enabled once a rule set produces at least four clusters.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:     true,
		MinPrefilterAnchors: 4,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - MinPrefilterAnchors: 1 to 100,000 (only checked when the prefilter
//     is enabled)
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MinPrefilterAnchors < 1 || c.MinPrefilterAnchors > 100_000 {
			return &ConfigError{
				Field:   "MinPrefilterAnchors",
				Message: "must be between 1 and 100,000",
			}
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "replacer: invalid config: " + e.Field + ": " + e.Message
}
