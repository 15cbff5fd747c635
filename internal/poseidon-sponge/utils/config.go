package utils

import "fmt"

// Config represents the configuration for a Poseidon hashing session
type Config struct {
	// Sponge parameters
	Rate     int    // Field elements absorbed or squeezed per block
	Schedule string // Parameter schedule family ("standard", "weights", or a registered name)

	// Digest parameters
	Outputs int // Number of digest elements squeezed by one-shot helpers
}

// DefaultConfig returns the default hashing configuration
func DefaultConfig() *Config {
	return &Config{
		Rate:     2,
		Schedule: "standard",
		Outputs:  1,
	}
}

// Validate checks if the configuration is valid. Schedule membership is
// not checked here; unknown schedules surface at parameter lookup.
func (c *Config) Validate() error {
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %d", c.Rate)
	}

	if c.Schedule == "" {
		return fmt.Errorf("schedule must not be empty")
	}

	if c.Outputs <= 0 {
		return fmt.Errorf("outputs must be positive, got %d", c.Outputs)
	}

	return nil
}

// WithRate sets the sponge rate
func (c *Config) WithRate(rate int) *Config {
	c.Rate = rate
	return c
}

// WithSchedule sets the parameter schedule
func (c *Config) WithSchedule(schedule string) *Config {
	c.Schedule = schedule
	return c
}

// WithOutputs sets the number of digest elements
func (c *Config) WithOutputs(outputs int) *Config {
	c.Outputs = outputs
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	return &Config{
		Rate:     c.Rate,
		Schedule: c.Schedule,
		Outputs:  c.Outputs,
	}
}
