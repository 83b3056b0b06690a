package check

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MediaPlaylistContentType is the Content-Type a media playlist
// response is expected to carry.
const MediaPlaylistContentType = "application/vnd.apple.mpegurl"

// Config carries the alerting thresholds of a checker. The zero value
// is not usable; start from DefaultConfig.
type Config struct {
	// ExpectedContentType is the exact Content-Type required of the
	// first playlist response.
	ExpectedContentType string `yaml:"expected_content_type"`

	// StaleWarningAfter is the number of consecutive exchanges
	// without forward progress above which staleness is reported at
	// warning severity.
	StaleWarningAfter int `yaml:"stale_warning_after"`

	// StaleErrorAfter is the count above which staleness escalates
	// to error severity.
	StaleErrorAfter int `yaml:"stale_error_after"`

	// BenignSegmentTrim is the largest number of live-edge segments
	// whose removal is reported at warning rather than error
	// severity.
	BenignSegmentTrim uint64 `yaml:"benign_segment_trim"`
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		ExpectedContentType: MediaPlaylistContentType,
		StaleWarningAfter:   1,
		StaleErrorAfter:     2,
		BenignSegmentTrim:   1,
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.ExpectedContentType == "" {
		return fmt.Errorf("check: expected_content_type required")
	}
	if c.StaleWarningAfter < 0 {
		return fmt.Errorf("check: stale_warning_after must be >= 0")
	}
	if c.StaleErrorAfter < c.StaleWarningAfter {
		return fmt.Errorf("check: stale_error_after must be >= stale_warning_after")
	}
	return nil
}

// LoadConfig reads YAML from r over the defaults and validates the
// result.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("check: read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("check: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
