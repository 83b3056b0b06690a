package check

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, MediaPlaylistContentType, cfg.ExpectedContentType)
	assert.Equal(t, 1, cfg.StaleWarningAfter)
	assert.Equal(t, 2, cfg.StaleErrorAfter)
	assert.Equal(t, uint64(1), cfg.BenignSegmentTrim)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
stale_warning_after: 3
stale_error_after: 5
benign_segment_trim: 0
`))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.StaleWarningAfter)
	assert.Equal(t, 5, cfg.StaleErrorAfter)
	assert.Equal(t, uint64(0), cfg.BenignSegmentTrim)
	assert.Equal(t, MediaPlaylistContentType, cfg.ExpectedContentType,
		"unset keys keep their defaults")
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "inverted thresholds", yaml: "stale_warning_after: 5\nstale_error_after: 2\n"},
		{name: "blank content type", yaml: `expected_content_type: ""`},
		{name: "malformed yaml", yaml: "stale_warning_after: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}
