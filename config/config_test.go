package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rqa/config"
	"github.com/katalvlaran/rqa/metric"
	"github.com/katalvlaran/rqa/microstate"
	"github.com/katalvlaran/rqa/recurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "standard", cfg.Policy)
	assert.Equal(t, "euclidean", cfg.Metric)
	assert.Equal(t, config.DefaultThreshold, cfg.Threshold)
	assert.Equal(t, []int{3, 1}, cfg.Shape)

	a, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, recurrence.Standard, a.Rule.Policy())
	assert.Equal(t, microstate.LaminarityShape, a.Shape)
	assert.Empty(t, a.Microstate)
}

func TestParse_Corridor(t *testing.T) {
	cfg, err := config.Parse([]byte(`
policy: corridor
metric: manhattan
threshold: [0.1, 0.5]
shape: [2, 2]
samples: 100
seed: 9
workers: 4
`))
	require.NoError(t, err)

	a, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, recurrence.Corridor, a.Rule.Policy())
	assert.IsType(t, metric.Manhattan{}, a.Rule.Metric())
	lo, hi := a.Rule.Thresholds()
	assert.Equal(t, 0.1, lo)
	assert.Equal(t, 0.5, hi)
	assert.Equal(t, microstate.Shape{Rows: 2, Cols: 2}, a.Shape)
	assert.Len(t, a.Microstate, 3)
}

func TestParse_IntegerThreshold(t *testing.T) {
	cfg, err := config.Parse([]byte("policy: jrp\nthreshold: 1\n"))
	require.NoError(t, err)

	a, err := cfg.Resolve()
	require.NoError(t, err)
	tx, ty := a.Rule.Thresholds()
	assert.Equal(t, 1.0, tx)
	assert.Equal(t, 1.0, ty)
	assert.False(t, a.Threshold.IsPair())
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"corridor scalar", "policy: corridor\nthreshold: 0.5\n", recurrence.ErrInvalidConfiguration},
		{"standard pair", "threshold: [0.1, 0.2]\n", recurrence.ErrInvalidConfiguration},
		{"three elements", "policy: jrp\nthreshold: [0.1, 0.2, 0.3]\n", recurrence.ErrInvalidConfiguration},
		{"string threshold", "threshold: wide\n", recurrence.ErrInvalidConfiguration},
		{"unknown policy", "policy: diagonal\n", recurrence.ErrInvalidConfiguration},
		{"unknown metric", "metric: cosine\n", metric.ErrUnknownMetric},
		{"bad shape", "shape: [0, 1]\n", microstate.ErrBadShape},
		{"negative samples", "samples: -1\n", config.ErrInvalid},
		{"negative workers", "workers: -2\n", config.ErrInvalid},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.Parse([]byte(tc.yaml))
			require.NoError(t, err)
			_, err = cfg.Resolve()
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rqa.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 0.25\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Threshold)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.Parse([]byte("policy: [unclosed\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}
