package recurrence_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rqa/metric"
	"github.com/katalvlaran/rqa/recurrence"
	"github.com/katalvlaran/rqa/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed returns a metric that ignores its inputs and reports d.
func fixed(d float64) metric.Metric {
	return metric.MetricFunc(func(_, _ []float64, _, _, _, _ int) float64 { return d })
}

// absDiff is the univariate |a[i]-b[j]| stub.
var absDiff = metric.MetricFunc(func(a, b []float64, _, _, ia, ib int) float64 {
	return math.Abs(a[ia] - b[ib])
})

// TestStandard_Predicate checks d ≤ t with an inclusive boundary.
func TestStandard_Predicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d, t float64
		want bool
	}{
		{0, 0, true},
		{0.4, 0.5, true},
		{0.5, 0.5, true},
		{0.5000001, 0.5, false},
		{3, 0.5, false},
	}
	for _, tc := range tests {
		r, err := recurrence.New(recurrence.Standard, fixed(tc.d), recurrence.Scalar(tc.t))
		require.NoError(t, err)
		assert.Equalf(t, tc.want, r.Compute(nil, nil, 1, 1, 0, 0), "d=%v t=%v", tc.d, tc.t)
	}
}

// TestCorridor_Predicate checks min ≤ d ≤ max with both ends inclusive.
func TestCorridor_Predicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		d        float64
		min, max float64
		want     bool
	}{
		{"below", 0.05, 0.1, 0.5, false},
		{"at min", 0.1, 0.1, 0.5, true},
		{"inside", 0.3, 0.1, 0.5, true},
		{"at max", 0.5, 0.1, 0.5, true},
		{"above", 0.6, 0.1, 0.5, false},
		{"identical points excluded", 0, 0.1, 0.5, false},
		{"reversed bounds never recur", 0.3, 0.5, 0.1, false},
		{"reversed bounds at edge", 0.5, 0.5, 0.1, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, err := recurrence.New(recurrence.Corridor, fixed(tc.d), recurrence.Pair(tc.min, tc.max))
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.Compute(nil, nil, 1, 1, 0, 0))
		})
	}
}

// TestJRP_SelfDistances verifies that JRP compares each series with itself
// and conjoins both decisions.
func TestJRP_SelfDistances(t *testing.T) {
	t.Parallel()

	a := []float64{0, 0.1, 5}
	b := []float64{10, 10.25, 10}

	// Scalar: tx = ty = 0.2.
	r, err := recurrence.New(recurrence.JRP, absDiff, recurrence.Scalar(0.2))
	require.NoError(t, err)
	assert.False(t, r.Compute(a, b, 1, 1, 0, 1), "b only recurs within 0.25")
	assert.False(t, r.Compute(a, b, 1, 1, 0, 2), "a does not recur")
	assert.True(t, r.Compute(a, b, 1, 1, 0, 0))

	// Pair: tx = 0.2 for a, ty = 0.3 for b.
	r, err = recurrence.New(recurrence.JRP, absDiff, recurrence.Pair(0.2, 0.3))
	require.NoError(t, err)
	assert.True(t, r.Compute(a, b, 1, 1, 0, 1))
	assert.False(t, r.Compute(a, b, 1, 1, 1, 2))

	// Never a cross comparison: a and b are 10 apart everywhere.
	assert.True(t, r.Compute(a, b, 1, 1, 0, 0))
}

// TestJRP_MatchesConjoinedStandard checks the scalar JRP property on all pairs.
func TestJRP_MatchesConjoinedStandard(t *testing.T) {
	t.Parallel()

	a := []float64{0, 0.3, 0.1, 0.9, 0.2}
	b := []float64{1, 0.2, 0.8, 0.7, 1.1}
	const th = 0.25

	jrp, err := recurrence.New(recurrence.JRP, absDiff, recurrence.Scalar(th))
	require.NoError(t, err)
	std, err := recurrence.New(recurrence.Standard, absDiff, recurrence.Scalar(th))
	require.NoError(t, err)

	for i := range a {
		for j := range a {
			want := std.Compute(a, a, 1, 1, i, j) && std.Compute(b, b, 1, 1, i, j)
			assert.Equalf(t, want, jrp.Compute(a, b, 1, 1, i, j), "i=%d j=%d", i, j)
		}
	}
}

// TestNew_InvalidConfiguration covers every construction failure.
func TestNew_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy recurrence.Policy
		m      metric.Metric
		th     recurrence.Threshold
	}{
		{"standard with pair", recurrence.Standard, metric.Euclidean{}, recurrence.Pair(0.1, 0.2)},
		{"corridor with scalar", recurrence.Corridor, metric.Euclidean{}, recurrence.Scalar(0.1)},
		{"nil metric", recurrence.Standard, nil, recurrence.Scalar(0.1)},
		{"unknown policy", recurrence.Policy(42), metric.Euclidean{}, recurrence.Scalar(0.1)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := recurrence.New(tc.policy, tc.m, tc.th)
			require.ErrorIs(t, err, recurrence.ErrInvalidConfiguration)
		})
	}
}

// TestNewFromConfig parses untyped thresholds for each policy.
func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		policy  recurrence.Policy
		value   any
		wantErr bool
	}{
		{"standard float", recurrence.Standard, 0.5, false},
		{"standard int", recurrence.Standard, 1, false},
		{"standard list", recurrence.Standard, []float64{0.1, 0.2}, true},
		{"corridor list", recurrence.Corridor, []any{0.1, 0.5}, false},
		{"corridor array", recurrence.Corridor, [2]float64{0.1, 0.5}, false},
		{"corridor scalar", recurrence.Corridor, 0.5, true},
		{"corridor three", recurrence.Corridor, []float64{0.1, 0.2, 0.3}, true},
		{"corridor one", recurrence.Corridor, []float64{0.1}, true},
		{"jrp scalar", recurrence.JRP, float32(0.5), false},
		{"jrp pair", recurrence.JRP, []int{1, 2}, false},
		{"jrp three", recurrence.JRP, []float64{1, 2, 3}, true},
		{"string", recurrence.Standard, "0.5", true},
		{"nil", recurrence.Standard, nil, true},
		{"negative", recurrence.Standard, -0.1, true},
		{"nan", recurrence.Standard, math.NaN(), true},
		{"non-numeric element", recurrence.JRP, []any{0.1, "x"}, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, err := recurrence.NewFromConfig(tc.policy, metric.Euclidean{}, tc.value)
			if tc.wantErr {
				require.ErrorIs(t, err, recurrence.ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.policy, r.Policy())
		})
	}
}

// TestThresholds reports bound values per policy.
func TestThresholds(t *testing.T) {
	r, err := recurrence.New(recurrence.JRP, metric.Euclidean{}, recurrence.Scalar(0.3))
	require.NoError(t, err)
	tx, ty := r.Thresholds()
	assert.Equal(t, 0.3, tx)
	assert.Equal(t, 0.3, ty)

	r, err = recurrence.New(recurrence.Corridor, metric.Euclidean{}, recurrence.Pair(0.1, 0.4))
	require.NoError(t, err)
	lo, hi := r.Thresholds()
	assert.Equal(t, 0.1, lo)
	assert.Equal(t, 0.4, hi)
	assert.Equal(t, "[0.1 0.4]", recurrence.Pair(0.1, 0.4).String())
}

// TestParsePolicy resolves names.
func TestParsePolicy(t *testing.T) {
	for name, want := range map[string]recurrence.Policy{
		"standard": recurrence.Standard,
		"Corridor": recurrence.Corridor,
		" JRP ":    recurrence.JRP,
	} {
		got, err := recurrence.ParsePolicy(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, want.String(), got.String())
	}
	_, err := recurrence.ParsePolicy("diagonal")
	require.ErrorIs(t, err, recurrence.ErrInvalidConfiguration)
}

// TestRecurs_EqualValues is the end-to-end scenario: A = [0,1,0,1,0],
// Standard with 0.5, |A[i]-A[j]| metric ⇒ recurrence iff equal values.
func TestRecurs_EqualValues(t *testing.T) {
	t.Parallel()

	x, err := series.New([]float64{0, 1, 0, 1, 0})
	require.NoError(t, err)
	r, err := recurrence.New(recurrence.Standard, absDiff, recurrence.Scalar(0.5))
	require.NoError(t, err)

	vals := x.Values()
	for i := 0; i < x.Len(); i++ {
		for j := 0; j < x.Len(); j++ {
			assert.Equalf(t, vals[i] == vals[j], r.Recurs(x, x, i, j), "i=%d j=%d", i, j)
		}
	}
}

// TestCheck: JRP needs equal lengths, cross recurrence does not, and the
// zero-value Rule is rejected.
func TestCheck(t *testing.T) {
	t.Parallel()

	long, err := series.New([]float64{0, 1, 0, 1, 0})
	require.NoError(t, err)
	short, err := series.New([]float64{0, 1, 0})
	require.NoError(t, err)

	jrp, err := recurrence.New(recurrence.JRP, metric.Euclidean{}, recurrence.Scalar(0.5))
	require.NoError(t, err)
	std, err := recurrence.New(recurrence.Standard, metric.Euclidean{}, recurrence.Scalar(0.5))
	require.NoError(t, err)

	assert.NoError(t, jrp.Check(long, long))
	assert.NoError(t, std.Check(long, short))
	assert.ErrorIs(t, jrp.Check(long, short), recurrence.ErrLengthMismatch)
	assert.ErrorIs(t, jrp.Check(short, long), recurrence.ErrLengthMismatch)
	assert.ErrorIs(t, recurrence.Rule{}.Check(long, long), recurrence.ErrInvalidConfiguration)
}
