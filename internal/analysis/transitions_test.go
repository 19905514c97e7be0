package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testThreshold = 0.5

// makeSquare builds an ideal square wave: each period starts with offLen
// zero samples followed by (period-offLen) one samples.
func makeSquare(period, offLen, n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		if i%period >= offLen {
			buf[i] = 1
		}
	}
	return buf
}

func TestTransitions_IdealSquare(t *testing.T) {
	const (
		period  = 100
		offLen  = 50
		periods = 20
	)
	buf := makeSquare(period, offLen, period*periods)

	t.Run("rising", func(t *testing.T) {
		mean, std, count := Transitions(buf, testThreshold, RisingEdge)
		assert.Equal(t, periods, count)
		assert.InDelta(t, float64(period), mean, 1e-12)
		assert.InDelta(t, 0.0, std, 1e-12)
	})

	t.Run("falling", func(t *testing.T) {
		mean, std, count := Transitions(buf, testThreshold, FallingEdge)
		// The first period starts low, so there is one fewer falling edge.
		assert.Equal(t, periods-1, count)
		assert.InDelta(t, float64(period), mean, 1e-12)
		assert.InDelta(t, 0.0, std, 1e-12)
	})
}

func TestTransitions_CrossingIndex(t *testing.T) {
	// Crossing is recorded at the second sample of the pair: 0->1 at index
	// 2 and 1->0 at index 5 give a single rising and a single falling edge.
	buf := []float64{0, 0, 1, 1, 1, 0, 0}

	_, _, rising := Transitions(buf, testThreshold, RisingEdge)
	assert.Equal(t, 1, rising)

	_, _, falling := Transitions(buf, testThreshold, FallingEdge)
	assert.Equal(t, 1, falling)
}

func TestTransitions_VaryingGaps(t *testing.T) {
	// Rising edges at 10, 30, 60: gaps of 20 and 30 samples.
	buf := make([]float64, 80)
	for _, i := range []int{10, 30, 60} {
		buf[i] = 1
	}

	mean, std, count := Transitions(buf, testThreshold, RisingEdge)
	assert.Equal(t, 3, count)
	assert.InDelta(t, 25.0, mean, 1e-12)
	// Population std of {20, 30} is 5.
	assert.InDelta(t, 5.0, std, 1e-12)
}

func TestTransitions_FewerThanTwoCrossings(t *testing.T) {
	tests := []struct {
		name      string
		buf       []float64
		edge      Edge
		wantCount int
	}{
		{"empty", nil, RisingEdge, 0},
		{"single_sample", []float64{1}, RisingEdge, 0},
		{"flat_low", make([]float64, 100), RisingEdge, 0},
		{"single_step_up", []float64{0, 0, 1, 1}, RisingEdge, 1},
		{"single_step_up_no_falling", []float64{0, 0, 1, 1}, FallingEdge, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, count := Transitions(tt.buf, testThreshold, tt.edge)
			assert.Equal(t, tt.wantCount, count)
			assert.Zero(t, mean)
			assert.Zero(t, std)
		})
	}
}

func TestTransitions_ThresholdBoundary(t *testing.T) {
	// Rising requires prev < threshold and cur >= threshold: a sample
	// exactly at the threshold counts as crossed.
	buf := []float64{0, testThreshold, 0}

	_, _, rising := Transitions(buf, testThreshold, RisingEdge)
	assert.Equal(t, 1, rising)

	// Falling requires prev > threshold: starting exactly at the threshold
	// does not cross.
	_, _, falling := Transitions(buf, testThreshold, FallingEdge)
	assert.Equal(t, 0, falling)
}
