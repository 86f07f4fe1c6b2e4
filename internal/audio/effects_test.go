package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmplify(t *testing.T) {
	tests := []struct {
		name     string
		factor   float64
		expected float64
	}{
		{"unity", 1.0, 0.4},
		{"default", 1.5, 0.6},
		{"double", 2.0, 0.8},
		{"half", 0.5, 0.2},
		{"silent", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := collect(amplify(&constStreamer{value: 0.4, n: 300}, tt.factor))
			require.Len(t, out, 300)
			for _, s := range out {
				assert.InDelta(t, tt.expected, s[0], 1e-9)
				assert.InDelta(t, tt.expected, s[1], 1e-9)
			}
		})
	}
}

func TestAmplify_UnityIsPassthrough(t *testing.T) {
	s := &constStreamer{value: 1, n: 1}
	assert.Same(t, s, amplify(s, 1))
}

func TestFadeIn_LinearRamp(t *testing.T) {
	out := collect(newFadeIn(&constStreamer{value: 1, n: 400}, 200))
	require.Len(t, out, 400)

	assert.Equal(t, 0.0, out[0][0])
	assert.InDelta(t, 0.25, out[50][0], 1e-9)
	assert.InDelta(t, 0.5, out[100][1], 1e-9)
	assert.InDelta(t, 0.995, out[199][0], 1e-9)
	for _, s := range out[200:] {
		assert.Equal(t, 1.0, s[0])
	}
}

func TestFadeIn_AcrossStreamCalls(t *testing.T) {
	// collect pulls 100 frames per call, so the ramp spans several calls
	out := collect(newFadeIn(&constStreamer{value: 1, n: 300}, 250))
	for i := 1; i < 250; i++ {
		assert.Greater(t, out[i][0], out[i-1][0], "sample %d", i)
	}
	assert.Equal(t, 1.0, out[250][0])
}

func TestFadeIn_LongerThanStream(t *testing.T) {
	out := collect(newFadeIn(&constStreamer{value: 1, n: 100}, 1000))
	require.Len(t, out, 100)
	assert.InDelta(t, 0.099, out[99][0], 1e-9, "ramp never completes")
}

func TestFadeIn_ZeroLengthIsPassthrough(t *testing.T) {
	s := &constStreamer{value: 1, n: 1}
	assert.Same(t, s, newFadeIn(s, 0))
}
