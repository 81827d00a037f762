package aptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_qmf_coeffs_are_mirrored(t *testing.T) {
	for i := 0; i < FILTER_TAPS; i++ {
		assert.Equal(t, aptx_qmf_outer_coeffs[0][i], aptx_qmf_outer_coeffs[1][FILTER_TAPS-1-i])
		assert.Equal(t, aptx_qmf_inner_coeffs[0][i], aptx_qmf_inner_coeffs[1][FILTER_TAPS-1-i])
	}
}

func Test_qmf_filter_signal_push(t *testing.T) {
	var signal aptx_filter_signal

	for n := int32(1); n <= 40; n++ {
		aptx_qmf_filter_signal_push(&signal, n)

		// Both halves of the doubled buffer stay identical
		for i := 0; i < FILTER_TAPS; i++ {
			assert.Equal(t, signal.buffer[i], signal.buffer[i+FILTER_TAPS])
		}
	}

	assert.EqualValues(t, 40%FILTER_TAPS, signal.pos)
}

/* Push an impulse through analysis and synthesis back to back: it
 * must come out LATENCY_SAMPLES later, essentially intact. */
func Test_qmf_tree_delay(t *testing.T) {
	var analysis, synthesis aptx_QMF_analysis
	var out []int32

	const impulse_at = 50
	const amplitude = 1 << 22

	for frame := 0; frame < 100; frame++ {
		var samples, subbands, rec [4]int32
		for s := 0; s < 4; s++ {
			if frame*4+s == impulse_at {
				samples[s] = amplitude
			}
		}
		aptx_qmf_tree_analysis(&analysis, &samples, &subbands)
		aptx_qmf_tree_synthesis(&synthesis, &subbands, &rec)
		out = append(out, rec[:]...)
	}

	var peak = 0
	for i := range out {
		if abs32(out[i]) > abs32(out[peak]) {
			peak = i
		}
	}

	assert.Equal(t, impulse_at+LATENCY_SAMPLES, peak)
	assert.InDelta(t, amplitude, out[peak], 64)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
