package aptx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* Interleaved stereo s24le test signal: a 1 kHz tone at 44.1 kHz,
 * amplitude 2^22, identical on both channels. */
func sine_pcm(frames int) []byte {
	var pcm = make([]byte, 0, frames*pcm_block_size)
	for n := 0; n < frames*4; n++ {
		var v = int32(math.Round((1 << 22) * math.Sin(2*math.Pi*1000*float64(n)/44100)))
		for channel := 0; channel < NB_CHANNELS; channel++ {
			pcm = append(pcm, byte(v), byte(v>>8), byte(v>>16))
		}
	}
	return pcm
}

func encode_all(t *testing.T, ctx *Context, pcm []byte) []byte {
	t.Helper()

	var out = make([]byte, len(pcm)/pcm_block_size*6+6)
	var processed, written = ctx.Encode(pcm, out)
	require.Equal(t, len(pcm)/pcm_block_size*pcm_block_size, processed)
	return out[:written]
}

func flush_all(t *testing.T, ctx *Context) []byte {
	t.Helper()

	var out []byte
	var buf = make([]byte, 10) // deliberately small, to exercise resume
	for {
		var written, done = ctx.EncodeFinish(buf)
		out = append(out, buf[:written]...)
		if done {
			return out
		}
	}
}

func Test_encode_deterministic(t *testing.T) {
	var pcm = sine_pcm(200)

	for _, hd := range []bool{false, true} {
		var a = encode_all(t, NewContext(hd), pcm)
		var b = encode_all(t, NewContext(hd), pcm)
		assert.Equal(t, a, b)
	}
}

func Test_encode_flush_completeness(t *testing.T) {
	const frames = 50

	for _, hd := range []bool{false, true} {
		var ctx = NewContext(hd)
		var sample_size = ctx.sample_size()

		var stream = encode_all(t, ctx, sine_pcm(frames))
		stream = append(stream, flush_all(t, ctx)...)

		assert.Equal(t, (frames+FLUSH_FRAMES)*sample_size, len(stream))

		// Flushing again is a no-op on the already-reset context
		var written, done = ctx.EncodeFinish(make([]byte, 64))
		assert.Zero(t, written)
		assert.True(t, done)
	}
}

func Test_encode_reset_isolation(t *testing.T) {
	var a = sine_pcm(97)
	var b = sine_pcm(131)

	for _, hd := range []bool{false, true} {
		var reused = NewContext(hd)
		encode_all(t, reused, a)
		reused.Reset()
		var got = encode_all(t, reused, b)

		var want = encode_all(t, NewContext(hd), b)
		assert.Equal(t, want, got)
	}
}

func Test_encode_short_input_and_output(t *testing.T) {
	var ctx = NewContext(false)

	// Less than one frame of PCM: nothing happens
	var processed, written = ctx.Encode(make([]byte, pcm_block_size-1), make([]byte, 64))
	assert.Zero(t, processed)
	assert.Zero(t, written)

	// No room for one codeword pair: nothing happens
	processed, written = ctx.Encode(make([]byte, pcm_block_size), make([]byte, 3))
	assert.Zero(t, processed)
	assert.Zero(t, written)

	// Output space limits consumption; the rest stays unconsumed
	processed, written = ctx.Encode(make([]byte, 4*pcm_block_size), make([]byte, 2*4))
	assert.Equal(t, 2*pcm_block_size, processed)
	assert.Equal(t, 2*4, written)
}
