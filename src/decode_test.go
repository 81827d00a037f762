package aptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode_all(t *testing.T, ctx *Context, stream []byte) (consumed int, pcm []byte) {
	t.Helper()

	var out = make([]byte, len(stream)/4*pcm_block_size+pcm_block_size)
	var processed, written = ctx.Decode(stream, out)
	return processed, out[:written]
}

/* N codewords in, 4*(N-23)+2 samples per channel out: the first 23
 * frames are eaten by the latency skip, with output starting at
 * sample 2 of the last skipped frame. */
func Test_decode_latency(t *testing.T) {
	const frames = 60

	for _, hd := range []bool{false, true} {
		var enc = NewContext(hd)
		var stream = encode_all(t, enc, sine_pcm(frames))
		stream = append(stream, flush_all(t, enc)...)

		var codewords = len(stream) / enc.sample_size()
		require.Equal(t, frames+FLUSH_FRAMES, codewords)

		var consumed, pcm = decode_all(t, NewContext(hd), stream)
		assert.Equal(t, len(stream), consumed)
		assert.Equal(t, (4*(codewords-FLUSH_FRAMES)+2)*3*NB_CHANNELS, len(pcm))
	}
}

/* The codec is lossy but bounded: decoded output tracks the input to
 * within a fixed tolerance once the adaptive state has settled. */
func Test_decode_end_to_end_sine(t *testing.T) {
	const frames = 1024
	const tolerance = 1 << 20

	var input = sine_pcm(frames)

	for _, hd := range []bool{false, true} {
		var enc = NewContext(hd)
		var stream = encode_all(t, enc, input)
		stream = append(stream, flush_all(t, enc)...)

		var consumed, pcm = decode_all(t, NewContext(hd), stream)
		require.Equal(t, len(stream), consumed)
		require.Equal(t, (4*frames+2)*3*NB_CHANNELS, len(pcm))

		// Drop the trailing 2 extra samples; then output sample k
		// corresponds to input sample k.  Skip the settling region
		// covered by the codec latency.
		for k := LATENCY_SAMPLES * NB_CHANNELS; k < frames*4*NB_CHANNELS; k++ {
			var want = s24le_at(input, k)
			var got = s24le_at(pcm, k)
			if d := abs32(want - got); d > tolerance {
				t.Fatalf("hd=%v sample %d: input %d decoded %d (diff %d)", hd, k, want, got, d)
			}
		}
	}
}

func s24le_at(pcm []byte, index int) int32 {
	var v = uint32(pcm[3*index]) | uint32(pcm[3*index+1])<<8 | uint32(pcm[3*index+2])<<16
	return int32(v<<8) >> 8
}

/* Flipping the wire parity bit stops the plain decoder at that
 * frame; the caller sees consumed < len(input). */
func Test_decode_stops_on_parity_error(t *testing.T) {
	for _, hd := range []bool{false, true} {
		var enc = NewContext(hd)
		var stream = encode_all(t, enc, sine_pcm(100))
		var sample_size = enc.sample_size()

		var parity_bit = byte(0x20)
		if hd {
			parity_bit = 0x08
		}
		stream[2*sample_size] ^= parity_bit // left codeword of frame 2

		var consumed, _ = decode_all(t, NewContext(hd), stream)
		assert.Equal(t, 2*sample_size, consumed)
	}
}

func Test_decode_output_flow_control(t *testing.T) {
	var enc = NewContext(false)
	var stream = encode_all(t, enc, sine_pcm(100))

	var ctx = NewContext(false)

	// Room for the partial frame ending the latency skip plus one
	// full frame, then the decoder has to stop
	var out = make([]byte, 12+pcm_block_size)
	var processed, written = ctx.Decode(stream, out)
	assert.Equal(t, (FLUSH_FRAMES+1)*4, processed)
	assert.Equal(t, 12+pcm_block_size, written)

	// Resume with the remaining bytes
	var out2 = make([]byte, len(stream)*pcm_block_size)
	var processed2, written2 = ctx.Decode(stream[processed:], out2)
	assert.Equal(t, len(stream)-processed, processed2)
	assert.Equal(t, (100-FLUSH_FRAMES-1)*pcm_block_size, written2)
}
