package aptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode_sync_all(t *testing.T, ctx *Context, stream []byte, chunk int) (pcm []byte, synced bool, dropped int) {
	t.Helper()

	var out = make([]byte, len(stream)/4*pcm_block_size+pcm_block_size)
	for pos := 0; pos < len(stream); {
		var end = pos + chunk
		if chunk <= 0 || end > len(stream) {
			end = len(stream)
		}

		var processed, written, s, d = ctx.DecodeSync(stream[pos:end], out)
		require.Equal(t, end-pos, processed)

		pcm = append(pcm, out[:written]...)
		synced = s
		dropped += d
		pos = end
	}
	return pcm, synced, dropped
}

func Test_decode_sync_clean_stream(t *testing.T) {
	for _, hd := range []bool{false, true} {
		var enc = NewContext(hd)
		var stream = encode_all(t, enc, sine_pcm(200))

		var pcm, synced, dropped = decode_sync_all(t, NewContext(hd), stream, 0)
		assert.True(t, synced)
		assert.Zero(t, dropped)
		assert.Equal(t, (4*(200-FLUSH_FRAMES)+2)*3*NB_CHANNELS, len(pcm))
	}
}

/* Inject a byte mid-stream: the decoder must drop bytes until the
 * parity marker locks again, report them, and - since the adaptive
 * state is driven only by the codewords - eventually reproduce the
 * exact same PCM as an undamaged decode. */
func Test_decode_sync_recovers_from_injected_byte(t *testing.T) {
	const frames = 8000

	for _, hd := range []bool{false, true} {
		var enc = NewContext(hd)
		var stream = encode_all(t, enc, sine_pcm(frames))
		var sample_size = enc.sample_size()

		var clean, _, _ = decode_sync_all(t, NewContext(hd), stream, 0)

		var bad = make([]byte, 0, len(stream)+1)
		bad = append(bad, stream[:400]...)
		bad = append(bad, 0x55)
		bad = append(bad, stream[400:]...)

		var pcm, synced, dropped = decode_sync_all(t, NewContext(hd), bad, 0)

		assert.True(t, synced)
		assert.GreaterOrEqual(t, dropped, 1)
		// Dropping whole frames plus the injected byte realigns
		// both the byte boundary and the parity phase
		assert.Equal(t, 1, dropped%sample_size)

		var tail = 400 * 3
		require.Greater(t, len(pcm), tail)
		assert.Equal(t, clean[len(clean)-tail:], pcm[len(pcm)-tail:],
			"hd=%v: recovered stream should converge to the clean decode", hd)
	}
}

/* Feeding the same bytes in tiny chunks exercises the codeword cache
 * and must change nothing. */
func Test_decode_sync_chunked_equivalence(t *testing.T) {
	var enc = NewContext(false)
	var stream = encode_all(t, enc, sine_pcm(500))

	var bad = make([]byte, 0, len(stream)+1)
	bad = append(bad, stream[:400]...)
	bad = append(bad, 0x55)
	bad = append(bad, stream[400:]...)

	var whole, synced1, dropped1 = decode_sync_all(t, NewContext(false), bad, 0)
	var chunked, synced2, dropped2 = decode_sync_all(t, NewContext(false), bad, 7)

	assert.Equal(t, synced1, synced2)
	assert.Equal(t, dropped1, dropped2)
	assert.Equal(t, whole, chunked)
}

func Test_decode_sync_finish_reports_cached_bytes(t *testing.T) {
	for _, hd := range []bool{false, true} {
		var enc = NewContext(hd)
		var full = encode_all(t, enc, sine_pcm(50))
		var sample_size = enc.sample_size()

		for keep := 1; keep < sample_size; keep++ {
			var stream = full[:(len(full)/sample_size-1)*sample_size+keep]

			var ctx = NewContext(hd)
			decode_sync_all(t, ctx, stream, 0)
			assert.Equal(t, keep, ctx.DecodeSyncFinish(), "hd=%v keep=%d", hd, keep)
		}
	}
}
