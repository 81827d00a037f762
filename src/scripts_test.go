package aptx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pflag (not unreasonably) assumes it only ever gets called once, but
// these tests drive several command mains in sequence, so reset it
// between runs.
func setupPflag(args []string) {
	os.Args = args
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}

func Test_aptxenc_aptxdec_roundtrip(t *testing.T) {
	var tmpdir = t.TempDir()
	var pcm_in = filepath.Join(tmpdir, "tone.s24le")
	var coded = filepath.Join(tmpdir, "tone.aptx")
	var pcm_out = filepath.Join(tmpdir, "tone-decoded.s24le")

	const frames = 500
	var input = sine_pcm(frames)
	require.NoError(t, os.WriteFile(pcm_in, input, 0o644))

	setupPflag([]string{"aptxenc", "-i", pcm_in, "-o", coded})
	EncMain()

	var stream, err = os.ReadFile(coded)
	require.NoError(t, err)
	assert.Len(t, stream, (frames+FLUSH_FRAMES)*4)

	setupPflag([]string{"aptxdec", "--variant", "aptx", "-i", coded, "-o", pcm_out})
	DecMain()

	var decoded, derr = os.ReadFile(pcm_out)
	require.NoError(t, derr)
	assert.Len(t, decoded, (4*frames+2)*3*NB_CHANNELS)

	// Same tolerance as the library-level end-to-end test
	for k := LATENCY_SAMPLES * NB_CHANNELS; k < frames*4*NB_CHANNELS; k++ {
		var d = abs32(s24le_at(input, k) - s24le_at(decoded, k))
		require.LessOrEqual(t, d, int32(1<<20), "sample %d", k)
	}
}

func Test_aptxenc_aptxdec_hd_with_sync(t *testing.T) {
	var tmpdir = t.TempDir()
	var pcm_in = filepath.Join(tmpdir, "tone.s24le")
	var coded = filepath.Join(tmpdir, "tone.aptxhd")
	var pcm_out = filepath.Join(tmpdir, "tone-decoded.s24le")

	const frames = 300
	require.NoError(t, os.WriteFile(pcm_in, sine_pcm(frames), 0o644))

	setupPflag([]string{"aptxenc", "--hd", "-i", pcm_in, "-o", coded})
	EncMain()

	setupPflag([]string{"aptxdec", "-t", "hd", "--sync", "-i", coded, "-o", pcm_out})
	DecMain()

	var decoded, err = os.ReadFile(pcm_out)
	require.NoError(t, err)
	assert.Len(t, decoded, (4*frames+2)*3*NB_CHANNELS)
}

func Test_aptxdec_variant_guess(t *testing.T) {
	// A stream that starts from silence carries the documented
	// prefix, which the decoder uses for --variant auto
	var tmpdir = t.TempDir()
	var pcm_in = filepath.Join(tmpdir, "silence.s24le")
	var coded = filepath.Join(tmpdir, "silence.aptxhd")
	var pcm_out = filepath.Join(tmpdir, "silence-decoded.s24le")

	const frames = 100
	require.NoError(t, os.WriteFile(pcm_in, make([]byte, frames*pcm_block_size), 0o644))

	setupPflag([]string{"aptxenc", "--hd", "-i", pcm_in, "-o", coded})
	EncMain()

	setupPflag([]string{"aptxdec", "-i", coded, "-o", pcm_out})
	DecMain()

	var decoded, err = os.ReadFile(pcm_out)
	require.NoError(t, err)
	assert.Len(t, decoded, (4*frames+2)*3*NB_CHANNELS)
}
