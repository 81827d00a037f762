package aptx

/*------------------------------------------------------------------
 *
 * Name: 	aptxenc
 *
 * Purpose:   	Encode raw PCM into an aptX or aptX HD stream.
 *
 * Inputs:	Interleaved stereo PCM, signed 24-bit little-endian,
 *		from stdin or a file.  The sample rate is whatever
 *		the transport expects; the codec itself does not care.
 *
 * Outputs:	Concatenated codeword pairs on stdout or into a file.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

const pcm_block_size = 3 * NB_CHANNELS * 4 /* bytes of PCM per codec frame */

func EncMain() {
	var hd = pflag.BoolP("hd", "H", false, "Produce aptX HD (24-bit codewords) instead of aptX.")
	var input = pflag.StringP("input", "i", "-", "Input file, or - for stdin.")
	var output = pflag.StringP("output", "o", "-", "Output file, or - for stdout.")
	var verbose = pflag.BoolP("verbose", "v", false, "Log progress to stderr.")
	var version = pflag.Bool("version", false, "Display version and exit.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Encode s24le stereo PCM to aptX / aptX HD.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}
	if *version {
		printVersion(*verbose)
		os.Exit(0)
	}

	log.SetReportTimestamp(false)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var in, out, err = open_streams(*input, *output)
	if err != nil {
		log.Fatal("Cannot open stream", "err", err)
	}
	defer in.Close()
	defer out.Close()

	var ctx = NewContext(*hd)

	var frames, stream_bytes, tail, werr = encode_stream(ctx, in, out)
	if werr != nil {
		log.Fatal("Encode failed", "err", werr)
	}
	if tail > 0 {
		log.Warn("Input did not end on a frame boundary; trailing bytes dropped", "bytes", tail)
	}

	log.Debug("Done", "frames", frames, "bytes", stream_bytes, "hd", *hd)
}

/* Pump PCM from r through ctx into w until EOF, then flush the codec
 * latency.  Returns frames encoded (flush included), stream bytes
 * written and the count of trailing PCM bytes that did not form a
 * whole frame. */
func encode_stream(ctx *Context, r io.Reader, w io.Writer) (frames int, stream_bytes int, tail int, err error) {
	var pcm = make([]byte, 256*pcm_block_size)
	var coded = make([]byte, 256*6)
	var pending int

	for {
		var n, rerr = r.Read(pcm[pending:])
		pending += n

		var consumed, written = ctx.Encode(pcm[:pending], coded)
		if written > 0 {
			if _, werr := w.Write(coded[:written]); werr != nil {
				return frames, stream_bytes, 0, werr
			}
			frames += written / ctx.sample_size()
			stream_bytes += written
		}
		pending = copy(pcm, pcm[consumed:pending])

		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return frames, stream_bytes, 0, rerr
		}
	}

	for {
		var written, done = ctx.EncodeFinish(coded)
		if written > 0 {
			if _, werr := w.Write(coded[:written]); werr != nil {
				return frames, stream_bytes, 0, werr
			}
			frames += written / ctx.sample_size()
			stream_bytes += written
		}
		if done {
			break
		}
	}

	return frames, stream_bytes, pending, nil
}

/* Shared by the command line tools: "-" means the standard stream. */
func open_streams(input string, output string) (io.ReadCloser, io.WriteCloser, error) {
	var in io.ReadCloser = os.Stdin
	var out io.WriteCloser = os.Stdout

	if input != "-" {
		var f, err = os.Open(input)
		if err != nil {
			return nil, nil, err
		}
		in = f
	}

	if output != "-" {
		var f, err = os.Create(output)
		if err != nil {
			in.Close()
			return nil, nil, err
		}
		out = f
	}

	return in, out, nil
}
