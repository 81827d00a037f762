package aptx

/*------------------------------------------------------------------
 *
 * Name: 	aptxplay
 *
 * Purpose:   	Decode an aptX / aptX HD stream and play it on the
 *		default audio device.
 *
 * Description:	Uses the self-synchronizing decoder so a stream
 *		captured off a lossy link still plays, with at worst
 *		a short dropout around each damaged region.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"
	"github.com/spf13/pflag"
)

func PlayMain() {
	var variant = pflag.StringP("variant", "t", "auto", "Stream variant: aptx, hd or auto (guess from the first bytes).")
	var input = pflag.StringP("input", "i", "-", "Input file, or - for stdin.")
	var rate = pflag.Float64P("rate", "r", 44100, "Playback sample rate in Hz.")
	var verbose = pflag.BoolP("verbose", "v", false, "Log progress to stderr.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Play an aptX / aptX HD stream.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	log.SetReportTimestamp(false)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var in io.ReadCloser = os.Stdin
	if *input != "-" {
		var f, err = os.Open(*input)
		if err != nil {
			log.Fatal("Cannot open input", "err", err)
		}
		in = f
	}
	defer in.Close()

	var head = make([]byte, len(StreamPrefixHD))
	var headn, _ = io.ReadFull(in, head)
	head = head[:headn]

	var hd bool
	switch *variant {
	case "aptx":
	case "hd":
		hd = true
	case "auto":
		hd = guess_stream_variant(head)
	default:
		log.Fatal("Unknown variant", "variant", *variant)
	}

	if err := portaudio.Initialize(); err != nil {
		log.Fatal("PortAudio init failed", "err", err)
	}
	defer portaudio.Terminate()

	/* One interleaved stereo buffer per write */
	var playbuf = make([]int32, 2*1024)
	var stream, err = portaudio.OpenDefaultStream(0, 2, *rate, len(playbuf)/2, &playbuf)
	if err != nil {
		log.Fatal("Cannot open audio device", "err", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		log.Fatal("Cannot start audio device", "err", err)
	}
	defer stream.Stop()

	var ctx = NewContext(hd)
	var perr = play_stream(ctx, head, in, stream, playbuf)
	if perr != nil {
		log.Fatal("Playback failed", "err", perr)
	}
}

func play_stream(ctx *Context, head []byte, r io.Reader, stream *portaudio.Stream, playbuf []int32) error {
	var coded = make([]byte, 256*6)
	var pcm = make([]byte, 384*pcm_block_size+pcm_block_size)
	var pending = copy(coded, head)
	var queued []int32

	for {
		var n, rerr = r.Read(coded[pending:])
		pending += n

		var consumed, written, _, dropped = ctx.DecodeSync(coded[:pending], pcm)
		if dropped > 0 {
			log.Warn("Resynchronized", "dropped_bytes", dropped)
		}
		pending = copy(coded, coded[consumed:pending])

		/* s24le to the device's s32 range */
		for i := 0; i+3 <= written; i += 3 {
			var v = uint32(pcm[i]) | uint32(pcm[i+1])<<8 | uint32(pcm[i+2])<<16
			queued = append(queued, (int32(v<<8)>>8)<<8)
		}

		for len(queued) >= len(playbuf) {
			copy(playbuf, queued[:len(playbuf)])
			queued = queued[len(playbuf):]
			if werr := stream.Write(); werr != nil {
				return werr
			}
		}

		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}

	/* Pad the final buffer with silence rather than dropping it */
	if len(queued) > 0 {
		var tail = copy(playbuf, queued)
		for i := tail; i < len(playbuf); i++ {
			playbuf[i] = 0
		}
		if werr := stream.Write(); werr != nil {
			return werr
		}
	}

	ctx.DecodeSyncFinish()
	return nil
}
