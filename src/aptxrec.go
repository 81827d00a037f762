package aptx

/*------------------------------------------------------------------
 *
 * Name: 	aptxrec
 *
 * Purpose:   	Capture stereo audio from the default input device
 *		and store it as an aptX / aptX HD stream.
 *
 * Description:	The output file name is produced from an strftime
 *		pattern, so repeated invocations (say from cron)
 *		produce timestamped captures without clobbering each
 *		other.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

func RecMain() {
	var hd = pflag.BoolP("hd", "H", false, "Produce aptX HD instead of aptX.")
	var pattern = pflag.StringP("output-pattern", "o", "aptxrec-%Y%m%d-%H%M%S.aptx", "Output file name, 'strftime' format pattern.")
	var rate = pflag.Float64P("rate", "r", 44100, "Capture sample rate in Hz.")
	var seconds = pflag.IntP("seconds", "n", 10, "Capture duration in seconds.")
	var verbose = pflag.BoolP("verbose", "v", false, "Log progress to stderr.")
	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Record the default input device to aptX / aptX HD.\n", os.Args[0])
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

	var name, nerr = strftime.Format(*pattern, time.Now())
	if nerr != nil {
		log.Fatal("Bad output pattern", "pattern", *pattern, "err", nerr)
	}

	var out, oerr = os.Create(name)
	if oerr != nil {
		log.Fatal("Cannot create output", "file", name, "err", oerr)
	}
	defer out.Close()

	if err := portaudio.Initialize(); err != nil {
		log.Fatal("PortAudio init failed", "err", err)
	}
	defer portaudio.Terminate()

	var capbuf = make([]int32, 2*1024)
	var stream, serr = portaudio.OpenDefaultStream(2, 0, *rate, len(capbuf)/2, &capbuf)
	if serr != nil {
		log.Fatal("Cannot open audio device", "err", serr)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		log.Fatal("Cannot start audio device", "err", err)
	}
	defer stream.Stop()

	var ctx = NewContext(*hd)
	var want = int(*rate) * *seconds
	var got, rerr = record_stream(ctx, stream, capbuf, want, out)
	if rerr != nil {
		log.Fatal("Recording failed", "err", rerr)
	}

	log.Info("Recorded", "file", name, "frames", got/4, "hd", *hd)
}

func record_stream(ctx *Context, stream *portaudio.Stream, capbuf []int32, want_samples int, out *os.File) (int, error) {
	var pcm = make([]byte, 0, len(capbuf)*3+pcm_block_size)
	var coded = make([]byte, 256*6)
	var captured int

	for captured < want_samples {
		if err := stream.Read(); err != nil {
			return captured, err
		}
		captured += len(capbuf) / 2

		/* Device gives s32; keep the top 24 bits */
		for _, v := range capbuf {
			var s = v >> 8
			pcm = append(pcm, byte(s), byte(s>>8), byte(s>>16))
		}

		var consumed, written = ctx.Encode(pcm, coded)
		if written > 0 {
			if _, werr := out.Write(coded[:written]); werr != nil {
				return captured, werr
			}
		}
		pcm = append(pcm[:0], pcm[consumed:]...)
	}

	for {
		var written, done = ctx.EncodeFinish(coded)
		if written > 0 {
			if _, werr := out.Write(coded[:written]); werr != nil {
				return captured, werr
			}
		}
		if done {
			break
		}
	}

	return captured, nil
}
