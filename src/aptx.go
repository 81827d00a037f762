/* Bit-exact aptX and aptX HD codec core */
package aptx

/*------------------------------------------------------------------
 *
 * Purpose:	Stateful encoder/decoder context for the aptX and
 *		aptX HD subband ADPCM codecs.
 *
 * Description:	One Context holds everything for one stream: two
 *		channels, each with a two-stage QMF tree and four
 *		subband quantizer/predictor records.  All operations
 *		mutate the Context in place; nothing here allocates
 *		after NewContext.  A Context is not safe for use from
 *		more than one goroutine at a time.
 *
 *------------------------------------------------------------------*/

const NB_CHANNELS = 2
const NB_SUBBANDS = 4
const NB_FILTERS = 2
const FILTER_TAPS = 16

const LEFT = 0
const RIGHT = 1

const LF = 0  /* Low Frequency (0-5.5 kHz) */
const MLF = 1 /* Medium-Low Frequency (5.5-11 kHz) */
const MHF = 2 /* Medium-High Frequency (11-16.5 kHz) */
const HF = 3  /* High Frequency (16.5-22 kHz) */

/* Total delay of the two-stage QMF tree, analysis plus synthesis. */
const LATENCY_SAMPLES = 90

/* 90 samples rounded up to whole 4-sample frames. */
const FLUSH_FRAMES = (LATENCY_SAMPLES + 3) / 4

/* First bytes produced when encoding all-zero PCM from a fresh
 * context.  Usable to guess the variant of an unknown stream. */
var StreamPrefix = []byte{0x4b, 0xbf, 0x4b, 0xbf}
var StreamPrefixHD = []byte{0x73, 0xbe, 0xff, 0x73, 0xbe, 0xff}

type aptx_filter_signal struct {
	/* Doubled circular buffer: buffer[i] == buffer[i+FILTER_TAPS],
	 * so a convolution always reads 16 contiguous samples. */
	buffer [2 * FILTER_TAPS]int32
	pos    uint8
}

type aptx_QMF_analysis struct {
	outer_filter_signal [NB_FILTERS]aptx_filter_signal
	inner_filter_signal [NB_FILTERS][NB_FILTERS]aptx_filter_signal
}

type aptx_quantize struct {
	quantized_sample               int32
	quantized_sample_parity_change int32
	error                          int32
}

type aptx_invert_quantize struct {
	quantization_factor      int32
	factor_select            int32
	reconstructed_difference int32
}

type aptx_prediction struct {
	prev_sign                 [2]int32
	s_weight                  [2]int32
	d_weight                  [24]int32
	pos                       int32
	reconstructed_differences [48]int32
	previous_reconstructed_sample int32
	predicted_difference          int32
	predicted_sample              int32
}

type aptx_channel struct {
	codeword_history int32
	dither_parity    int32
	dither           [NB_SUBBANDS]int32

	qmf             aptx_QMF_analysis
	quantize        [NB_SUBBANDS]aptx_quantize
	invert_quantize [NB_SUBBANDS]aptx_invert_quantize
	prediction      [NB_SUBBANDS]aptx_prediction
}

// Context is the public handle for one aptX or aptX HD stream.
type Context struct {
	hd       bool
	channels [NB_CHANNELS]aptx_channel
	sync_idx int32

	encode_remaining    int
	decode_skip_leading int
	decode_sync_packets int
	decode_dropped      int

	decode_sync_buffer     [6]byte
	decode_sync_buffer_len int
}

// NewContext returns a freshly reset codec context.  hd selects
// aptX HD (24-bit codewords) over plain aptX (16-bit codewords).
func NewContext(hd bool) *Context {
	var ctx = &Context{hd: hd}
	aptx_reset(ctx)
	return ctx
}

// HD reports which variant the context was created for.
func (ctx *Context) HD() bool {
	return ctx.hd
}

// Reset returns the context to its initial state, as if freshly
// created.  Only the variant selection survives.
func (ctx *Context) Reset() {
	aptx_reset(ctx)
}

func aptx_reset(ctx *Context) {
	var hd = ctx.hd

	*ctx = Context{}
	ctx.hd = hd
	ctx.decode_skip_leading = FLUSH_FRAMES
	ctx.encode_remaining = FLUSH_FRAMES

	for channel := 0; channel < NB_CHANNELS; channel++ {
		for subband := 0; subband < NB_SUBBANDS; subband++ {
			var prediction = &ctx.channels[channel].prediction[subband]
			prediction.prev_sign[0] = 1
			prediction.prev_sign[1] = 1
		}
	}
}

/* The sync decoder's reset: codec state goes back to zero but the
 * byte cache and the drop/confirmation counters survive, so a
 * resynchronization attempt can carry on across the reset. */
func aptx_reset_decode_sync(ctx *Context) {
	var decode_dropped = ctx.decode_dropped
	var decode_sync_packets = ctx.decode_sync_packets
	var decode_sync_buffer_len = ctx.decode_sync_buffer_len
	var decode_sync_buffer = ctx.decode_sync_buffer

	aptx_reset(ctx)

	ctx.decode_sync_buffer = decode_sync_buffer
	ctx.decode_sync_buffer_len = decode_sync_buffer_len
	ctx.decode_sync_packets = decode_sync_packets
	ctx.decode_dropped = decode_dropped
}

func (ctx *Context) sample_size() int {
	if ctx.hd {
		return 6
	}
	return 4
}

func (ctx *Context) tables() *[NB_SUBBANDS]aptx_tables {
	if ctx.hd {
		return &all_tables[1]
	}
	return &all_tables[0]
}
