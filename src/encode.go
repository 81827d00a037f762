package aptx

/*------------------------------------------------------------------
 *
 * Purpose:	Frame encoder and the streaming encode driver.
 *
 * Description:	One frame consumes 4 PCM samples per channel and
 *		emits one codeword per channel.  The encoder runs the
 *		inverse quantizer and predictor on its own output so
 *		that its adaptive state stays in lockstep with any
 *		decoder of the stream.
 *
 *		The streaming driver consumes interleaved 24-bit
 *		little-endian stereo PCM, 24 bytes per frame, and
 *		produces 4-byte (aptX) or 6-byte (aptX HD) codeword
 *		pairs.  EncodeFinish pushes enough zero frames through
 *		to flush the 90-sample QMF latency.
 *
 *------------------------------------------------------------------*/

func aptx_encode_channel(channel *aptx_channel, samples *[4]int32, tables *[NB_SUBBANDS]aptx_tables) {
	var subband_samples [4]int32

	aptx_qmf_tree_analysis(&channel.qmf, samples, &subband_samples)
	aptx_generate_dither(channel)

	for subband := 0; subband < NB_SUBBANDS; subband++ {
		var diff = clip_intp2(subband_samples[subband]-channel.prediction[subband].predicted_sample, 23)
		aptx_quantize_difference(&channel.quantize[subband], diff, channel.dither[subband],
			channel.invert_quantize[subband].quantization_factor, &tables[subband])
	}
}

func aptx_encode_samples(ctx *Context, samples *[NB_CHANNELS][4]int32, output []byte) {
	var tables = ctx.tables()

	for channel := 0; channel < NB_CHANNELS; channel++ {
		aptx_encode_channel(&ctx.channels[channel], &samples[channel], tables)
	}

	aptx_insert_sync(&ctx.channels, &ctx.sync_idx)

	for channel := 0; channel < NB_CHANNELS; channel++ {
		aptx_invert_quantize_and_prediction(&ctx.channels[channel], tables)

		if ctx.hd {
			var codeword = aptxhd_pack_codeword(&ctx.channels[channel])
			output[3*channel+0] = byte(codeword >> 16)
			output[3*channel+1] = byte(codeword >> 8)
			output[3*channel+2] = byte(codeword >> 0)
		} else {
			var codeword = aptx_pack_codeword(&ctx.channels[channel])
			output[2*channel+0] = byte(codeword >> 8)
			output[2*channel+1] = byte(codeword >> 0)
		}
	}
}

// Encode consumes as much of input as fits in output and returns the
// number of input bytes consumed and output bytes written.  Input is
// interleaved stereo PCM, signed 24-bit little-endian, and is consumed
// in whole 24-byte frames; output grows by one codeword pair (4 or 6
// bytes) per frame.  Leftover bytes are simply not consumed; call
// again with them in front.
func (ctx *Context) Encode(input []byte, output []byte) (processed int, written int) {
	var sample_size = ctx.sample_size()
	var samples [NB_CHANNELS][4]int32
	var ipos, opos int

	for ipos+3*NB_CHANNELS*4 <= len(input) && opos+sample_size <= len(output) {
		for sample := 0; sample < 4; sample++ {
			for channel := 0; channel < NB_CHANNELS; channel++ {
				/* Sign-extend 24-bit little-endian into an int32 */
				var v = uint32(input[ipos+0]) |
					uint32(input[ipos+1])<<8 |
					uint32(input[ipos+2])<<16
				samples[channel][sample] = int32(v<<8) >> 8
				ipos += 3
			}
		}
		aptx_encode_samples(ctx, &samples, output[opos:])
		opos += sample_size
	}

	/* Starting a new stream on a context whose previous stream was
	 * flushed to completion re-arms the flush counter. */
	if opos > 0 && ctx.encode_remaining == 0 {
		ctx.encode_remaining = FLUSH_FRAMES
	}

	return ipos, opos
}

// EncodeFinish flushes the encoder by feeding zero frames until the
// QMF latency has fully drained (23 codeword pairs in total, possibly
// spread over several calls when output keeps filling up).  It
// returns done == true once flushing completed, at which point the
// context has been reset; further calls write nothing.
func (ctx *Context) EncodeFinish(output []byte) (written int, done bool) {
	var sample_size = ctx.sample_size()
	var samples [NB_CHANNELS][4]int32
	var opos int

	if ctx.encode_remaining == 0 {
		return 0, true
	}

	for ctx.encode_remaining > 0 && opos+sample_size <= len(output) {
		aptx_encode_samples(ctx, &samples, output[opos:])
		ctx.encode_remaining--
		opos += sample_size
	}

	if ctx.encode_remaining > 0 {
		return opos, false
	}

	aptx_reset(ctx)
	ctx.encode_remaining = 0
	return opos, true
}
