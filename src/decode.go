package aptx

/*------------------------------------------------------------------
 *
 * Purpose:	Frame decoder, plain streaming decode, and the
 *		self-synchronizing streaming decode.
 *
 * Description:	The plain driver trusts its input: the first parity
 *		mismatch stops it, and the caller notices because
 *		fewer bytes were consumed than offered.
 *
 *		The sync driver assumes bytes can go missing.  On a
 *		parity failure it drops a single input byte, resets
 *		the codec state (keeping its own bookkeeping) and
 *		tries again from the next byte, until 23 consecutive
 *		codewords decode cleanly.  Only then does it report
 *		the accumulated dropped-byte count and declare the
 *		stream synced again.  Up to sample_size-1 trailing
 *		bytes are cached between calls so codewords may
 *		straddle call boundaries.
 *
 *------------------------------------------------------------------*/

func aptx_decode_channel(channel *aptx_channel, samples *[4]int32) {
	var subband_samples [4]int32

	for subband := 0; subband < NB_SUBBANDS; subband++ {
		subband_samples[subband] = channel.prediction[subband].previous_reconstructed_sample
	}
	aptx_qmf_tree_synthesis(&channel.qmf, &subband_samples, samples)
}

/* Returns nonzero on parity mismatch. */
func aptx_decode_samples(ctx *Context, input []byte, samples *[NB_CHANNELS][4]int32) int32 {
	var tables = ctx.tables()

	for channel := 0; channel < NB_CHANNELS; channel++ {
		aptx_generate_dither(&ctx.channels[channel])

		if ctx.hd {
			aptxhd_unpack_codeword(&ctx.channels[channel],
				uint32(input[3*channel+0])<<16|
					uint32(input[3*channel+1])<<8|
					uint32(input[3*channel+2])<<0)
		} else {
			aptx_unpack_codeword(&ctx.channels[channel],
				uint16(input[2*channel+0])<<8|
					uint16(input[2*channel+1])<<0)
		}
		aptx_invert_quantize_and_prediction(&ctx.channels[channel], tables)
	}

	var ret = aptx_check_parity(&ctx.channels, &ctx.sync_idx)

	for channel := 0; channel < NB_CHANNELS; channel++ {
		aptx_decode_channel(&ctx.channels[channel], &samples[channel])
	}

	return ret
}

/* Store one frame of decoded samples as interleaved s24le, honouring
 * the leading latency skip.  Returns bytes written. */
func aptx_decode_emit(ctx *Context, samples *[NB_CHANNELS][4]int32, output []byte) int {
	var sample0 = 0

	if ctx.decode_skip_leading > 0 {
		ctx.decode_skip_leading--
		if ctx.decode_skip_leading > 0 {
			return 0
		}
		/* Last skipped frame: the 90th sample falls inside it */
		sample0 = LATENCY_SAMPLES % 4
	}

	var opos int
	for sample := sample0; sample < 4; sample++ {
		for channel := 0; channel < NB_CHANNELS; channel++ {
			var v = uint32(samples[channel][sample])
			output[opos+0] = byte(v)
			output[opos+1] = byte(v >> 8)
			output[opos+2] = byte(v >> 16)
			opos += 3
		}
	}
	return opos
}

// Decode consumes whole codeword pairs from input and writes
// interleaved 24-bit little-endian stereo PCM to output.  The first
// 23 frames of a stream are absorbed by the latency skip and produce
// only 2 samples per channel.  Decoding stops early on the first
// parity mismatch; the caller detects that by processed < len(input).
func (ctx *Context) Decode(input []byte, output []byte) (processed int, written int) {
	var sample_size = ctx.sample_size()
	var samples [NB_CHANNELS][4]int32
	var ipos, opos int

	for ipos+sample_size <= len(input) &&
		(opos+3*NB_CHANNELS*4 <= len(output) || ctx.decode_skip_leading > 0) {
		if aptx_decode_samples(ctx, input[ipos:], &samples) != 0 {
			break
		}
		ipos += sample_size
		opos += aptx_decode_emit(ctx, &samples, output[opos:])
	}

	return ipos, opos
}

/* One codeword for the sync decoder: decode, keep the confirmation
 * window bookkeeping, emit samples.  Returns false on parity failure,
 * after which the codec state has been reset for the next attempt. */
func aptx_decode_sync_packet(ctx *Context, input []byte, output []byte,
	written *int, synced *bool, dropped *int) bool {
	var samples [NB_CHANNELS][4]int32

	if aptx_decode_samples(ctx, input, &samples) != 0 {
		ctx.decode_dropped++
		ctx.decode_sync_packets = 0
		aptx_reset_decode_sync(ctx)
		*synced = false
		return false
	}

	if ctx.decode_dropped > 0 {
		ctx.decode_sync_packets++
		if ctx.decode_sync_packets >= FLUSH_FRAMES {
			*dropped += ctx.decode_dropped
			ctx.decode_dropped = 0
			ctx.decode_sync_packets = 0
		}
	}
	if ctx.decode_dropped == 0 {
		*synced = true
	}

	*written += aptx_decode_emit(ctx, &samples, output[*written:])
	return true
}

// DecodeSync behaves like Decode but self-resynchronizes on corrupted
// input instead of stopping: bytes are discarded one at a time until
// 23 consecutive codewords decode cleanly again.  synced reports
// whether the stream was in the synchronized state after the last
// codeword attempted this call (false when no codeword was attempted);
// dropped is the number of discarded bytes confirmed this call.
// output must have room for len(input) scaled by the PCM ratio plus
// one frame (24 bytes).
func (ctx *Context) DecodeSync(input []byte, output []byte) (processed int, written int, synced bool, dropped int) {
	var sample_size = ctx.sample_size()
	var ipos int

	/* Codewords straddling the previous call's end live in the
	 * cache; finish them first, one attempt per input byte. */
	for ctx.decode_sync_buffer_len > 0 &&
		len(input)-ipos >= sample_size-ctx.decode_sync_buffer_len {
		for ctx.decode_sync_buffer_len < sample_size {
			ctx.decode_sync_buffer[ctx.decode_sync_buffer_len] = input[ipos]
			ctx.decode_sync_buffer_len++
			ipos++
		}

		if aptx_decode_sync_packet(ctx, ctx.decode_sync_buffer[:], output,
			&written, &synced, &dropped) {
			ctx.decode_sync_buffer_len = 0
		} else {
			copy(ctx.decode_sync_buffer[:], ctx.decode_sync_buffer[1:sample_size])
			ctx.decode_sync_buffer_len = sample_size - 1
		}
	}

	for ipos+sample_size <= len(input) &&
		(written+3*NB_CHANNELS*4 <= len(output) || ctx.decode_skip_leading > 0) {
		if aptx_decode_sync_packet(ctx, input[ipos:], output,
			&written, &synced, &dropped) {
			ipos += sample_size
		} else {
			ipos++
		}
	}

	/* Cache the leftover tail */
	for len(input)-ipos > 0 && ctx.decode_sync_buffer_len < sample_size-1 {
		ctx.decode_sync_buffer[ctx.decode_sync_buffer_len] = input[ipos]
		ctx.decode_sync_buffer_len++
		ipos++
	}

	return ipos, written, synced, dropped
}

// DecodeSyncFinish reports how many bytes of an unfinished codeword
// were still cached (they are lost) and resets the context.
func (ctx *Context) DecodeSyncFinish() (dropped int) {
	dropped = ctx.decode_sync_buffer_len
	aptx_reset(ctx)
	return dropped
}
