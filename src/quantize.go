package aptx

/*------------------------------------------------------------------
 *
 * Purpose:	Subband quantizer and the parity/sync insertion.
 *
 * Description:	quantize_difference maps the prediction residual of
 *		one subband onto an interval index, remembering both
 *		the quantization error magnitude and the neighbouring
 *		index that would flip the codeword parity.  Once all
 *		eight subbands of a frame are quantized, insert_sync
 *		forces the cross-channel parity to the value expected
 *		for this frame position by flipping the cheapest
 *		candidate, which is how the decoder finds codeword
 *		boundaries in a raw byte stream.
 *
 *------------------------------------------------------------------*/

/* Largest index such that factor * intervals[idx] <= value << 24. */
func aptx_bin_search(value int32, factor int32, intervals []int32, nb_intervals int32) int32 {
	var idx int32

	for i := nb_intervals >> 1; i > 0; i >>= 1 {
		if int64(factor)*int64(intervals[idx+i]) <= int64(value)<<24 {
			idx += i
		}
	}

	return idx
}

func aptx_quantize_difference(quantize *aptx_quantize, sample_difference int32, dither int32,
	quantization_factor int32, tables *aptx_tables) {
	var intervals = tables.quantize_intervals

	var sample_difference_abs = sample_difference
	if sample_difference_abs < 0 {
		sample_difference_abs = -sample_difference_abs
	}
	if sample_difference_abs > (1<<23)-1 {
		sample_difference_abs = (1 << 23) - 1
	}

	var quantized_sample = aptx_bin_search(sample_difference_abs>>4,
		quantization_factor, intervals, tables.tables_size)

	var d = rshift32_clip24(int32((int64(dither)*int64(dither))>>32), 7) - (1 << 23)
	d = int32(rshift64(int64(d)*int64(tables.quantize_dither_factors[quantized_sample]), 23))

	var mean = (intervals[quantized_sample+1] + intervals[quantized_sample]) / 2

	var interval = intervals[quantized_sample+1] - intervals[quantized_sample]
	if sample_difference < 0 {
		interval = -interval
	}

	var dithered_sample = rshift64_clip24(int64(dither)*int64(interval)+
		(int64(clip_intp2(mean+d, 23))<<32), 32)
	var error = (int64(sample_difference_abs) << 20) -
		int64(dithered_sample)*int64(quantization_factor)
	quantize.error = int32(rshift64(error, 23))
	if quantize.error < 0 {
		quantize.error = -quantize.error
	}

	var parity_change = quantized_sample
	if error < 0 {
		quantized_sample--
	} else {
		parity_change--
	}

	var inv int32
	if sample_difference < 0 {
		inv = -1
	}
	quantize.quantized_sample = quantized_sample ^ inv
	quantize.quantized_sample_parity_change = parity_change ^ inv
}

func aptx_quantized_parity(channel *aptx_channel) int32 {
	var parity = channel.dither_parity

	for subband := 0; subband < NB_SUBBANDS; subband++ {
		parity ^= channel.quantize[subband].quantized_sample
	}

	return parity & 1
}

/* For each frame, the XOR of the parity of both channels has to be 0
 * except once every 8 frames where it has to be 1. */
func aptx_check_parity(channels *[NB_CHANNELS]aptx_channel, idx *int32) int32 {
	var parity = aptx_quantized_parity(&channels[LEFT]) ^ aptx_quantized_parity(&channels[RIGHT])

	var eighth int32
	if *idx == 7 {
		eighth = 1
	}
	*idx = (*idx + 1) & 7

	return parity ^ eighth
}

func aptx_insert_sync(channels *[NB_CHANNELS]aptx_channel, idx *int32) {
	if aptx_check_parity(channels, idx) != 0 {
		var map_index = [NB_SUBBANDS]int{1, 2, 0, 3}

		/* Swap the parity bit in the subband with the lowest
		 * quantization error.  Scan order ties toward the
		 * right channel and the map_index order above. */
		var min = &channels[NB_CHANNELS-1].quantize[map_index[0]]
		for c := NB_CHANNELS - 1; c >= 0; c-- {
			for i := 0; i < NB_SUBBANDS; i++ {
				var quantize = &channels[c].quantize[map_index[i]]
				if quantize.error < min.error {
					min = quantize
				}
			}
		}

		min.quantized_sample = min.quantized_sample_parity_change
	}
}
