package aptx

/*------------------------------------------------------------------
 *
 * Purpose:	Inverse quantizer and backward-adaptive predictor.
 *
 * Description:	This is the part both ends run identically: the
 *		encoder executes it on its own quantized output so
 *		its predictor state tracks what the decoder will
 *		reconstruct.  The step size adapts through the
 *		factor_select state, the predictor through two sign
 *		weights and a bank of difference weights (24/12/6/12
 *		taps depending on subband), all driven only by values
 *		recoverable from the codeword stream.
 *
 *------------------------------------------------------------------*/

func aptx_invert_quantization(invert_quantize *aptx_invert_quantize,
	quantized_sample int32, dither int32, tables *aptx_tables) {
	var idx int32
	if quantized_sample < 0 {
		idx = (quantized_sample ^ -1) + 1
	} else {
		idx = quantized_sample + 1
	}

	var qr = tables.quantize_intervals[idx] / 2
	if quantized_sample < 0 {
		qr = -qr
	}

	qr = rshift64_clip24((int64(qr)<<32)+
		int64(dither)*int64(tables.invert_quantize_dither_factors[idx]), 32)
	invert_quantize.reconstructed_difference =
		int32((int64(invert_quantize.quantization_factor) * int64(qr)) >> 19)

	/* Leaky integration of the step-size control */
	var factor_select = 32620 * invert_quantize.factor_select
	factor_select = rshift32(factor_select+
		(int32(tables.quantize_factor_select_offset[idx])<<15), 15)
	invert_quantize.factor_select = clip(factor_select, 0, tables.factor_max)

	/* Quantization factor: geometric table plus a power-of-two shift */
	idx = (invert_quantize.factor_select & 0xFF) >> 3
	var shift = (tables.factor_max - invert_quantize.factor_select) >> 8
	invert_quantize.quantization_factor = (quantization_factors[idx] << 11) >> shift
}

/* Append to the doubled circular difference buffer and return the
 * index of the newest entry; the previous order entries can then be
 * read at head-1 .. head-order without wrapping. */
func aptx_reconstructed_differences_update(prediction *aptx_prediction,
	reconstructed_difference int32, order int) int {
	var p = int(prediction.pos)

	prediction.reconstructed_differences[p] = prediction.reconstructed_differences[p+order]
	p = (p + 1) % order
	prediction.pos = int32(p)
	prediction.reconstructed_differences[p+order] = reconstructed_difference

	return p + order
}

func aptx_prediction_filtering(prediction *aptx_prediction,
	reconstructed_difference int32, order int) {
	var reconstructed_sample = clip_intp2(reconstructed_difference+prediction.predicted_sample, 23)
	var predictor = clip_intp2(int32((int64(prediction.s_weight[0])*int64(prediction.previous_reconstructed_sample)+
		int64(prediction.s_weight[1])*int64(reconstructed_sample))>>22), 23)
	prediction.previous_reconstructed_sample = reconstructed_sample

	var head = aptx_reconstructed_differences_update(prediction, reconstructed_difference, order)
	var rd = prediction.reconstructed_differences[:]

	var srd0 = diffsign(reconstructed_difference, 0) * (1 << 23)
	var predicted_difference int64
	for i := 0; i < order; i++ {
		var srd = (rd[head-i-1] >> 31) | 1
		prediction.d_weight[i] -= rshift32(prediction.d_weight[i]-srd*srd0, 8)
		predicted_difference += int64(rd[head-i]) * int64(prediction.d_weight[i])
	}

	prediction.predicted_difference = clip_intp2(int32(predicted_difference>>22), 23)
	prediction.predicted_sample = clip_intp2(predictor+prediction.predicted_difference, 23)
}

func aptx_process_subband(invert_quantize *aptx_invert_quantize, prediction *aptx_prediction,
	quantized_sample int32, dither int32, tables *aptx_tables) {
	aptx_invert_quantization(invert_quantize, quantized_sample, dither, tables)

	var sign = diffsign(invert_quantize.reconstructed_difference,
		-prediction.predicted_difference)
	var same_sign = [2]int32{sign * prediction.prev_sign[0], sign * prediction.prev_sign[1]}
	prediction.prev_sign[0] = prediction.prev_sign[1]
	prediction.prev_sign[1] = sign | 1

	var sw1 = rshift32(-same_sign[1]*prediction.s_weight[1], 1)
	sw1 = (clip(sw1, -0x100000, 0x100000) &^ 0xF) * 16

	var weight0 = 254*prediction.s_weight[0] + 0x800000*same_sign[0] + sw1
	prediction.s_weight[0] = clip(rshift32(weight0, 8), -0x300000, 0x300000)

	var range1 = 0x3C0000 - prediction.s_weight[0]
	var weight1 = 255*prediction.s_weight[1] + 0xC00000*same_sign[1]
	prediction.s_weight[1] = clip(rshift32(weight1, 8), -range1, range1)

	aptx_prediction_filtering(prediction, invert_quantize.reconstructed_difference,
		tables.prediction_order)
}

func aptx_invert_quantize_and_prediction(channel *aptx_channel, tables *[NB_SUBBANDS]aptx_tables) {
	for subband := 0; subband < NB_SUBBANDS; subband++ {
		aptx_process_subband(&channel.invert_quantize[subband], &channel.prediction[subband],
			channel.quantize[subband].quantized_sample, channel.dither[subband],
			&tables[subband])
	}
}
