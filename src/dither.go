package aptx

/*------------------------------------------------------------------
 *
 * Purpose:	Per-subband dither derived from the codeword history.
 *
 * Description:	Both ends keep a rolling 32-bit history of low bits
 *		of the previous frame's quantized samples, so encoder
 *		and decoder generate identical dither without sending
 *		any of it over the air.  The same multiply chain also
 *		yields the dither parity bit that feeds the in-band
 *		sync marker.
 *
 *------------------------------------------------------------------*/

func aptx_update_codeword_history(channel *aptx_channel) {
	var cw = (channel.quantize[0].quantized_sample & 3) |
		((channel.quantize[1].quantized_sample & 2) << 1) |
		((channel.quantize[2].quantized_sample & 1) << 3)
	channel.codeword_history = (cw << 8) + (channel.codeword_history << 4)
}

func aptx_generate_dither(channel *aptx_channel) {
	aptx_update_codeword_history(channel)

	var m = int64(5184443) * int64(channel.codeword_history>>7)
	var d = int32(m*4 + (m >> 22))
	for subband := 0; subband < NB_SUBBANDS; subband++ {
		channel.dither[subband] = int32(uint32(d) << (23 - 5*uint(subband)))
	}
	channel.dither_parity = (d >> 25) & 1
}
