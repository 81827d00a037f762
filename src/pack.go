package aptx

/*------------------------------------------------------------------
 *
 * Purpose:	Codeword packing and unpacking.
 *
 * Description:	One codeword carries the four quantized subband
 *		indices of one channel: 16 bits for aptX (7/4/2/3
 *		bits for LF/MLF/MHF/HF) and 24 bits for aptX HD
 *		(9/6/4/5).  The lowest HF bit is replaced by the
 *		channel's parity bit on the wire; unpacking restores
 *		it from the recomputed parity so the downstream
 *		arithmetic never sees the substitution.
 *
 *------------------------------------------------------------------*/

func aptx_pack_codeword(channel *aptx_channel) uint16 {
	var parity = aptx_quantized_parity(channel)
	return uint16((((channel.quantize[3].quantized_sample & 0x06) | parity) << 13) |
		((channel.quantize[2].quantized_sample & 0x03) << 11) |
		((channel.quantize[1].quantized_sample & 0x0F) << 7) |
		((channel.quantize[0].quantized_sample & 0x7F) << 0))
}

func aptxhd_pack_codeword(channel *aptx_channel) uint32 {
	var parity = aptx_quantized_parity(channel)
	return uint32((((channel.quantize[3].quantized_sample & 0x01E) | parity) << 19) |
		((channel.quantize[2].quantized_sample & 0x00F) << 15) |
		((channel.quantize[1].quantized_sample & 0x03F) << 9) |
		((channel.quantize[0].quantized_sample & 0x1FF) << 0))
}

func aptx_unpack_codeword(channel *aptx_channel, codeword uint16) {
	channel.quantize[0].quantized_sample = sign_extend(int32(codeword>>0), 7)
	channel.quantize[1].quantized_sample = sign_extend(int32(codeword>>7), 4)
	channel.quantize[2].quantized_sample = sign_extend(int32(codeword>>11), 2)
	channel.quantize[3].quantized_sample = sign_extend(int32(codeword>>13), 3)
	channel.quantize[3].quantized_sample =
		(channel.quantize[3].quantized_sample &^ 1) | aptx_quantized_parity(channel)
}

func aptxhd_unpack_codeword(channel *aptx_channel, codeword uint32) {
	channel.quantize[0].quantized_sample = sign_extend(int32(codeword>>0), 9)
	channel.quantize[1].quantized_sample = sign_extend(int32(codeword>>9), 6)
	channel.quantize[2].quantized_sample = sign_extend(int32(codeword>>15), 4)
	channel.quantize[3].quantized_sample = sign_extend(int32(codeword>>19), 5)
	channel.quantize[3].quantized_sample =
		(channel.quantize[3].quantized_sample &^ 1) | aptx_quantized_parity(channel)
}
