package aptx

/*------------------------------------------------------------------
 *
 * Purpose:	Fixed-point primitives shared by the whole DSP chain.
 *
 * Description:	Everything downstream is derived from the outputs of
 *		these helpers, so every rounding and clipping choice
 *		is load-bearing.  The rounding right shift is not a
 *		plain "round half up": after the biased shift it
 *		subtracts one again when the input sat exactly on a
 *		rounding midpoint whose lower neighbour is even, so
 *		ties land on the even neighbour.  Implemented literally.
 *
 *------------------------------------------------------------------*/

func rshift32(value int32, shift uint) int32 {
	var rounding = int32(1) << (shift - 1)
	var mask = (int32(1) << (shift + 1)) - 1
	var r = (value + rounding) >> shift
	if value&mask == rounding {
		r--
	}
	return r
}

func rshift64(value int64, shift uint) int64 {
	var rounding = int64(1) << (shift - 1)
	var mask = (int64(1) << (shift + 1)) - 1
	var r = (value + rounding) >> shift
	if value&mask == rounding {
		r--
	}
	return r
}

/* Saturate to the signed range representable in p+1 bits,
 * i.e. [-2^p, 2^p-1]. */
func clip_intp2(a int32, p uint) int32 {
	if (a+(int32(1)<<p))&^((int32(2)<<p)-1) != 0 {
		return (a >> 31) ^ ((int32(1) << p) - 1)
	}
	return a
}

func clip(a int32, amin int32, amax int32) int32 {
	if a < amin {
		return amin
	}
	if a > amax {
		return amax
	}
	return a
}

func rshift32_clip24(value int32, shift uint) int32 {
	return clip_intp2(rshift32(value, shift), 23)
}

func rshift64_clip24(value int64, shift uint) int32 {
	return clip_intp2(int32(rshift64(value, shift)), 23)
}

/* Arithmetic sign extension from an arbitrary bit width. */
func sign_extend(value int32, bits uint) int32 {
	var shift = 32 - bits
	return int32(uint32(value)<<shift) >> shift
}

/* (a > b) - (a < b): -1, 0 or +1.  The zero case matters; the
 * predictor updates depend on it. */
func diffsign(a int32, b int32) int32 {
	var r int32
	if a > b {
		r++
	}
	if a < b {
		r--
	}
	return r
}
