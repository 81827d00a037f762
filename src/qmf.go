package aptx

/*------------------------------------------------------------------
 *
 * Purpose:	Two-stage quadrature mirror filter tree.
 *
 * Description:	The analysis tree splits 4 PCM samples into one
 *		sample for each of the 4 subbands (LF, MLF, MHF, HF);
 *		the synthesis tree is its exact inverse.  Each stage
 *		is a two-branch polyphase FIR with 16 taps per branch;
 *		the two branches of a stage are mirror images.
 *
 *		The outer stage splits 0-11 kHz from 11-22 kHz, the
 *		two inner stages split each half again.
 *
 *------------------------------------------------------------------*/

var aptx_qmf_outer_coeffs = [NB_FILTERS][FILTER_TAPS]int32{
	{
		730, -413, -9611, 43626, -121026, 269973, -585547, 2801966,
		697128, -160481, 27611, 8478, -10043, 3511, 688, -897,
	},
	{
		-897, 688, 3511, -10043, 8478, 27611, -160481, 697128,
		2801966, -585547, 269973, -121026, 43626, -9611, -413, 730,
	},
}

var aptx_qmf_inner_coeffs = [NB_FILTERS][FILTER_TAPS]int32{
	{
		1033, -584, -13592, 61697, -171156, 381799, -828088, 3962579,
		985888, -226954, 39048, 11990, -14203, 4966, 973, -1268,
	},
	{
		-1268, 973, 4966, -14203, 11990, 39048, -226954, 985888,
		3962579, -828088, 381799, -171156, 61697, -13592, -584, 1033,
	},
}

/* Write the sample into both halves of the doubled buffer so the
 * convolution below can read 16 contiguous entries from pos. */
func aptx_qmf_filter_signal_push(signal *aptx_filter_signal, sample int32) {
	signal.buffer[signal.pos] = sample
	signal.buffer[signal.pos+FILTER_TAPS] = sample
	signal.pos = (signal.pos + 1) & (FILTER_TAPS - 1)
}

func aptx_qmf_convolution(signal *aptx_filter_signal, coeffs *[FILTER_TAPS]int32, shift uint) int32 {
	var sig = signal.buffer[signal.pos:]
	var e int64

	for i := 0; i < FILTER_TAPS; i++ {
		e += int64(sig[i]) * int64(coeffs[i])
	}

	return rshift64_clip24(e, shift)
}

/*
 * Half-band QMF analysis: consume two consecutive samples, emit one
 * low-band and one high-band sample at half the rate.
 */
func aptx_qmf_polyphase_analysis(signal *[NB_FILTERS]aptx_filter_signal,
	coeffs *[NB_FILTERS][FILTER_TAPS]int32, shift uint,
	samples *[NB_FILTERS]int32,
	low_subband_output *int32, high_subband_output *int32) {
	var subbands [NB_FILTERS]int32

	aptx_qmf_filter_signal_push(&signal[0], samples[1])
	aptx_qmf_filter_signal_push(&signal[1], samples[0])

	for i := 0; i < NB_FILTERS; i++ {
		subbands[i] = aptx_qmf_convolution(&signal[i], &coeffs[i], shift)
	}

	*low_subband_output = clip_intp2(subbands[0]+subbands[1], 23)
	*high_subband_output = clip_intp2(subbands[0]-subbands[1], 23)
}

/*
 * Half-band QMF synthesis: consume one low-band and one high-band
 * sample, emit two consecutive samples at twice the rate.
 */
func aptx_qmf_polyphase_synthesis(signal *[NB_FILTERS]aptx_filter_signal,
	coeffs *[NB_FILTERS][FILTER_TAPS]int32, shift uint,
	low_subband_input int32, high_subband_input int32,
	samples []int32) {
	var subbands [NB_FILTERS]int32

	subbands[0] = low_subband_input + high_subband_input
	subbands[1] = low_subband_input - high_subband_input

	aptx_qmf_filter_signal_push(&signal[0], subbands[1])
	aptx_qmf_filter_signal_push(&signal[1], subbands[0])

	for i := 0; i < NB_FILTERS; i++ {
		samples[i] = aptx_qmf_convolution(&signal[i], &coeffs[i], shift)
	}
}

func aptx_qmf_tree_analysis(qmf *aptx_QMF_analysis, samples *[4]int32, subband_samples *[4]int32) {
	var intermediate_samples [4]int32

	/* Outer stage: 0-22 kHz -> 0-11 kHz and 11-22 kHz */
	for i := 0; i < 2; i++ {
		var pair = [NB_FILTERS]int32{samples[2*i], samples[2*i+1]}
		aptx_qmf_polyphase_analysis(&qmf.outer_filter_signal,
			&aptx_qmf_outer_coeffs, 23, &pair,
			&intermediate_samples[0+i], &intermediate_samples[2+i])
	}

	/* Inner stages: split both halves again */
	for i := 0; i < 2; i++ {
		var pair = [NB_FILTERS]int32{intermediate_samples[2*i], intermediate_samples[2*i+1]}
		aptx_qmf_polyphase_analysis(&qmf.inner_filter_signal[i],
			&aptx_qmf_inner_coeffs, 23, &pair,
			&subband_samples[2*i+0], &subband_samples[2*i+1])
	}
}

func aptx_qmf_tree_synthesis(qmf *aptx_QMF_analysis, subband_samples *[4]int32, samples *[4]int32) {
	var intermediate_samples [4]int32

	/* Inner stages first, exact reverse of the analysis tree */
	for i := 0; i < 2; i++ {
		aptx_qmf_polyphase_synthesis(&qmf.inner_filter_signal[i],
			&aptx_qmf_inner_coeffs, 22,
			subband_samples[2*i+0], subband_samples[2*i+1],
			intermediate_samples[2*i:])
	}

	/* Then the outer stage */
	for i := 0; i < 2; i++ {
		var pair [NB_FILTERS]int32
		aptx_qmf_polyphase_synthesis(&qmf.outer_filter_signal,
			&aptx_qmf_outer_coeffs, 21,
			intermediate_samples[0+i], intermediate_samples[2+i],
			pair[:])
		samples[2*i+0] = pair[0]
		samples[2*i+1] = pair[1]
	}
}
