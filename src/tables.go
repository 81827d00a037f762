package aptx

/*------------------------------------------------------------------
 *
 * Purpose:	Constant tables for the subband quantizers.
 *
 * Description:	For each variant and each subband there are four
 *		tables: the quantization decision intervals, the
 *		dither factors applied on the inverse-quantize side,
 *		the dither factors applied on the quantize side, and
 *		the offsets feeding the adaptive factor_select state.
 *
 *		Every value is load-bearing.  A single wrong digit
 *		produces silently diverging output, which is why the
 *		test suite pins a digest of the lot.
 *
 *------------------------------------------------------------------*/

type aptx_tables struct {
	quantize_intervals            []int32
	invert_quantize_dither_factors []int32
	quantize_dither_factors       []int32
	quantize_factor_select_offset []int16
	tables_size                   int32
	factor_max                    int32
	prediction_order              int
}

/* 2048 * 2^(i/32), the geometric step table indexed by
 * (factor_select & 0xFF) >> 3. */
var quantization_factors = [32]int32{
	2048, 2093, 2139, 2186, 2233, 2282, 2332, 2383,
	2435, 2489, 2543, 2599, 2656, 2714, 2774, 2834,
	2896, 2960, 3025, 3091, 3158, 3228, 3298, 3371,
	3444, 3520, 3597, 3676, 3756, 3838, 3922, 4008,
}

var quantize_intervals_LF = [65]int32{
	-9948, 9948, 29860, 49808, 69822, 89926, 110144, 130502,
	151026, 171738, 192666, 213832, 235264, 256982, 279014, 301384,
	324118, 347244, 370790, 394782, 419250, 444226, 469742, 495832,
	522536, 549890, 577936, 606720, 636290, 666700, 698006, 730270,
	763562, 797958, 833538, 870398, 908640, 948376, 989740, 1032874,
	1077948, 1125150, 1174700, 1226850, 1281900, 1340196, 1402156, 1468282,
	1539182, 1615610, 1698514, 1789098, 1888944, 2000168, 2125700, 2269644,
	2438308, 2642630, 2899950, 3243038, 3746310, 4535138, 5664098, 7102424,
	8897462,
}
var invert_quantize_dither_factors_LF = [65]int32{
	9948, 9948, 9962, 9988, 10026, 10078, 10142, 10218,
	10306, 10408, 10522, 10648, 10788, 10940, 11104, 11282,
	11472, 11674, 11890, 12118, 12358, 12612, 12878, 13158,
	13450, 13756, 14074, 14406, 14750, 15108, 15480, 15864,
	16262, 16672, 17096, 17534, 17984, 18448, 18926, 19416,
	19920, 20438, 20968, 21512, 22070, 22642, 23228, 23826,
	24438, 25064, 25704, 26358, 27026, 27708, 28404, 29114,
	29838, 30576, 31328, 32094, 32874, 33668, 34478, 35302,
	36142,
}
var quantize_dither_factors_LF = [65]int32{
	0, 4, 7, 10, 13, 16, 19, 22,
	26, 29, 32, 35, 38, 41, 45, 48,
	51, 54, 57, 60, 64, 67, 70, 73,
	77, 80, 83, 86, 90, 93, 96, 100,
	103, 106, 110, 113, 116, 120, 123, 126,
	130, 133, 136, 140, 143, 147, 150, 153,
	157, 160, 164, 167, 171, 174, 178, 181,
	185, 188, 192, 195, 199, 203, 206, 210,
	0,
}
var quantize_factor_select_offset_LF = [65]int16{
	0, -21, -19, -17, -15, -12, -10, -8,
	-6, -4, -1, 1, 3, 6, 8, 10,
	13, 15, 18, 20, 23, 26, 29, 31,
	34, 37, 40, 43, 47, 50, 53, 57,
	60, 64, 68, 72, 76, 80, 85, 89,
	94, 99, 105, 110, 116, 123, 129, 136,
	144, 152, 161, 171, 182, 194, 207, 223,
	241, 263, 291, 328, 382, 467, 522, 522,
	522,
}

var quantize_intervals_MLF = [9]int32{
	-89806, 89806, 278502, 494338, 759442, 1113112, 1652322, 2720256,
	5190186,
}
var invert_quantize_dither_factors_MLF = [9]int32{
	89806, 89806, 98890, 116946, 148158, 205512, 333698, 734236,
	1735696,
}
var quantize_dither_factors_MLF = [9]int32{
	0, 2271, 4514, 7803, 14339, 32047, 100135, 250365,
	0,
}
var quantize_factor_select_offset_MLF = [9]int16{
	0, -21, -16, -11, -5, 2, 12, 32,
	522,
}

var quantize_intervals_MHF = [3]int32{
	-194080, 194080, 890562,
}
var invert_quantize_dither_factors_MHF = [3]int32{
	194080, 194080, 502402,
}
var quantize_dither_factors_MHF = [3]int32{
	0, 77081, 0,
}
var quantize_factor_select_offset_MHF = [3]int16{
	0, -14, 522,
}

var quantize_intervals_HF = [5]int32{
	-163006, 163006, 542708, 1120554, 2669238,
}
var invert_quantize_dither_factors_HF = [5]int32{
	163006, 163006, 216698, 361148, 814666,
}
var quantize_dither_factors_HF = [5]int32{
	0, 13423, 36113, 113380, 0,
}
var quantize_factor_select_offset_HF = [5]int16{
	0, -17, 2, 58, 522,
}

var hd_quantize_intervals_LF = [257]int32{
	-2488, 2488, 7466, 12446, 17428, 22412, 27398, 32388,
	37382, 42382, 47386, 52394, 57408, 62428, 67454, 72486,
	77526, 82572, 87626, 92688, 97758, 102836, 107924, 113022,
	118130, 123248, 128376, 133516, 138666, 143828, 149002, 154188,
	159388, 164602, 169828, 175070, 180326, 185596, 190882, 196182,
	201500, 206834, 212184, 217552, 222936, 228338, 233758, 239196,
	244654, 250132, 255628, 261144, 266682, 272240, 277820, 283422,
	289046, 294692, 300360, 306052, 311768, 317508, 323272, 329060,
	334874, 340714, 346580, 352474, 358394, 364342, 370318, 376322,
	382354, 388416, 394508, 400630, 406782, 412966, 419182, 425430,
	431710, 438024, 444372, 450752, 457168, 463620, 470108, 476630,
	483190, 489788, 496424, 503098, 509812, 516566, 523360, 530194,
	537072, 543992, 550954, 557960, 565010, 572106, 579248, 586436,
	593672, 600956, 608288, 615668, 623100, 630584, 638120, 645708,
	653350, 661048, 668800, 676608, 684474, 692400, 700384, 708428,
	716534, 724702, 732934, 741230, 749592, 758022, 766520, 775086,
	783724, 792434, 801218, 810074, 819006, 828018, 837108, 846278,
	855530, 864866, 874288, 883796, 893392, 903080, 912860, 922732,
	932700, 942768, 952936, 963206, 973578, 984060, 994650, 1005350,
	1016162, 1027094, 1038146, 1049318, 1060612, 1072036, 1083592, 1095280,
	1107102, 1119068, 1131180, 1143436, 1155838, 1168402, 1181126, 1194010,
	1207056, 1220282, 1233686, 1247270, 1261032, 1274994, 1289158, 1303522,
	1318086, 1332876, 1347892, 1363134, 1378602, 1394324, 1410304, 1426542,
	1443036, 1459820, 1476900, 1494274, 1511942, 1529944, 1548286, 1566970,
	1585996, 1605408, 1625220, 1645432, 1666044, 1687108, 1708648, 1730662,
	1753150, 1776178, 1799778, 1823950, 1848694, 1874090, 1900190, 1926992,
	1954496, 1982806, 2012000, 2042078, 2073040, 2105018, 2138134, 2172388,
	2207778, 2244492, 2282732, 2322498, 2363792, 2406902, 2452214, 2499728,
	2549446, 2601774, 2657374, 2716248, 2778396, 2844492, 2915886, 2992576,
	3074564, 3163162, 3261654, 3370040, 3488320, 3618338, 3765992, 3931284,
	4114214, 4315422, 4537638, 4780862, 5045096, 5330066, 5634144, 5957330,
	6299624, 6661304, 7045016, 7450760, 7878536, 8327296, 8776056, 9224816,
	9673576,
}
var hd_invert_quantize_dither_factors_LF = [257]int32{
	2488, 2488, 2488, 2488, 2488, 2488, 2490, 2490,
	2492, 2494, 2494, 2496, 2498, 2500, 2502, 2506,
	2508, 2510, 2514, 2518, 2520, 2524, 2528, 2532,
	2536, 2542, 2546, 2550, 2556, 2562, 2566, 2572,
	2578, 2584, 2590, 2596, 2604, 2610, 2618, 2624,
	2632, 2640, 2648, 2656, 2664, 2672, 2680, 2690,
	2698, 2708, 2718, 2726, 2736, 2746, 2756, 2766,
	2778, 2788, 2800, 2810, 2822, 2834, 2846, 2858,
	2870, 2882, 2894, 2908, 2920, 2934, 2946, 2960,
	2974, 2988, 3002, 3016, 3030, 3046, 3060, 3076,
	3090, 3106, 3122, 3138, 3154, 3170, 3188, 3204,
	3220, 3238, 3256, 3274, 3290, 3310, 3328, 3346,
	3364, 3382, 3402, 3422, 3440, 3460, 3480, 3500,
	3520, 3540, 3562, 3582, 3602, 3624, 3646, 3668,
	3688, 3712, 3734, 3756, 3778, 3802, 3826, 3848,
	3872, 3896, 3920, 3944, 3968, 3992, 4018, 4042,
	4068, 4092, 4118, 4144, 4170, 4196, 4222, 4250,
	4276, 4304, 4330, 4358, 4386, 4414, 4442, 4470,
	4498, 4526, 4556, 4584, 4614, 4644, 4674, 4704,
	4734, 4764, 4794, 4826, 4856, 4888, 4918, 4950,
	4982, 5014, 5046, 5080, 5112, 5144, 5178, 5210,
	5244, 5278, 5312, 5346, 5380, 5416, 5450, 5484,
	5520, 5556, 5592, 5628, 5662, 5700, 5736, 5772,
	5810, 5846, 5884, 5922, 5958, 5998, 6036, 6074,
	6112, 6152, 6190, 6230, 6268, 6308, 6348, 6388,
	6428, 6470, 6510, 6552, 6592, 6634, 6676, 6718,
	6760, 6802, 6844, 6888, 6930, 6974, 7016, 7060,
	7104, 7148, 7192, 7238, 7282, 7326, 7372, 7418,
	7462, 7508, 7554, 7600, 7648, 7694, 7742, 7788,
	7836, 7884, 7930, 7978, 8026, 8076, 8124, 8174,
	8222, 8272, 8322, 8370, 8420, 8472, 8522, 8572,
	8622, 8674, 8726, 8778, 8830, 8882, 8934, 8986,
	9040,
}
var hd_quantize_dither_factors_LF = [257]int32{
	0, 0, 0, 0, 0, 1, 0, 1,
	1, 0, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	2, 1, 1, 2, 2, 1, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 3, 2,
	3, 3, 2, 3, 3, 3, 3, 3,
	3, 3, 3, 3, 3, 3, 3, 3,
	3, 3, 4, 3, 4, 3, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 5, 4, 4,
	5, 5, 5, 4, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 6, 5, 5, 6, 6, 6, 5,
	6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 7, 6, 7,
	6, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7,
	7, 8, 7, 8, 8, 8, 8, 8,
	8, 8, 8, 8, 8, 8, 8, 8,
	8, 8, 9, 8, 8, 9, 8, 9,
	9, 9, 9, 9, 9, 9, 9, 9,
	9, 9, 9, 9, 10, 9, 9, 10,
	9, 10, 10, 9, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10,
	11, 10, 11, 10, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 12, 11, 11, 12, 12, 11,
	12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 13, 12, 13, 12,
	13, 13, 12, 13, 13, 13, 13, 13,
	13, 13, 13, 13, 13, 13, 13, 14,
	0,
}
var hd_quantize_factor_select_offset_LF = [257]int16{
	0, -22, -21, -21, -21, -20, -20, -20,
	-19, -18, -18, -18, -17, -16, -16, -16,
	-15, -14, -14, -13, -12, -12, -11, -10,
	-10, -10, -9, -8, -8, -8, -7, -6,
	-6, -6, -5, -4, -4, -3, -2, -2,
	-1, 0, 0, 0, 1, 2, 2, 2,
	3, 4, 4, 5, 6, 6, 7, 8,
	8, 8, 9, 10, 10, 11, 12, 12,
	13, 14, 14, 14, 15, 16, 16, 17,
	18, 18, 19, 20, 20, 21, 22, 22,
	23, 24, 24, 25, 26, 27, 28, 28,
	29, 30, 30, 30, 31, 32, 32, 33,
	34, 35, 36, 36, 37, 38, 38, 39,
	40, 41, 42, 42, 43, 44, 45, 46,
	47, 48, 48, 49, 50, 51, 52, 52,
	53, 54, 55, 56, 57, 58, 58, 59,
	60, 61, 62, 63, 64, 65, 66, 67,
	68, 69, 70, 71, 72, 73, 74, 75,
	76, 77, 78, 79, 80, 81, 82, 84,
	85, 86, 87, 88, 89, 90, 92, 93,
	94, 95, 96, 98, 99, 100, 102, 104,
	105, 106, 108, 109, 110, 112, 113, 114,
	116, 118, 120, 121, 123, 124, 126, 128,
	129, 131, 132, 134, 136, 138, 140, 142,
	144, 146, 148, 150, 152, 154, 156, 159,
	161, 164, 166, 168, 171, 174, 176, 179,
	182, 185, 188, 191, 194, 197, 200, 204,
	207, 211, 215, 219, 223, 228, 232, 236,
	241, 246, 252, 258, 263, 270, 277, 284,
	291, 300, 310, 319, 328, 342, 355, 368,
	382, 403, 424, 446, 467, 481, 494, 508,
	522, 522, 522, 522, 522, 522, 522, 522,
	522,
}

var hd_quantize_intervals_MLF = [33]int32{
	-22452, 22452, 69626, 118332, 168570, 220340, 273642, 329190,
	387520, 448630, 512522, 579512, 651502, 728492, 810482, 897472,
	993370, 1099742, 1216590, 1343912, 1487242, 1660420, 1863444, 2096316,
	2359036, 2693858, 3107824, 3600936, 4173192, 4790674, 5408156, 6025638,
	6643120,
}
var hd_invert_quantize_dither_factors_MLF = [33]int32{
	22452, 22452, 22452, 22452, 22452, 23020, 23588, 24156,
	24724, 25852, 26980, 28108, 29238, 31188, 33138, 35090,
	37040, 40626, 44210, 47794, 51380, 59390, 67402, 75414,
	83426, 108460, 133494, 158528, 183564, 246156, 308748, 371342,
	433934,
}
var hd_quantize_dither_factors_MLF = [33]int32{
	0, 0, 0, 0, 142, 142, 142, 142,
	282, 282, 282, 283, 488, 488, 488, 488,
	897, 896, 896, 897, 2003, 2003, 2003, 2003,
	6259, 6259, 6259, 6259, 15648, 15648, 15649, 15648,
	0,
}
var hd_quantize_factor_select_offset_MLF = [33]int16{
	0, -22, -21, -21, -21, -20, -18, -17,
	-16, -15, -14, -12, -11, -10, -8, -6,
	-5, -3, -2, 0, 2, 4, 7, 10,
	12, 17, 22, 27, 32, 154, 277, 400,
	522,
}

var hd_quantize_intervals_MHF = [9]int32{
	-48520, 48520, 222640, 396760, 570880, 745000, 919120, 1093240,
	1267360,
}
var hd_invert_quantize_dither_factors_MHF = [9]int32{
	48520, 48520, 48520, 48520, 48520, 67790, 87060, 106330,
	125600,
}
var hd_quantize_dither_factors_MHF = [9]int32{
	0, 0, 0, 0, 4818, 4818, 4818, 4818,
	0,
}
var hd_quantize_factor_select_offset_MHF = [9]int16{
	0, -15, -14, -14, -14, 120, 254, 388,
	522,
}

var hd_quantize_intervals_HF = [17]int32{
	-40752, 40752, 135678, 240512, 355252, 479900, 614456, 758918,
	951922, 1193468, 1483556, 1822186, 2209360, 2596534, 2983708, 3370882,
	3758056,
}
var hd_invert_quantize_dither_factors_HF = [17]int32{
	40752, 40752, 40752, 40752, 40752, 44108, 47464, 50820,
	54176, 63204, 72232, 81260, 90288, 118634, 146978, 175324,
	203668,
}
var hd_quantize_dither_factors_HF = [17]int32{
	0, 0, 0, 0, 839, 839, 839, 839,
	2257, 2257, 2257, 2257, 7087, 7086, 7087, 7086,
	0,
}
var hd_quantize_factor_select_offset_HF = [17]int16{
	0, -18, -17, -17, -17, -12, -8, -3,
	2, 16, 30, 44, 58, 174, 290, 406,
	522,
}


/* all_tables[hd][subband] */
var all_tables = [2][NB_SUBBANDS]aptx_tables{
	{
		{quantize_intervals_LF[:], invert_quantize_dither_factors_LF[:],
			quantize_dither_factors_LF[:], quantize_factor_select_offset_LF[:],
			65, 0x11FF, 24}, /* LF */
		{quantize_intervals_MLF[:], invert_quantize_dither_factors_MLF[:],
			quantize_dither_factors_MLF[:], quantize_factor_select_offset_MLF[:],
			9, 0x14FF, 12}, /* MLF */
		{quantize_intervals_MHF[:], invert_quantize_dither_factors_MHF[:],
			quantize_dither_factors_MHF[:], quantize_factor_select_offset_MHF[:],
			3, 0x16FF, 6}, /* MHF */
		{quantize_intervals_HF[:], invert_quantize_dither_factors_HF[:],
			quantize_dither_factors_HF[:], quantize_factor_select_offset_HF[:],
			5, 0x15FF, 12}, /* HF */
	},
	{
		{hd_quantize_intervals_LF[:], hd_invert_quantize_dither_factors_LF[:],
			hd_quantize_dither_factors_LF[:], hd_quantize_factor_select_offset_LF[:],
			257, 0x11FF, 24}, /* LF */
		{hd_quantize_intervals_MLF[:], hd_invert_quantize_dither_factors_MLF[:],
			hd_quantize_dither_factors_MLF[:], hd_quantize_factor_select_offset_MLF[:],
			33, 0x14FF, 12}, /* MLF */
		{hd_quantize_intervals_MHF[:], hd_invert_quantize_dither_factors_MHF[:],
			hd_quantize_dither_factors_MHF[:], hd_quantize_factor_select_offset_MHF[:],
			9, 0x16FF, 6}, /* MHF */
		{hd_quantize_intervals_HF[:], hd_invert_quantize_dither_factors_HF[:],
			hd_quantize_dither_factors_HF[:], hd_quantize_factor_select_offset_HF[:],
			17, 0x15FF, 12}, /* HF */
	},
}
