package aptx

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_tables_shape(t *testing.T) {
	var sizes = [2][NB_SUBBANDS]int32{{65, 9, 3, 5}, {257, 33, 9, 17}}
	var factor_max = [NB_SUBBANDS]int32{0x11FF, 0x14FF, 0x16FF, 0x15FF}
	var orders = [NB_SUBBANDS]int{24, 12, 6, 12}

	for hd := 0; hd < 2; hd++ {
		for subband := 0; subband < NB_SUBBANDS; subband++ {
			var tables = &all_tables[hd][subband]

			assert.Equal(t, sizes[hd][subband], tables.tables_size)
			assert.Len(t, tables.quantize_intervals, int(tables.tables_size))
			assert.Len(t, tables.invert_quantize_dither_factors, int(tables.tables_size))
			assert.Len(t, tables.quantize_dither_factors, int(tables.tables_size))
			assert.Len(t, tables.quantize_factor_select_offset, int(tables.tables_size))
			assert.Equal(t, factor_max[subband], tables.factor_max)
			assert.Equal(t, orders[subband], tables.prediction_order)

			// Decision intervals are strictly increasing, and the
			// first invert dither factor equals the first positive
			// interval
			for i := 1; i < int(tables.tables_size)-1; i++ {
				assert.Less(t, tables.quantize_intervals[i], tables.quantize_intervals[i+1])
			}
			assert.Equal(t, tables.quantize_intervals[1], tables.invert_quantize_dither_factors[0])
			assert.Equal(t, -tables.quantize_intervals[1], tables.quantize_intervals[0])
		}
	}
}

/* A single wrong digit in any constant produces silently diverging
 * streams, so the whole lot is pinned by digest. */
func Test_tables_digest(t *testing.T) {
	var h = sha256.New()

	var write_i32 = func(vals []int32) {
		for _, v := range vals {
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], uint32(v))
			h.Write(b[:])
		}
	}
	var write_i16 = func(vals []int16) {
		for _, v := range vals {
			var b [2]byte
			binary.LittleEndian.PutUint16(b[:], uint16(v))
			h.Write(b[:])
		}
	}

	for hd := 0; hd < 2; hd++ {
		for subband := 0; subband < NB_SUBBANDS; subband++ {
			var tables = &all_tables[hd][subband]
			write_i32(tables.quantize_intervals)
			write_i32(tables.invert_quantize_dither_factors)
			write_i32(tables.quantize_dither_factors)
			write_i16(tables.quantize_factor_select_offset)
		}
	}
	write_i32(quantization_factors[:])
	for i := 0; i < NB_FILTERS; i++ {
		write_i32(aptx_qmf_outer_coeffs[i][:])
	}
	for i := 0; i < NB_FILTERS; i++ {
		write_i32(aptx_qmf_inner_coeffs[i][:])
	}

	var vectors = load_vectors(t)
	require.Equal(t, vectors.TablesSHA256, hex.EncodeToString(h.Sum(nil)))
}
