package devnet

import (
	"encoding/binary"
	"fmt"
)

const abiWordSize = 32

// EncodeInt256 packs values as consecutive ABI int256 words (big-endian
// two's complement).
func EncodeInt256(values ...int64) []byte {
	out := make([]byte, abiWordSize*len(values))
	for i, v := range values {
		word := out[i*abiWordSize : (i+1)*abiWordSize]
		if v < 0 {
			for j := 0; j < abiWordSize-8; j++ {
				word[j] = 0xff
			}
		}
		binary.BigEndian.PutUint64(word[abiWordSize-8:], uint64(v))
	}
	return out
}

// DecodeInt256 is the inverse of [EncodeInt256]. Words outside the int64
// range are rejected.
func DecodeInt256(data []byte) ([]int64, error) {
	if len(data)%abiWordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedABI, len(data))
	}

	values := make([]int64, 0, len(data)/abiWordSize)
	for off := 0; off < len(data); off += abiWordSize {
		word := data[off : off+abiWordSize]
		v := int64(binary.BigEndian.Uint64(word[abiWordSize-8:]))

		var pad byte
		if v < 0 {
			pad = 0xff
		}
		for _, b := range word[:abiWordSize-8] {
			if b != pad {
				return nil, fmt.Errorf("%w: word %d", ErrValueOutOfRange, off/abiWordSize)
			}
		}

		values = append(values, v)
	}

	return values, nil
}
