package utils

import (
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ErrInvalidAddress is returned for strings that are not 20-byte hex addresses.
var ErrInvalidAddress = errors.New("invalid wallet address")

// ChecksumAddress validates a 0x-prefixed 20-byte hex address and returns it
// in EIP-55 mixed-case checksum form.
//
// A hex letter is upper-cased when the matching nibble of
// Keccak-256(lower-case hex) is 8 or higher.
func ChecksumAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return "", ErrInvalidAddress
	}

	lower := strings.ToLower(address[2:])
	if len(lower) != 40 {
		return "", ErrInvalidAddress
	}
	if _, err := hex.DecodeString(lower); err != nil {
		return "", ErrInvalidAddress
	}

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}

		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - 'a' + 'A'
		}
	}

	return "0x" + string(out), nil
}

// ShortAddress renders 0x1234...abcd for display.
func ShortAddress(address string) string {
	if len(address) < 10 {
		return address
	}

	return address[:6] + "..." + address[len(address)-4:]
}
