package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const uint256HexLength = 64

// CanonicalAddress lowercases an address and strips its 0x prefix.
// Every address comparison in the service goes through it.
func CanonicalAddress(address string) string {
	address = strings.TrimSpace(address)
	if has0xPrefix(address) {
		address = address[2:]
	}
	return strings.ToLower(address)
}

// IsAddress reports whether s is a 20 byte hex address, with or without 0x prefix.
func IsAddress(s string) bool {
	return common.IsHexAddress(s)
}

// EncodeUint256 formats v as a 32 byte zero padded big-endian hex string without prefix.
func EncodeUint256(v *big.Int) string {
	if v == nil {
		v = new(big.Int)
	}
	return fmt.Sprintf("%064x", v)
}

// ParseHexInt parses a hex quantity such as "0x1a", "1a", "0x" or "".
// An empty quantity is zero.
func ParseHexInt(s string) (*big.Int, error) {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if s == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid hex quantity %q", s)
	}
	return v, nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
