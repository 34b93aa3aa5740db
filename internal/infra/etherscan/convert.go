package etherscan

import (
	"math/big"
)

var weiPerEth = new(big.Float).SetFloat64(1e18)

// WeiToEth converts an integer wei string to a decimal ETH string fixed
// to 4 places. Malformed input degrades to "0.0000".
func WeiToEth(wei string) string {
	f, ok := new(big.Float).SetString(wei)
	if !ok {
		return "0.0000"
	}
	return new(big.Float).Quo(f, weiPerEth).Text('f', 4)
}

// RawToDecimal converts a raw integer token balance using the token's
// decimal precision, fixed to 6 places. Malformed input degrades to "0".
func RawToDecimal(raw string, decimals int) string {
	f, ok := new(big.Float).SetString(raw)
	if !ok {
		return "0"
	}
	if decimals < 0 {
		decimals = 0
	}
	div := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	return new(big.Float).Quo(f, div).Text('f', 6)
}
