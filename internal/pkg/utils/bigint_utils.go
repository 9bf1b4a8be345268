package utils

import (
	"fmt"
	"math/big"
	"strings"
)

// FormatBigInt converts a big.Int value to a human-readable string,
// considering the given number of decimals.
// Example: amount=1234500000000000000, decimals=18 => "1.2345"
func FormatBigInt(amount *big.Int, decimals uint8) (string, error) {
	if amount == nil {
		return "0", nil
	}
	if decimals == 0 {
		return amount.String(), nil
	}

	divisor := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	value := new(big.Float).SetPrec(256).Quo(new(big.Float).SetPrec(256).SetInt(amount), divisor)

	formatted := value.Text('f', int(decimals))
	if strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimRight(formatted, ".")
	}
	if formatted == "" || formatted == "-0" {
		if amount.Sign() != 0 {
			return "", fmt.Errorf("formatting resulted in empty string for non-zero value %s", amount)
		}
		return "0", nil
	}
	return formatted, nil
}

// FormatUint64 is FormatBigInt for uint64 amounts.
func FormatUint64(amount uint64, decimals uint8) (string, error) {
	return FormatBigInt(new(big.Int).SetUint64(amount), decimals)
}
