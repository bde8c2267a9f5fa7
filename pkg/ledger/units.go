package ledger

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

const etherDecimals = 18

var weiPerEther = big.NewInt(params.Ether)

// FromWei converts the ledger's smallest-unit integer into native currency
// units.
func FromWei(wei *big.Int) *big.Float {
	if wei == nil {
		return new(big.Float)
	}
	f := new(big.Float).SetPrec(256).SetInt(wei)
	return f.Quo(f, new(big.Float).SetPrec(256).SetInt(weiPerEther))
}

// ToWei converts a native currency amount to wei. The shortest decimal form
// of amount is used, so float64 literals such as 0.1 convert exactly.
// Anything finer than one wei is rounded.
func ToWei(amount *big.Float) (*big.Int, error) {
	if amount == nil {
		return nil, fmt.Errorf("amount is required")
	}
	if amount.IsInf() {
		return nil, fmt.Errorf("amount is infinite")
	}
	s := amount.Text('f', -1)
	if _, frac, _ := strings.Cut(s, "."); len(frac) > etherDecimals {
		s = amount.Text('f', etherDecimals)
	}
	return ParseEther(s)
}

// ParseEther parses a decimal string such as "0.25" into wei exactly.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("amount is empty")
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if (whole == "" && frac == "") || !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > etherDecimals {
		return nil, fmt.Errorf("amount %q has more than %d decimal places", s, etherDecimals)
	}
	digits := whole + frac + strings.Repeat("0", etherDecimals-len(frac))
	wei, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	if neg {
		wei.Neg(wei)
	}
	return wei, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatEther renders wei as an exact decimal string with trailing zeros
// trimmed.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	abs := new(big.Int).Abs(wei)
	q, r := new(big.Int).QuoRem(abs, weiPerEther, new(big.Int))
	out := q.String()
	if r.Sign() != 0 {
		frac := fmt.Sprintf("%0*s", etherDecimals, r.String())
		out += "." + strings.TrimRight(frac, "0")
	}
	if wei.Sign() < 0 {
		out = "-" + out
	}
	return out
}
