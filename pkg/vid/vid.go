package vid

import (
	"crypto/sha256"
	"math/big"
	"strconv"
	"time"
)

// Digits is the fixed width of a virtual ID.
const Digits = 16

var (
	now = time.Now

	lower = new(big.Int).Exp(big.NewInt(10), big.NewInt(Digits-1), nil) // 10^15
	span  = new(big.Int).Mul(big.NewInt(9), lower)                      // 9*10^15
)

// Generate derives a 16-digit candidate virtual ID from an identity value and
// the current unix timestamp. Candidates are pseudo-unique only: the caller
// must retry on a store-reported duplicate.
func Generate(identity string) string {
	seed := identity + strconv.FormatInt(now().Unix(), 10)
	sum := sha256.Sum256([]byte(seed))

	n := new(big.Int).SetBytes(sum[:])
	n.Mod(n, span)
	n.Add(n, lower)
	return n.String()
}

// Valid reports whether s is a well-formed virtual ID: 16 ASCII digits with a
// non-zero leading digit, i.e. a value in [10^15, 10^16).
func Valid(s string) bool {
	if len(s) != Digits || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
