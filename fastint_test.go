package fastint

import (
	"math/big"
	"math/rand"
)

var rnd = rand.New(rand.NewSource(0x5eed))

// rndInt returns a random integer of exactly n bits (0 for n == 0).
func rndInt(n uint) *big.Int {
	x := new(big.Int)
	if n == 0 {
		return x
	}
	buf := make([]byte, (n+7)/8)
	rnd.Read(buf)
	x.SetBytes(buf)
	// trim to n bits and pin the top bit so that x.BitLen() == n
	x.Rsh(x, uint(len(buf))*8-n)
	x.SetBit(x, int(n-1), 1)
	return x
}

// refDivMod computes the floored division of x by y with the reference
// big.Int primitives: quotient toward negative infinity, remainder sign
// matching the divisor.
func refDivMod(x, y *big.Int) (q, r *big.Int) {
	q, r = new(big.Int), new(big.Int)
	q.QuoRem(x, y, r)
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		q.Sub(q, intOne)
		r.Add(r, y)
	}
	return q, r
}

// tiny thresholds force the recursive paths onto operands small enough to
// test exhaustively; results must not depend on them.
var testContext = &Context{
	DivThreshold:  16,
	StrThreshold:  32,
	SqrtThreshold: 8,
}
