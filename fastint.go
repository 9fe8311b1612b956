package fastint

import (
	"math/big"
	"sync"
)

const debugFastint = true

var intOne = big.NewInt(1)

// splitHiLo splits x at bit index i such that x = hi<<i | lo with
// 0 <= lo < 1<<i. x must be non-negative; hi and lo must be distinct and
// must not alias x.
func splitHiLo(hi, lo, x *big.Int, i uint) {
	hi.Rsh(x, i)
	lo.Lsh(hi, i)
	lo.Sub(x, lo)
}

// getInt returns a *big.Int from the pool. The value is not zeroed.
// The pool holds *big.Int scratch values used for intermediate products in
// the division recursion; values handed back to callers are never pooled.
func getInt() *big.Int {
	if v := intPool.Get(); v != nil {
		return v.(*big.Int)
	}
	return new(big.Int)
}

func putInt(x *big.Int) {
	intPool.Put(x)
}

var intPool sync.Pool
