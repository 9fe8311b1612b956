// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastint

import "math/big"

// Sqrt returns ⌊√x⌋, the largest integer s such that s² <= x. It returns
// an ErrNegativeOperand error if x < 0.
//
// Sqrt uses DefaultContext; see Context.Sqrt.
func Sqrt(x *big.Int) (*big.Int, error) {
	return DefaultContext.Sqrt(x)
}

// Sqrt returns ⌊√x⌋. It returns an ErrNegativeOperand error if x < 0.
//
// The input is not modified; the result is freshly allocated.
func (c *Context) Sqrt(x *big.Int) (*big.Int, error) {
	if x.Sign() < 0 {
		return nil, makeError(ErrNegativeOperand, "square root of negative operand")
	}
	return c.sqrtAbs(x), nil
}

// sqrtAbs computes ⌊√x⌋ for x >= 0 by Newton's method with precision
// doubling: the square root of the top half of x's bits, computed
// recursively and shifted back up, is accurate to about half the result's
// bits; one Newton step
//
//	s = (s + x/s) / 2
//
// doubles that accuracy, so each recursion level needs a single step at its
// own precision instead of every level paying for full-width divisions.
// Truncation can leave the estimate off by one in either direction near
// convergence, so an explicit ±1 correction pass makes the result exact.
func (c *Context) sqrtAbs(x *big.Int) *big.Int {
	// The reference square root wins below the threshold. The recursion
	// also bottoms out here: each level halves the bit length, and the
	// Newton step below needs a non-trivial estimate to divide by.
	if n := uint(x.BitLen()); n < c.sqrtThreshold() || n < 8 {
		return new(big.Int).Sqrt(x)
	}

	// estimate from the top half of the bits
	pad := uint(x.BitLen()) / 4
	s := c.sqrtAbs(new(big.Int).Rsh(x, 2*pad))
	s.Lsh(s, pad)

	// one Newton step at full precision
	q, _ := c.divmodAbs(x, s)
	s.Add(s, q)
	s.Rsh(s, 1)

	// Correct by ±1 until exact, maintaining s² incrementally: moving from
	// s² to (s±1)² only costs an addition of 2s±1. A converged Newton
	// estimate is off by at most one or two, so these loops run O(1) times.
	sq := q.Mul(s, s)
	t := new(big.Int)
	if sq.Cmp(x) > 0 {
		for sq.Cmp(x) > 0 {
			s.Sub(s, intOne)
			t.Lsh(s, 1)
			t.Or(t, intOne)
			sq.Sub(sq, t) // s² after the decrement
		}
	} else {
		for {
			t.Lsh(s, 1)
			t.Or(t, intOne)
			sq.Add(sq, t) // (s+1)²
			if sq.Cmp(x) > 0 {
				break
			}
			s.Add(s, intOne)
		}
	}

	return s
}
