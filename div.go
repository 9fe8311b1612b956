// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastint

import "math/big"

// DivMod returns the quotient and remainder of x by y under the floored
// division convention: the quotient rounds toward negative infinity and the
// remainder takes the sign of the divisor, so that x == q*y + r with
// 0 <= |r| < |y|. It returns an ErrInvalidDivisor error if y == 0.
//
// DivMod uses DefaultContext; see Context.DivMod.
func DivMod(x, y *big.Int) (q, r *big.Int, err error) {
	return DefaultContext.DivMod(x, y)
}

// DivMod returns the quotient and remainder of x by y under the floored
// division convention. It returns an ErrInvalidDivisor error if y == 0.
//
// The inputs are not modified; the results are freshly allocated.
func (c *Context) DivMod(x, y *big.Int) (q, r *big.Int, err error) {
	if y.Sign() == 0 {
		return nil, nil, makeError(ErrInvalidDivisor, "division by zero")
	}

	m := new(big.Int).Abs(x)
	n := new(big.Int).Abs(y)
	q, r = c.divmodAbs(m, n)

	// Reattach signs. The magnitude division yields |x| = q*|y| + r with
	// 0 <= r < |y|; the floored convention follows from it by at most one
	// quotient adjustment.
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs >= 0 && ys > 0:
		// nothing to do
	case xs <= 0 && ys < 0:
		r.Neg(r)
	case r.Sign() == 0:
		q.Neg(q)
	default:
		// operands of opposite, non-zero signs and a non-zero remainder:
		// q = -(q+1), and the remainder folds into the divisor's range.
		q.Add(q, intOne)
		q.Neg(q)
		if xs > 0 {
			r.Add(y, r)
		} else {
			r.Sub(y, r)
		}
	}
	return q, r, nil
}

// divmodAbs returns q, r such that m = q*n + r with 0 <= r < n. Both
// operands must be non-negative and n must be non-zero. The inputs are not
// modified; the results are freshly allocated.
//
// The recursion is designed to be optimal for m.BitLen() == 2*n.BitLen(),
// where the division reduces to two half-sized divisions plus two
// half-by-half multiplications; any other shape is first massaged into that
// case. The divisor bit length strictly decreases in every recursive call,
// and falls through to the reference big.Int division below the context's
// division threshold.
func (c *Context) divmodAbs(m, n *big.Int) (q, r *big.Int) {
	mlen, nlen := uint(m.BitLen()), uint(n.BitLen())

	switch {
	case nlen < c.divThreshold():
		// The reference division outpaces the algorithmic gains on small
		// divisors.
		q, r = new(big.Int), new(big.Int)
		q.QuoRem(m, n, r)
		return q, r

	case mlen < nlen:
		// m < n
		return new(big.Int), new(big.Int).Set(m)

	case mlen == nlen:
		// Either m < n, or n <= m < 2n and the quotient is 1. The loop
		// cannot run more than once.
		q, r = new(big.Int), new(big.Int).Set(m)
		for r.Cmp(n) >= 0 {
			r.Sub(r, n)
			q.Add(q, intOne)
		}
		return q, r

	case mlen < 2*nlen:
		return c.divmodUnbalanced(m, n, mlen, nlen)

	case mlen == 2*nlen:
		return c.divmodBalanced(m, n, nlen)
	}

	return c.divmodBlocks(m, n, nlen)
}

// divmodUnbalanced handles nlen < mlen < 2*nlen. With k = mlen-nlen, the
// top 2k bits of m divided by the top k bits of n approximate the quotient
// to within a couple of units; the remainder is then rebuilt from the low
// bits and the quotient corrected by ±1 until 0 <= r < n.
func (c *Context) divmodUnbalanced(m, n *big.Int, mlen, nlen uint) (q, r *big.Int) {
	k := mlen - nlen
	excess := nlen - k // > 0 since mlen < 2*nlen

	mHi, mLo := new(big.Int), new(big.Int)
	splitHiLo(mHi, mLo, m, excess)
	nHi, nLo := new(big.Int), new(big.Int)
	splitHiLo(nHi, nLo, n, excess)

	q, r = c.divmodAbs(mHi, nHi)

	// r = m - n*q
	t := getInt().Mul(nLo, q)
	r.Lsh(r, excess)
	r.Or(r, mLo)
	r.Sub(r, t)
	putInt(t)

	for r.Sign() < 0 {
		r.Add(r, n)
		q.Sub(q, intOne)
	}
	for r.Cmp(n) >= 0 {
		r.Sub(r, n)
		q.Add(q, intOne)
	}
	return q, r
}

// divmodBalanced handles the ideal case mlen == 2*nlen. With k = nlen, the
// division splits into two k-by-⌈k/2⌉ divisions. For a 16-bit by 8-bit
// example
//
//	m = aaaabbbbccccdddd
//	n =         eeeeffff
//
// the quotient of aaaabbbbcccc by eeeeffff is approximated by aaaabbbb/eeee
// and corrected; its remainder, concatenated with dddd, forms a second
// 12-bit by 8-bit division handled the same way. The two half-quotients,
// shifted and added, form the final quotient.
func (c *Context) divmodBalanced(m, n *big.Int, nlen uint) (q, r *big.Int) {
	k := nlen
	khf := k / 2
	khc := k - khf

	mHi, t := new(big.Int), new(big.Int)
	splitHiLo(mHi, t, m, k)
	mMid, mLo := new(big.Int), new(big.Int)
	splitHiLo(mMid, mLo, t, khc)
	nHi, nLo := new(big.Int), new(big.Int)
	splitHiLo(nHi, nLo, n, khf)

	q1, r1 := c.divmodAbs(mHi, nHi)

	// r1 = (m >> khc) - q1*n
	t.Mul(nLo, q1)
	r1.Lsh(r1, khf)
	r1.Or(r1, mMid)
	r1.Sub(r1, t)

	for r1.Sign() < 0 {
		r1.Add(r1, n)
		q1.Sub(q1, intOne)
	}
	for r1.Cmp(n) >= 0 {
		r1.Sub(r1, n)
		q1.Add(q1, intOne)
	}

	q2, r2 := c.divmodAbs(r1, nHi)
	if k&1 != 0 {
		// nHi drops khf bits from n but the dividend window drops khc;
		// for odd k the approximation is off by that one-bit mismatch.
		q2.Lsh(q2, 1)
	}

	// r2 = (r1 << khc | mLo) - n*q2
	t.Mul(nLo, q2)
	r2.Lsh(r2, khc)
	r2.Or(r2, mLo)
	r2.Sub(r2, t)

	for r2.Sign() < 0 {
		r2.Add(r2, n)
		q2.Sub(q2, intOne)
	}
	for r2.Cmp(n) >= 0 {
		r2.Sub(r2, n)
		q2.Add(q2, intOne)
	}

	q = q1.Lsh(q1, khc)
	q.Add(q, q2)
	return q, r2
}

// divmodBlocks handles mlen > 2*nlen by long division in base 2^(2*nlen):
// repeatedly divide the top 2*nlen-bit window of the running remainder by n
// (hitting the balanced case), accumulate the partial quotient, and
// reattach the unprocessed low bits. Pending quotient zeros are tracked as
// a shift amount instead of being materialized at every step.
func (c *Context) divmodBlocks(m, n *big.Int, nlen uint) (q, r *big.Int) {
	k := nlen
	q = new(big.Int)
	r = new(big.Int).Set(m)
	remaining := uint(r.BitLen()) - 2*k

	rHi, rLo := getInt(), getInt()
	for r.Cmp(n) >= 0 {
		newRemaining := uint(0)
		if bl := uint(r.BitLen()); bl > 2*k {
			newRemaining = bl - 2*k
		}
		q.Lsh(q, remaining-newRemaining)
		remaining = newRemaining

		splitHiLo(rHi, rLo, r, remaining)
		qi, rem := c.divmodAbs(rHi, n)
		r.Lsh(rem, remaining)
		r.Or(r, rLo)
		q.Add(q, qi)
	}
	putInt(rHi)
	putInt(rLo)

	q.Lsh(q, remaining)
	return q, r
}
