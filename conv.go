// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastint

import (
	"fmt"
	"math/big"
	"sync"
)

// MaxBase is the largest number base accepted for string conversions.
const MaxBase = 10 + ('z' - 'a' + 1)

// Text returns the representation of x in the given base, using the lower
// case letters 'a' to 'z' for digit values >= 10, identical to the output
// of x.Text(base). It returns an ErrUnsupportedRadix error if base is
// outside the [2, MaxBase] range.
//
// Text uses DefaultContext; see Context.Text.
func Text(x *big.Int, base int) (string, error) {
	return DefaultContext.Text(x, base)
}

// Text returns the representation of x in the given base. It returns an
// ErrUnsupportedRadix error if base is outside the [2, MaxBase] range.
func (c *Context) Text(x *big.Int, base int) (string, error) {
	buf, err := c.Append(nil, x, base)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Append appends the representation of x in the given base to buf and
// returns the extended buffer. It returns an ErrUnsupportedRadix error if
// base is outside the [2, MaxBase] range.
func (c *Context) Append(buf []byte, x *big.Int, base int) ([]byte, error) {
	if base < 2 || base > MaxBase {
		return nil, makeError(ErrUnsupportedRadix,
			fmt.Sprintf("unsupported conversion base %d", base))
	}

	if x.Sign() < 0 {
		buf = append(buf, '-')
		x = new(big.Int).Neg(x)
	}

	if uint(x.BitLen()) < c.strThreshold() {
		// reference conversion; also takes care of x == 0
		return x.Append(buf, base), nil
	}

	pows := powCache.powers(base, uint(x.BitLen()))
	lg := len(pows)

	// convert into a scratch buffer of exactly 2^lg digit positions, then
	// strip the leading zeros (x != 0, so there is at least one non-zero
	// digit and the loop terminates)
	s := make([]byte, 1<<uint(lg))
	c.convert(s, x, base, pows, lg)
	i := 0
	for s[i] == '0' {
		i++
	}
	return append(buf, s[i:]...), nil
}

// convert writes exactly 2^lg base digits of x into s, left padded with
// zero digits. x must be non-negative and satisfy x < base^(2^lg), and
// len(s) must be 2^lg.
//
// The conversion splits x around pows[lg-1] = base^(2^(lg-1)): the quotient
// owns the top half of the digit positions and the remainder the bottom
// half, each converted recursively. The padding is positional, not
// cosmetic: a remainder with fewer significant digits than its window still
// has to land exactly against the quotient's digits.
func (c *Context) convert(s []byte, x *big.Int, base int, pows []*big.Int, lg int) {
	if lg == 0 || uint(x.BitLen()) < c.strThreshold() {
		d := x.Append(nil, base)
		if debugFastint && len(d) > len(s) {
			panic("BUG: conversion leaf overflows its digit window")
		}
		i := len(s) - len(d)
		for j := 0; j < i; j++ {
			s[j] = '0'
		}
		copy(s[i:], d)
		return
	}

	hi, lo := c.divmodAbs(x, pows[lg-1])
	half := 1 << uint(lg-1)
	c.convert(s[:half], hi, base, pows, lg-1)
	c.convert(s[half:], lo, base, pows, lg-1)
}

// powerCache holds, for each conversion base, the successive squares
// base^(2^i). Powers are pure functions of (base, i), so all conversions
// share one process-wide table; the lock only guards the map and slice
// headers, never the values, which are immutable once published. Racing
// extenders computing the same power twice would be harmless, but the map
// itself must not be mutated unsynchronized.
type powerCache struct {
	mu    sync.RWMutex
	table map[int][]*big.Int
}

var powCache = powerCache{table: make(map[int][]*big.Int)}

// powers returns the table of successive squares of base covering a value
// of bitLen bits: the last entry p of the returned slice satisfies p² >
// value for any value of at most bitLen bits, so a conversion may split
// around any entry without its quotient overflowing the allotted digits.
func (pc *powerCache) powers(base int, bitLen uint) []*big.Int {
	pc.mu.RLock()
	t := pc.table[base]
	pc.mu.RUnlock()
	if n := coveringPrefix(t, bitLen); n > 0 {
		return t[:n]
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()
	// another conversion may have extended the table in the meantime
	t = pc.table[base]
	if len(t) == 0 {
		t = []*big.Int{big.NewInt(int64(base))}
	}
	for !covers(t[len(t)-1], bitLen) {
		last := t[len(t)-1]
		t = append(t, new(big.Int).Mul(last, last))
	}
	pc.table[base] = t
	return t[:coveringPrefix(t, bitLen)]
}

// covers reports whether p² is guaranteed to exceed any value of bitLen
// bits. p ≥ 2^(b-1) for b = p.BitLen(), hence p² ≥ 2^(2b-2); the bound is
// derived from bit lengths alone so that no comparison against the value is
// needed, at the price of at most one extra squaring level.
func covers(p *big.Int, bitLen uint) bool {
	return 2*uint(p.BitLen())-2 >= bitLen
}

// coveringPrefix returns the length of the shortest prefix of t whose last
// entry covers bitLen, or 0 if none does.
func coveringPrefix(t []*big.Int, bitLen uint) int {
	for i, p := range t {
		if covers(p, bitLen) {
			return i + 1
		}
	}
	return 0
}
