// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fastint accelerates three operations over math/big integers so that
each scales with the cost of multiplication rather than the cost of
schoolbook division: division with remainder, conversion to a digit string
in a fixed base, and floor square root.

The package builds exclusively on the value-producing *big.Int primitives
(Add, Sub, Lsh, Rsh, Cmp, Mul); it never touches Word slices. Division is
computed by a recursive divide-and-conquer scheme that reduces a large
division to two half-sized divisions plus a bounded number of multiplications
per level, so its cost tracks whatever asymptotic exponent the big.Int
multiplication achieves. String conversion splits the digit count in half
around precomputed base powers and recombines the halves; square root runs
Newton iterations with precision doubling and an exact final correction.

Below a configurable bit-length threshold every operation delegates to the
corresponding math/big routine (Int.QuoRem, Int.Append, Int.Sqrt), which is
faster for small operands and serves as the reference semantics: results are
identical on either side of a threshold, bit for bit and byte for byte.

The three entry points are pure functions over immutable inputs:

	q, r, err := fastint.DivMod(x, y)  // floored division, remainder sign follows y
	s, err := fastint.Text(x, 10)      // identical to x.Text(10)
	s, err := fastint.Sqrt(x)          // ⌊√x⌋

Thresholds are carried by a Context; the package-level functions use
DefaultContext. A zero Context selects the package defaults, so custom
contexts need only set the fields they care about:

	c := &fastint.Context{DivThreshold: 1 << 14}
	q, r, err := c.DivMod(x, y)

DivMod follows the floored division convention: the quotient rounds toward
negative infinity and the remainder takes the sign of the divisor, so that
x == q*y + r with 0 <= |r| < |y|. Note that this differs from Int.QuoRem
(which truncates toward zero) when exactly one operand is negative, and from
Int.DivMod (Euclidean) when the divisor is negative.
*/
package fastint
