// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastint

// Default fallback thresholds, in bits of operand length. Below a threshold
// the corresponding operation delegates to its math/big reference routine:
// the recursive split/recombine overhead only amortizes on operands large
// enough that the subquadratic multiplication kernels kick in. The values
// were tuned empirically against math/big on amd64; they are performance
// knobs, not part of any contract.
const (
	DefaultDivThreshold  = 10000
	DefaultStrThreshold  = 20000
	DefaultSqrtThreshold = 10000
)

// A Context carries the fallback thresholds used by the fastint operations.
// It can safely be used concurrently, but not modified concurrently.
//
// Thresholds select a strategy, never a result: for any input, the fast and
// reference paths produce identical values, so callers may tune thresholds
// freely (including forcing the recursive path onto small operands, as the
// package's own tests do).
type Context struct {
	// DivThreshold is the divisor bit length below which DivMod delegates
	// to the reference big.Int division. Zero selects DefaultDivThreshold.
	DivThreshold uint

	// StrThreshold is the value bit length below which Text and Append
	// delegate to the reference big.Int conversion. Zero selects
	// DefaultStrThreshold.
	StrThreshold uint

	// SqrtThreshold is the value bit length below which Sqrt delegates to
	// the reference big.Int square root. Zero selects DefaultSqrtThreshold.
	SqrtThreshold uint
}

// DefaultContext is the Context used by the package-level DivMod, Text,
// Append and Sqrt functions.
var DefaultContext = Context{}

func (c *Context) divThreshold() uint {
	if c.DivThreshold == 0 {
		return DefaultDivThreshold
	}
	return c.DivThreshold
}

func (c *Context) strThreshold() uint {
	if c.StrThreshold == 0 {
		return DefaultStrThreshold
	}
	return c.StrThreshold
}

func (c *Context) sqrtThreshold() uint {
	if c.SqrtThreshold == 0 {
		return DefaultSqrtThreshold
	}
	return c.SqrtThreshold
}
