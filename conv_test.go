// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastint

import (
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	for _, test := range []struct {
		x    string
		base int
		want string
	}{
		{"0", 10, "0"},
		{"0", 2, "0"},
		{"1", 2, "1"},
		{"10", 2, "1010"},
		{"-10", 2, "-1010"},
		{"1234567890", 10, "1234567890"},
		{"-1234567890", 10, "-1234567890"},
		{"255", 16, "ff"},
		{"255", 36, "73"},
		{"1000000", 36, "lfls"},
	} {
		x, _ := new(big.Int).SetString(test.x, 10)
		for _, c := range []*Context{&DefaultContext, testContext} {
			got, err := c.Text(x, test.base)
			if err != nil {
				t.Errorf("Text(%s, %d): unexpected error %v", test.x, test.base, err)
				continue
			}
			if got != test.want {
				t.Errorf("Text(%s, %d) = %q; want %q", test.x, test.base, got, test.want)
			}
		}
	}
}

func TestTextBase(t *testing.T) {
	x := big.NewInt(42)
	for _, base := range []int{-10, -1, 0, 1, MaxBase + 1, 62} {
		if _, err := Text(x, base); !IsErrorCode(err, ErrUnsupportedRadix) {
			t.Errorf("Text(42, %d): got error %v, want ErrUnsupportedRadix", base, err)
		}
	}
}

// TestTextRandom compares the recursive conversion against the reference
// big.Int conversion for random values and bases, both byte for byte and
// through a parse round-trip.
func TestTextRandom(t *testing.T) {
	for i := 0; i < 300; i++ {
		x := rndInt(uint(rnd.Intn(2000)))
		if rnd.Intn(2) == 1 {
			x.Neg(x)
		}
		base := rnd.Intn(MaxBase-2+1) + 2

		got, err := testContext.Text(x, base)
		require.NoError(t, err)
		require.Equal(t, x.Text(base), got, "Text(%v, %d)", x, base)

		back, ok := new(big.Int).SetString(got, base)
		require.True(t, ok, "SetString(%q, %d) failed", got, base)
		require.Zero(t, back.Cmp(x), "round-trip of %v in base %d", x, base)
	}
}

// TestTextPow checks the decimal conversion of 12345678901234567890^5
// against the reference repeated-division conversion.
func TestTextPow(t *testing.T) {
	v, _ := new(big.Int).SetString("12345678901234567890", 10)
	v.Exp(v, big.NewInt(5), nil)

	got, err := testContext.Text(v, 10)
	require.NoError(t, err)
	require.Equal(t, v.Text(10), got)
}

func TestAppend(t *testing.T) {
	buf := []byte("x=")
	buf, err := testContext.Append(buf, big.NewInt(-123456), 10)
	if err != nil {
		t.Fatalf("Append: unexpected error %v", err)
	}
	if got := string(buf); got != "x=-123456" {
		t.Errorf("Append = %q; want %q", got, "x=-123456")
	}
}

func TestTextThresholdBoundary(t *testing.T) {
	const bits = 128
	x := rndInt(bits)

	fast := &Context{StrThreshold: bits, DivThreshold: 16}
	reference := &Context{StrThreshold: bits + 1}

	sf, err := fast.Text(x, 10)
	require.NoError(t, err)
	sr, err := reference.Text(x, 10)
	require.NoError(t, err)
	require.Equal(t, sr, sf, "conversion differs across threshold")
}

// TestPowerCache verifies that every cached entry is the exact power
// base^(2^i) and that the table returned for a given bit length covers it.
func TestPowerCache(t *testing.T) {
	for _, base := range []int{2, 7, 10, 36} {
		pows := powCache.powers(base, 1000)
		e := new(big.Int)
		for i, p := range pows {
			e.Exp(big.NewInt(int64(base)), new(big.Int).Lsh(intOne, uint(i)), nil)
			if p.Cmp(e) != 0 {
				t.Errorf("base %d: cached power #%d differs from %v^(2^%d)", base, i, base, i)
			}
		}
		if last := pows[len(pows)-1]; !covers(last, 1000) {
			t.Errorf("base %d: returned table does not cover 1000 bits", base)
		}
	}
}

// TestTextConcurrent runs conversions sharing the process-wide power cache
// from multiple goroutines; meant to be run with -race.
func TestTextConcurrent(t *testing.T) {
	x := rndInt(4000)
	want := x.Text(7)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				got, err := testContext.Text(x, 7)
				if err != nil || got != want {
					t.Errorf("concurrent Text: got %.20q..., err %v", got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// Benchmarks

func BenchmarkText(b *testing.B) {
	for _, i := range []uint{11, 13, 15} {
		x := new(big.Int).Exp(big.NewInt(487), new(big.Int).Lsh(intOne, i), nil)
		b.Run(fmt.Sprintf("%d", x.BitLen()), func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				if _, err := Text(x, 10); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTextReference(b *testing.B) {
	for _, i := range []uint{11, 13, 15} {
		x := new(big.Int).Exp(big.NewInt(487), new(big.Int).Lsh(intOne, i), nil)
		b.Run(fmt.Sprintf("%d", x.BitLen()), func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				_ = x.Text(10)
			}
		})
	}
}
