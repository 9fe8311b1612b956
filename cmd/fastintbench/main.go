// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fastintbench compares the fastint operations against their math/big
// reference counterparts over a doubling sequence of operand sizes and
// prints a timing table per operation. Results are verified against the
// reference on every run; a mismatch is a fatal error.
package main

import (
	"fmt"
	"math/big"
	"os"
	"text/tabwriter"
	"time"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"

	"github.com/db47h/fastint"
)

type config struct {
	Div  bool `long:"div" description:"Benchmark division with remainder"`
	Str  bool `long:"str" description:"Benchmark decimal string conversion"`
	Sqrt bool `long:"sqrt" description:"Benchmark floor square root"`

	MinExp uint `long:"minexp" default:"10" description:"Smallest operand of the doubling sequence, as a power-of-two exponent"`
	MaxExp uint `long:"maxexp" default:"17" description:"Largest operand of the doubling sequence, as a power-of-two exponent"`

	DivThreshold  uint `long:"divthreshold" description:"Divisor bit length below which division falls back to math/big (0 selects the fastint default)"`
	StrThreshold  uint `long:"strthreshold" description:"Value bit length below which conversion falls back to math/big (0 selects the fastint default)"`
	SqrtThreshold uint `long:"sqrtthreshold" description:"Value bit length below which square root falls back to math/big (0 selects the fastint default)"`

	Verbose bool `short:"v" long:"verbose" description:"Log progress to stderr"`
}

var log = slog.Disabled

// timed returns f's wall-clock run time in seconds.
func timed(f func()) float64 {
	start := time.Now()
	f()
	return time.Since(start).Seconds()
}

func benchDiv(w *tabwriter.Writer, c *fastint.Context, cfg *config) error {
	fmt.Fprintln(w, "num bits\tden bits\tmath/big (s)\tfastint (s)\t")

	for i := cfg.MinExp; i <= cfg.MaxExp; i++ {
		num := new(big.Int).Exp(big.NewInt(487), new(big.Int).Lsh(big.NewInt(1), i), nil)
		den := new(big.Int).Exp(big.NewInt(486), new(big.Int).Lsh(big.NewInt(1), i-1), nil)
		log.Debugf("div: %d by %d bits", num.BitLen(), den.BitLen())

		refQ, refR := new(big.Int), new(big.Int)
		refTime := timed(func() { refQ.QuoRem(num, den, refR) })

		var q, r *big.Int
		var err error
		fastTime := timed(func() { q, r, err = c.DivMod(num, den) })
		if err != nil {
			return err
		}
		if q.Cmp(refQ) != 0 || r.Cmp(refR) != 0 {
			return fmt.Errorf("div: result mismatch at %d bits", num.BitLen())
		}

		fmt.Fprintf(w, "%d\t%d\t%.9f\t%.9f\t\n", num.BitLen(), den.BitLen(), refTime, fastTime)
	}
	return nil
}

func benchStr(w *tabwriter.Writer, c *fastint.Context, cfg *config) error {
	fmt.Fprintln(w, "val bits\tmath/big (s)\tfastint (s)\t")

	for i := cfg.MinExp; i <= cfg.MaxExp; i++ {
		val := new(big.Int).Exp(big.NewInt(487), new(big.Int).Lsh(big.NewInt(1), i), nil)
		log.Debugf("str: %d bits", val.BitLen())

		var refStr string
		refTime := timed(func() { refStr = val.Text(10) })

		var s string
		var err error
		fastTime := timed(func() { s, err = c.Text(val, 10) })
		if err != nil {
			return err
		}
		if s != refStr {
			return fmt.Errorf("str: result mismatch at %d bits", val.BitLen())
		}

		fmt.Fprintf(w, "%d\t%.9f\t%.9f\t\n", val.BitLen(), refTime, fastTime)
	}
	return nil
}

func benchSqrt(w *tabwriter.Writer, c *fastint.Context, cfg *config) error {
	fmt.Fprintln(w, "val bits\tmath/big (s)\tfastint (s)\t")

	for i := cfg.MinExp; i <= cfg.MaxExp; i++ {
		val := new(big.Int).Exp(big.NewInt(10), new(big.Int).Lsh(big.NewInt(1), i), nil)
		val.Lsh(val, 1)
		log.Debugf("sqrt: %d bits", val.BitLen())

		ref := new(big.Int)
		refTime := timed(func() { ref.Sqrt(val) })

		var s *big.Int
		var err error
		fastTime := timed(func() { s, err = c.Sqrt(val) })
		if err != nil {
			return err
		}
		if s.Cmp(ref) != 0 {
			return fmt.Errorf("sqrt: result mismatch at %d bits", val.BitLen())
		}

		fmt.Fprintf(w, "%d\t%.9f\t%.9f\t\n", val.BitLen(), refTime, fastTime)
	}
	return nil
}

func realMain() error {
	cfg := &config{}
	if _, err := flags.Parse(cfg); err != nil {
		// the flags package prints usage on its own
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}
	if cfg.MinExp < 1 || cfg.MaxExp < cfg.MinExp {
		return fmt.Errorf("invalid exponent range [%d, %d]", cfg.MinExp, cfg.MaxExp)
	}
	// benchmark everything unless specific operations were requested
	if !cfg.Div && !cfg.Str && !cfg.Sqrt {
		cfg.Div, cfg.Str, cfg.Sqrt = true, true, true
	}
	if cfg.Verbose {
		l := slog.NewBackend(os.Stderr).Logger("BENCH")
		l.SetLevel(slog.LevelDebug)
		log = l
	}

	c := &fastint.Context{
		DivThreshold:  cfg.DivThreshold,
		StrThreshold:  cfg.StrThreshold,
		SqrtThreshold: cfg.SqrtThreshold,
	}

	benches := []struct {
		name    string
		enabled bool
		run     func(*tabwriter.Writer, *fastint.Context, *config) error
	}{
		{"divmod(num, den)", cfg.Div, benchDiv},
		{"decimal string", cfg.Str, benchStr},
		{"floor sqrt", cfg.Sqrt, benchSqrt},
	}
	for _, b := range benches {
		if !b.enabled {
			continue
		}
		fmt.Printf("%s: math/big vs fastint\n\n", b.name)
		w := tabwriter.NewWriter(os.Stdout, 8, 0, 2, ' ', tabwriter.AlignRight)
		if err := b.run(w, c, cfg); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
