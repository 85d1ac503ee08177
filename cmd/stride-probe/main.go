// Package main probes the view engine's layout decisions.
//
// It chains reshape -> transpose -> flatten -> contiguous over a small
// tensor and reports shape, strides, contiguity and buffer aliasing at
// every step. Handy for eyeballing which operations alias and which copy.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/typetensor/typetensor/tensor"
)

func main() {
	n := flag.Int("n", 6, "number of elements in the probe tensor")
	rows := flag.Int("rows", 2, "rows for the reshape step")
	jsonOut := flag.Bool("json", false, "emit JSON log lines instead of console output")
	flag.Parse()

	if !*jsonOut {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if *n%*rows != 0 {
		log.Fatal().Int("n", *n).Int("rows", *rows).Msg("rows must divide n")
	}

	x, err := tensor.Arange[int64](1, *n+1)
	if err != nil {
		log.Fatal().Err(err).Msg("building probe tensor")
	}
	report("original", x, x)

	r, err := x.Reshape(*rows, *n / *rows)
	if err != nil {
		log.Fatal().Err(err).Msg("reshape")
	}
	report("reshape", r, x)

	tr, err := r.Transpose(0, 1)
	if err != nil {
		log.Fatal().Err(err).Msg("transpose")
	}
	report("transpose", tr, x)

	fl := tr.Flatten()
	report("flatten", fl, x)

	c := tr.Contiguous()
	report("contiguous", c, x)
}

func report(step string, t, origin *tensor.Tensor[int64]) {
	log.Info().
		Str("step", step).
		Ints("shape", []int(t.Shape())).
		Ints("strides", []int(t.Strides())).
		Bool("contiguous", t.IsContiguous()).
		Bool("aliases_origin", t.SharesStorageWith(origin)).
		Ints64("elems", t.Elems()).
		Msg("layout")
}
