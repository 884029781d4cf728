package probe

import (
	"context"

	"github.com/reiver/go-porterstemmer"
)

var stemWords = []string{
	"benchmarking", "measurements", "calibration", "repetitions",
	"resolution", "monotonically", "microseconds", "adjustments",
}

type stemState struct {
	words []string
	last  string
}

func setupStem(context.Context, Params) (Bound, error) {
	return bind(&stemState{words: stemWords}, func(s *stemState) bool {
		for _, w := range s.words {
			s.last = porterstemmer.StemString(w)
		}
		return s.last != ""
	}, nil), nil
}
