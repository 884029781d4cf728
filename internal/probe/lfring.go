package probe

import (
	"context"

	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// One shard makes the sharded ring behave like the SPSC ring workload.
const (
	lfringCapacity = 1024
	lfringShards   = 1
)

type lfringState struct {
	seq int
}

func setupLFRing(context.Context, Params) (Bound, error) {
	r, err := ring.NewShardedRing(lfringCapacity, lfringShards)
	if err != nil {
		return Bound{}, err
	}
	return bind(&lfringState{}, func(s *lfringState) bool {
		s.seq++
		if !r.Write(0, s.seq) {
			return false
		}
		r.TryRead()
		return true
	}, nil), nil
}
