package probe

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

type lruState struct {
	cache *lru.Cache[int, int]
	keys  int // twice the capacity, so half the Adds evict
	seq   int
}

func setupLRU(_ context.Context, p Params) (Bound, error) {
	cache, err := lru.New[int, int](p.CacheSize)
	if err != nil {
		return Bound{}, err
	}
	return bind(&lruState{cache: cache, keys: 2 * p.CacheSize}, func(s *lruState) bool {
		k := s.seq % s.keys
		s.seq++
		s.cache.Add(k, s.seq)
		v, ok := s.cache.Get(k)
		return ok && v == s.seq
	}, nil), nil
}
