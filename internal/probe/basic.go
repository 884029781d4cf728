package probe

import (
	"context"
	"time"
)

func setupNoop(context.Context, Params) (Bound, error) {
	return bind(struct{}{}, func(struct{}) bool { return true }, nil), nil
}

type spinState struct {
	iterations int
	sink       int
}

func setupSpin(_ context.Context, p Params) (Bound, error) {
	return bind(&spinState{iterations: p.Spin}, func(s *spinState) bool {
		for i := 0; i < s.iterations; i++ {
			s.sink += i
		}
		return true
	}, nil), nil
}

func setupSleep(_ context.Context, p Params) (Bound, error) {
	return bind(p.Sleep, func(d time.Duration) bool {
		time.Sleep(d)
		return true
	}, nil), nil
}

type failAtState struct {
	failAt int
	calls  int
}

func setupFailAt(_ context.Context, p Params) (Bound, error) {
	return bind(&failAtState{failAt: p.FailAt}, func(s *failAtState) bool {
		i := s.calls
		s.calls++
		return i != s.failAt
	}, nil), nil
}
