package warmtransfer

import (
	"context"
	"time"

	"github.com/rs/xstats"
)

const (
	statInvocation       = "lambda.invocation"
	statInvocationTiming = "lambda.invocation.timing"
	tagFunction          = "function:"
	tagInvocationSuccess = "result:success"
	tagInvocationError   = "result:error"
)

type statFunction struct {
	Function
	Stat Stat
	Name string
}

func (f *statFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	ctx = xstats.NewContext(ctx, f.Stat)
	start := time.Now()
	out, err := f.Function.Invoke(ctx, b)
	result := tagInvocationSuccess
	if err != nil {
		result = tagInvocationError
	}
	f.Stat.Timing(statInvocationTiming, time.Since(start), tagFunction+f.Name, result)
	f.Stat.Count(statInvocation, 1, tagFunction+f.Name, result)
	return out, err
}

// statFetcher wraps fetched functions in a decorator that injects a
// stat client into the invocation context and emits invocation count
// and timing metrics.
type statFetcher struct {
	Stat    Stat
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds stat client injection.
func (f *statFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return &statFunction{Stat: f.Stat, Function: r, Name: name}, nil
}
