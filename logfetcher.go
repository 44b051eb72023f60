package warmtransfer

import (
	"context"

	"github.com/asecurityteam/logevent/v2"
)

type invocationStarted struct {
	Function string `logevent:"function"`
	Message  string `logevent:"message,default=invocation-started"`
}

type invocationCompleted struct {
	Function string `logevent:"function"`
	Reason   string `logevent:"reason,default="`
	Message  string `logevent:"message,default=invocation-completed"`
}

type loggingFunction struct {
	Function
	Logger Logger
	Name   string
}

func (f *loggingFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	logger := f.Logger.Copy()
	ctx = logevent.NewContext(ctx, logger)
	logger.Info(invocationStarted{Function: f.Name})
	out, err := f.Function.Invoke(ctx, b)
	ev := invocationCompleted{Function: f.Name}
	if err != nil {
		ev.Reason = err.Error()
		logger.Error(ev)
		return out, err
	}
	logger.Info(ev)
	return out, err
}

// loggingFetcher wraps fetched functions in a decorator that injects
// a logger into the invocation context and records the lifecycle of
// each invocation.
type loggingFetcher struct {
	Logger  Logger
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds log injection.
func (f *loggingFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return &loggingFunction{Logger: f.Logger, Function: r, Name: name}, nil
}
