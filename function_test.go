package warmtransfer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFunctionPreservesSource(t *testing.T) {
	fn := func() (string, error) { return "OK", nil }
	f := NewFunction(fn)
	require.IsType(t, fn, f.Source())

	out, err := f.Invoke(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, []byte(`"OK"`), out)
}

func TestNewFunctionWithErrors(t *testing.T) {
	fn := func() (string, error) { return "OK", nil }
	expected := []error{ValidationError{Field: "requestType"}, &APIError{StatusCode: 503}}
	f := NewFunctionWithErrors(fn, expected...)

	lf, ok := f.(*LambdaFunction)
	require.True(t, ok)
	assert.Equal(t, expected, lf.Errors())
}

func TestLoggingFetcherPassesErrors(t *testing.T) {
	f := &loggingFetcher{
		Logger:  testLogger,
		Fetcher: &StaticFetcher{Functions: map[string]Function{}},
	}
	_, err := f.Fetch(context.Background(), "missing")
	require.Error(t, err)
	require.IsType(t, NotFoundError{}, err)
}

type loggedEvent struct {
	level string
	event interface{}
}

type recordingLogger struct {
	nopLogger
	events []loggedEvent
}

func (l *recordingLogger) Info(event interface{}) {
	l.events = append(l.events, loggedEvent{level: "info", event: event})
}

func (l *recordingLogger) Error(event interface{}) {
	l.events = append(l.events, loggedEvent{level: "error", event: event})
}

func (l *recordingLogger) Copy() Logger { return l }

func TestLoggingFetcherRecordsInvocation(t *testing.T) {
	logger := &recordingLogger{}
	fn := NewFunction(func() (string, error) { return "OK", nil })
	f := &loggingFetcher{
		Logger:  logger,
		Fetcher: &StaticFetcher{Functions: map[string]Function{"health": fn}},
	}
	got, err := f.Fetch(context.Background(), "health")
	require.NoError(t, err)

	out, err := got.Invoke(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, []byte(`"OK"`), out)
	require.Len(t, logger.events, 2)
	assert.Equal(t, loggedEvent{level: "info", event: invocationStarted{Function: "health"}}, logger.events[0])
	assert.Equal(t, loggedEvent{level: "info", event: invocationCompleted{Function: "health"}}, logger.events[1])
}

func TestLoggingFetcherRecordsInvocationError(t *testing.T) {
	logger := &recordingLogger{}
	fn := NewFunction(func() error { return errors.New("fail") })
	f := &loggingFetcher{
		Logger:  logger,
		Fetcher: &StaticFetcher{Functions: map[string]Function{"warmTransfer": fn}},
	}
	got, err := f.Fetch(context.Background(), "warmTransfer")
	require.NoError(t, err)

	_, err = got.Invoke(context.Background(), []byte(`{}`))
	require.Error(t, err)
	require.Len(t, logger.events, 2)
	assert.Equal(t, loggedEvent{level: "info", event: invocationStarted{Function: "warmTransfer"}}, logger.events[0])
	assert.Equal(t, loggedEvent{level: "error", event: invocationCompleted{Function: "warmTransfer", Reason: "fail"}}, logger.events[1])
}

type statCall struct {
	name string
	tags []string
}

type recordingStat struct {
	nopStat
	counts  []statCall
	timings []statCall
}

func (s *recordingStat) Count(stat string, count float64, tags ...string) {
	s.counts = append(s.counts, statCall{name: stat, tags: tags})
}

func (s *recordingStat) Timing(stat string, value time.Duration, tags ...string) {
	s.timings = append(s.timings, statCall{name: stat, tags: tags})
}

func TestStatFetcherEmitsInvocationMetrics(t *testing.T) {
	stat := &recordingStat{}
	fn := NewFunction(func() (string, error) { return "OK", nil })
	f := &statFetcher{
		Stat:    stat,
		Fetcher: &StaticFetcher{Functions: map[string]Function{"health": fn}},
	}
	got, err := f.Fetch(context.Background(), "health")
	require.NoError(t, err)

	_, err = got.Invoke(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	require.Len(t, stat.counts, 1)
	require.Len(t, stat.timings, 1)
	assert.Equal(t, statCall{name: statInvocation, tags: []string{"function:health", tagInvocationSuccess}}, stat.counts[0])
	assert.Equal(t, statCall{name: statInvocationTiming, tags: []string{"function:health", tagInvocationSuccess}}, stat.timings[0])
}

func TestStatFetcherTagsInvocationErrors(t *testing.T) {
	stat := &recordingStat{}
	fn := NewFunction(func() error { return errors.New("fail") })
	f := &statFetcher{
		Stat:    stat,
		Fetcher: &StaticFetcher{Functions: map[string]Function{"warmTransfer": fn}},
	}
	got, err := f.Fetch(context.Background(), "warmTransfer")
	require.NoError(t, err)

	_, err = got.Invoke(context.Background(), []byte(`{}`))
	require.Error(t, err)
	require.Len(t, stat.counts, 1)
	require.Len(t, stat.timings, 1)
	assert.Equal(t, statCall{name: statInvocation, tags: []string{"function:warmTransfer", tagInvocationError}}, stat.counts[0])
	assert.Equal(t, statCall{name: statInvocationTiming, tags: []string{"function:warmTransfer", tagInvocationError}}, stat.timings[0])
}
