package warmtransfer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
)

const (
	// BuildModeHTTP is the standard mode of running an HTTP server
	// that implements parts of the Lambda API.
	BuildModeHTTP = "http"
	// BuildModeHTTPMock runs the HTTP server but with mocked versions
	// of the lambda functions loaded.
	BuildModeHTTPMock = "http_mock"
	// BuildModeLambda runs the official lambda server using the lambda
	// SDK. Using this mode requires the TargetFunction value to be set.
	BuildModeLambda = "lambda"
	// BuildModeLambdaMock runs the official lambda server using the
	// lambda SDK but with a mocked version of the loaded function.
	// Using this mode requires the TargetFunction value to be set.
	BuildModeLambdaMock = "lambda_mock"
)

// settingsPrefix scopes all env driven settings for the service.
const settingsPrefix = "WARMTRANSFER"

var (
	// BuildMode determines the behavior of the Start method. There
	// are several ways to use this value. The suggested way is through
	// build variables by adding
	// `-ldflags "-X github.com/contactops/warmtransfer.BuildMode=<value>"`
	// to `go build` or `go run` commands. If you want to use environment
	// variables instead then you can set this variable in code before
	// calling Start like `warmtransfer.BuildMode = os.Getenv("MYENVVAR")`.
	//
	// Alternatively, the StartMode() method may be used if you prefer to
	// pass in parameters via code rather than toggling the global setting.
	BuildMode = BuildModeLambda
	// TargetFunction is used when building in a native lambda mode to
	// select a single function to run. This value can be set in all the
	// same ways as the BuildMode value.
	TargetFunction = "warmTransfer"
)

// Start is a replacement for the lambda.Start method. By default it
// runs the official Lambda runtime interface against the target
// function and can be switched to a local HTTP implementation of the
// Lambda Invoke API for development.
func Start(ctx context.Context, s settings.Source, f Fetcher) error {
	return StartMode(ctx, s, f, BuildMode, TargetFunction)
}

// StartMode works just like Start but allows for explicit passing of
// the build mode and target function.
func StartMode(ctx context.Context, s settings.Source, f Fetcher, mode string, target string) error {
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		return StartHTTP(ctx, s, f)
	case strings.EqualFold(mode, BuildModeHTTPMock):
		return StartHTTP(ctx, s, &MockingFetcher{Fetcher: f})
	case strings.EqualFold(mode, BuildModeLambda):
		return StartLambda(ctx, f, target)
	case strings.EqualFold(mode, BuildModeLambdaMock):
		return StartLambda(ctx, &MockingFetcher{Fetcher: f}, target)
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

func newHTTPRuntime(ctx context.Context, s settings.Source, f Fetcher) (*runhttp.Runtime, error) {
	conf := &RouterConfig{
		Fetcher: f,
	}
	router := NewRouter(conf)
	rtC := &runhttp.Component{Handler: router}
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}},
		rtC,
		rt,
	)
	return rt, err
}

// StartHTTP runs the local HTTP implementation of the Lambda Invoke API.
func StartHTTP(ctx context.Context, s settings.Source, f Fetcher) error {
	rt, err := newHTTPRuntime(ctx, s, f)
	if err != nil {
		return err
	}
	return rt.Run()
}

// StartLambda runs the target function under the official Lambda
// runtime. The logger and stat decorators are applied here because,
// unlike the HTTP mode, there is no middleware chain to inject them
// into the invocation context. No settings are consumed in this mode:
// the Lambda service owns the listener and log transport.
func StartLambda(ctx context.Context, f Fetcher, target string) error {
	if target == "" {
		return fmt.Errorf("target function required for build mode %s", BuildModeLambda)
	}
	f = &loggingFetcher{
		Logger:  logevent.New(logevent.Config{Output: os.Stdout}),
		Fetcher: f,
	}
	f = &statFetcher{
		Stat:    &nullStat{},
		Fetcher: f,
	}
	fn, err := f.Fetch(ctx, target)
	if err != nil {
		return err
	}
	lambda.StartHandlerWithContext(ctx, fn)
	return nil
}
