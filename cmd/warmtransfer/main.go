package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/settings/v2"
	"github.com/contactops/warmtransfer"
)

// health exists so that deployment tooling can verify a build end to
// end without touching the transfer API. It can be called like:
//
//	curl --request POST localhost:8080/2015-03-31/functions/health/invocations
func health() (string, error) {
	return "OK", nil
}

func main() {
	ctx := context.Background()

	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	if err := fs.Parse(os.Args[1:]); err == flag.ErrHelp {
		fmt.Println(warmtransfer.Help())
		return
	}

	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	client, err := warmtransfer.NewTransferClient(ctx, source)
	if err != nil {
		panic(err.Error())
	}
	handler := warmtransfer.NewTransferHandler(client)

	fetcher := &warmtransfer.StaticFetcher{
		Functions: map[string]warmtransfer.Function{
			// The keys of this map represent the function name. In the
			// native lambda modes this is the TargetFunction value and
			// in the HTTP modes it is the URL parameter of the Invoke
			// API call.
			"warmTransfer": warmtransfer.NewFunction(handler.Handle),
			"health":       warmtransfer.NewFunction(health),
		},
	}
	if err := warmtransfer.Start(ctx, source, fetcher); err != nil {
		panic(err.Error())
	}
}
