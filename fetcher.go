package warmtransfer

import (
	"context"
)

// StaticFetcher is an implementation of the Fetcher that maintains a
// static mapping of names to Function instances. All invocations happen
// within the process and share the runtime's resources, so deployments
// that use this fetcher need no orchestration of external systems.
//
// The trade-off is that updates to, additions of, and removals of
// functions must be accomplished by generating a new build and
// redeploying. There are no options for updating or adding in-place.
type StaticFetcher struct {
	// Functions is the underlying static map of function names to
	// executable functions. The keys of the map will be used as the
	// name of the Function.
	Functions map[string]Function
}

// Fetch resolves the name using the internal mapping.
func (f *StaticFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	h, ok := f.Functions[name]
	if !ok {
		return nil, NotFoundError{ID: name}
	}
	return h, nil
}
