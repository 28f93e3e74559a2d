package api

import "context"

// Future is the handle returned by the *Async query methods.
// The request runs in its own goroutine and is cancelled through the context it was started with.
type Future struct {
	done      chan struct{}
	countries []Country
	err       error
}

func (c *Client) async(ctx context.Context, path string) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.countries, f.err = c.fetch(ctx, path)
	}()

	return f
}

// Done is closed once the request has completed, successfully or not.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether the result is available without blocking.
func (f *Future) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the request completes or ctx is done.
// Giving up on ctx does not cancel the request itself; cancel the context passed to the query for that.
func (f *Future) Await(ctx context.Context) ([]Country, error) {
	select {
	case <-f.done:
		return f.countries, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
