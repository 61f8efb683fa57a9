package iris

import (
	"context"
)

// Operation is a handle to an extraction running on its own goroutine. Each
// operation owns its state; concurrent operations are fully independent.
type Operation struct {
	done chan struct{}

	result *Result
	err    error
}

// ExtractAsync runs the same upload/extract/poll progression as Extract
// without blocking the caller.
func (c *Client) ExtractAsync(ctx context.Context, file File, options *ExtractionOptions) *Operation {
	o := &Operation{
		done: make(chan struct{}),
	}

	go func() {
		defer close(o.done)

		o.result, o.err = c.Extract(ctx, file, options)
	}()

	return o
}

func (c *Client) ExtractFileAsync(ctx context.Context, path string, options *ExtractionOptions) *Operation {
	o := &Operation{
		done: make(chan struct{}),
	}

	go func() {
		defer close(o.done)

		o.result, o.err = c.ExtractFile(ctx, path, options)
	}()

	return o
}

func (o *Operation) Done() <-chan struct{} {
	return o.done
}

// Wait returns the terminal result, or ctx.Err if the caller gives up first.
// Giving up does not stop the operation.
func (o *Operation) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()

	case <-o.done:
		return o.result, o.err
	}
}

func (o *Operation) Result() (*Result, error) {
	<-o.done

	return o.result, o.err
}
