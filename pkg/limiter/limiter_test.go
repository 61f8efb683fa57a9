package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/vectorize-io/vectorize-iris/pkg/iris"
	"github.com/vectorize-io/vectorize-iris/pkg/limiter"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type fakeExtractor struct {
	calls int
}

func (e *fakeExtractor) Extract(ctx context.Context, file iris.File, options *iris.ExtractionOptions) (*iris.Result, error) {
	e.calls++

	return &iris.Result{Success: true, Text: file.Name}, nil
}

func TestExtractorDelegates(t *testing.T) {
	fake := &fakeExtractor{}

	limited := limiter.NewExtractor(rate.NewLimiter(rate.Inf, 0), fake)

	result, err := limited.Extract(context.Background(), iris.File{Name: "a.pdf"}, nil)
	require.NoError(t, err)
	require.Equal(t, "a.pdf", result.Text)
	require.Equal(t, 1, fake.calls)
}

func TestExtractorNilLimiter(t *testing.T) {
	fake := &fakeExtractor{}

	limited := limiter.NewExtractor(nil, fake)

	_, err := limited.Extract(context.Background(), iris.File{Name: "a.pdf"}, nil)
	require.NoError(t, err)
}

func TestExtractorThrottles(t *testing.T) {
	fake := &fakeExtractor{}

	// One call per hour with no burst left after the first.
	limited := limiter.NewExtractor(rate.NewLimiter(rate.Every(time.Hour), 1), fake)

	_, err := limited.Extract(context.Background(), iris.File{Name: "a.pdf"}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = limited.Extract(ctx, iris.File{Name: "b.pdf"}, nil)
	require.Error(t, err)
	require.Equal(t, 1, fake.calls)
}
