package iris_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vectorize-io/vectorize-iris/pkg/iris"

	"github.com/stretchr/testify/require"
)

func TestExtractAsync(t *testing.T) {
	server := newTestServer(t)

	server.statuses = []iris.ExtractionStatus{
		{Ready: false},
		readyStatus(iris.Result{Success: true, Text: "async"}),
	}

	client := newTestClient(t, server)

	op := client.ExtractAsync(context.Background(), iris.File{Name: "a.pdf", Content: []byte("x")}, nil)

	result, err := op.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, "async", result.Text)

	select {
	case <-op.Done():
	default:
		t.Fatal("operation not marked done")
	}

	// Result is stable after completion.
	again, err := op.Result()
	require.NoError(t, err)
	require.Equal(t, result, again)
}

func TestExtractFileAsync(t *testing.T) {
	server := newTestServer(t)

	server.statuses = []iris.ExtractionStatus{
		readyStatus(iris.Result{Success: true, Text: "from disk"}),
	}

	client := newTestClient(t, server)

	path := filepath.Join(t.TempDir(), "document.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	result, err := client.ExtractFileAsync(context.Background(), path, nil).Result()
	require.NoError(t, err)
	require.Equal(t, "from disk", result.Text)
}

func TestOperationWaitCanceled(t *testing.T) {
	server := newTestServer(t)

	// Job never becomes ready; the operation keeps polling until its
	// timeout while the waiter gives up early.
	client := newTestClient(t, server,
		iris.WithPollInterval(10*time.Millisecond),
		iris.WithTimeout(200*time.Millisecond),
	)

	op := client.ExtractAsync(context.Background(), iris.File{Name: "a.pdf", Content: []byte("x")}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := op.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = op.Result()

	var timeoutErr *iris.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
}

func TestExtractAsyncIndependentOperations(t *testing.T) {
	server := newTestServer(t)

	server.statuses = []iris.ExtractionStatus{
		readyStatus(iris.Result{Success: true, Text: "shared"}),
	}

	client := newTestClient(t, server)

	first := client.ExtractAsync(context.Background(), iris.File{Name: "a.pdf", Content: []byte("x")}, nil)
	second := client.ExtractAsync(context.Background(), iris.File{Name: "b.pdf", Content: []byte("y")}, nil)

	firstResult, err := first.Result()
	require.NoError(t, err)

	secondResult, err := second.Result()
	require.NoError(t, err)

	require.Equal(t, "shared", firstResult.Text)
	require.Equal(t, "shared", secondResult.Text)
}
