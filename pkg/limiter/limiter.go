// Package limiter wraps an extraction client with a client-side rate limit,
// so bursts of concurrent extractions do not exhaust the API quota.
package limiter

import (
	"context"

	"github.com/vectorize-io/vectorize-iris/pkg/iris"

	"golang.org/x/time/rate"
)

type Extractor interface {
	iris.Extractor
}

type limitedExtractor struct {
	limiter   *rate.Limiter
	extractor iris.Extractor
}

func NewExtractor(l *rate.Limiter, e iris.Extractor) Extractor {
	return &limitedExtractor{
		limiter:   l,
		extractor: e,
	}
}

func (p *limitedExtractor) Extract(ctx context.Context, file iris.File, options *iris.ExtractionOptions) (*iris.Result, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.extractor.Extract(ctx, file, options)
}
