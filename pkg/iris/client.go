package iris

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"
)

type Extractor interface {
	Extract(ctx context.Context, file File, options *ExtractionOptions) (*Result, error)
}

var _ Extractor = &Client{}

const (
	defaultEndpoint = "https://api.vectorize.io/v1"

	envToken        = "VECTORIZE_API_TOKEN"
	envOrganization = "VECTORIZE_ORG_ID"
)

type Client struct {
	client *http.Client

	endpoint string

	token        string
	organization string

	pollInterval time.Duration
	timeout      time.Duration
}

// New resolves credentials once: explicit options win over the environment.
// Missing credentials fail here, before any request is issued.
func New(options ...Option) (*Client, error) {
	c := &Client{
		client: http.DefaultClient,

		endpoint: defaultEndpoint,

		pollInterval: 2 * time.Second,
		timeout:      5 * time.Minute,
	}

	for _, option := range options {
		option(c)
	}

	if c.token == "" {
		c.token = os.Getenv(envToken)
	}

	if c.organization == "" {
		c.organization = os.Getenv(envOrganization)
	}

	if c.token == "" || c.organization == "" {
		return nil, ErrMissingCredentials
	}

	return c, nil
}

func (c *Client) baseURL() string {
	return strings.TrimRight(c.endpoint, "/") + "/org/" + c.organization
}
