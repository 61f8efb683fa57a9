package iris

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpoint = url
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithOrganization(id string) Option {
	return func(c *Client) {
		c.organization = id
	}
}

func WithPollInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = interval
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithTracing instruments the HTTP transport with OpenTelemetry spans.
func WithTracing() Option {
	return func(c *Client) {
		transport := c.client.Transport

		if transport == nil {
			transport = http.DefaultTransport
		}

		client := *c.client
		client.Transport = otelhttp.NewTransport(transport)

		c.client = &client
	}
}
