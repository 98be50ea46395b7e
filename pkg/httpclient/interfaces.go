package httpclient

import "context"

// Response is the subset of an HTTP response the API clients read.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client issues GET requests. Implementations must not turn non-2xx
// statuses into errors; only transport failures are returned as err.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}
