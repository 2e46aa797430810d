package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

const maxRedirects = 10

type FastHTTPGetter struct {
	client  *fasthttp.Client
	timeout time.Duration
}

// NewFastHTTPGetter builds the default transport. A zero timeout leaves the
// deadline to the caller's context.
func NewFastHTTPGetter(timeout time.Duration) *FastHTTPGetter {
	return &FastHTTPGetter{
		client: &fasthttp.Client{
			Name: "webstats-service",
		},
		timeout: timeout,
	}
}

func (g *FastHTTPGetter) Get(ctx context.Context, url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if err := g.do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", code)
	}

	// the response is released on return
	body := append([]byte(nil), resp.Body()...)
	return body, nil
}

func (g *FastHTTPGetter) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline, hasDeadline := ctx.Deadline()
	if g.timeout > 0 {
		if d := time.Now().Add(g.timeout); !hasDeadline || d.Before(deadline) {
			deadline, hasDeadline = d, true
		}
	}

	if hasDeadline {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return fasthttp.ErrTimeout
		}
		req.SetTimeout(remaining)
	}
	return g.client.DoRedirects(req, resp, maxRedirects)
}
