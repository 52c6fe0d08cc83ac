package imaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ResolveRedirect performs a single request with redirects disabled and returns the
// Location the server points to. Responses without a redirect return rawURL unchanged.
func ResolveRedirect(ctx context.Context, client *http.Client, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrMalformedURL, rawURL)
	}

	if client == nil {
		client = http.DefaultClient
	}
	noFollow := *client
	noFollow.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := noFollow.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to resolve redirect: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	loc, err := resp.Location()
	if errors.Is(err, http.ErrNoLocation) {
		return rawURL, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: bad Location header: %v", ErrMalformedURL, err)
	}
	return loc.String(), nil
}
