package aethokit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HTTPClient abstracts HTTP request execution so the transport can be
// substituted in tests. The standard *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// do sends one request to the service and decodes the response into
// out. It is the single place where the auth and accept headers are
// attached and where responses are classified: a non-2xx status becomes
// a StatusError carrying the raw body, a 2xx body that does not decode
// becomes a DecodeError, and any failure before a status is known
// becomes a TransportError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL.JoinPath(path)

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url.String(), payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-gas-key", c.gasKey)
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	if err := json.Unmarshal(text, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func errMissingField(name string) error {
	return fmt.Errorf("response missing %q field", name)
}
