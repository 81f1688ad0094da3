package backendsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"sync"

	"github.com/pkg/errors"

	"github.com/mentoralabs/mentora/core"
	"github.com/mentoralabs/mentora/core/user"
)

var ErrUnauthorized = errors.New("authentication required")

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (err *APIError) Error() string {
	if err.Message != "" {
		return err.Message
	}
	return fmt.Sprintf("backend returned %d", err.StatusCode)
}

// Client talks to the Mentora REST backend. It attaches the stored bearer
// token to every request; a 401 anywhere clears the stored session and fires
// the OnUnauthorized hook once, the terminal analog of the web client's
// forced redirect home.
type Client struct {
	conf   *core.Config
	http   *http.Client
	store  user.Store
	logger core.Logger

	unauthOnce     sync.Once
	onUnauthorized func()
}

func NewClient(conf *core.Config, store user.Store, logger core.Logger, onUnauthorized func()) *Client {
	if onUnauthorized == nil {
		onUnauthorized = func() {}
	}
	return &Client{
		conf:           conf,
		http:           &http.Client{Timeout: conf.Backend.Timeout},
		store:          store,
		logger:         logger,
		onUnauthorized: onUnauthorized,
	}
}

func (c *Client) url(path string) string {
	return c.conf.Backend.BaseURL + path
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s %s", method, path)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token, err := c.store.Token(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do sends the request and decodes a 2xx JSON body into out (when non-nil).
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", req.Method, req.URL.Path)
	}
	return nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
		return ErrUnauthorized
	}
	return &APIError{StatusCode: resp.StatusCode, Message: decodeAPIMessage(resp.Body)}
}

func (c *Client) handleUnauthorized() {
	if err := c.store.Clear(); err != nil {
		c.logger.Error("clearing session after 401", err)
	}
	c.unauthOnce.Do(c.onUnauthorized)
}

// decodeAPIMessage extracts a human readable message from an error body.
// The backend is inconsistent here ("detail", "error" or "message").
func decodeAPIMessage(r io.Reader) string {
	data, err := ioutil.ReadAll(io.LimitReader(r, 8<<10))
	if err != nil {
		return ""
	}
	var body struct {
		Detail  string `json:"detail"`
		Err     string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	switch {
	case body.Detail != "":
		return body.Detail
	case body.Err != "":
		return body.Err
	default:
		return body.Message
	}
}
