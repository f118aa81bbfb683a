// Package remote implements the service contracts against the recipe book
// HTTP API. The active session is kept in a local SessionSlot and its token
// is sent as the bearer credential.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-book/internal/api"
	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Client is the shared transport of the remote services.
type Client struct {
	http *resty.Client
	slot ports.SessionSlot
	log  zerolog.Logger
}

// NewClient targets baseURL. slot may be nil, in which case only calls that
// receive an explicit session are authenticated.
func NewClient(baseURL string, slot ports.SessionSlot, log zerolog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")
	return &Client{http: rc, slot: slot, log: log}
}

// request starts a call carrying token, or the active session token when
// token is empty.
func (c *Client) request(ctx context.Context, token string) (*resty.Request, error) {
	if token == "" && c.slot != nil {
		sess, err := c.slot.Load(ctx)
		if err != nil {
			return nil, err
		}
		if sess != nil {
			token = sess.Token
		}
	}

	req := c.http.R().SetContext(ctx).SetError(newErrorEnvelope())
	if token != "" {
		req.SetAuthToken(token)
	}
	return req, nil
}

func newErrorEnvelope() *api.ErrorResponse {
	return &api.ErrorResponse{}
}

func sessionToken(sess *domain.Session) string {
	if sess == nil {
		return ""
	}
	return sess.Token
}

// APIError is a failed API call. It unwraps to the domain sentinel named by
// the envelope code, so errors.Is works across the wire.
type APIError struct {
	Status  int
	Code    string
	Message string
	err     error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.err }

var sentinels = map[string]error{
	api.CodeNotFound:           domain.ErrNotFound,
	api.CodeDuplicateIdentity:  domain.ErrDuplicateIdentity,
	api.CodeEmptyResult:        domain.ErrEmptyResult,
	api.CodeCorruptStorage:     domain.ErrCorruptStorage,
	api.CodeUnauthenticated:    domain.ErrUnauthenticated,
	api.CodeInvalidCredentials: domain.ErrInvalidCredentials,
	api.CodeInvalidInput:       domain.ErrInvalidInput,
	api.CodeInvalidImage:       domain.ErrInvalidImage,
}

// check turns a transport error or a non-2xx response into an error.
func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	if !resp.IsError() {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	if env, ok := resp.Error().(*api.ErrorResponse); ok && env.Code != "" {
		apiErr.Code = env.Code
		apiErr.Message = env.Error
	}
	apiErr.err = sentinels[apiErr.Code]
	if apiErr.err == nil && resp.StatusCode() == http.StatusNotFound {
		apiErr.err = domain.ErrNotFound
	}

	c.log.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", apiErr.Status).
		Str("code", apiErr.Code).
		Msg("api call failed")
	return apiErr
}

// IsAPIError reports whether err came back from the server.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
