package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"

	"github.com/EasonC13/iota.go/packages/jsonmodels"
)

const (
	contentTypeJSON = "application/json"

	// APIVersionHeader is the header that tells the node which version of the command API is used.
	APIVersionHeader = jsonmodels.APIVersionHeader
	// APIVersion is the version of the command API that is spoken by the HTTPAdapter.
	APIVersion = jsonmodels.APIVersion
)

// HTTPAdapter is the Adapter that posts commands as JSON to the root route of a node.
type HTTPAdapter struct {
	client *resty.Client
}

type httpOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	authToken  string
}

// HTTPOption configures an HTTPAdapter.
type HTTPOption func(*httpOptions)

// NewHTTPAdapter creates an HTTPAdapter for the node at the given baseURL.
func NewHTTPAdapter(baseURL string, opts ...HTTPOption) *HTTPAdapter {
	options := &httpOptions{}
	for _, opt := range opts {
		opt(options)
	}

	client := resty.New()
	if options.httpClient != nil {
		client = resty.NewWithClient(options.httpClient)
	}
	if options.timeout > 0 {
		client.SetTimeout(options.timeout)
	}
	if options.authToken != "" {
		client.SetAuthToken(options.authToken)
	}

	return &HTTPAdapter{
		client: client.
			SetHostURL(baseURL).
			SetHeader("Content-Type", contentTypeJSON).
			SetHeader(APIVersionHeader, APIVersion),
	}
}

// Send posts the request and decodes the answer of the node into response.
func (h *HTTPAdapter) Send(ctx context.Context, command string, request interface{}, response interface{}) error {
	res, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		Post("/")
	if err != nil {
		return errors.Wrapf(err, "failed to send %s", command)
	}

	if err = interpretBody(res, response); err != nil {
		return errors.Wrapf(err, "%s failed", command)
	}

	return nil
}

func interpretBody(res *resty.Response, decodeTo interface{}) error {
	if res.StatusCode() == http.StatusOK || res.StatusCode() == http.StatusCreated {
		if decodeTo == nil {
			return nil
		}

		if err := json.Unmarshal(res.Body(), decodeTo); err != nil {
			return errors.Wrap(err, "unable to decode response body")
		}

		return nil
	}

	errRes := &jsonmodels.ErrorResponse{}
	if err := json.Unmarshal(res.Body(), errRes); err != nil {
		return errors.Errorf("unable to read error from response body (status %d): %w", res.StatusCode(), ErrUnknownError)
	}

	switch res.StatusCode() {
	case http.StatusInternalServerError:
		return errors.Errorf("%w: %s", ErrInternalServerError, errRes.Message())
	case http.StatusNotFound:
		return errors.Errorf("%w: %s", ErrNotFound, res.Request.URL)
	case http.StatusBadRequest:
		return errors.Errorf("%w: %s", ErrBadRequest, errRes.Message())
	case http.StatusUnauthorized:
		return errors.Errorf("%w: %s", ErrUnauthorized, errRes.Message())
	case http.StatusNotImplemented:
		return errors.Errorf("%w: %s", ErrNotImplemented, errRes.Message())
	}

	return errors.Errorf("%w: %s", ErrUnknownError, errRes.Message())
}

// WithAdapterHTTPClient makes the HTTPAdapter use the given http.Client.
func WithAdapterHTTPClient(httpClient *http.Client) HTTPOption {
	return func(o *httpOptions) {
		o.httpClient = httpClient
	}
}

// WithAdapterTimeout limits the duration of every request of the HTTPAdapter.
func WithAdapterTimeout(timeout time.Duration) HTTPOption {
	return func(o *httpOptions) {
		o.timeout = timeout
	}
}

// WithAdapterAuthToken adds the given bearer token to every request of the HTTPAdapter.
func WithAdapterAuthToken(token string) HTTPOption {
	return func(o *httpOptions) {
		o.authToken = token
	}
}
