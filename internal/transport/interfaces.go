package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/junerver/prompt-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/requester_mock.go -package=mock

// Requester issues a single backend call. Implementations must not retry.
type Requester interface {
	// Do sends req and returns the raw reply. A non-nil error means the call
	// failed at the network, HTTP or envelope level; the response is nil then.
	Do(ctx context.Context, req Request) (*Response, error)
}

// Request mirrors the option object of the request utility.
type Request struct {
	// Method is the HTTP method (GET, POST...).
	Method string
	// URL is the path relative to the configured base URL.
	URL string
	// Params is encoded into the query string. Accepts url.Values,
	// map[string]string or any value with a Values() url.Values method.
	Params any
	// Data is encoded as the JSON request body when non-nil.
	Data any
}

// Response is a successful backend reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// Envelope decodes the {code,msg,data} wrapper, leaving data undecoded.
func (r *Response) Envelope() (models.Result[json.RawMessage], error) {
	var env models.Result[json.RawMessage]
	if err := r.Decode(&env); err != nil {
		return models.Result[json.RawMessage]{}, err
	}
	return env, nil
}
