package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tidwall/gjson"
)

// ErrNoRawResponse is returned by Classify when the transport produced no response
// at all. This signals a transport fault, not a provider error.
var ErrNoRawResponse = errors.New("transport produced no raw response")

// Raw is the unprocessed status code + body pair handed back by the transport.
type Raw struct {
	Status int
	Body   []byte
}

// NewRaw captures the relevant parts of an HTTP response. Returns nil if the
// transport yielded no response.
func NewRaw(resp *http.Response, body []byte) *Raw {
	if resp == nil {
		return nil
	}
	return &Raw{Status: resp.StatusCode, Body: body}
}

// ErrorPayload is the normalized failure shape. Body carries the provider's error
// body unchanged, whatever its format.
type ErrorPayload struct {
	Status  int    `json:"status"`
	Body    []byte `json:"body,omitempty"`
	IsError bool   `json:"is_error"`
}

// Envelope is the two-variant result of classifying a raw response. Exactly one of
// Success and Failure is non-nil; callers branch on Ok rather than probing both.
type Envelope[T any] struct {
	Success *T            `json:"success,omitempty"`
	Failure *ErrorPayload `json:"failure,omitempty"`
}

func (e *Envelope[T]) Ok() bool {
	return e.Success != nil
}

// Classify turns a raw response into an Envelope. A 2xx status whose body does not
// embed a provider error object decodes into Success; everything else passes through
// as Failure with the status defaulted to 500 when the transport could not determine
// one. Classification is stateless; the same raw input always yields the same envelope.
func Classify[T any](raw *Raw) (*Envelope[T], error) {
	if raw == nil {
		return nil, ErrNoRawResponse
	}

	// the provider sometimes returns HTTP 200 with an embedded error object
	if raw.Status >= 200 && raw.Status < 300 && !gjson.GetBytes(raw.Body, "error").Exists() {
		data := new(T)
		if len(raw.Body) > 0 {
			if err := json.Unmarshal(raw.Body, data); err != nil {
				return nil, err
			}
		}
		return &Envelope[T]{Success: data}, nil
	}

	status := raw.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Envelope[T]{Failure: &ErrorPayload{
		Status:  status,
		Body:    raw.Body,
		IsError: true,
	}}, nil
}
