package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Kind classifies a failed call: no response at all, credential rejection,
// a structured 4xx complaint, or a 5xx.
type Kind int

const (
	KindNetwork Kind = iota
	KindUnauthorized
	KindValidation
	KindServer
)

// Fallback messages shown when the backend does not provide one. These match
// the alerts the mobile app has always shown.
const (
	MsgConexion = "Error de conexión"
	MsgServidor = "Error del servidor"
)

// Error is the failure shape every call surfaces to screens: a category, the
// HTTP status when a response was received, and a message fit for a
// user-facing alert. Screens present it; they never retry.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string

	err error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// NetworkError wraps a transport failure where no response was received.
func NetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: MsgConexion, err: err}
}

// ValidationError reports a request rejected before it was sent.
func ValidationError(message string, err error) *Error {
	return &Error{Kind: KindValidation, Message: message, err: err}
}

// errorFromResponse converts a non-2xx response into an *Error. The
// user-facing message is taken from the body's message field when the backend
// provides one, otherwise the caller's fallback (or the generic server
// message for 5xx).
func errorFromResponse(resp *resty.Response, fallback string) *Error {
	status := resp.StatusCode()

	kind := KindValidation
	switch {
	case status == http.StatusUnauthorized:
		kind = KindUnauthorized
	case status >= http.StatusInternalServerError:
		kind = KindServer
	}

	message := gjson.GetBytes(resp.Body(), "message").String()
	if message == "" {
		if kind == KindServer {
			message = MsgServidor
		} else {
			message = fallback
		}
	}

	return &Error{Kind: kind, StatusCode: status, Message: message}
}

// IsUnauthorized reports whether err is a credential rejection.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUnauthorized
}

// UserMessage extracts the presentable message from any error returned by
// this module.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return MsgConexion
}
