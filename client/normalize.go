package client

import (
	"errors"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apierrors "github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/internal/errors"
)

// Kind tags a NormalizedError.
type Kind = apierrors.Kind

const (
	KindValidation = apierrors.Validation
	KindAuth       = apierrors.Auth
	KindPermission = apierrors.Permission
	KindNotFound   = apierrors.NotFound
	KindConflict   = apierrors.Conflict
	KindServer     = apierrors.Server
	KindNetwork    = apierrors.Network
	KindConfig     = apierrors.Config
	KindUnknown    = apierrors.Unknown
)

// NormalizedError is the user-facing classification of a failed call.
type NormalizedError struct {
	Type    Kind   `json:"type"`
	Message string `json:"message"`
	// Details carries the decoded response body of validation failures.
	Details any `json:"details,omitempty"`
}

func (e NormalizedError) Error() string { return e.Message }

// HandleAPIError classifies err into exactly one NormalizedError:
//   - a response was received: by status code
//   - a request was dispatched without response: network
//   - anything else: config
//
// It does not alter err; callers opt in by invoking it. The classification is
// logged through the global zerolog logger (log.Logger); use
// (*Client).HandleAPIError to log through the logger given to WithLogger.
func HandleAPIError(err error) NormalizedError {
	return handleAPIError(log.Logger, err)
}

// HandleAPIError is the package-level HandleAPIError logging through the
// client's logger.
func (c *Client) HandleAPIError(err error) NormalizedError {
	return handleAPIError(c.log, err)
}

func handleAPIError(l zerolog.Logger, err error) NormalizedError {
	n := classify(err)
	ev := l.Error().Stack().Err(err).Str("type", n.Type.String()).Str("user_message", n.Message)
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		ev = ev.Int("status", respErr.StatusCode).Str("url", respErr.URL)
	}
	ev.Msg("API error")
	return n
}

// KindOf returns the kind HandleAPIError would assign, without logging.
func KindOf(err error) Kind { return classify(err).Type }

func classify(err error) NormalizedError {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		kind, msg := apierrors.ClassifyStatus(respErr.StatusCode, respErr.Body)
		n := NormalizedError{Type: kind, Message: msg}
		if kind == apierrors.Validation {
			n.Details = apierrors.DecodeDetails(respErr.Body)
		}
		return n
	}

	var reqErr *RequestError
	var urlErr *url.Error
	if errors.As(err, &reqErr) || errors.As(err, &urlErr) {
		return NormalizedError{Type: apierrors.Network, Message: apierrors.NetworkMessage(rootCause(err))}
	}

	var setupErr *SetupError
	if errors.As(err, &setupErr) {
		err = setupErr.Err
	}
	return NormalizedError{Type: apierrors.Config, Message: apierrors.ConfigMessage(err)}
}

// rootCause strips the SDK wrappers so messages show the transport error text.
func rootCause(err error) error {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		err = reqErr.Err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
