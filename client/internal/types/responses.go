package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

// ------------------------------
// Response Types
// ------------------------------

// Response is the result of a successful call.
type Response struct {
	StatusCode int
	Data       []byte
	Header     http.Header
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if r == nil || len(bytes.TrimSpace(r.Data)) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

// DecodeList unmarshals a collection body into v, which must point to a
// slice. Both bare arrays and paginated envelopes are accepted.
func (r *Response) DecodeList(v any) error {
	if r == nil {
		return errors.New("nil response")
	}
	data := bytes.TrimSpace(r.Data)
	if len(data) == 0 {
		return nil
	}
	if data[0] == '[' {
		return json.Unmarshal(data, v)
	}
	var page Page
	if err := json.Unmarshal(data, &page); err != nil {
		return err
	}
	if len(page.Results) == 0 {
		return nil
	}
	return json.Unmarshal(page.Results, v)
}

// Page mirrors the backend's paginated list envelope.
type Page struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  json.RawMessage `json:"results"`
}

// Statistics is the aggregate returned by /usuarias/statistics/. The backend
// does not pin its shape, so it is kept as a generic object.
type Statistics map[string]any
