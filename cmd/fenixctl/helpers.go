package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client"
)

// print writes the response body, indenting JSON, or turns err into the
// normalised message.
func (a *app) print(resp *client.Response, err error) error {
	if err != nil {
		return a.apiError(err)
	}
	if len(resp.Data) == 0 {
		fmt.Fprintf(a.out, "status %d\n", resp.StatusCode)
		return nil
	}
	var buf bytes.Buffer
	if json.Indent(&buf, resp.Data, "", "  ") == nil {
		buf.WriteByte('\n')
		_, werr := a.out.Write(buf.Bytes())
		return werr
	}
	_, werr := a.out.Write(resp.Data)
	return werr
}

// apiError classifies err for display. Validation details are appended.
func (a *app) apiError(err error) error {
	var n client.NormalizedError
	if a.client != nil {
		n = a.client.HandleAPIError(err)
	} else {
		n = client.HandleAPIError(err)
	}
	if n.Details != nil {
		details, _ := json.Marshal(n.Details)
		return fmt.Errorf("%s [%s]: %s", n.Message, n.Type, details)
	}
	return fmt.Errorf("%s [%s]", n.Message, n.Type)
}

func splitKV(s string) (string, string, error) {
	k, v, ok := strings.Cut(s, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", s)
	}
	return k, v, nil
}

func parseQuery(params []string) (url.Values, error) {
	q := url.Values{}
	for _, p := range params {
		k, v, err := splitKV(p)
		if err != nil {
			return nil, err
		}
		q.Add(k, v)
	}
	return q, nil
}

// parseFields builds a multipart payload. "key=" sends an empty value, which
// only partial updates keep. Opened files are closed by the returned func.
func parseFields(fields, files []string) (client.Fields, func(), error) {
	out := client.Fields{}
	var opened []*os.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	for _, f := range fields {
		k, v, err := splitKV(f)
		if err != nil {
			return nil, func() {}, err
		}
		out[k] = v
	}
	for _, f := range files {
		k, path, err := splitKV(f)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		fh, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open %s: %w", path, err)
		}
		opened = append(opened, fh)
		out[k] = client.File{
			Name:        filepath.Base(path),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Reader:      fh,
		}
	}
	return out, closeAll, nil
}

// readJSON accepts inline JSON or @path.
func readJSON(arg string) (json.RawMessage, error) {
	raw := []byte(arg)
	if strings.HasPrefix(arg, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return nil, err
		}
		raw = data
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty JSON payload")
	}
	if !json.Valid(raw) {
		return nil, errors.New("payload is not valid JSON")
	}
	return json.RawMessage(raw), nil
}
