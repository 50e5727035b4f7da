package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"reflect"
	"sort"
	"strings"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/internal/types"
)

// IncludeForWrite is the field predicate of create and full update: a value
// is sent iff it is neither nil nor the empty string.
func IncludeForWrite(v any) bool {
	v = deref(v)
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}

// IncludeForPatch is the field predicate of partial update: a value is sent
// iff it is not nil. The empty string is kept so a field can be cleared.
func IncludeForPatch(v any) bool {
	return deref(v) != nil
}

// EncodeMultipart renders fields as a multipart/form-data body, keeping only
// the values accepted by include. Fields are written in key order.
func EncodeMultipart(fields types.Fields, include func(any) bool) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v := deref(fields[key])
		if !include(v) {
			continue
		}
		if err := writeField(w, key, v); err != nil {
			return nil, "", fmt.Errorf("multipart field %q: %w", key, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func writeField(w *multipart.Writer, key string, v any) error {
	switch val := v.(type) {
	case types.File:
		return writeFile(w, key, val)
	case []byte:
		return w.WriteField(key, string(val))
	default:
		return w.WriteField(key, fmt.Sprint(val))
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFile(w *multipart.Writer, key string, f types.File) error {
	if f.Reader == nil {
		return fmt.Errorf("file %q has no reader", f.Name)
	}
	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(key), quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", ct)
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f.Reader)
	return err
}

// deref unwraps pointers so optional struct-style values (*string, *File)
// follow the same rules as their targets. A nil pointer is nil.
func deref(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
