package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strings"
)

type ResponseType int

const (
	ResponseJSON ResponseType = iota
	// ResponseBlob keeps the body as raw bytes (PDF, spreadsheet).
	ResponseBlob
)

// Request is one outbound call. Path is relative to the base URL; a
// missing leading slash is tolerated.
type Request struct {
	Method       string
	Path         string
	Query        Query
	Body         Body
	ResponseType ResponseType
}

// Param is one query parameter.
type Param struct {
	Key   string
	Value string
}

// Query keeps parameters in insertion order, which url.Values does not.
type Query []Param

func (q Query) Add(key, value string) Query {
	return append(q, Param{Key: key, Value: value})
}

func (q Query) Encode() string {
	parts := make([]string, 0, len(q))
	for _, p := range q {
		parts = append(parts, url.QueryEscape(p.Key)+"="+url.QueryEscape(p.Value))
	}
	return strings.Join(parts, "&")
}

// Body encodes a request payload.
type Body interface {
	encode() (payload []byte, contentType string, err error)
}

type jsonBody struct{ v any }

// JSONBody sends v as application/json.
func JSONBody(v any) Body { return jsonBody{v: v} }

func (b jsonBody) encode() ([]byte, string, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", fmt.Errorf("encode json body: %w", err)
	}
	return data, "application/json", nil
}

type formBody struct{ values url.Values }

// FormBody sends values as application/x-www-form-urlencoded.
func FormBody(values url.Values) Body { return formBody{values: values} }

func (b formBody) encode() ([]byte, string, error) {
	return []byte(b.values.Encode()), "application/x-www-form-urlencoded", nil
}

type multipartBody struct {
	field    string
	filename string
	r        io.Reader
}

// MultipartBody sends the content of r as the single file part field.
func MultipartBody(field, filename string, r io.Reader) Body {
	return multipartBody{field: field, filename: filename, r: r}
}

func (b multipartBody) encode() ([]byte, string, error) {
	if b.r == nil {
		return nil, "", fmt.Errorf("multipart %s: no file", b.field)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(b.field, b.filename)
	if err != nil {
		return nil, "", fmt.Errorf("multipart %s: %w", b.field, err)
	}
	if _, err := io.Copy(part, b.r); err != nil {
		return nil, "", fmt.Errorf("multipart %s: read file: %w", b.field, err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("multipart %s: %w", b.field, err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// Document is a binary response, e.g. a generated PDF or Excel export.
type Document struct {
	Data        []byte
	ContentType string
	// Filename comes from Content-Disposition and may be empty.
	Filename string
}
