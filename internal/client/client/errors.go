package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrMissingArgument = errors.New("missing argument")
)

type failureStage int

const (
	stageBuild failureStage = iota
	stageSend
	stageResponse
)

// Failure describes a request that did not succeed. It is built once, at
// the transport boundary, and is what the expiry handler inspects.
//
// StatusCode is 0 when no response was received; Err then holds the cause.
type Failure struct {
	StatusCode  int
	Method      string
	RequestPath string
	RequestBody []byte
	// Detail is the backend's "detail" message, if the body carried one.
	Detail string
	Err    error

	stage failureStage
}

func (f *Failure) Error() string {
	target := f.Method + " " + f.RequestPath
	switch {
	case f.StatusCode == 0:
		return fmt.Sprintf("%s: %v", target, f.Err)
	case f.Detail != "":
		return fmt.Sprintf("%s: %d %s: %s", target, f.StatusCode, http.StatusText(f.StatusCode), f.Detail)
	default:
		return fmt.Sprintf("%s: %d %s", target, f.StatusCode, http.StatusText(f.StatusCode))
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func (f *Failure) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return f.stage == stageSend
	case ErrUnauthorized:
		return f.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return f.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return f.StatusCode == http.StatusNotFound
	}
	return false
}

// Unauthorized reports whether the backend rejected the credential.
func (f *Failure) Unauthorized() bool {
	return f.StatusCode == http.StatusUnauthorized
}

// parseDetail extracts the message from {"detail": "..."} or from the
// validation form {"detail": [{"msg": "..."}, ...]}.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var msg string
	if err := json.Unmarshal(envelope.Detail, &msg); err == nil {
		return msg
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
