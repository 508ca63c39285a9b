// Package api groups the backend's REST resources into typed modules. Every
// module is a thin description of fixed paths over a Doer; authentication and
// session expiry are handled by the client underneath.
package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/tutorias/internal/client/client"
	"github.com/dmitrijs2005/tutorias/internal/client/models"
)

// Doer sends requests. *client.Client satisfies it.
type Doer interface {
	Do(ctx context.Context, req *client.Request, out any) error
	Download(ctx context.Context, req *client.Request) (*client.Document, error)
}

// API is the set of resource modules sharing one client.
type API struct {
	Administrators *Administrators
	Students       *Students
	Tutors         *Tutors
	Notices        *Notices
	Referrals      *Referrals
	Configuration  *Configuration
	General1       *Reports
	General2       *Reports
	Tutoring       *Tutoring
}

func New(c Doer) *API {
	return &API{
		Administrators: &Administrators{c: c},
		Students:       &Students{c: c},
		Tutors:         &Tutors{c: c},
		Notices:        &Notices{c: c},
		Referrals:      &Referrals{c: c},
		Configuration:  &Configuration{c: c},
		General1:       &Reports{c: c, base: "/api/reportes/general-1"},
		General2:       &Reports{c: c, base: "/api/reportes/general-2"},
		Tutoring:       &Tutoring{c: c},
	}
}

// Page selects a page of a listing. Zero values fall back to the listing's
// defaults.
type Page struct {
	Number int
	Size   int
	Search string
}

// query renders p as page, size[, search] in that order. search is sent
// only when it has at least minSearch characters (and is never sent empty).
func (p Page) query(defaultSize, minSearch int) client.Query {
	number, size := p.Number, p.Size
	if number <= 0 {
		number = 1
	}
	if size <= 0 {
		size = defaultSize
	}

	q := client.Query{}.
		Add("page", strconv.Itoa(number)).
		Add("size", strconv.Itoa(size))
	if p.Search != "" && len([]rune(p.Search)) >= minSearch {
		q = q.Add("search", p.Search)
	}
	return q
}

func itemPath(base string, id int) string {
	return base + "/" + strconv.Itoa(id)
}

func segmentPath(base, segment string) string {
	return base + "/" + url.PathEscape(segment)
}

func login(ctx context.Context, c Doer, path string, creds models.Credentials) (*models.Token, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	var tok models.Token
	if err := c.Do(ctx, &client.Request{Method: http.MethodPost, Path: path, Body: client.FormBody(form)}, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

func upload(ctx context.Context, c Doer, path, filename string, r io.Reader) (models.Message, error) {
	var msg models.Message
	req := &client.Request{Method: http.MethodPost, Path: path, Body: client.MultipartBody("file", filename, r)}
	if err := c.Do(ctx, req, &msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func get[T any](ctx context.Context, c Doer, path string, query client.Query) (T, error) {
	var out T
	err := c.Do(ctx, &client.Request{Method: http.MethodGet, Path: path, Query: query}, &out)
	return out, err
}

func send[T any](ctx context.Context, c Doer, method, path string, body any) (T, error) {
	var out T
	req := &client.Request{Method: method, Path: path}
	if body != nil {
		req.Body = client.JSONBody(body)
	}
	err := c.Do(ctx, req, &out)
	return out, err
}

func remove(ctx context.Context, c Doer, path string) error {
	return c.Do(ctx, &client.Request{Method: http.MethodDelete, Path: path}, nil)
}

func download(ctx context.Context, c Doer, path string) (*client.Document, error) {
	return c.Download(ctx, &client.Request{Method: http.MethodGet, Path: path, ResponseType: client.ResponseBlob})
}
