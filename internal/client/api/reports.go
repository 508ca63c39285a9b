package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tutorias/internal/client/client"
	"github.com/dmitrijs2005/tutorias/internal/client/models"
)

// Reports is one family of general reports written by tutors.
type Reports struct {
	c    Doer
	base string
}

// ByTutor lists the reports of the authenticated tutor.
func (r *Reports) ByTutor(ctx context.Context) ([]models.Report, error) {
	return get[[]models.Report](ctx, r.c, r.base+"/tutor", nil)
}

func (r *Reports) Get(ctx context.Context, id int) (models.Report, error) {
	return get[models.Report](ctx, r.c, itemPath(r.base, id), nil)
}

func (r *Reports) Create(ctx context.Context, in models.Report) (models.Report, error) {
	return send[models.Report](ctx, r.c, http.MethodPost, r.base, in)
}

func (r *Reports) Update(ctx context.Context, id int, in models.Report) (models.Report, error) {
	return send[models.Report](ctx, r.c, http.MethodPut, itemPath(r.base, id), in)
}

func (r *Reports) Delete(ctx context.Context, id int) error {
	return remove(ctx, r.c, itemPath(r.base, id))
}

func (r *Reports) DownloadPDF(ctx context.Context, id int) (*client.Document, error) {
	return download(ctx, r.c, itemPath(r.base, id)+"/pdf")
}
