package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tutorias/internal/client/models"
)

const (
	noticesPath      = "/api/avisos"
	noticesAdminPath = "/api/avisos/admin"
)

type Notices struct {
	c Doer
}

// ListAll includes drafts and is reserved to administrators.
func (n *Notices) ListAll(ctx context.Context) ([]models.Notice, error) {
	return get[[]models.Notice](ctx, n.c, noticesAdminPath+"/todos", nil)
}

func (n *Notices) ListActive(ctx context.Context) ([]models.Notice, error) {
	return get[[]models.Notice](ctx, n.c, noticesPath, nil)
}

func (n *Notices) Create(ctx context.Context, in models.NoticeCreate) (models.Notice, error) {
	return send[models.Notice](ctx, n.c, http.MethodPost, noticesAdminPath, in)
}

func (n *Notices) Update(ctx context.Context, id int, in models.NoticeUpdate) (models.Notice, error) {
	return send[models.Notice](ctx, n.c, http.MethodPut, itemPath(noticesAdminPath, id), in)
}

func (n *Notices) Delete(ctx context.Context, id int) error {
	return remove(ctx, n.c, itemPath(noticesAdminPath, id))
}
