package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tutorias/internal/client/models"
)

const administratorsPath = "/api/administradores"

type Administrators struct {
	c Doer
}

// Login answers without a role; callers decide it from the token.
func (a *Administrators) Login(ctx context.Context, creds models.Credentials) (*models.Token, error) {
	return login(ctx, a.c, administratorsPath+"/login", creds)
}

func (a *Administrators) Me(ctx context.Context) (models.Admin, error) {
	return get[models.Admin](ctx, a.c, administratorsPath+"/me", nil)
}

func (a *Administrators) List(ctx context.Context) ([]models.Admin, error) {
	return get[[]models.Admin](ctx, a.c, administratorsPath, nil)
}

func (a *Administrators) Get(ctx context.Context, id int) (models.Admin, error) {
	return get[models.Admin](ctx, a.c, itemPath(administratorsPath, id), nil)
}

func (a *Administrators) Create(ctx context.Context, in models.AdminCreate) (models.Admin, error) {
	return send[models.Admin](ctx, a.c, http.MethodPost, administratorsPath, in)
}

func (a *Administrators) Update(ctx context.Context, id int, in models.AdminUpdate) (models.Admin, error) {
	return send[models.Admin](ctx, a.c, http.MethodPut, itemPath(administratorsPath, id), in)
}

func (a *Administrators) Delete(ctx context.Context, id int) error {
	return remove(ctx, a.c, itemPath(administratorsPath, id))
}
