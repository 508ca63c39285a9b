package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/tutorias/internal/client/models"
)

const (
	tutorsPath        = "/api/tutores"
	tutorsDefaultSize = 10
)

type Tutors struct {
	c Doer
}

func (t *Tutors) Login(ctx context.Context, creds models.Credentials) (*models.Token, error) {
	return login(ctx, t.c, tutorsPath+"/login", creds)
}

func (t *Tutors) Me(ctx context.Context) (models.Tutor, error) {
	return get[models.Tutor](ctx, t.c, tutorsPath+"/me", nil)
}

func (t *Tutors) SetPassword(ctx context.Context, in models.SetPassword) (models.Message, error) {
	return send[models.Message](ctx, t.c, http.MethodPost, tutorsPath+"/set-password", in)
}

func (t *Tutors) ChangePassword(ctx context.Context, in models.ChangePassword) (models.Message, error) {
	return send[models.Message](ctx, t.c, http.MethodPut, tutorsPath+"/change-password", in)
}

func (t *Tutors) List(ctx context.Context, p Page) (models.TutorsPage, error) {
	return get[models.TutorsPage](ctx, t.c, tutorsPath, p.query(tutorsDefaultSize, 1))
}

func (t *Tutors) Get(ctx context.Context, id int) (models.Tutor, error) {
	return get[models.Tutor](ctx, t.c, itemPath(tutorsPath, id), nil)
}

func (t *Tutors) Create(ctx context.Context, in models.TutorCreate) (models.Tutor, error) {
	return send[models.Tutor](ctx, t.c, http.MethodPost, tutorsPath, in)
}

func (t *Tutors) Update(ctx context.Context, id int, in models.TutorUpdate) (models.Tutor, error) {
	return send[models.Tutor](ctx, t.c, http.MethodPut, itemPath(tutorsPath, id), in)
}

func (t *Tutors) Delete(ctx context.Context, id int) error {
	return remove(ctx, t.c, itemPath(tutorsPath, id))
}
