package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/tutorias/internal/client/client"
	"github.com/dmitrijs2005/tutorias/internal/client/models"
)

const (
	tutoringPath        = "/api/tutorias"
	tutoringDefaultSize = 5
	// Shorter searches would match most of a tutor's students.
	tutoringMinSearch = 3
)

type Tutoring struct {
	c Doer
}

func (t *Tutoring) List(ctx context.Context) ([]models.TutoringSession, error) {
	return get[[]models.TutoringSession](ctx, t.c, tutoringPath, nil)
}

func (t *Tutoring) Get(ctx context.Context, id int) (models.TutoringSession, error) {
	return get[models.TutoringSession](ctx, t.c, itemPath(tutoringPath, id), nil)
}

func (t *Tutoring) ByStudent(ctx context.Context, studentID int) ([]models.TutoringSession, error) {
	return get[[]models.TutoringSession](ctx, t.c, itemPath(tutoringPath+"/alumno", studentID), nil)
}

// ByTutor pages through a tutor's sessions, 5 per page by default. The
// search term is sent only from three characters on. A zero tutorID fails
// before any request is made.
func (t *Tutoring) ByTutor(ctx context.Context, tutorID int, p Page) (models.TutoringSessionsPage, error) {
	if tutorID == 0 {
		return models.TutoringSessionsPage{}, fmt.Errorf("%w: tutor id is required", client.ErrMissingArgument)
	}
	return get[models.TutoringSessionsPage](ctx, t.c, itemPath(tutoringPath+"/tutor", tutorID), p.query(tutoringDefaultSize, tutoringMinSearch))
}

func (t *Tutoring) Create(ctx context.Context, in models.TutoringSessionCreate) (models.TutoringSession, error) {
	return send[models.TutoringSession](ctx, t.c, http.MethodPost, tutoringPath, in)
}

func (t *Tutoring) Update(ctx context.Context, id int, in models.TutoringSessionUpdate) (models.TutoringSession, error) {
	return send[models.TutoringSession](ctx, t.c, http.MethodPut, itemPath(tutoringPath, id), in)
}

func (t *Tutoring) Delete(ctx context.Context, id int) error {
	return remove(ctx, t.c, itemPath(tutoringPath, id))
}

// UploadAssignment assigns students to tutors from a spreadsheet.
func (t *Tutoring) UploadAssignment(ctx context.Context, filename string, r io.Reader) (models.Message, error) {
	return upload(ctx, t.c, tutoringPath+"/upload-assignment", filename, r)
}
