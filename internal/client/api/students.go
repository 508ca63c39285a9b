package api

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrijs2005/tutorias/internal/client/client"
	"github.com/dmitrijs2005/tutorias/internal/client/models"
)

const (
	studentsPath        = "/api/alumnos"
	studentsDefaultSize = 10
)

type Students struct {
	c Doer
}

func (s *Students) Login(ctx context.Context, creds models.Credentials) (*models.Token, error) {
	return login(ctx, s.c, studentsPath+"/login", creds)
}

func (s *Students) Me(ctx context.Context) (models.Student, error) {
	return get[models.Student](ctx, s.c, studentsPath+"/me", nil)
}

// ConstanciaPDF downloads the signed certificate of completed tutoring.
func (s *Students) ConstanciaPDF(ctx context.Context) (*client.Document, error) {
	return download(ctx, s.c, studentsPath+"/me/constancia-pdf")
}

func (s *Students) TutoringStatus(ctx context.Context) (models.TutoringStatus, error) {
	return get[models.TutoringStatus](ctx, s.c, studentsPath+"/me/estado-tutorias", nil)
}

func (s *Students) SetPassword(ctx context.Context, in models.SetPassword) (models.Message, error) {
	return send[models.Message](ctx, s.c, http.MethodPost, studentsPath+"/set-password", in)
}

func (s *Students) ChangePassword(ctx context.Context, in models.ChangePassword) (models.Message, error) {
	return send[models.Message](ctx, s.c, http.MethodPut, studentsPath+"/change-password", in)
}

// List defaults to page 1 with 10 entries; an empty search is not sent.
func (s *Students) List(ctx context.Context, p Page) (models.StudentsPage, error) {
	return get[models.StudentsPage](ctx, s.c, studentsPath, p.query(studentsDefaultSize, 1))
}

func (s *Students) Get(ctx context.Context, id int) (models.Student, error) {
	return get[models.Student](ctx, s.c, itemPath(studentsPath, id), nil)
}

func (s *Students) Create(ctx context.Context, in models.StudentCreate) (models.Student, error) {
	return send[models.Student](ctx, s.c, http.MethodPost, studentsPath, in)
}

func (s *Students) Update(ctx context.Context, id int, in models.StudentUpdate) (models.Student, error) {
	return send[models.Student](ctx, s.c, http.MethodPut, itemPath(studentsPath, id), in)
}

func (s *Students) Delete(ctx context.Context, id int) error {
	return remove(ctx, s.c, itemPath(studentsPath, id))
}

// UploadExcel enrols students in bulk from a spreadsheet.
func (s *Students) UploadExcel(ctx context.Context, filename string, r io.Reader) (models.Message, error) {
	return upload(ctx, s.c, studentsPath+"/upload-excel", filename, r)
}
