package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/tutorias/internal/client/api"
	"github.com/dmitrijs2005/tutorias/internal/client/client"
	"github.com/dmitrijs2005/tutorias/internal/client/models"
	"github.com/dmitrijs2005/tutorias/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tutorias/internal/client/services"
	"github.com/dmitrijs2005/tutorias/internal/client/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	app    *App
	store  *session.Store
	router chi.Router
	out    *bytes.Buffer
}

func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	r := chi.NewRouter()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	store := session.NewStore(metadata.NewMemoryRepository())

	var app *App
	nav := client.NavigatorFunc(func(ctx context.Context, route string) { app.Navigate(ctx, route) })
	c, err := client.New(srv.URL, store, nav)
	require.NoError(t, err)

	a := api.New(c)
	app = NewApp(services.NewAuthService(a, store, nil), a, t.TempDir(), nil)
	out := &bytes.Buffer{}
	app.out = out
	app.reader = bufio.NewReader(strings.NewReader(input))

	return &harness{app: app, store: store, router: r, out: out}
}

func (h *harness) signIn(t *testing.T, role session.Role) {
	t.Helper()
	require.NoError(t, h.store.Save(context.Background(), "tok", role))
	h.app.restore(context.Background())
	require.True(t, h.app.isLoggedIn())
}

func stubPassword(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(string, io.Writer) ([]byte, error) {
		next := answers[0]
		answers = answers[1:]
		return []byte(next), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin_SignsIn(t *testing.T) {
	h := newHarness(t, "20240001\n")
	stubPassword(t, "secreto123")
	h.router.Post("/api/alumnos/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "20240001", r.PostForm.Get("username"))
		assert.Equal(t, "secreto123", r.PostForm.Get("password"))
		reply(w, http.StatusOK, models.Token{AccessToken: "jwt", TokenType: "bearer", Rol: "alumno"})
	})

	require.NoError(t, h.app.Login(context.Background(), []string{"alumno"}))

	assert.True(t, h.app.isLoggedIn())
	assert.Equal(t, "(alumno)", h.app.status())
	assert.Contains(t, h.out.String(), "Control number")
	assert.Contains(t, h.out.String(), "Signed in as alumno")
}

func TestLogin_Rejected(t *testing.T) {
	h := newHarness(t, "tutor@itsx.edu.mx\n")
	stubPassword(t, "wrong")
	h.router.Post("/api/tutores/login", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusUnauthorized, map[string]string{"detail": "Correo o contraseña incorrectos"})
	})

	err := h.app.Login(context.Background(), []string{"tutor"})
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "Correo o contraseña incorrectos", describe(err))
	assert.False(t, h.app.isLoggedIn())
}

func TestSetPassword_Mismatch(t *testing.T) {
	h := newHarness(t, "tutor@itsx.edu.mx\n")
	stubPassword(t, "temporal", "nueva-123", "nueva-124")

	err := h.app.SetPassword(context.Background(), []string{"tutor"})
	require.ErrorIs(t, err, errPasswordMismatch)
}

func TestSetPassword_Student(t *testing.T) {
	h := newHarness(t, "20240001\n")
	stubPassword(t, "temporal", "nueva-123", "nueva-123")
	h.router.Post("/api/alumnos/set-password", func(w http.ResponseWriter, r *http.Request) {
		var in models.SetPassword
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, models.SetPassword{ControlNumber: "20240001", CurrentPassword: "temporal", NewPassword: "nueva-123"}, in)
		reply(w, http.StatusOK, map[string]string{"message": "Contraseña establecida"})
	})

	require.NoError(t, h.app.SetPassword(context.Background(), []string{"alumno"}))
	assert.Contains(t, h.out.String(), "Contraseña establecida")
}

func TestLogin_DepartmentAccount(t *testing.T) {
	h := newHarness(t, "psico_admin\n")
	stubPassword(t, "secreto123")
	h.router.Post("/api/administradores/login", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, models.Token{AccessToken: "opaque", TokenType: "bearer"})
	})
	h.router.Get("/api/canalizaciones/psicologia/{period}", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusUnauthorized, map[string]string{"detail": "Token expirado"})
	})

	require.NoError(t, h.app.Login(context.Background(), []string{"psicologia"}))
	assert.Equal(t, "(psicologia)", h.app.status())
	assert.Contains(t, h.out.String(), "Use 'referral <period>'")

	err := h.app.Referral(context.Background(), []string{"22025"})
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, h.app.isLoggedIn())
	assert.Contains(t, h.out.String(), "Session expired (/). Use 'login' to sign in again.")
}

func TestExpiredSession_DropsToLoggedOut(t *testing.T) {
	h := newHarness(t, "")
	h.signIn(t, session.RoleTutor)
	h.router.Get("/api/alumnos", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusUnauthorized, map[string]string{"detail": "Token expirado"})
	})

	err := h.app.Students(context.Background(), nil)
	require.ErrorIs(t, err, client.ErrUnauthorized)

	assert.False(t, h.app.isLoggedIn())
	assert.Contains(t, h.out.String(), "Session expired (/login_tutor). Use 'login tutor' to sign in again.")
	tok, err := h.store.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestCommands_RequireLogin(t *testing.T) {
	h := newHarness(t, "")
	ctx := context.Background()

	for name, cmd := range map[string]func(context.Context, []string) error{
		"me": h.app.Me, "students": h.app.Students, "sessions": h.app.Sessions, "constancia": h.app.Constancia,
	} {
		assert.ErrorIs(t, cmd(ctx, nil), errNotLoggedIn, name)
	}
}

func TestStudents_Table(t *testing.T) {
	h := newHarness(t, "")
	h.signIn(t, session.RoleSuperAdmin)
	h.router.Get("/api/alumnos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "page=2&size=10&search=ruiz", r.URL.RawQuery)
		reply(w, http.StatusOK, models.StudentsPage{Total: 11, Students: []models.Student{
			{ID: 7, ControlNumber: "20240007", Name: "Ana", PaternalSurname: "Ruiz", Major: "Sistemas", Semester: 3, Status: "activo"},
		}})
	})

	require.NoError(t, h.app.Students(context.Background(), []string{"2", "ruiz"}))
	out := h.out.String()
	assert.Contains(t, out, "20240007")
	assert.Contains(t, out, "Ana Ruiz")
	assert.Contains(t, out, "Page 2: 1 of 11")
}

func TestSessions_TutorUsesOwnID(t *testing.T) {
	h := newHarness(t, "")
	h.signIn(t, session.RoleTutor)
	h.router.Get("/api/tutores/me", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, models.Tutor{ID: 5, Name: "Luis"})
	})
	h.router.Get("/api/tutorias/tutor/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", chi.URLParam(r, "id"))
		assert.Equal(t, "page=1&size=5", r.URL.RawQuery)
		_, _ = io.WriteString(w, `[{"id_tutoria": 3, "semestre": 2, "alumno_id": 9, "estado": "pendiente"}]`)
	})

	require.NoError(t, h.app.Sessions(context.Background(), []string{"ab"}))
	assert.Contains(t, h.out.String(), "pendiente")
}

func TestSessions_AdminNeedsID(t *testing.T) {
	h := newHarness(t, "")
	h.signIn(t, session.RoleSuperAdmin)

	require.ErrorIs(t, h.app.Sessions(context.Background(), nil), errSessionsUsage)
	require.ErrorIs(t, h.app.Sessions(context.Background(), []string{"x"}), errSessionsUsage)
}

func TestReferral_DepartmentAccountSavesFile(t *testing.T) {
	h := newHarness(t, "")
	h.signIn(t, session.RoleBasicSciences)
	h.router.Get("/api/canalizaciones/ciencias-basicas/{period}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = io.WriteString(w, "PK-sheet")
	})

	require.NoError(t, h.app.Referral(context.Background(), []string{"22025"}))

	path := filepath.Join(h.app.downloadDir, "canalizaciones_ciencias_basicas_22025.xlsx")
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PK-sheet", string(b))
	assert.Contains(t, h.out.String(), "Saved "+path)
}

func TestReferral_Usage(t *testing.T) {
	h := newHarness(t, "")
	h.signIn(t, session.RoleSuperAdmin)

	require.ErrorIs(t, h.app.Referral(context.Background(), []string{"22025"}), errReferralUsage)
	require.ErrorIs(t, h.app.Referral(context.Background(), []string{"finanzas", "22025"}), api.ErrInvalidDepartment)
}

func TestReportPDF_UsesBackendFilename(t *testing.T) {
	h := newHarness(t, "")
	h.signIn(t, session.RoleTutor)
	h.router.Get("/api/reportes/general-2/{id}/pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="Reporte_General_2.pdf"`)
		_, _ = io.WriteString(w, "%PDF")
	})

	require.NoError(t, h.app.ReportPDF(context.Background(), []string{"2", "4"}))
	_, err := os.Stat(filepath.Join(h.app.downloadDir, "Reporte_General_2.pdf"))
	require.NoError(t, err)

	require.ErrorIs(t, h.app.ReportPDF(context.Background(), []string{"3", "4"}), errReportUsage)
}

func TestUpload_Students(t *testing.T) {
	h := newHarness(t, "")
	h.signIn(t, session.RoleSuperAdmin)
	h.router.Post("/api/alumnos/upload-excel", func(w http.ResponseWriter, r *http.Request) {
		_, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "alumnos.xlsx", hdr.Filename)
		reply(w, http.StatusOK, map[string]any{"creados": 2, "actualizados": 1})
	})

	file := filepath.Join(t.TempDir(), "alumnos.xlsx")
	require.NoError(t, os.WriteFile(file, []byte("PK-xlsx"), 0o600))

	require.NoError(t, h.app.Upload(context.Background(), []string{"students", file}))
	out := h.out.String()
	assert.Contains(t, out, "Uploading alumnos.xlsx (7 B)")
	assert.Contains(t, out, "actualizados: 1\ncreados: 2\n")

	require.ErrorIs(t, h.app.Upload(context.Background(), []string{"photos", file}), errUploadUsage)
}

func TestStage(t *testing.T) {
	h := newHarness(t, "")
	h.signIn(t, session.RoleSuperAdmin)
	h.router.Get("/api/configuracion", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, models.StageConfig{Stage: 1})
	})
	h.router.Put("/api/configuracion", func(w http.ResponseWriter, r *http.Request) {
		var in models.StageConfig
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		reply(w, http.StatusOK, in)
	})

	require.NoError(t, h.app.Stage(context.Background(), nil))
	require.NoError(t, h.app.Stage(context.Background(), []string{"2"}))
	assert.Contains(t, h.out.String(), "Integral report stage: 1")
	assert.Contains(t, h.out.String(), "Integral report stage set to 2")

	require.ErrorIs(t, h.app.Stage(context.Background(), []string{"4"}), errStageUsage)
}

func TestAddNotice(t *testing.T) {
	h := newHarness(t, "Entrega de reportes\nSubir el reporte integral\nantes del viernes\n\n\ny\n")
	h.signIn(t, session.RoleSuperAdmin)
	h.router.Post("/api/avisos/admin", func(w http.ResponseWriter, r *http.Request) {
		var in models.NoticeCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, models.NoticeCreate{
			Title:       "Entrega de reportes",
			Description: "Subir el reporte integral\nantes del viernes",
			Active:      true,
		}, in)
		reply(w, http.StatusOK, models.Notice{ID: 12, Title: in.Title})
	})

	require.NoError(t, h.app.AddNotice(context.Background(), nil))
	assert.Contains(t, h.out.String(), "Notice #12 created")
}

func TestLogout(t *testing.T) {
	h := newHarness(t, "")
	h.signIn(t, session.RoleStudent)

	require.NoError(t, h.app.Logout(context.Background(), nil))
	assert.False(t, h.app.isLoggedIn())
	assert.Equal(t, "", h.app.status())
}
