package models

import (
	"bytes"
	"encoding/json"

	"github.com/dmitrijs2005/tutorias/internal/timex"
)

type SessionStatus string

const (
	SessionPending    SessionStatus = "pendiente"
	SessionInProgress SessionStatus = "en curso"
	SessionCompleted  SessionStatus = "completada"
)

type TutoringSession struct {
	ID                  int             `json:"id_tutoria"`
	Period              string          `json:"periodo,omitempty"`
	Status              SessionStatus   `json:"estado,omitempty"`
	Notes               string          `json:"observaciones,omitempty"`
	Semester            int             `json:"semestre"`
	StudentID           int             `json:"alumno_id"`
	TutorID             *int            `json:"tutor_id"`
	CreatedAt           timex.Timestamp `json:"created_at"`
	UpdatedAt           timex.Timestamp `json:"updated_at"`
	IntegralReportSaved bool            `json:"reporte_integral_guardado"`
	Student             *Student        `json:"alumno,omitempty"`
	Tutor               *Tutor          `json:"tutor,omitempty"`
}

type TutoringSessionCreate struct {
	Period    string        `json:"periodo,omitempty"`
	Status    SessionStatus `json:"estado,omitempty"`
	Notes     string        `json:"observaciones,omitempty"`
	Semester  int           `json:"semestre"`
	StudentID int           `json:"alumno_id"`
	TutorID   *int          `json:"tutor_id,omitempty"`
}

type TutoringSessionUpdate struct {
	Period   *string        `json:"periodo,omitempty"`
	Status   *SessionStatus `json:"estado,omitempty"`
	Notes    *string        `json:"observaciones,omitempty"`
	Semester *int           `json:"semestre,omitempty"`
	TutorID  *int           `json:"tutor_id,omitempty"`
}

// TutoringSessionsPage is a page of sessions. Some backend versions answer
// the paginated tutor listing with a bare array; that form decodes with
// Total set to the array length.
type TutoringSessionsPage struct {
	Total    int               `json:"total_tutorias"`
	Sessions []TutoringSession `json:"tutorias"`
}

func (p *TutoringSessionsPage) UnmarshalJSON(b []byte) error {
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '[' {
		var sessions []TutoringSession
		if err := json.Unmarshal(trimmed, &sessions); err != nil {
			return err
		}
		p.Sessions, p.Total = sessions, len(sessions)
		return nil
	}

	type page TutoringSessionsPage
	var v page
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = TutoringSessionsPage(v)
	return nil
}

// Report is a general report. Its content is owned by the backend and kept
// as a free-form object.
type Report map[string]any
