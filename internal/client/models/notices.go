package models

import "github.com/dmitrijs2005/tutorias/internal/timex"

// Notice is an announcement published by administrators to students.
type Notice struct {
	ID          int             `json:"id"`
	Title       string          `json:"titulo"`
	Description string          `json:"descripcion"`
	Link        string          `json:"link,omitempty"`
	Active      bool            `json:"is_activo"`
	CreatedAt   timex.Timestamp `json:"created_at"`
	UpdatedAt   timex.Timestamp `json:"updated_at"`
}

// NoticeCreate defaults to an inactive draft.
type NoticeCreate struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	Link        string `json:"link,omitempty"`
	Active      bool   `json:"is_activo"`
}

type NoticeUpdate struct {
	Title       *string `json:"titulo,omitempty"`
	Description *string `json:"descripcion,omitempty"`
	Link        *string `json:"link,omitempty"`
	Active      *bool   `json:"is_activo,omitempty"`
}

// StageConfig selects which stage (1 to 3) of the integral report is open.
type StageConfig struct {
	Stage int `json:"reporte_integral_etapa"`
}
