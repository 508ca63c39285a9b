package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tutorias/internal/client/client"
)

const referralsPath = "/api/canalizaciones"

// ErrInvalidDepartment is returned, without any request being sent, for a
// department outside the known three.
var ErrInvalidDepartment = fmt.Errorf("invalid department: %w", client.ErrMissingArgument)

// Department is a referral department; its value equals the role tag of the
// department's accounts.
type Department string

const (
	Psychology      Department = "psicologia"
	BasicSciences   Department = "ciencias_basicas"
	AcademicAffairs Department = "jefatura_academica"
)

var departmentSegments = map[Department]string{
	Psychology:      "psicologia",
	BasicSciences:   "ciencias-basicas",
	AcademicAffairs: "jefatura-academica",
}

// Referrals downloads the Excel reports of students referred to each
// department. period is the five digit term code, e.g. "22025".
type Referrals struct {
	c Doer
}

func (r *Referrals) PsychologyReport(ctx context.Context, period string) (*client.Document, error) {
	return r.ReportByDepartment(ctx, Psychology, period)
}

func (r *Referrals) BasicSciencesReport(ctx context.Context, period string) (*client.Document, error) {
	return r.ReportByDepartment(ctx, BasicSciences, period)
}

func (r *Referrals) AcademicAffairsReport(ctx context.Context, period string) (*client.Document, error) {
	return r.ReportByDepartment(ctx, AcademicAffairs, period)
}

func (r *Referrals) ReportByDepartment(ctx context.Context, dept Department, period string) (*client.Document, error) {
	segment, ok := departmentSegments[dept]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrInvalidDepartment, dept)
	}
	if period == "" {
		return nil, fmt.Errorf("%w: period", client.ErrMissingArgument)
	}
	return download(ctx, r.c, segmentPath(referralsPath+"/"+segment, period))
}
