package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/tutorias/internal/client/api"
	"github.com/dmitrijs2005/tutorias/internal/client/client"
	"github.com/dmitrijs2005/tutorias/internal/client/models"
	"github.com/dmitrijs2005/tutorias/internal/filex"
	"github.com/dustin/go-humanize"
)

var (
	errReferralUsage = errors.New("usage: referral <psicologia|ciencias_basicas|jefatura_academica> <period>")
	errReportUsage   = errors.New("usage: report-pdf <1|2> <id>")
	errUploadUsage   = errors.New("usage: upload <students|assignment|template> <file>")
)

var reportFamilies = map[string]func(a *App) *api.Reports{
	"1": func(a *App) *api.Reports { return a.api.General1 },
	"2": func(a *App) *api.Reports { return a.api.General2 },
}

// saveDocument stores doc in the download directory, under the name the
// backend suggested or fallback.
func (a *App) saveDocument(ctx context.Context, doc *client.Document, fallback string) error {
	dir, err := filex.EnsureDir(a.downloadDir)
	if err != nil {
		return err
	}
	name := doc.Filename
	if name == "" {
		name = fallback
	}
	path, err := filex.SaveUnique(dir, name, doc.Data)
	if err != nil {
		return err
	}
	a.log.Debug(ctx, "document saved", "path", path, "content_type", doc.ContentType)
	fmt.Fprintf(a.out, "Saved %s (%s)\n", path, humanize.Bytes(uint64(len(doc.Data))))
	return nil
}

func (a *App) Constancia(ctx context.Context, _ []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	doc, err := a.api.Students.ConstanciaPDF(ctx)
	if err != nil {
		return err
	}
	return a.saveDocument(ctx, doc, "constancia.pdf")
}

// Referral downloads a department's referral report. Department accounts
// may omit the department.
func (a *App) Referral(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var dept api.Department
	var period string
	switch {
	case len(args) == 1 && a.role.IsDepartment():
		dept, period = api.Department(a.role), args[0]
	case len(args) == 2:
		dept, period = api.Department(args[0]), args[1]
	default:
		return errReferralUsage
	}

	doc, err := a.api.Referrals.ReportByDepartment(ctx, dept, period)
	if err != nil {
		return err
	}
	return a.saveDocument(ctx, doc, fmt.Sprintf("canalizaciones_%s_%s.xlsx", dept, period))
}

func (a *App) ReportPDF(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 2 {
		return errReportUsage
	}
	family, ok := reportFamilies[args[0]]
	if !ok {
		return errReportUsage
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return errReportUsage
	}

	doc, err := family(a).DownloadPDF(ctx, id)
	if err != nil {
		return err
	}
	return a.saveDocument(ctx, doc, fmt.Sprintf("reporte_general%s_%d.pdf", args[0], id))
}

// Upload sends a spreadsheet (students, assignment) or the integral report
// template to the backend.
func (a *App) Upload(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 2 {
		return errUploadUsage
	}

	f, err := os.Open(args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil {
		fmt.Fprintf(a.out, "Uploading %s (%s)\n", fi.Name(), humanize.Bytes(uint64(fi.Size())))
	}
	name := filepath.Base(args[1])

	var msg models.Message
	switch args[0] {
	case "students":
		msg, err = a.api.Students.UploadExcel(ctx, name, f)
	case "assignment":
		msg, err = a.api.Tutoring.UploadAssignment(ctx, name, f)
	case "template":
		msg, err = a.api.Configuration.UploadIntegralTemplate(ctx, name, f)
	default:
		return errUploadUsage
	}
	if err != nil {
		return err
	}
	printMessage(a.out, msg, "Upload complete")
	return nil
}

func (a *App) ResetTemplate(ctx context.Context, _ []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	ok, err := Confirm(a.reader, "Restore the default integral report template?", a.out)
	if err != nil || !ok {
		return err
	}
	msg, err := a.api.Configuration.ResetIntegralTemplate(ctx)
	if err != nil {
		return err
	}
	printMessage(a.out, msg, "Template restored")
	return nil
}
