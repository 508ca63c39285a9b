package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/tutorias/internal/client/session"
	"github.com/dustin/go-humanize"
)

var errSessionsUsage = errors.New("usage: sessions <tutor-id> [page] [search]")

// Sessions lists a tutor's tutoring sessions. Tutors see their own and do
// not pass an id.
func (a *App) Sessions(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var tutorID int
	if a.role == session.RoleTutor {
		me, err := a.api.Tutors.Me(ctx)
		if err != nil {
			return err
		}
		tutorID = me.ID
	} else {
		if len(args) == 0 {
			return errSessionsUsage
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return errSessionsUsage
		}
		tutorID, args = id, args[1:]
	}

	p := pageArgs(args)
	page, err := a.api.Tutoring.ByTutor(ctx, tutorID, p)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTUDENT\tPERIOD\tSEM\tSTATUS\tREPORT\tUPDATED")
	for _, s := range page.Sessions {
		student := strconv.Itoa(s.StudentID)
		if s.Student != nil {
			student = s.Student.FullName()
		}
		report := "-"
		if s.IntegralReportSaved {
			report = "saved"
		}
		updated := "-"
		if !s.UpdatedAt.IsZero() {
			updated = humanize.Time(s.UpdatedAt.Time)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\n", s.ID, student, s.Period, s.Semester, s.Status, report, updated)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printFooter(a.out, p, len(page.Sessions), page.Total)
	return nil
}
