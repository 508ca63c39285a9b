package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/tutorias/internal/client/api"
	"github.com/dmitrijs2005/tutorias/internal/client/session"
)

// pageArgs reads "[page] [search words...]".
func pageArgs(args []string) api.Page {
	var p api.Page
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			p.Number = n
			args = args[1:]
		}
	}
	p.Search = strings.Join(args, " ")
	return p
}

func (a *App) Me(ctx context.Context, _ []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	switch a.role {
	case session.RoleStudent:
		me, err := a.api.Students.Me(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s (%s)\n%s, semester %d\n%s\n", me.FullName(), me.ControlNumber, me.Major, me.Semester, me.Email)

		st, err := a.api.Students.TutoringStatus(ctx)
		if err != nil {
			return err
		}
		eligible := "no"
		if st.Eligible {
			eligible = "yes"
		}
		fmt.Fprintf(a.out, "Completed sessions: %d (eligible: %s)\n", st.Completed, eligible)

	case session.RoleTutor:
		me, err := a.api.Tutors.Me(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s <%s> (tutor #%d)\n", me.FullName(), me.Email, me.ID)

	default:
		me, err := a.api.Administrators.Me(ctx)
		if err != nil {
			return err
		}
		role := me.Role
		if role == "" {
			role = string(a.role)
		}
		fmt.Fprintf(a.out, "%s (%s)\n", me.Username, role)
	}
	return nil
}

func (a *App) Students(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	p := pageArgs(args)
	page, err := a.api.Students.List(ctx, p)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCONTROL\tNAME\tMAJOR\tSEM\tSTATUS")
	for _, s := range page.Students {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n", s.ID, s.ControlNumber, s.FullName(), s.Major, s.Semester, s.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printFooter(a.out, p, len(page.Students), page.Total)
	return nil
}

func (a *App) Tutors(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	p := pageArgs(args)
	page, err := a.api.Tutors.List(ctx, p)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tE-MAIL")
	for _, t := range page.Tutors {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, t.FullName(), t.Email)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printFooter(a.out, p, len(page.Tutors), page.Total)
	return nil
}
