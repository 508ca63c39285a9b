package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/tutorias/internal/client/models"
	"github.com/dmitrijs2005/tutorias/internal/client/session"
	"github.com/dustin/go-humanize"
)

var errStageUsage = errors.New("usage: stage [1|2|3]")

// Notices prints the active notices. The super administrator also sees
// drafts.
func (a *App) Notices(ctx context.Context, _ []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var (
		notices []models.Notice
		err     error
	)
	if a.role == session.RoleSuperAdmin {
		notices, err = a.api.Notices.ListAll(ctx)
	} else {
		notices, err = a.api.Notices.ListActive(ctx)
	}
	if err != nil {
		return err
	}

	if len(notices) == 0 {
		fmt.Fprintln(a.out, "No notices")
		return nil
	}
	for _, n := range notices {
		state := ""
		if !n.Active {
			state = " [draft]"
		}
		fmt.Fprintf(a.out, "#%d %s%s (%s)\n", n.ID, n.Title, state, humanize.Time(n.CreatedAt.Time))
		fmt.Fprintln(a.out, n.Description)
		if n.Link != "" {
			fmt.Fprintln(a.out, n.Link)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *App) AddNotice(ctx context.Context, _ []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	desc, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	link, err := getSimpleText(a.reader, "Link (optional)", a.out)
	if err != nil {
		return err
	}
	publish, err := Confirm(a.reader, "Publish now?", a.out)
	if err != nil {
		return err
	}

	n, err := a.api.Notices.Create(ctx, models.NoticeCreate{Title: title, Description: desc, Link: link, Active: publish})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Notice #%d created\n", n.ID)
	return nil
}

// Stage shows the open stage of the integral report, or sets it.
func (a *App) Stage(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	if len(args) == 0 {
		cfg, err := a.api.Configuration.CurrentStage(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Integral report stage: %d\n", cfg.Stage)
		return nil
	}

	stage, err := strconv.Atoi(args[0])
	if err != nil || stage < 1 || stage > 3 {
		return errStageUsage
	}
	cfg, err := a.api.Configuration.UpdateStage(ctx, stage)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Integral report stage set to %d\n", cfg.Stage)
	return nil
}
