package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tutorias/internal/client/models"
	"github.com/dmitrijs2005/tutorias/internal/client/services"
	"github.com/dmitrijs2005/tutorias/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errPasswordMismatch = errors.New("passwords do not match")

func (a *App) surfaceArg(args []string) (services.Surface, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	} else {
		var err error
		if name, err = getSimpleText(a.reader, "Sign in as (alumno, tutor, admin, psicologia, ciencias_basicas, jefatura_academica)", a.out); err != nil {
			return "", err
		}
	}
	return services.ParseSurface(name)
}

func usernamePrompt(s services.Surface) string {
	switch s {
	case services.SurfaceStudent:
		return "Control number"
	case services.SurfaceTutor:
		return "E-mail"
	}
	return "User"
}

// Login prompts for credentials on the chosen surface and stores the
// resulting session. The password is wiped before returning.
func (a *App) Login(ctx context.Context, args []string) error {
	surface, err := a.surfaceArg(args)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, usernamePrompt(surface), a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := a.auth.Login(ctx, surface, username, string(password))
	if err != nil {
		a.log.Warn(ctx, "login unsuccessful", "surface", string(surface), "error", err)
		return err
	}

	a.loggedIn, a.role = true, role
	fmt.Fprintf(a.out, "Signed in as %s\n", role)
	if surface.IsDepartment() {
		fmt.Fprintln(a.out, "Use 'referral <period>' to download your department's referrals")
	}
	return nil
}

// SetPassword replaces the temporary password of a student or tutor.
func (a *App) SetPassword(ctx context.Context, args []string) error {
	surface, err := a.surfaceArg(args)
	if err != nil {
		return err
	}

	in := models.SetPassword{}
	id, err := getSimpleText(a.reader, usernamePrompt(surface), a.out)
	if err != nil {
		return err
	}
	if surface == services.SurfaceStudent {
		in.ControlNumber = id
	} else {
		in.Email = id
	}

	current, err := getPassword("Temporary password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)
	next, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)
	again, err := getPassword("Repeat new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(again)

	if string(next) != string(again) {
		return errPasswordMismatch
	}
	in.CurrentPassword, in.NewPassword = string(current), string(next)

	msg, err := a.auth.SetPassword(ctx, surface, in)
	if err != nil {
		return err
	}
	printMessage(a.out, msg, "Password updated")
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.loggedIn, a.role = false, ""
	fmt.Fprintln(a.out, "Signed out")
	return nil
}
