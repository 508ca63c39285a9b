// Package services contains application services for the tutorias client.
// This file defines the authentication service: login on the student, tutor,
// administrator and department surfaces, first-time password setup, logout
// and session inspection.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tutorias/internal/client/api"
	"github.com/dmitrijs2005/tutorias/internal/client/client"
	"github.com/dmitrijs2005/tutorias/internal/client/models"
	"github.com/dmitrijs2005/tutorias/internal/client/session"
	"github.com/dmitrijs2005/tutorias/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Surface is a login screen of the front-end.
type Surface string

const (
	SurfaceStudent Surface = "alumno"
	SurfaceTutor   Surface = "tutor"
	SurfaceAdmin   Surface = "admin"

	// Department accounts sign in through the administrators endpoint, whose
	// answer carries no role; the surface names it.
	SurfacePsychology      Surface = "psicologia"
	SurfaceBasicSciences   Surface = "ciencias_basicas"
	SurfaceAcademicAffairs Surface = "jefatura_academica"
)

var ErrUnknownSurface = fmt.Errorf("unknown login surface: %w", client.ErrMissingArgument)

// ParseSurface accepts the surface names, their English aliases and the
// hyphenated department spellings used in URLs.
func ParseSurface(s string) (Surface, error) {
	switch s {
	case "alumno", "student":
		return SurfaceStudent, nil
	case "tutor":
		return SurfaceTutor, nil
	case "admin", "administrador":
		return SurfaceAdmin, nil
	case "psicologia":
		return SurfacePsychology, nil
	case "ciencias_basicas", "ciencias-basicas":
		return SurfaceBasicSciences, nil
	case "jefatura_academica", "jefatura-academica":
		return SurfaceAcademicAffairs, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownSurface, s)
}

// defaultRole is assumed when neither the login answer nor the token names
// a role.
func (s Surface) defaultRole() session.Role {
	switch s {
	case SurfaceStudent:
		return session.RoleStudent
	case SurfaceTutor:
		return session.RoleTutor
	case SurfacePsychology:
		return session.RolePsychology
	case SurfaceBasicSciences:
		return session.RoleBasicSciences
	case SurfaceAcademicAffairs:
		return session.RoleAcademicAffairs
	default:
		return session.RoleSuperAdmin
	}
}

// IsDepartment reports whether s is the login screen of a referral
// department.
func (s Surface) IsDepartment() bool {
	return s.defaultRole().IsDepartment()
}

// Identity is what the local session says about the current user.
type Identity struct {
	Role          session.Role
	Authenticated bool
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate on a surface and persist credential and role.
//   - SetPassword: replace a temporary password (students and tutors only).
//   - Logout: erase the local session.
//   - Current: report the stored role and whether a credential exists.
type AuthService interface {
	Login(ctx context.Context, surface Surface, username, password string) (session.Role, error)
	SetPassword(ctx context.Context, surface Surface, in models.SetPassword) (models.Message, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (Identity, error)
}

type authService struct {
	api   *api.API
	store *session.Store
	log   logging.Logger
}

func NewAuthService(a *api.API, store *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop{}
	}
	return &authService{api: a, store: store, log: log}
}

func (s *authService) Login(ctx context.Context, surface Surface, username, password string) (session.Role, error) {
	creds := models.Credentials{Username: username, Password: password}

	var (
		tok *models.Token
		err error
	)
	switch surface {
	case SurfaceStudent:
		tok, err = s.api.Students.Login(ctx, creds)
	case SurfaceTutor:
		tok, err = s.api.Tutors.Login(ctx, creds)
	case SurfaceAdmin, SurfacePsychology, SurfaceBasicSciences, SurfaceAcademicAffairs:
		tok, err = s.api.Administrators.Login(ctx, creds)
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownSurface, surface)
	}
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}
	if tok.AccessToken == "" {
		return "", errors.New("login error: empty access token")
	}

	role, decided := roleFromLogin(tok)
	if !decided {
		role = surface.defaultRole()
	}
	if err := s.store.Save(ctx, tok.AccessToken, role); err != nil {
		return "", fmt.Errorf("session saving error: %w", err)
	}

	// A department account signing in on the admin surface can only be told
	// apart by its profile. Backends without a profile route keep the default.
	if surface == SurfaceAdmin && !decided {
		role = s.refineAdminRole(ctx, tok.AccessToken, role)
	}

	s.log.Info(ctx, "logged in", "surface", string(surface), "role", string(role))
	return role, nil
}

func (s *authService) refineAdminRole(ctx context.Context, token string, fallback session.Role) session.Role {
	me, err := s.api.Administrators.Me(ctx)
	if err != nil {
		s.log.Warn(ctx, "could not read administrator profile", "error", err)
		return fallback
	}
	role := session.Role(me.Role)
	if !role.Known() || role == fallback {
		return fallback
	}
	if err := s.store.Save(ctx, token, role); err != nil {
		s.log.Warn(ctx, "could not update session role", "error", err)
		return fallback
	}
	return role
}

// roleFromLogin reads the role from the login answer, then from the token's
// "role" claim. The token is not verified; the backend does that on every
// request.
func roleFromLogin(tok *models.Token) (session.Role, bool) {
	if tok.Rol != "" {
		return session.Role(tok.Rol), true
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok.AccessToken, claims); err != nil {
		return "", false
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		return session.Role(role), true
	}
	return "", false
}

func (s *authService) SetPassword(ctx context.Context, surface Surface, in models.SetPassword) (models.Message, error) {
	switch surface {
	case SurfaceStudent:
		if in.ControlNumber == "" {
			return nil, fmt.Errorf("%w: control number", client.ErrMissingArgument)
		}
		return s.api.Students.SetPassword(ctx, in)
	case SurfaceTutor:
		if in.Email == "" {
			return nil, fmt.Errorf("%w: email", client.ErrMissingArgument)
		}
		return s.api.Tutors.SetPassword(ctx, in)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSurface, surface)
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *authService) Current(ctx context.Context) (Identity, error) {
	token, err := s.store.Token(ctx)
	if err != nil {
		return Identity{}, err
	}
	role, err := s.store.Role(ctx)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Role: role, Authenticated: token != ""}, nil
}
