package session

// Role is the tag stored next to the credential. It only decides which
// login screen a user is sent back to when the session expires.
type Role string

const (
	RoleStudent         Role = "alumno"
	RoleTutor           Role = "tutor"
	RoleSuperAdmin      Role = "super_admin"
	RolePsychology      Role = "psicologia"
	RoleBasicSciences   Role = "ciencias_basicas"
	RoleAcademicAffairs Role = "jefatura_academica"
)

// Login routes of the front-end.
const (
	RouteRoot         = "/"
	RouteStudentLogin = "/login_alumno"
	RouteTutorLogin   = "/login_tutor"
	RouteAdminLogin   = "/login_admin"
)

var loginRoutes = map[Role]string{
	RoleStudent:         RouteStudentLogin,
	RoleTutor:           RouteTutorLogin,
	RoleSuperAdmin:      RouteAdminLogin,
	RolePsychology:      RouteRoot,
	RoleBasicSciences:   RouteRoot,
	RoleAcademicAffairs: RouteRoot,
}

// LoginRoute returns where a user with this role re-authenticates.
// Unknown and empty roles go to the root page.
func (r Role) LoginRoute() string {
	if route, ok := loginRoutes[r]; ok {
		return route
	}
	return RouteRoot
}

// Known reports whether r is one of the roles issued by the backend.
func (r Role) Known() bool {
	_, ok := loginRoutes[r]
	return ok
}

// IsDepartment reports whether r belongs to a referral department account.
func (r Role) IsDepartment() bool {
	return r == RolePsychology || r == RoleBasicSciences || r == RoleAcademicAffairs
}
