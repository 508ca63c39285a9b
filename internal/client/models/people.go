package models

type Student struct {
	ID                     int    `json:"id_alumno"`
	Name                   string `json:"nombre"`
	PaternalSurname        string `json:"apellido_p"`
	MaternalSurname        string `json:"apellido_m,omitempty"`
	ControlNumber          string `json:"num_control"`
	Major                  string `json:"carrera"`
	Semester               int    `json:"semestre_actual"`
	Status                 string `json:"estado"`
	Phone                  string `json:"telefono,omitempty"`
	Email                  string `json:"correo"`
	RequiresPasswordChange bool   `json:"requires_password_change"`
}

// FullName joins name and surnames, skipping the empty maternal surname.
func (s Student) FullName() string {
	return joinName(s.Name, s.PaternalSurname, s.MaternalSurname)
}

type StudentCreate struct {
	Name            string `json:"nombre"`
	PaternalSurname string `json:"apellido_p"`
	MaternalSurname string `json:"apellido_m,omitempty"`
	ControlNumber   string `json:"num_control"`
	Major           string `json:"carrera"`
	Semester        int    `json:"semestre_actual"`
	Status          string `json:"estado"`
	Phone           string `json:"telefono,omitempty"`
	Email           string `json:"correo"`
	Password        string `json:"contraseña"`
}

type StudentUpdate struct {
	Name            *string `json:"nombre,omitempty"`
	PaternalSurname *string `json:"apellido_p,omitempty"`
	MaternalSurname *string `json:"apellido_m,omitempty"`
	ControlNumber   *string `json:"num_control,omitempty"`
	Password        *string `json:"contraseña,omitempty"`
	Major           *string `json:"carrera,omitempty"`
	Semester        *int    `json:"semestre_actual,omitempty"`
	Status          *string `json:"estado,omitempty"`
	Phone           *string `json:"telefono,omitempty"`
	Email           *string `json:"correo,omitempty"`
}

type StudentsPage struct {
	Total    int       `json:"total_alumnos"`
	Students []Student `json:"alumnos"`
}

// TutoringStatus is a student's progress; four completed sessions make the
// student eligible.
type TutoringStatus struct {
	Completed int  `json:"tutorias_completadas"`
	Eligible  bool `json:"es_elegible"`
}

type Tutor struct {
	ID                     int    `json:"id_tutor"`
	Name                   string `json:"nombre"`
	PaternalSurname        string `json:"apellido_p"`
	MaternalSurname        string `json:"apellido_m,omitempty"`
	Email                  string `json:"correo"`
	RequiresPasswordChange bool   `json:"requires_password_change"`
}

func (t Tutor) FullName() string {
	return joinName(t.Name, t.PaternalSurname, t.MaternalSurname)
}

type TutorCreate struct {
	Name            string `json:"nombre"`
	PaternalSurname string `json:"apellido_p"`
	MaternalSurname string `json:"apellido_m,omitempty"`
	Email           string `json:"correo"`
	Password        string `json:"contraseña"`
}

type TutorUpdate struct {
	Name            *string `json:"nombre,omitempty"`
	PaternalSurname *string `json:"apellido_p,omitempty"`
	MaternalSurname *string `json:"apellido_m,omitempty"`
	Email           *string `json:"correo,omitempty"`
	Password        *string `json:"contraseña,omitempty"`
}

type TutorsPage struct {
	Total  int     `json:"total_tutores"`
	Tutors []Tutor `json:"tutores"`
}

// Admin is an administrative account. Role distinguishes the super
// administrator from the referral departments.
type Admin struct {
	ID       int    `json:"id_admin"`
	Username string `json:"usuario"`
	Role     string `json:"rol,omitempty"`
}

type AdminCreate struct {
	Username string `json:"usuario"`
	Password string `json:"contraseña"`
	Role     string `json:"rol,omitempty"`
}

type AdminUpdate struct {
	Username *string `json:"usuario,omitempty"`
	Password *string `json:"contraseña,omitempty"`
	Role     *string `json:"rol,omitempty"`
}

func joinName(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
