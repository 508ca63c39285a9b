package models

// Credentials are sent as a URL-encoded form with username/password keys.
// Students log in with their control number, tutors with their e-mail and
// administrators with their user name.
type Credentials struct {
	Username string
	Password string
}

// Token is the login answer. Rol is absent for administrators.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Rol         string `json:"rol,omitempty"`
}

// SetPassword replaces the temporary password handed out at enrolment.
// Students identify with ControlNumber, tutors with Email.
type SetPassword struct {
	ControlNumber   string `json:"num_control,omitempty"`
	Email           string `json:"correo,omitempty"`
	CurrentPassword string `json:"contraseña_actual"`
	NewPassword     string `json:"nueva_contraseña"`
}

type ChangePassword struct {
	CurrentPassword string `json:"contraseña_actual"`
	NewPassword     string `json:"nueva_contraseña"`
}

// Message is a free-form acknowledgement such as {"message": "..."} or an
// upload summary.
type Message map[string]any
