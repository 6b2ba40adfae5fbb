package models

// User is the authenticated account profile.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResult is what login, register and token refresh return.
// User is nil for a token refresh.
type AuthResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user,omitempty"`
}

type LoginData struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterData struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// ProfileUpdate is a partial profile change; empty fields are left as they
// are on the server.
type ProfileUpdate struct {
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
}

func (p ProfileUpdate) IsEmpty() bool {
	return p.Email == "" && p.Name == "" && p.Password == ""
}
