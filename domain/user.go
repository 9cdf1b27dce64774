package domain

import (
	"context"
	"regexp"
	"time"
	"unicode/utf8"
)

// UsernameMaxLength is the longest accepted username, in runes.
const UsernameMaxLength = 50

var usernamePattern = regexp.MustCompile(`^\w+$`)

// User represents a registered account.
type User struct {
	ID        string
	Username  string
	Password  string // bcrypt hash
	Fullname  string
	CreatedAt time.Time
}

// RegisterUser is the payload for creating an account.
type RegisterUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

func (u RegisterUser) Validate() error {
	if u.Username == "" || u.Password == "" || u.Fullname == "" {
		return ErrRegisterUserMissingProperty
	}
	if utf8.RuneCountInString(u.Username) > UsernameMaxLength {
		return ErrRegisterUserUsernameLimit
	}
	if !usernamePattern.MatchString(u.Username) {
		return ErrRegisterUserUsernameRestricted
	}
	return nil
}

// RegisteredUser is the projection returned after an account is created.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// UserLogin is the payload for authenticating.
type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l UserLogin) Validate() error {
	if l.Username == "" || l.Password == "" {
		return ErrUserLoginMissingProperty
	}
	return nil
}

// Authentication is the token pair handed out on login.
type Authentication struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	// AddUser persists the user; Password must already be hashed.
	AddUser(ctx context.Context, user User) (RegisteredUser, error)

	// VerifyAvailableUsername returns ErrUsernameUnavailable when taken.
	VerifyAvailableUsername(ctx context.Context, username string) error

	// GetUserByUsername returns ErrWrongCredential when no such user exists,
	// so login failures don't leak which part of the credential was wrong.
	GetUserByUsername(ctx context.Context, username string) (User, error)
}

// UserUsecase defines the business logic contract for accounts and sessions.
type UserUsecase interface {
	Register(ctx context.Context, payload RegisterUser) (RegisteredUser, error)
	Login(ctx context.Context, payload UserLogin) (Authentication, error)

	// RefreshAuthentication exchanges a registered refresh token for a new
	// access token.
	RefreshAuthentication(ctx context.Context, refreshToken string) (string, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
