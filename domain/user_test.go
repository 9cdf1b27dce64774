package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adiwangsa/forum-api/domain"
)

func TestRegisterUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload domain.RegisterUser
		wantErr error
	}{
		{
			name:    "valid",
			payload: domain.RegisterUser{Username: "dicoding", Password: "secret", Fullname: "Dicoding Indonesia"},
		},
		{
			name:    "missing fullname",
			payload: domain.RegisterUser{Username: "dicoding", Password: "secret"},
			wantErr: domain.ErrRegisterUserMissingProperty,
		},
		{
			name:    "username over the limit",
			payload: domain.RegisterUser{Username: strings.Repeat("a", 51), Password: "secret", Fullname: "Dicoding Indonesia"},
			wantErr: domain.ErrRegisterUserUsernameLimit,
		},
		{
			name:    "username with restricted characters",
			payload: domain.RegisterUser{Username: "dico ding", Password: "secret", Fullname: "Dicoding Indonesia"},
			wantErr: domain.ErrRegisterUserUsernameRestricted,
		},
		{
			name:    "underscore is allowed",
			payload: domain.RegisterUser{Username: "dico_ding", Password: "secret", Fullname: "Dicoding Indonesia"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.payload.Validate(), tc.wantErr)
		})
	}
}

func TestUserLoginValidate(t *testing.T) {
	assert.NoError(t, domain.UserLogin{Username: "dicoding", Password: "secret"}.Validate())
	assert.ErrorIs(t, domain.UserLogin{Username: "dicoding"}.Validate(), domain.ErrUserLoginMissingProperty)
	assert.ErrorIs(t, domain.UserLogin{Password: "secret"}.Validate(), domain.ErrUserLoginMissingProperty)
}
