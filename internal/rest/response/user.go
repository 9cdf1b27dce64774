package response

import "github.com/adiwangsa/forum-api/domain"

type AddedUser struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

// NewAddedUserFromDomain: Domain -> Response
func NewAddedUserFromDomain(u domain.RegisteredUser) AddedUser {
	return AddedUser{AddedUser: u}
}

type Authentication struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// NewAuthenticationFromDomain: Domain -> Response
func NewAuthenticationFromDomain(a domain.Authentication) Authentication {
	return Authentication{
		AccessToken:  a.AccessToken,
		RefreshToken: a.RefreshToken,
	}
}

type RefreshedAuthentication struct {
	AccessToken string `json:"accessToken"`
}
