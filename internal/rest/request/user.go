package request

import "github.com/adiwangsa/forum-api/domain"

type RegisterUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

// ToDomain: Request -> Domain
func (r *RegisterUser) ToDomain() domain.RegisterUser {
	return domain.RegisterUser{
		Username: r.Username,
		Password: r.Password,
		Fullname: r.Fullname,
	}
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToDomain: Request -> Domain
func (r *Login) ToDomain() domain.UserLogin {
	return domain.UserLogin{
		Username: r.Username,
		Password: r.Password,
	}
}

// RefreshToken is the body of both the refresh and logout requests.
type RefreshToken struct {
	RefreshToken string `json:"refreshToken"`
}
