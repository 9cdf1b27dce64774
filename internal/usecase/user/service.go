package user

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/adiwangsa/forum-api/domain"
)

type Service struct {
	userRepo        domain.UserRepository
	authRepo        domain.AuthenticationRepository
	jwtSecret       []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(u domain.UserRepository, a domain.AuthenticationRepository, jwtSecret []byte, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		userRepo:        u,
		authRepo:        a,
		jwtSecret:       jwtSecret,
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}
}

func (s *Service) Register(ctx context.Context, payload domain.RegisterUser) (domain.RegisteredUser, error) {
	if err := payload.Validate(); err != nil {
		return domain.RegisteredUser{}, err
	}
	if err := s.userRepo.VerifyAvailableUsername(ctx, payload.Username); err != nil {
		return domain.RegisteredUser{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	return s.userRepo.AddUser(ctx, domain.User{
		Username: payload.Username,
		Password: string(hashed),
		Fullname: payload.Fullname,
	})
}

func (s *Service) Login(ctx context.Context, payload domain.UserLogin) (domain.Authentication, error) {
	if err := payload.Validate(); err != nil {
		return domain.Authentication{}, err
	}

	user, err := s.userRepo.GetUserByUsername(ctx, payload.Username)
	if err != nil {
		return domain.Authentication{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return domain.Authentication{}, domain.ErrWrongCredential
	}

	accessToken, err := s.signToken(user.ID, user.Username, s.accessTokenTTL)
	if err != nil {
		return domain.Authentication{}, err
	}
	refreshToken, err := s.signToken(user.ID, user.Username, s.refreshTokenTTL)
	if err != nil {
		return domain.Authentication{}, err
	}
	if err := s.authRepo.AddToken(ctx, refreshToken); err != nil {
		return domain.Authentication{}, err
	}

	return domain.Authentication{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *Service) RefreshAuthentication(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrRefreshAuthMissingToken
	}
	// the store check comes first: a revoked token stays revoked even
	// while its signature is still valid
	if err := s.authRepo.VerifyTokenExists(ctx, refreshToken); err != nil {
		return "", err
	}

	userID, username, err := s.parseToken(refreshToken)
	if err != nil {
		return "", err
	}
	return s.signToken(userID, username, s.accessTokenTTL)
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domain.ErrDeleteAuthMissingToken
	}
	if err := s.authRepo.VerifyTokenExists(ctx, refreshToken); err != nil {
		return err
	}
	return s.authRepo.DeleteToken(ctx, refreshToken)
}

func (s *Service) signToken(userID, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *Service) parseToken(tokenString string) (userID, username string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrRefreshTokenInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", "", domain.ErrRefreshTokenInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", domain.ErrRefreshTokenInvalid
	}
	userID, _ = claims["sub"].(string)
	username, _ = claims["username"].(string)
	if userID == "" {
		return "", "", domain.ErrRefreshTokenInvalid
	}
	return userID, username, nil
}
