package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adiwangsa/forum-api/domain"
	"github.com/adiwangsa/forum-api/domain/mocks"
	"github.com/adiwangsa/forum-api/internal/rest"
)

func TestUserHandlerRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(mocks.UserUsecase)
		registered := domain.RegisteredUser{ID: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}
		svc.On("Register", mock.Anything, domain.RegisterUser{
			Username: "dicoding",
			Password: "secret",
			Fullname: "Dicoding Indonesia",
		}).Return(registered, nil).Once()

		router := gin.New()
		router.POST("/users", rest.NewUserHandler(svc).Register)

		body := `{"username": "dicoding", "password": "secret", "fullname": "Dicoding Indonesia"}`
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got struct {
			Status string `json:"status"`
			Data   struct {
				AddedUser domain.RegisteredUser `json:"addedUser"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, registered, got.Data.AddedUser)
	})

	t.Run("taken username answers 400", func(t *testing.T) {
		svc := new(mocks.UserUsecase)
		svc.On("Register", mock.Anything, mock.Anything).
			Return(domain.RegisteredUser{}, domain.ErrUsernameUnavailable).Once()

		router := gin.New()
		router.POST("/users", rest.NewUserHandler(svc).Register)

		body := `{"username": "dicoding", "password": "secret", "fullname": "Dicoding Indonesia"}`
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var got struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "username tidak tersedia", got.Message)
	})
}

func TestUserHandlerLogin(t *testing.T) {
	t.Run("issues a token pair", func(t *testing.T) {
		svc := new(mocks.UserUsecase)
		auth := domain.Authentication{AccessToken: "access", RefreshToken: "refresh"}
		svc.On("Login", mock.Anything, domain.UserLogin{Username: "dicoding", Password: "secret"}).
			Return(auth, nil).Once()

		router := gin.New()
		router.POST("/authentications", rest.NewUserHandler(svc).Login)

		req := httptest.NewRequest(http.MethodPost, "/authentications",
			strings.NewReader(`{"username": "dicoding", "password": "secret"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got struct {
			Data struct {
				AccessToken  string `json:"accessToken"`
				RefreshToken string `json:"refreshToken"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "access", got.Data.AccessToken)
		assert.Equal(t, "refresh", got.Data.RefreshToken)
	})

	t.Run("wrong credential answers 401", func(t *testing.T) {
		svc := new(mocks.UserUsecase)
		svc.On("Login", mock.Anything, mock.Anything).
			Return(domain.Authentication{}, domain.ErrWrongCredential).Once()

		router := gin.New()
		router.POST("/authentications", rest.NewUserHandler(svc).Login)

		req := httptest.NewRequest(http.MethodPost, "/authentications",
			strings.NewReader(`{"username": "dicoding", "password": "wrong"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserHandlerRefresh(t *testing.T) {
	svc := new(mocks.UserUsecase)
	svc.On("RefreshAuthentication", mock.Anything, "refresh-token").Return("new-access", nil).Once()

	router := gin.New()
	router.PUT("/authentications", rest.NewUserHandler(svc).Refresh)

	req := httptest.NewRequest(http.MethodPut, "/authentications",
		strings.NewReader(`{"refreshToken": "refresh-token"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "new-access", got.Data.AccessToken)
}

func TestUserHandlerLogout(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := new(mocks.UserUsecase)
		svc.On("Logout", mock.Anything, "refresh-token").Return(nil).Once()

		router := gin.New()
		router.DELETE("/authentications", rest.NewUserHandler(svc).Logout)

		req := httptest.NewRequest(http.MethodDelete, "/authentications",
			strings.NewReader(`{"refreshToken": "refresh-token"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("unknown token answers 400", func(t *testing.T) {
		svc := new(mocks.UserUsecase)
		svc.On("Logout", mock.Anything, "unknown").Return(domain.ErrRefreshTokenInvalid).Once()

		router := gin.New()
		router.DELETE("/authentications", rest.NewUserHandler(svc).Logout)

		req := httptest.NewRequest(http.MethodDelete, "/authentications",
			strings.NewReader(`{"refreshToken": "unknown"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
