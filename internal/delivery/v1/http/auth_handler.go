package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopsmart/storefront-backend/internal/usecase"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

// signUp
//
//	@Summary		Регистрация продавца
//	@Description	Создает учётную запись и сразу выдаёт сессионный токен
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		credentialsRequest	true	"Email и пароль"
//	@Success		201		{object}	SessionResponse		"Успешная регистрация"
//	@Failure		400		{object}	ErrorResponse		"Слабый пароль или неверный email"
//	@Failure		409		{object}	ErrorResponse		"Email уже занят"
//	@Router			/auth/signup [post]
func (a *AuthHandler) signUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	session, err := a.authUsecase.SignUp(r.Context(), &usecase.CredentialsReq{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newSessionResponse(session))
}

// signIn
//
//	@Summary	Вход продавца
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		credentialsRequest	true	"Email и пароль"
//	@Success	200		{object}	SessionResponse
//	@Failure	401		{object}	ErrorResponse	"Неверные учётные данные"
//	@Router		/auth/signin [post]
func (a *AuthHandler) signIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	session, err := a.authUsecase.SignIn(r.Context(), &usecase.CredentialsReq{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newSessionResponse(session))
}

// signOut
//
//	@Summary	Выход: отзыв текущей сессии
//	@Tags		auth
//	@Security	BearerAuth
//	@Success	204	"Сессия отозвана"
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/signout [post]
func (a *AuthHandler) signOut(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	if identity == nil {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	if err := a.authUsecase.SignOut(r.Context(), identity); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// me
//
//	@Summary	Профиль владельца сессии
//	@Tags		auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/me [get]
func (a *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())
	if identity == nil {
		WriteError(w, e.ErrUnauthenticated)
		return
	}

	user, err := a.authUsecase.CurrentUser(r.Context(), identity)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newUserResponse(user))
}
