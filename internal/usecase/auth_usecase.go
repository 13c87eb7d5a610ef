package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/cfg"
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// AuthUseCase — регистрация, вход и сессии на JWT.
// Токены stateless, отзыв реализован через чёрный список jti в Redis:
// ключ живёт ровно до истечения самого токена.
type AuthUseCase struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	authCfg     *cfg.AuthCfg
	logger      logger.Logger
}

func NewAuthUC(userRepo UserRepository, sessionRepo SessionRepository, authCfg *cfg.AuthCfg, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		authCfg:     authCfg,
		logger:      logger,
	}
}

// SignUp регистрирует пользователя и сразу выдаёт сессию.
func (a *AuthUseCase) SignUp(ctx context.Context, req *CredentialsReq) (*SessionRes, error) {
	const op = "AuthUseCase.SignUp"

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(req.Password) < minPasswordLen {
		return nil, e.Wrap(op, e.ErrWeakPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.userRepo.Create(ctx, domain.NewUser(email, string(hash)))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.logger.Infof("User registered: %s", user.ID)

	return a.issueSession(user)
}

// SignIn проверяет учётные данные и выдаёт сессию.
// Несуществующий email и неверный пароль дают один и тот же ответ.
func (a *AuthUseCase) SignIn(ctx context.Context, req *CredentialsReq) (*SessionRes, error) {
	const op = "AuthUseCase.SignIn"

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}

		return nil, e.Wrap(op, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	return a.issueSession(user)
}

// SignOut отзывает текущую сессию до истечения её токена.
func (a *AuthUseCase) SignOut(ctx context.Context, identity *Identity) error {
	const op = "AuthUseCase.SignOut"

	ttl := time.Until(identity.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := a.sessionRepo.Revoke(ctx, identity.JTI, ttl); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// VerifyToken разбирает и проверяет сессионный токен.
func (a *AuthUseCase) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	const op = "AuthUseCase.VerifyToken"

	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, e.ErrUnauthenticated
		}

		return a.authCfg.JWTSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, e.Wrap(op, e.ErrUnauthenticated)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, e.Wrap(op, e.ErrUnauthenticated)
	}

	revoked, err := a.sessionRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if revoked {
		return nil, e.Wrap(op, e.ErrSessionRevoked)
	}

	return &Identity{
		UserID:    userID,
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// CurrentUser возвращает профиль владельца сессии.
func (a *AuthUseCase) CurrentUser(ctx context.Context, identity *Identity) (*UserInfo, error) {
	const op = "AuthUseCase.CurrentUser"

	user, err := a.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewUserInfo(user), nil
}

func (a *AuthUseCase) issueSession(user *domain.User) (*SessionRes, error) {
	const op = "AuthUseCase.issueSession"

	now := time.Now().UTC()
	expiresAt := now.Add(a.authCfg.TokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.authCfg.JWTSecret)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &SessionRes{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      NewUserInfo(user),
	}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", e.ErrInvalidCredentials
	}

	return email, nil
}
