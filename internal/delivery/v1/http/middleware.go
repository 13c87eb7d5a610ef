package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/shopsmart/storefront-backend/internal/usecase"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

type ctxKey int

const identityKey ctxKey = iota

// identityFromCtx возвращает личность из контекста запроса или nil.
func identityFromCtx(ctx context.Context) *usecase.Identity {
	identity, _ := ctx.Value(identityKey).(*usecase.Identity)
	return identity
}

// authRequired отклоняет запрос без валидного Bearer-токена.
func authRequired(authUC usecase.AuthUC, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := verifyBearer(r, authUC)
			if err != nil {
				log.Warnf("auth failed: %v", err)
				WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
		})
	}
}

// authOptional пропускает запрос в любом случае; валидный токен кладёт
// личность в контекст, невалидный или отсутствующий оставляет запрос анонимным.
// Нужен публичной витрине для вычисления is_owner.
func authOptional(authUC usecase.AuthUC) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity, err := verifyBearer(r, authUC); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), identityKey, identity))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func verifyBearer(r *http.Request, authUC usecase.AuthUC) (*usecase.Identity, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, e.ErrUnauthenticated
	}

	return authUC.VerifyToken(r.Context(), token)
}
