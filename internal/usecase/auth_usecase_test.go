package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopsmart/storefront-backend/internal/cfg"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUCFixture() (*AuthUseCase, *userRepoMock, *sessionRepoMock) {
	userRepo := newUserRepoMock()
	sessionRepo := newSessionRepoMock()

	authCfg := &cfg.AuthCfg{
		JWTSecret: []byte("test-secret-do-not-use-in-prod"),
		TokenTTL:  time.Hour,
	}

	return NewAuthUC(userRepo, sessionRepo, authCfg, nopLogger{}), userRepo, sessionRepo
}

func TestSignUp_IssuesWorkingSession(t *testing.T) {
	uc, _, _ := newAuthUCFixture()

	session, err := uc.SignUp(context.Background(), &CredentialsReq{
		Email:    "Seller@Example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "seller@example.com", session.User.Email)
	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)

	identity, err := uc.VerifyToken(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, identity.UserID)
	assert.NotEmpty(t, identity.JTI)
}

func TestSignUp_Validation(t *testing.T) {
	uc, _, _ := newAuthUCFixture()

	_, err := uc.SignUp(context.Background(), &CredentialsReq{Email: "not-an-email", Password: "long enough"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)

	_, err = uc.SignUp(context.Background(), &CredentialsReq{Email: "seller@example.com", Password: "short"})
	assert.ErrorIs(t, err, e.ErrWeakPassword)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthUCFixture()

	creds := &CredentialsReq{Email: "seller@example.com", Password: "correct horse"}

	_, err := uc.SignUp(context.Background(), creds)
	require.NoError(t, err)

	_, err = uc.SignUp(context.Background(), creds)
	assert.ErrorIs(t, err, e.ErrEmailTaken)
}

func TestSignIn(t *testing.T) {
	uc, _, _ := newAuthUCFixture()

	_, err := uc.SignUp(context.Background(), &CredentialsReq{Email: "seller@example.com", Password: "correct horse"})
	require.NoError(t, err)

	session, err := uc.SignIn(context.Background(), &CredentialsReq{Email: "seller@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	// Неверный пароль и несуществующий email дают одну и ту же ошибку
	_, err = uc.SignIn(context.Background(), &CredentialsReq{Email: "seller@example.com", Password: "wrong password"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)

	_, err = uc.SignIn(context.Background(), &CredentialsReq{Email: "nobody@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestSignOut_RevokesSession(t *testing.T) {
	uc, _, sessionRepo := newAuthUCFixture()

	session, err := uc.SignUp(context.Background(), &CredentialsReq{Email: "seller@example.com", Password: "correct horse"})
	require.NoError(t, err)

	identity, err := uc.VerifyToken(context.Background(), session.Token)
	require.NoError(t, err)

	require.NoError(t, uc.SignOut(context.Background(), identity))
	assert.True(t, sessionRepo.revoked[identity.JTI])

	_, err = uc.VerifyToken(context.Background(), session.Token)
	assert.ErrorIs(t, err, e.ErrSessionRevoked)
}

func TestVerifyToken_RejectsGarbageAndForeignTokens(t *testing.T) {
	uc, _, _ := newAuthUCFixture()

	_, err := uc.VerifyToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, e.ErrUnauthenticated)

	// Токен, подписанный другим секретом
	other := NewAuthUC(newUserRepoMock(), newSessionRepoMock(), &cfg.AuthCfg{
		JWTSecret: []byte("another-secret"),
		TokenTTL:  time.Hour,
	}, nopLogger{})

	session, err := other.SignUp(context.Background(), &CredentialsReq{Email: "seller@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = uc.VerifyToken(context.Background(), session.Token)
	assert.ErrorIs(t, err, e.ErrUnauthenticated)
}

func TestCurrentUser(t *testing.T) {
	uc, _, _ := newAuthUCFixture()

	session, err := uc.SignUp(context.Background(), &CredentialsReq{Email: "seller@example.com", Password: "correct horse"})
	require.NoError(t, err)

	identity, err := uc.VerifyToken(context.Background(), session.Token)
	require.NoError(t, err)

	user, err := uc.CurrentUser(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, "seller@example.com", user.Email)
}
