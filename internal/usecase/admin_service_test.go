package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/storefront/internal/auth"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/usecase"
)

func TestAdminService_LoginAndAuthorize(t *testing.T) {
	hash, err := auth.HashPassword("ghazma")
	require.NoError(t, err)

	svc := usecase.NewAdminService(hash, auth.NewTokenIssuer("secret", time.Hour), noopLogger{})

	sess, err := svc.Login(context.Background(), "ghazma")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	require.NoError(t, svc.Authorize(context.Background(), sess.Token))
	assert.ErrorIs(t, svc.Authorize(context.Background(), "bogus"), domain.ErrUnauthorized)
}

func TestAdminService_LoginRejected(t *testing.T) {
	hash, err := auth.HashPassword("ghazma")
	require.NoError(t, err)

	svc := usecase.NewAdminService(hash, auth.NewTokenIssuer("secret", time.Hour), noopLogger{})

	_, err = svc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	unconfigured := usecase.NewAdminService("", auth.NewTokenIssuer("secret", time.Hour), noopLogger{})
	_, err = unconfigured.Login(context.Background(), "ghazma")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
