package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/storefront/internal/auth"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// AdminSession — выданный токен админки.
type AdminSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminService — вход в back-office по общему паролю.
type AdminService struct {
	passwordHash string
	tokens       *auth.TokenIssuer
	log          ports.Logger
}

// NewAdminService — DI-конструктор. passwordHash — закодированный argon2-хэш.
func NewAdminService(passwordHash string, tokens *auth.TokenIssuer, log ports.Logger) *AdminService {
	return &AdminService{passwordHash: passwordHash, tokens: tokens, log: log}
}

// Login — проверяет пароль и выпускает токен.
func (s *AdminService) Login(ctx context.Context, password string) (*AdminSession, error) {
	if s.passwordHash == "" {
		s.log.Warnf(ctx, "admin login rejected: password hash is not configured")
		return nil, domain.ErrUnauthorized
	}
	if password == "" {
		return nil, domain.ErrUnauthorized
	}

	ok, err := auth.VerifyPassword(s.passwordHash, password)
	if err != nil {
		s.log.Errorf(ctx, "admin password verify failed err=%v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !ok {
		s.log.Warnf(ctx, "admin login rejected: wrong password")
		return nil, domain.ErrUnauthorized
	}

	token, exp, err := s.tokens.Issue(auth.RoleAdmin)
	if err != nil {
		return nil, err
	}
	s.log.Infof(ctx, "admin logged in, token expires at %s", exp.Format(time.RFC3339))
	return &AdminSession{Token: token, ExpiresAt: exp}, nil
}

// Authorize — проверка токена из заголовка Authorization.
func (s *AdminService) Authorize(_ context.Context, token string) error {
	if _, err := s.tokens.Parse(token); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return nil
}
