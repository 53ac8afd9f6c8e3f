package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rcatalasan0/491-Project/config"
	"github.com/rcatalasan0/491-Project/internal/auth/domain"
	"github.com/rcatalasan0/491-Project/internal/auth/dto"
	"github.com/rcatalasan0/491-Project/internal/auth/policy"
	autherror "github.com/rcatalasan0/491-Project/internal/errors"
	"github.com/rcatalasan0/491-Project/pkg/constant"
)

type UserService struct {
	repo    domain.UserRepository
	tokens  TokenGenerator
	limiter domain.LoginRateLimiter
	audit   domain.AuditRecorder
	cfg     *config.Config
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, limiter domain.LoginRateLimiter,
	audit domain.AuditRecorder, cfg *config.Config) *UserService {
	return &UserService{
		repo:    repo,
		tokens:  tokens,
		limiter: limiter,
		audit:   audit,
		cfg:     cfg,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, autherror.Validation("email and password are required")
	}

	if !policy.ValidateEmail(email) {
		return nil, autherror.Validation("invalid email format")
	}

	if ok, reason := policy.ValidatePassword(input.Password); !ok {
		return nil, autherror.Validation(reason)
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, autherror.StoreUnavailable(err)
	}
	if existing != nil {
		return nil, autherror.ErrAccountExists
	}

	// Fresh salt on every call; the plaintext never goes further than this.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         constant.DefaultUserRole,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// A concurrent registration may win the race between the lookup
		// above and this insert; the store's unique constraint decides.
		if errors.Is(err, autherror.ErrDuplicateEmail) {
			return nil, autherror.ErrAccountExists
		}
		return nil, autherror.StoreUnavailable(err)
	}

	s.recordEvent(ctx, domain.AuditEvent{
		Action:    constant.ActionRegister,
		Email:     email,
		UserID:    user.ID,
		IPAddress: input.IPAddress,
	})

	return &dto.RegisterOutput{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, autherror.Validation("email and password are required")
	}

	// Throttle before any store lookup or hash comparison.
	if !s.limiter.Allow(input.IPAddress, time.Now()) {
		return nil, autherror.ErrTooManyLoginAttempts
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, autherror.StoreUnavailable(err)
	}
	if user == nil {
		// Same failure as a wrong password so the response does not reveal
		// whether the email is registered.
		s.recordEvent(ctx, domain.AuditEvent{
			Action:    constant.ActionLoginFailure,
			Email:     email,
			IPAddress: input.IPAddress,
		})
		return nil, autherror.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.recordEvent(ctx, domain.AuditEvent{
			Action:    constant.ActionLoginFailure,
			Email:     email,
			UserID:    user.ID,
			IPAddress: input.IPAddress,
		})
		return nil, autherror.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		return nil, autherror.StoreUnavailable(err)
	}

	accessToken, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	s.recordEvent(ctx, domain.AuditEvent{
		Action:    constant.ActionLoginSuccess,
		Email:     email,
		UserID:    user.ID,
		IPAddress: input.IPAddress,
	})

	return &dto.LoginOutput{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		AccessToken: accessToken,
		TokenType:   constant.DefaultTokenType,
		ExpiresIn:   int(s.tokens.GetAccessTokenExpiry().Seconds()),
	}, nil
}

// recordEvent writes an audit event best-effort. Failures are logged and
// discarded so they cannot change the outcome of the request.
func (s *UserService) recordEvent(ctx context.Context, event domain.AuditEvent) {
	if err := s.audit.Record(ctx, event); err != nil {
		log.Printf("warn: failed to record %s event for %s: %v", event.Action, event.Email, err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
