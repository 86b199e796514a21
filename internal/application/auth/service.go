package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-notes-api/internal/domain"
	"github.com/go-notes-api/internal/infrastructure/google"
	jwtinfra "github.com/go-notes-api/internal/infrastructure/jwt"
	"github.com/go-notes-api/internal/pkg/id"
	"github.com/go-notes-api/internal/pkg/otp"
)

// otpTTL is how long an emailed passcode stays valid.
const otpTTL = 10 * time.Minute

type Service interface {
	// SendSignupOTP creates a new user with a pending passcode and emails the
	// plaintext code. Fails with domain.ErrConflict when the email is taken.
	SendSignupOTP(ctx context.Context, req domain.SendSignupOTPRequest) error
	// VerifySignup checks the passcode and returns a session token on success.
	VerifySignup(ctx context.Context, req domain.VerifySignupRequest) (string, *domain.User, error)
	// SendLoginOTP regenerates the passcode on an existing user and emails it,
	// replacing any previously pending code. Fails with domain.ErrNotFound for
	// unknown emails.
	SendLoginOTP(ctx context.Context, req domain.SendLoginOTPRequest) error
	// VerifyLogin checks the passcode and returns a session token whose
	// lifetime depends on req.KeepLoggedIn.
	VerifyLogin(ctx context.Context, req domain.VerifyLoginRequest) (string, *domain.User, error)
	// GoogleLogin verifies a Google ID token, creating the user on first
	// sight, and always returns a session token.
	GoogleLogin(ctx context.Context, req domain.GoogleLoginRequest) (string, *domain.User, error)
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	SetOTP(ctx context.Context, userID, otpHash string, expiresAt int64) error
	ClearOTP(ctx context.Context, userID string) error
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type jwtSigner interface {
	Sign(userID, name, email string, ttl time.Duration) (string, error)
}

type service struct {
	userRepo    userStore
	mailer      mailer
	verifier    google.TokenVerifier
	jwtProvider jwtSigner
}

type ServiceDeps struct {
	UserRepo    userStore
	Mailer      mailer
	Verifier    google.TokenVerifier
	JWTProvider jwtSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{
		userRepo:    deps.UserRepo,
		mailer:      deps.Mailer,
		verifier:    deps.Verifier,
		jwtProvider: deps.JWTProvider,
	}
}

func (s *service) SendSignupOTP(ctx context.Context, req domain.SendSignupOTPRequest) error {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		return fmt.Errorf("a user with this email already exists, please log in: %w", domain.ErrConflict)
	}

	code, err := otp.Generate()
	if err != nil {
		return err
	}
	hash, err := otp.Hash(code)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(otpTTL).Unix()
	u := &domain.User{
		UserID:       id.New(),
		Name:         req.Name,
		Email:        req.Email,
		OTPHash:      &hash,
		OTPExpiresAt: &expiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Put(ctx, u); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Welcome to Notes App!\r\n\r\n"+
			"Please use the following One-Time Password to complete your signup: %s\r\n"+
			"This OTP is valid for the next 10 minutes.\r\n\r\n"+
			"If you did not request this, please ignore this email.",
		code,
	)
	return s.mailer.SendEmail(req.Email, "Your One-Time Password (OTP) for Notes App", body)
}

func (s *service) VerifySignup(ctx context.Context, req domain.VerifySignupRequest) (string, *domain.User, error) {
	u, err := s.verifyOTP(ctx, req.Email, req.OTP)
	if err != nil {
		return "", nil, err
	}
	token, err := s.jwtProvider.Sign(u.UserID, u.Name, u.Email, jwtinfra.SignupExpiry)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) SendLoginOTP(ctx context.Context, req domain.SendLoginOTPRequest) error {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user with this email not found, please sign up: %w", domain.ErrNotFound)
		}
		return err
	}

	code, err := otp.Generate()
	if err != nil {
		return err
	}
	hash, err := otp.Hash(code)
	if err != nil {
		return err
	}
	if err := s.userRepo.SetOTP(ctx, u.UserID, hash, time.Now().Add(otpTTL).Unix()); err != nil {
		return err
	}

	body := fmt.Sprintf("Your One-Time Password for login is: %s. It is valid for 10 minutes.", code)
	return s.mailer.SendEmail(req.Email, "Your Login OTP for Notes App", body)
}

func (s *service) VerifyLogin(ctx context.Context, req domain.VerifyLoginRequest) (string, *domain.User, error) {
	u, err := s.verifyOTP(ctx, req.Email, req.OTP)
	if err != nil {
		return "", nil, err
	}
	expiry := jwtinfra.LoginExpiry
	if req.KeepLoggedIn {
		expiry = jwtinfra.KeepLoggedInExpiry
	}
	token, err := s.jwtProvider.Sign(u.UserID, u.Name, u.Email, expiry)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) GoogleLogin(ctx context.Context, req domain.GoogleLoginRequest) (string, *domain.User, error) {
	payload, err := s.verifier.Verify(ctx, req.Token)
	if err != nil {
		return "", nil, err
	}

	u, err := s.userRepo.GetByEmail(ctx, payload.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", nil, err
	}
	if u == nil {
		now := time.Now().UTC()
		u = &domain.User{
			UserID:    id.New(),
			Name:      payload.Name,
			Email:     payload.Email,
			GoogleSub: &payload.Sub,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.userRepo.Put(ctx, u); err != nil {
			return "", nil, err
		}
	}

	token, err := s.jwtProvider.Sign(u.UserID, u.Name, u.Email, jwtinfra.SignupExpiry)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// verifyOTP runs the shared passcode checks. On failure the stored OTP fields
// are left untouched; on success they are cleared so the code cannot be
// replayed. Two concurrent verifications for the same user are not guarded
// against each other — the persisted user record is the only state.
func (s *service) verifyOTP(ctx context.Context, email, code string) (*domain.User, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid request, please request an OTP first: %w", domain.ErrBadRequest)
		}
		return nil, err
	}
	if !u.HasPendingOTP() {
		return nil, fmt.Errorf("invalid request, please request an OTP first: %w", domain.ErrBadRequest)
	}
	if *u.OTPExpiresAt < time.Now().Unix() {
		return nil, fmt.Errorf("OTP has expired, please request a new one: %w", domain.ErrBadRequest)
	}
	if !otp.Compare(*u.OTPHash, code) {
		return nil, fmt.Errorf("invalid OTP, please try again: %w", domain.ErrBadRequest)
	}
	if err := s.userRepo.ClearOTP(ctx, u.UserID); err != nil {
		return nil, err
	}
	u.OTPHash = nil
	u.OTPExpiresAt = nil

	slog.Info("otp verified", "user_id", u.UserID)
	return u, nil
}
