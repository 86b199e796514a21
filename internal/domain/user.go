package domain

import "time"

// User is an identity record. OTPHash and OTPExpiresAt are present only while
// a passcode is pending; they are set together on issuance and removed
// together on successful verification.
type User struct {
	UserID       string    `json:"id" dynamodbav:"user_id"`
	Name         string    `json:"name" dynamodbav:"name"`
	Email        string    `json:"email" dynamodbav:"email"`
	GoogleSub    *string   `json:"-" dynamodbav:"google_sub,omitempty"`
	OTPHash      *string   `json:"-" dynamodbav:"otp_hash,omitempty"`
	OTPExpiresAt *int64    `json:"-" dynamodbav:"otp_expires_at,omitempty"` // Unix seconds
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated" dynamodbav:"updated_at"`
}

// HasPendingOTP reports whether a passcode has been issued and not yet
// verified or replaced.
func (u *User) HasPendingOTP() bool {
	return u.OTPHash != nil && u.OTPExpiresAt != nil
}

type SendSignupOTPRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type VerifySignupRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type SendLoginOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyLoginRequest struct {
	Email        string `json:"email" validate:"required,email"`
	OTP          string `json:"otp" validate:"required,len=6,numeric"`
	KeepLoggedIn bool   `json:"keepLoggedIn"`
}

type GoogleLoginRequest struct {
	Token string `json:"token" validate:"required"`
}
