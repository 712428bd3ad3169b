// services/auth_service.go
package services

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/notenest/notenest_backend/models"
	"github.com/notenest/notenest_backend/utils"
)

// OTPValidity is how long an issued passcode stays confirmable
const OTPValidity = 10 * time.Minute

// UserStore is the persistence surface the auth flow needs. FindByEmail
// returns (nil, nil) when no user holds the email.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	Replace(ctx context.Context, user *models.User) error
}

// OTPSender dispatches a passcode over an external channel
type OTPSender interface {
	SendOTP(ctx context.Context, email, name, otp string, expiresAt time.Time) error
}

// TokenIssuer produces a signed credential for a user
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// AuthService orchestrates the signup and login challenge/response flows
type AuthService struct {
	store  UserStore
	sender OTPSender
	issuer TokenIssuer
	logger *log.Logger
	now    func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(store UserStore, sender OTPSender, issuer TokenIssuer) *AuthService {
	return &AuthService{
		store:  store,
		sender: sender,
		issuer: issuer,
		logger: log.New(os.Stdout, "[AUTH] ", log.LstdFlags),
		now:    time.Now,
	}
}

// RequestSignup starts signup for an email: creates or refreshes the
// unverified user record with a fresh challenge and dispatches the code.
// Returns the email the code was sent to.
func (s *AuthService) RequestSignup(ctx context.Context, req models.SignupRequest) (string, error) {
	if req.Name == "" || req.Email == "" || req.DOB == "" {
		return "", validationError("All fields are required")
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return "", validationError("Invalid email format")
	}

	name := utils.SanitizeInput(req.Name)
	dob := utils.SanitizeInput(req.DOB)

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return "", dependencyError("Server error", err)
	}

	if user != nil && user.IsVerified {
		return "", conflictError("User already exists")
	}

	otp, err := utils.GenerateOTP(utils.OTPLength)
	if err != nil {
		return "", dependencyError("Failed to generate OTP", err)
	}

	s.logger.Printf("Generated signup OTP for %s", utils.MaskEmail(email))

	challenge := &models.OTPInfo{
		OTP:       otp,
		ExpiresAt: s.now().Add(OTPValidity),
	}

	if user != nil {
		// Signup retried before verification: overwrite in place, the new
		// challenge supersedes any outstanding one
		user.FullName = name
		user.DateOfBirth = dob
		user.OTPInfo = challenge
		user.UpdatedAt = s.now()
		if req.Password != "" {
			hashed, err := utils.HashPassword(req.Password)
			if err != nil {
				return "", dependencyError("Server error", err)
			}
			user.Password = hashed
		}
		if err := s.store.Replace(ctx, user); err != nil {
			return "", dependencyError("Server error", err)
		}
	} else {
		user = &models.User{
			Email:       email,
			FullName:    name,
			DateOfBirth: dob,
			IsVerified:  false,
			OTPInfo:     challenge,
			CreatedAt:   s.now(),
			UpdatedAt:   s.now(),
		}
		if req.Password != "" {
			hashed, err := utils.HashPassword(req.Password)
			if err != nil {
				return "", dependencyError("Server error", err)
			}
			user.Password = hashed
		}
		if _, err := s.store.Insert(ctx, user); err != nil {
			return "", dependencyError("Server error", err)
		}
	}

	if err := s.sender.SendOTP(ctx, email, name, otp, challenge.ExpiresAt); err != nil {
		s.logger.Printf("OTP dispatch failed for %s: %v", utils.MaskEmail(email), err)
		return "", dependencyError("Failed to send OTP email", err)
	}

	return email, nil
}

// ConfirmSignup checks the submitted code against the outstanding signup
// challenge and, on success, marks the user verified and issues a token.
func (s *AuthService) ConfirmSignup(ctx context.Context, email, otp string) (string, *models.User, error) {
	user, err := s.lookup(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if user.IsVerified {
		return "", nil, conflictError("User already verified")
	}

	if !s.challengeMatches(user, otp) {
		return "", nil, invalidOTPError("Invalid or expired OTP")
	}

	user.IsVerified = true
	user.OTPInfo = nil
	user.UpdatedAt = s.now()
	if err := s.store.Replace(ctx, user); err != nil {
		return "", nil, dependencyError("Server error", err)
	}

	token, err := s.issuer.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		return "", nil, dependencyError("Server error", err)
	}

	return token, user, nil
}

// RequestLogin starts login for a verified user: stores a fresh challenge
// and dispatches the code. Returns the email the code was sent to.
func (s *AuthService) RequestLogin(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", validationError("Email is required")
	}

	email, err := utils.SanitizeEmail(email)
	if err != nil {
		return "", validationError("Invalid email format")
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return "", dependencyError("Server error", err)
	}
	if user == nil {
		return "", notFoundError("User not found")
	}

	if !user.IsVerified {
		return "", unverifiedError("User not verified")
	}

	otp, err := utils.GenerateOTP(utils.OTPLength)
	if err != nil {
		return "", dependencyError("Failed to generate OTP", err)
	}

	s.logger.Printf("Generated login OTP for %s", utils.MaskEmail(email))

	user.OTPInfo = &models.OTPInfo{
		OTP:       otp,
		ExpiresAt: s.now().Add(OTPValidity),
	}
	user.UpdatedAt = s.now()
	if err := s.store.Replace(ctx, user); err != nil {
		return "", dependencyError("Server error", err)
	}

	if err := s.sender.SendOTP(ctx, email, user.FullName, otp, user.OTPInfo.ExpiresAt); err != nil {
		s.logger.Printf("OTP dispatch failed for %s: %v", utils.MaskEmail(email), err)
		return "", dependencyError("Failed to send OTP email", err)
	}

	return email, nil
}

// ConfirmLogin checks the submitted code against the outstanding login
// challenge and, on success, clears it and issues a token.
func (s *AuthService) ConfirmLogin(ctx context.Context, email, otp string) (string, *models.User, error) {
	user, err := s.lookup(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if !s.challengeMatches(user, otp) {
		return "", nil, invalidOTPError("Invalid or expired OTP")
	}

	user.OTPInfo = nil
	user.UpdatedAt = s.now()
	if err := s.store.Replace(ctx, user); err != nil {
		return "", nil, dependencyError("Server error", err)
	}

	token, err := s.issuer.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		return "", nil, dependencyError("Server error", err)
	}

	return token, user, nil
}

func (s *AuthService) lookup(ctx context.Context, email string) (*models.User, error) {
	normalized, err := utils.SanitizeEmail(email)
	if err != nil {
		return nil, notFoundError("User not found")
	}

	user, err := s.store.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, dependencyError("Server error", err)
	}
	if user == nil {
		return nil, notFoundError("User not found")
	}

	return user, nil
}

// challengeMatches reports whether the submitted code matches the stored
// one and the expiry has not passed. Wrong and expired codes are not
// distinguished to the caller.
func (s *AuthService) challengeMatches(user *models.User, otp string) bool {
	if user.OTPInfo == nil || otp == "" {
		return false
	}
	if user.OTPInfo.OTP != otp {
		return false
	}
	return s.now().Before(user.OTPInfo.ExpiresAt)
}
