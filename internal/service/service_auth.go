package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docuvault/go-doc-manager/internal/config"
	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/store"
	"github.com/docuvault/go-doc-manager/internal/utils"
	"github.com/docuvault/go-doc-manager/internal/validators"
	"github.com/docuvault/go-doc-manager/models"
)

// authService is the concrete implementation of AuthService.
// It drives the account lifecycle over a UserRepository, hashes passwords
// with bcrypt and issues HMAC-SHA256 signed JWT tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// otpGenerator produces the one-time codes issued at signup and on
	// password recovery.
	otpGenerator Generator

	// validator checks inbound request structures before any state changes.
	validator validators.Validator

	// otpValidity is how long an issued OTP stays fresh.
	otpValidity time.Duration

	// passwordHashCost is the bcrypt cost for stored passwords.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and OTP generator, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, otpGenerator Generator, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		otpGenerator:     otpGenerator,
		validator:        validator,
		otpValidity:      time.Duration(cfg.OTPValidityHours) * time.Hour,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// SignUp registers a new account in the Viewer role and arms it with a
// verification OTP.
//
// A verified account under the same email is rejected with
// ErrUserAlreadyRegistered. An unverified leftover from an earlier signup
// attempt is deleted and replaced with a fresh row and a fresh OTP.
func (a *authService) SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := utils.NormalizeEmail(request.Email)

	existing, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.IsVerified {
			return models.User{}, ErrUserAlreadyRegistered
		}
		// Unverified leftover: replace it entirely.
		if deleteErr := a.userRepository.DeleteUserByEmail(ctx, email); deleteErr != nil {
			log.Err(deleteErr).Str("func", "*authService.SignUp").Msg("failed to delete pending signup")
			return models.User{}, fmt.Errorf("failed to delete pending signup: %w", deleteErr)
		}
	case errors.Is(err, store.ErrNoUserWasFound):
		// First signup for this email.
	default:
		log.Err(err).Str("func", "*authService.SignUp").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	otp, expiry, err := a.issueOTP()
	if err != nil {
		return models.User{}, err
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		FullName:  request.FullName,
		Email:     email,
		Password:  hash,
		Role:      models.RoleViewer,
		OTP:       otp,
		OTPExpiry: expiry,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	// Email delivery is outsourced; the code lands in the log for now.
	log.Info().Int64("id", created.UserID).Int64("otp", *otp).Msg("signup OTP issued")

	return created.Sanitized(), nil
}

// VerifyOTP resolves a pending email verification.
//
// Outcomes, checked in order:
//   - no account, or account without a pending OTP → ErrUserNotFound;
//   - the pending code is stale (more than the validity window past its
//     expiry timestamp) → a fresh code is issued and Reissued is set;
//   - the presented code mismatches → ErrInvalidOTP;
//   - otherwise the account is marked verified and the OTP is cleared.
func (a *authService) VerifyOTP(ctx context.Context, email string, otp int64) (VerifyOTPResult, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return VerifyOTPResult{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.VerifyOTP").Msg("user lookup failed")
		return VerifyOTPResult{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.HasPendingOTP() {
		return VerifyOTPResult{}, ErrUserNotFound
	}

	// Freshness is measured from the expiry timestamp, not issuance.
	if time.Since(*user.OTPExpiry) > a.otpValidity {
		freshOTP, freshExpiry, issueErr := a.issueOTP()
		if issueErr != nil {
			return VerifyOTPResult{}, issueErr
		}

		user.OTP = freshOTP
		user.OTPExpiry = freshExpiry
		if _, updateErr := a.userRepository.UpdateUser(ctx, user); updateErr != nil {
			log.Err(updateErr).Str("func", "*authService.VerifyOTP").Msg("failed to re-arm OTP")
			return VerifyOTPResult{}, fmt.Errorf("failed to re-arm OTP: %w", updateErr)
		}

		log.Info().Int64("id", user.UserID).Int64("otp", *freshOTP).Msg("stale OTP replaced")
		return VerifyOTPResult{Reissued: true}, nil
	}

	if *user.OTP != otp {
		return VerifyOTPResult{}, ErrInvalidOTP
	}

	user.IsVerified = true
	user.OTP = nil
	user.OTPExpiry = nil

	verified, err := a.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.VerifyOTP").Msg("failed to mark user verified")
		return VerifyOTPResult{}, fmt.Errorf("failed to mark user verified: %w", err)
	}

	return VerifyOTPResult{User: verified.Sanitized()}, nil
}

// ForgetPassword arms the account with a fresh OTP so the password can be
// changed. The verified flag is left untouched.
func (a *authService) ForgetPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.ForgetPassword").Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	otp, expiry, err := a.issueOTP()
	if err != nil {
		return err
	}

	user.OTP = otp
	user.OTPExpiry = expiry
	if _, err := a.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*authService.ForgetPassword").Msg("failed to store recovery OTP")
		return fmt.Errorf("failed to store recovery OTP: %w", err)
	}

	log.Info().Int64("id", user.UserID).Int64("otp", *otp).Msg("recovery OTP issued")
	return nil
}

// ChangePassword sets a new password for the account.
//
// Checks run in a fixed order and the first failure wins: account existence
// (ErrUserNotFound), OTP match (ErrInvalidOTP), OTP freshness
// (ErrOTPExpired), password confirmation (ErrPasswordMismatch).
func (a *authService) ChangePassword(ctx context.Context, request models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, utils.NormalizeEmail(request.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.HasPendingOTP() || *user.OTP != request.OTP {
		return ErrInvalidOTP
	}

	if time.Now().After(*user.OTPExpiry) {
		return ErrOTPExpired
	}

	if request.Password != request.ConfirmPassword {
		return ErrPasswordMismatch
	}

	hash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	user.Password = hash
	user.OTP = nil
	user.OTPExpiry = nil

	if _, err := a.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("failed to store new password")
		return fmt.Errorf("failed to store new password: %w", err)
	}

	return nil
}

// SignIn authenticates by email and password and issues a JWT.
//
// Returns ErrUserNotFound for an unknown email and ErrInvalidCredentials
// when the password does not match the stored hash.
func (a *authService) SignIn(ctx context.Context, email, password string) (models.SignInResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.SignInResponse{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.SignIn").Msg("user lookup failed")
		return models.SignInResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !utils.CheckPassword(user.Password, password) {
		log.Warn().Int64("id", user.UserID).Msg("sign-in with wrong password")
		return models.SignInResponse{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.SignInResponse{}, err
	}

	return models.SignInResponse{
		User:  user.Sanitized(),
		Token: token.SignedString,
	}, nil
}

// UpdateProfile merges the allowed profile fields into the account.
//
// Only email and role can change; a nil field is left as is. Unknown role
// names are rejected with ErrInvalidRole.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, update models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.UpdateProfile").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if update.Email != nil {
		user.Email = utils.NormalizeEmail(*update.Email)
	}
	if update.Role != nil {
		role, parseErr := models.ParseRole(*update.Role)
		if parseErr != nil {
			return models.User{}, ErrInvalidRole
		}
		user.Role = role
	}

	saved, err := a.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.UpdateProfile").Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return saved.Sanitized(), nil
}

// CreateToken issues a signed JWT carrying the user id, email and role.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateToken").Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates a compact JWT string against the configured signing
// key and issuer.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// issueOTP draws a fresh code and stamps its expiry one validity window
// from now.
func (a *authService) issueOTP() (*int64, *time.Time, error) {
	code, err := a.otpGenerator.Generate()
	if err != nil {
		return nil, nil, fmt.Errorf("otp generation failed: %w", err)
	}

	expiry := time.Now().Add(a.otpValidity)
	return &code, &expiry, nil
}
