package http

import (
	"encoding/json"
	"net/http"

	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/utils"
	"github.com/docuvault/go-doc-manager/models"
)

const invalidJSONMessage = "Invalid JSON was passed"

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		h.respondFailure(w, r, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, request)
	if err != nil {
		log.Err(err).Msg("signup failed")
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r, registeredUser, "User successfully registered! Please verify OTP.")
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		h.respondFailure(w, r, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.VerifyOTP(ctx, request.Email, request.OTP)
	if err != nil {
		log.Err(err).Msg("otp verification failed")
		h.respondError(w, r, err)
		return
	}

	if result.Reissued {
		h.respondSuccess(w, r, nil, "OTP has expired. A new OTP has been sent to your email.")
		return
	}

	h.respondSuccess(w, r, nil, "OTP verified successfully!")
}

func (h *Handler) forgetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ForgetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		h.respondFailure(w, r, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ForgetPassword(ctx, request.Email); err != nil {
		log.Err(err).Msg("forget-password failed")
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r, nil, "OTP sent to your email")
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		h.respondFailure(w, r, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, request); err != nil {
		log.Err(err).Msg("change-password failed")
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r, nil, "Password updated successfully")
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		h.respondFailure(w, r, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.SignIn(ctx, request.Email, request.Password)
	if err != nil {
		log.Err(err).Msg("sign-in failed")
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r, response, "Successfully login.")
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		h.respondFailure(w, r, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(invalidJSONMessage)
		h.respondFailure(w, r, invalidJSONMessage, http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.AuthService.UpdateProfile(ctx, caller.UserID, request)
	if err != nil {
		log.Err(err).Msg("profile update failed")
		h.respondError(w, r, err)
		return
	}

	h.respondSuccess(w, r, updatedUser, "Profile updated successfully.")
}
