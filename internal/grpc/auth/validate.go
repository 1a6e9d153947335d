package auth

import (
	authv1 "authsvc/gen/go/authsvc/v1"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const minPasswordLength = 6

var (
	passwordRules    = []validation.Rule{validation.Required, validation.Length(minPasswordLength, 72)}
	fingerprintRules = []validation.Rule{validation.Required, validation.Length(1, 256)}
	emailRules       = []validation.Rule{validation.Required, validation.Length(3, 254), is.Email}
	publicIDRules    = []validation.Rule{validation.Required, is.UUID}
	nameRules        = []validation.Rule{validation.Required, validation.Length(1, 200)}
	linkRules        = []validation.Rule{validation.Required, is.URL}
)

func validateRegister(req *authv1.RegisterRequest) error {
	return validation.Errors{
		"email":           validation.Validate(req.GetEmail(), emailRules...),
		"password":        validation.Validate(req.GetPassword(), passwordRules...),
		"name":            validation.Validate(req.GetName(), nameRules...),
		"surname":         validation.Validate(req.GetSurname(), nameRules...),
		"invitation_code": validation.Validate(req.GetInvitationCode(), is.UUID),
	}.Filter()
}

func validateLogin(req *authv1.LoginRequest) error {
	return validation.Errors{
		"email":       validation.Validate(req.GetEmail(), emailRules...),
		"password":    validation.Validate(req.GetPassword(), passwordRules...),
		"fingerprint": validation.Validate(req.GetFingerprint(), fingerprintRules...),
	}.Filter()
}

func validateVerify(req *authv1.VerifyRequest) error {
	return validation.Errors{
		"access_token": validation.Validate(req.GetAccessToken(), validation.Required),
		"fingerprint":  validation.Validate(req.GetFingerprint(), fingerprintRules...),
	}.Filter()
}

// validateRefresh takes the token separately since it may come from metadata.
func validateRefresh(refreshToken string, req *authv1.RefreshRequest) error {
	return validation.Errors{
		"refresh_token": validation.Validate(refreshToken, validation.Required),
		"fingerprint":   validation.Validate(req.GetFingerprint(), fingerprintRules...),
	}.Filter()
}

// validateLogout requires user_id only when no access token names the owner.
func validateLogout(req *authv1.LogoutRequest) error {
	ownerRules := []validation.Rule{is.UUID}
	if req.GetAccessToken() == "" {
		ownerRules = publicIDRules
	}

	return validation.Errors{
		"user_id":     validation.Validate(req.GetUserId(), ownerRules...),
		"fingerprint": validation.Validate(req.GetFingerprint(), fingerprintRules...),
	}.Filter()
}

func validateInvite(req *authv1.InviteRequest) error {
	return validation.Errors{
		"access_token":          validation.Validate(req.GetAccessToken(), validation.Required),
		"email":                 validation.Validate(req.GetEmail(), emailRules...),
		"name":                  validation.Validate(req.GetName(), nameRules...),
		"surname":               validation.Validate(req.GetSurname(), nameRules...),
		"role":                  validation.Validate(req.GetRole(), validation.Length(0, 64)),
		"link_to_register_form": validation.Validate(req.GetLinkToRegisterForm(), linkRules...),
	}.Filter()
}

func validateForgotPassword(req *authv1.ForgotPasswordRequest) error {
	return validation.Errors{
		"email":              validation.Validate(req.GetEmail(), emailRules...),
		"link_to_reset_form": validation.Validate(req.GetLinkToResetForm(), linkRules...),
	}.Filter()
}

func validateResetPassword(req *authv1.ResetPasswordRequest) error {
	return validation.Errors{
		"user_id":     validation.Validate(req.GetUserId(), publicIDRules...),
		"secret_code": validation.Validate(req.GetSecretCode(), validation.Required, is.UUID),
		"password":    validation.Validate(req.GetPassword(), passwordRules...),
	}.Filter()
}

func validateAccountInfo(req *authv1.AccountInfoRequest) error {
	return validation.Errors{
		"user_id": validation.Validate(req.GetUserId(), publicIDRules...),
	}.Filter()
}

func validateListAccounts(req *authv1.ListAccountsRequest) error {
	return validation.Errors{
		"role":      validation.Validate(req.GetRole(), validation.Required),
		"partition": validation.Validate(req.GetPartition(), validation.Required),
		"filter":    validation.Validate(req.GetFilter(), validation.Length(0, 200)),
	}.Filter()
}
