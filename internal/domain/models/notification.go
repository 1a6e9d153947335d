package models

const (
	TemplateRegistrationInvite = "registration-invite"
	TemplatePasswordReset      = "password-reset"
)

// Notification is an out-of-band message carrying a one-time secret to an
// account holder.
type Notification struct {
	SourceEmail string
	SecretCode  string
	Destination string
	TemplateID  string
	Link        string
	PublicID    string
}
