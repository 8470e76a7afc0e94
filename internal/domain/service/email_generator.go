package service

// EmailGenerator produces fake but syntactically valid email addresses.
// Uniqueness across calls is not guaranteed.
type EmailGenerator interface {
	Email() string
}
