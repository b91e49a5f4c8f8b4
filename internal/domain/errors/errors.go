package errors

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrSignInCancelled     = errors.New("sign-in cancelled by user")
	ErrDomainNotAuthorized = errors.New("domain not authorized for sign-in")
	ErrProviderFailure     = errors.New("identity provider sign-in failed")

	ErrStateNotFound = errors.New("no persisted state for key")

	ErrConfigFileReadFailed = errors.New("failed to read config file")
	ErrConfigParseFailed    = errors.New("failed to parse config file")
	ErrConfigInvalidFormat  = errors.New("invalid config value")

	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidTitle       = errors.New("invalid task title")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidPriority    = errors.New("invalid task priority")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrInvalidDueDate     = errors.New("invalid due date")
	ErrInvalidName        = errors.New("invalid project name")
	ErrInvalidColor       = errors.New("invalid project color")
	ErrInvalidProject     = errors.New("invalid project reference")
)
