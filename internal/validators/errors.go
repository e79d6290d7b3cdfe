package validators

// Error is a validation failure. Its text is the message shown to the caller.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrUnsupportedType = Error("Unsupported type for validation")
	ErrUnknownField    = Error("Unknown field for validation")

	ErrCredentialsRequired = Error("Email and password required")
	ErrInvalidEmail        = Error("Invalid email")
	ErrPasswordTooShort    = Error("Password must be at least 6 characters")

	ErrContentRequired = Error("Content required")
	ErrURLRequired     = Error("URL required")
	ErrInvalidURL      = Error("Invalid URL")

	ErrInvalidScriptType     = Error("Invalid script type")
	ErrInvalidStatus         = Error("Invalid status")
	ErrInvalidScore          = Error("Score must be between 0 and 100")
	ErrInvalidScoreBreakdown = Error("Score breakdown values must be between 0 and 100")
	ErrInvalidWordCount      = Error("Word count must not be negative")

	ErrTitleRequired    = Error("Title required")
	ErrNameRequired     = Error("Name required")
	ErrCategoryRequired = Error("Category required")
	ErrInvalidPlatform  = Error("Invalid platform")
	ErrInvalidSourceURL = Error("Invalid source URL")
)
