package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrShareLinkExpired = errors.New("share link has expired")

	ErrAINotConfigured = errors.New("ai provider is not configured")
	ErrAIUpstream      = errors.New("ai provider call failed")
)
