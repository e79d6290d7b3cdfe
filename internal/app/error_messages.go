// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// co-script handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of HTTP response bodies. Keeping them in one place keeps the
// wording consistent throughout the API.
package app

const (
	// MsgUnauthorized is returned for requests without a valid session.
	MsgUnauthorized = "Unauthorized"

	// MsgNotFound is returned when a resource does not exist or belongs to
	// another user.
	MsgNotFound = "Not found"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON"

	// MsgInvalidCredentials is returned when email/password do not match.
	MsgInvalidCredentials = "Invalid login credentials"

	// MsgEmailAlreadyRegistered is returned on signup with a taken email.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgAIError is returned when the text-generation provider fails.
	MsgAIError = "AI error"

	// MsgAINotConfigured is returned when no provider API key is set.
	MsgAINotConfigured = "AI not configured"

	// MsgVersionConflict is returned when a script version could not be
	// allocated after retries.
	MsgVersionConflict = "Version conflict, please retry"

	// MsgShareLinkExpired is the message of an expired shared view.
	MsgShareLinkExpired = "This share link has expired"

	// MsgInternalServerError is returned for unexpected failures.
	MsgInternalServerError = "Internal server error"
)
