package errorz

import "errors"

var (
	NotFound           = errors.New("not found")
	AlreadyExists      = errors.New("already exists")
	AlreadyRegistered  = errors.New("already registered for event")
	NotRegistered      = errors.New("not registered for event")
	SMTPNotConfigured  = errors.New("smtp transport is not configured")
	DispatchInProgress = errors.New("dispatch already in progress for this notification")
	NoAuthCode         = errors.New("no authorization code provided")
)
