package websocket

import "errors"

var (
	ErrInvalidFrame       = errors.New("invalid frame format")
	ErrUnknownResource    = errors.New("unknown resource kind")
	ErrAlreadySubscribed  = errors.New("already subscribed to resource")
	ErrSubscriptionFailed = errors.New("failed to activate subscription")
)
