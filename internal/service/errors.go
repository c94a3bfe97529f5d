package service

import "errors"

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomClosed     = errors.New("room is closed")
	ErrUnauthorized   = errors.New("forbidden: not room creator")
	ErrInvalidCode    = errors.New("invalid room code")
	ErrCodeExhausted  = errors.New("failed to generate a unique room code after multiple attempts")
	ErrEmptyMessage   = errors.New("message content is empty")
	ErrMessageTooLong = errors.New("message content exceeds maximum length")
	ErrFileTooLarge   = errors.New("file exceeds maximum size")
	ErrEmptyFile      = errors.New("file is empty")
	ErrFileNotFound   = errors.New("file not found")
)
