package repository

import "errors"

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrNoteNotFound   = errors.New("shared note not found")
	ErrFileNotFound   = errors.New("file asset not found")
	ErrDuplicateCode  = errors.New("room code already in use")
)
