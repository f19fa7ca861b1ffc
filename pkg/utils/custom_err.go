package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrPlaceNotFound    = errors.New("place not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrDatasetInvalid   = errors.New("dataset invalid")
	ErrGenerationFailed = errors.New("generation backend failed")
	ErrNoRoute          = errors.New("no route")
)
