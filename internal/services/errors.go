package services

import "errors"

// Service errors
var (
	ErrDatasetUnavailable = errors.New("dataset not loaded")
)
