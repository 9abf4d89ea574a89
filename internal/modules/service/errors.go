package service

import "errors"

// Service layer errors, matched with errors.Is at the handler boundary.
var (
	ErrSpotNotFound  = errors.New("spot not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
