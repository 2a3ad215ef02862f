package repositories

import "errors"

// Sentinel errors surfaced to the handler layer, which maps them to 404s.
var (
	ErrAssessmentNotFound     = errors.New("assessment not found")
	ErrFocusAreaNotFound      = errors.New("focus area not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
)
