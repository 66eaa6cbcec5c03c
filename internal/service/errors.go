package service

import "errors"

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionCompleted   = errors.New("assessment already submitted")
)
