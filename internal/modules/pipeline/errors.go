package pipeline

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrLeadNotFound     = errors.New("lead not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrUnknownStage     = errors.New("unknown pipeline stage")
	ErrTransitionDenied = errors.New("stage transition denied")
)
