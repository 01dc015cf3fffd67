package config

import "errors"

// Configuration errors.
var (
	ErrInvalidPort      = errors.New("server port must be greater than 0")
	ErrMissingOpenAIKey = errors.New("azure openai api key is required")
)
