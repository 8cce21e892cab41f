package server

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// ErrorResponse is the JSON body returned for all API errors.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// MachineSummary describes one registered machine definition.
type MachineSummary struct {
	Name    string   `json:"name"`
	Choices []string `json:"choices,omitempty"`
}

// MachinesResponse is the body of GET /v1/machines.
type MachinesResponse struct {
	Machines []MachineSummary `json:"machines"`
	Count    int              `json:"count"`
}

// RecipesResponse is the body of GET /v1/recipes.
type RecipesResponse struct {
	Recipes []string `json:"recipes"`
	Count   int      `json:"count"`
}

// EvaluationRequest is the body of POST /v1/evaluations.
type EvaluationRequest struct {
	Machine     string             `json:"machine"`
	Recipe      string             `json:"recipe"`
	VoltageTier int                `json:"voltageTier"`
	TierBudget  int                `json:"tierBudget"`
	Choices     map[string]float64 `json:"choices,omitempty"`
}

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Logging
	LogLevel slog.Level
}
