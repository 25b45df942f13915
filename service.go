package skew

import (
	"context"

	"github.com/hazelutf8/approx-pearson-skew/pkg/stats"
)

// Service is the service interface for the skew engine.
// It enables middleware to be added to the service.
type Service interface {
	// Skew computes the Pearson median skewness of samples
	Skew(ctx context.Context, samples []float64) (float64, error)
	// Median computes the median of samples in O(1) auxiliary space
	Median(ctx context.Context, samples []float64) (float64, error)
	// Mean computes the arithmetic mean of samples
	Mean(ctx context.Context, samples []float64) (float64, error)
	// StdDev computes the population standard deviation of samples
	StdDev(ctx context.Context, samples []float64) (float64, error)
	// GetStats returns the stats collected by the engine
	GetStats() stats.Stats
}

// Middleware describes a service middleware.
type Middleware func(Service) Service

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware(svc Service, mw ...Middleware) Service {
	// Apply each middleware in the chain
	for _, m := range mw {
		svc = m(svc)
	}
	// Return the decorated service
	return svc
}
