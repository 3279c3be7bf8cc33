// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache stores generation records and sessions
	Cache Cache

	// Generator produces text for a prompt
	Generator TextGenerator

	// Logger provides structured logging
	Logger Logger

	// Metrics records generation outcomes; nil disables recording
	Metrics MetricsRecorder
}
