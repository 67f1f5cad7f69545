// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers accepted in configuration.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)
