// Package constants holds configuration values compared across packages.
package constants

// Pub/Sub providers. An empty provider disables event publishing.
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)
