// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles the
// framework-level settings: HTTP/HTTPS ports and TLS, logging level and
// format, request body size limits, and connection timeouts.
//
// Mindwell is an informational API with no persistence of its own; the only
// backend is an *optional* MongoDB collaborator consulted by the diagnostic
// endpoint. An empty MongoURI means the service runs with no database at all.
type AppConfig struct {
	// Optional MongoDB collaborator configuration
	MongoURI         string // MongoDB connection string; empty disables the database entirely
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size
}
