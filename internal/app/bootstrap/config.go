// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Mindwell.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, mongo_database, etc.
//   - Environment variables: MINDWELL_MONGO_URI, MINDWELL_MONGO_DATABASE, etc.
//   - Command-line flags: --mongo_uri, --mongo_database, etc.
// defaultMongoDatabase is the database name used when neither the
// MINDWELL_MONGO_DATABASE key nor DATABASE_NAME names one.
const defaultMongoDatabase = "mindwell"

var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (optional; empty runs without a database)"},
	{Name: "mongo_database", Default: defaultMongoDatabase, Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have access
// to configuration before any backends or handlers are built.
//
// Deployments that predate the MINDWELL_* keys configure the collaborator
// with bare DATABASE_URL / DATABASE_NAME variables; those are honored as
// fallbacks when the namespaced keys are unset. The diagnostic endpoint also
// presence-checks them directly.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "MINDWELL", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
	}

	if appCfg.MongoURI == "" {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			appCfg.MongoURI = url
			logger.Info("using DATABASE_URL for the MongoDB connection URI")
		}
	}
	if name := os.Getenv("DATABASE_NAME"); name != "" && appCfg.MongoDatabase == defaultMongoDatabase {
		appCfg.MongoDatabase = name
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The database collaborator is optional: an empty URI is valid and the
// service runs with the diagnostic endpoint reporting it absent. When a URI
// is set, its format is checked early so misconfiguration surfaces at
// startup rather than on the first /test request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURI == "" {
		return nil
	}

	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	return nil
}
