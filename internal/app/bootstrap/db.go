// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/mindwell/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the optional MongoDB collaborator connection.
//
// A missing URI is not an error: the service is fully functional without a
// database. A configured-but-unreachable database is also not fatal; the
// connection attempt is logged and the diagnostic endpoint reports the
// handle as uninitialized. Only the content endpoints matter for uptime.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if appCfg.MongoURI == "" {
		logger.Info("no MongoDB URI configured; running without a database")
		return DBDeps{}, nil
	}

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Warn("MongoDB connect failed; continuing without a database", zap.Error(err))
		return DBDeps{}, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Warn("MongoDB ping failed; continuing without a database", zap.Error(err))
		_ = client.Disconnect(ctx)
		return DBDeps{}, nil
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema sets up indexes or schema as needed.
//
// Mindwell persists nothing, so there is no schema to ensure even when a
// database is connected.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
