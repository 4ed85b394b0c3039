package diagnostics

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// State describes the optional database collaborator. It is resolved once at
// startup from configuration and the connection outcome, never re-probed per
// request.
type State int

const (
	// StateAbsent means no database was configured at all.
	StateAbsent State = iota
	// StateUninitialized means a database was configured but the handle
	// never came up (connection failed or was skipped).
	StateUninitialized
	// StateConnected means a live handle is available.
	StateConnected
)

// Database is the minimal surface the diagnostic endpoint needs from the
// collaborator. Tests substitute a stub; production wraps *mongo.Database.
type Database interface {
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// mongoDatabase adapts *mongo.Database to the Database interface.
type mongoDatabase struct {
	db *mongo.Database
}

// NewMongoDatabase wraps a live Mongo database handle.
func NewMongoDatabase(db *mongo.Database) Database {
	return &mongoDatabase{db: db}
}

func (m *mongoDatabase) Name() string {
	return m.db.Name()
}

func (m *mongoDatabase) ListCollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.D{})
}
