package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

const auditCollection = "account_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDocument struct {
	AccountID  int64    `bson:"account_id"`
	Action     string   `bson:"action"`
	Email      string   `bson:"email,omitempty"`
	Role       string   `bson:"role,omitempty"`
	Fields     []string `bson:"fields,omitempty"`
	RequestID  string   `bson:"request_id,omitempty"`
	OccurredAt int64    `bson:"occurred_at"`
}

// InsertEvent appends an account event to the audit collection.
func (r *AuditRepository) InsertEvent(ctx context.Context, event *domain.AccountEvent) error {
	doc := auditDocument{
		AccountID:  event.AccountID,
		Action:     string(event.Action),
		Email:      event.Email,
		Role:       event.Role,
		Fields:     event.Fields,
		RequestID:  event.RequestID,
		OccurredAt: event.OccurredAt.UnixMilli(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert account event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the index used to read an account's history.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(auditCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "account_id", Value: 1}, {Key: "occurred_at", Value: -1}},
		Options: options.Index().SetName("account_id_occurred_at"),
	})
	if err != nil {
		return fmt.Errorf("create audit index: %w", err)
	}
	return nil
}
