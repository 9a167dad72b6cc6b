package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/offmarket/listing-api/internal/core/domain"
)

const (
	collectionAlerts  = "property_alerts"
	collectionMatches = "alert_matches"
)

// AlertRepository persists property alerts and their match records.
type AlertRepository struct {
	db *mongo.Database
}

func NewAlertRepository(db *mongo.Database) *AlertRepository {
	return &AlertRepository{db: db}
}

type alertDoc struct {
	ID        string               `bson:"_id"`
	OwnerID   string               `bson:"owner_id"`
	Label     string               `bson:"label,omitempty"`
	Criteria  domain.AlertCriteria `bson:"criteria"`
	Active    bool                 `bson:"active"`
	CreatedAt time.Time            `bson:"created_at"`
}

func (d alertDoc) toDomain() *domain.PropertyAlert {
	return &domain.PropertyAlert{
		ID:        d.ID,
		OwnerID:   d.OwnerID,
		Label:     d.Label,
		Criteria:  d.Criteria,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
	}
}

func (r *AlertRepository) Insert(ctx context.Context, alert *domain.PropertyAlert) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := alertDoc{
		ID:        alert.ID,
		OwnerID:   alert.OwnerID,
		Label:     alert.Label,
		Criteria:  alert.Criteria,
		Active:    alert.Active,
		CreatedAt: alert.CreatedAt,
	}
	if _, err := r.db.Collection(collectionAlerts).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

func (r *AlertRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.PropertyAlert, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID})
}

func (r *AlertRepository) ListActive(ctx context.Context) ([]*domain.PropertyAlert, error) {
	return r.list(ctx, bson.M{"active": true})
}

func (r *AlertRepository) list(ctx context.Context, filter bson.M) ([]*domain.PropertyAlert, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.db.Collection(collectionAlerts).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.PropertyAlert
	for cur.Next(ctx) {
		var doc alertDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode alert: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// Delete removes the alert only when owned by ownerID.
func (r *AlertRepository) Delete(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.Collection(collectionAlerts).DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}

func (r *AlertRepository) InsertMatch(ctx context.Context, match *domain.AlertMatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"_id":         match.ID,
		"alert_id":    match.AlertID,
		"owner_id":    match.OwnerID,
		"property_id": match.PropertyID,
		"matched_at":  match.MatchedAt,
	}
	if _, err := r.db.Collection(collectionMatches).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert alert match: %w", err)
	}
	return nil
}

// EnsureIndexes creates the owner and active indexes on the alert
// collections.
func (r *AlertRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.db.Collection(collectionAlerts).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = r.db.Collection(collectionMatches).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "alert_id", Value: 1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "matched_at", Value: -1}}},
	})
	return err
}
