package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
)

const collectionApplications = "membership_applications"

// ApplicationRepository persists membership applications.
type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

type applicationDoc struct {
	ID          string    `bson:"_id"`
	FullName    string    `bson:"full_name"`
	Email       string    `bson:"email"`
	Phone       string    `bson:"phone"`
	Budget      int64     `bson:"budget,omitempty"`
	SearchNotes string    `bson:"search_notes,omitempty"`
	Status      string    `bson:"status"`
	ReviewNotes string    `bson:"review_notes,omitempty"`
	SubmittedAt time.Time `bson:"submitted_at"`
	ReviewedAt  time.Time `bson:"reviewed_at,omitempty"`
}

func toApplicationDoc(a *domain.MembershipApplication) applicationDoc {
	return applicationDoc{
		ID:          a.ID,
		FullName:    a.FullName,
		Email:       a.Email,
		Phone:       a.Phone,
		Budget:      a.Budget,
		SearchNotes: a.SearchNotes,
		Status:      string(a.Status),
		ReviewNotes: a.ReviewNotes,
		SubmittedAt: a.SubmittedAt,
		ReviewedAt:  a.ReviewedAt,
	}
}

func (d applicationDoc) toDomain() *domain.MembershipApplication {
	return &domain.MembershipApplication{
		ID:          d.ID,
		FullName:    d.FullName,
		Email:       d.Email,
		Phone:       d.Phone,
		Budget:      d.Budget,
		SearchNotes: d.SearchNotes,
		Status:      domain.ApplicationStatus(d.Status),
		ReviewNotes: d.ReviewNotes,
		SubmittedAt: d.SubmittedAt,
		ReviewedAt:  d.ReviewedAt,
	}
}

func (r *ApplicationRepository) Insert(ctx context.Context, app *domain.MembershipApplication) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toApplicationDoc(app)); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.MembershipApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc applicationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) List(ctx context.Context, filter ports.ApplicationFilter) ([]*domain.MembershipApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := bson.M{}
	if filter.Status != "" {
		q["status"] = string(filter.Status)
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "submitted_at"
	}
	dir := 1
	if filter.Desc {
		dir = -1
	}

	cur, err := r.col.Find(ctx, q, options.Find().SetSort(bson.D{{Key: orderBy, Value: dir}}))
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.MembershipApplication
	for cur.Next(ctx) {
		var doc applicationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *ApplicationRepository) Update(ctx context.Context, app *domain.MembershipApplication) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": app.ID}, toApplicationDoc(app))
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// EnsureIndexes creates the status and submitted_at indexes used by the
// admin table.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "submitted_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
