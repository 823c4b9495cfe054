package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gearguard/maintenance-system/internal/core/domain"
)

const (
	collectionTeams       = "maintenance_teams"
	collectionWorkCenters = "work_centers"
)

type TeamRepository struct {
	col *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{col: db.Collection(collectionTeams)}
}

func (r *TeamRepository) Create(ctx context.Context, t *domain.MaintenanceTeam) (*domain.MaintenanceTeam, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if t.ID == "" {
		t.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*domain.MaintenanceTeam, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.MaintenanceTeam
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]*domain.MaintenanceTeam, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var teams []*domain.MaintenanceTeam
	if err := cur.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

type WorkCenterRepository struct {
	col *mongo.Collection
}

func NewWorkCenterRepository(db *mongo.Database) *WorkCenterRepository {
	return &WorkCenterRepository{col: db.Collection(collectionWorkCenters)}
}

func (r *WorkCenterRepository) Create(ctx context.Context, w *domain.WorkCenter) (*domain.WorkCenter, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if w.ID == "" {
		w.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *WorkCenterRepository) List(ctx context.Context) ([]*domain.WorkCenter, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var centers []*domain.WorkCenter
	if err := cur.All(ctx, &centers); err != nil {
		return nil, err
	}
	return centers, nil
}
