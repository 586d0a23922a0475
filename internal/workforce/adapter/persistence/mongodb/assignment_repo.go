package mongodb

import (
	"context"
	"errors"
	"fmt"

	apperrors "workforce-api/internal/shared/errors"
	"workforce-api/internal/workforce/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionProjectEmployees is the project-employee join collection name.
const CollectionProjectEmployees = "project_employees"

// AssignmentRepository implements repository.AssignmentRepository on MongoDB.
type AssignmentRepository struct {
	collection *mongo.Collection
}

// NewAssignmentRepository creates the repository and ensures the unique
// business-key index plus a lookup index on projectId.
func NewAssignmentRepository(ctx context.Context, db *mongo.Database) (*AssignmentRepository, error) {
	repo := &AssignmentRepository{collection: db.Collection(CollectionProjectEmployees)}

	keyIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "empProjectId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.collection.Indexes().CreateOne(ctx, keyIndex); err != nil {
		return nil, fmt.Errorf("create empProjectId index: %w", err)
	}

	projectIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "projectId", Value: 1}},
	}
	if _, err := repo.collection.Indexes().CreateOne(ctx, projectIndex); err != nil {
		return nil, fmt.Errorf("create projectId index: %w", err)
	}

	return repo, nil
}

// Upsert writes the assignment keyed by empProjectId.
func (r *AssignmentRepository) Upsert(ctx context.Context, assignment *model.ProjectEmployee) error {
	if assignment == nil {
		return apperrors.NewValidationError("assignment cannot be nil")
	}
	if assignment.EmpProjectID == "" {
		return apperrors.ErrMissingBusinessKey
	}

	filter := bson.M{"empProjectId": assignment.EmpProjectID}
	_, err := r.collection.ReplaceOne(ctx, filter, assignment, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateKey
		}
		return err
	}
	return nil
}

// GetByEmpProjectID fetches one assignment by business key.
func (r *AssignmentRepository) GetByEmpProjectID(ctx context.Context, empProjectID string) (*model.ProjectEmployee, error) {
	var assignment model.ProjectEmployee
	err := r.collection.FindOne(ctx, bson.M{"empProjectId": empProjectID}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// List returns all assignments ordered by business key.
func (r *AssignmentRepository) List(ctx context.Context) ([]*model.ProjectEmployee, error) {
	return r.find(ctx, bson.M{})
}

// ListByProjectID returns all assignments for one project.
func (r *AssignmentRepository) ListByProjectID(ctx context.Context, projectID string) ([]*model.ProjectEmployee, error) {
	return r.find(ctx, bson.M{"projectId": projectID})
}

func (r *AssignmentRepository) find(ctx context.Context, filter bson.M) ([]*model.ProjectEmployee, error) {
	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "empProjectId", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assignments := make([]*model.ProjectEmployee, 0)
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Delete removes one assignment by business key.
func (r *AssignmentRepository) Delete(ctx context.Context, empProjectID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"empProjectId": empProjectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}
