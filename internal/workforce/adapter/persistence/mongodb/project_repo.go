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

// CollectionProjects is the projects collection name.
const CollectionProjects = "projects"

// ProjectRepository implements repository.ProjectRepository on MongoDB.
type ProjectRepository struct {
	collection *mongo.Collection
}

// NewProjectRepository creates the repository and ensures the unique index
// on the business key.
func NewProjectRepository(ctx context.Context, db *mongo.Database) (*ProjectRepository, error) {
	repo := &ProjectRepository{collection: db.Collection(CollectionProjects)}

	keyIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "projectId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.collection.Indexes().CreateOne(ctx, keyIndex); err != nil {
		return nil, fmt.Errorf("create projectId index: %w", err)
	}

	return repo, nil
}

// Upsert writes the project keyed by projectId.
func (r *ProjectRepository) Upsert(ctx context.Context, project *model.Project) error {
	if project == nil {
		return apperrors.NewValidationError("project cannot be nil")
	}
	if project.ProjectID == "" {
		return apperrors.ErrMissingBusinessKey
	}
	if project.Status == "" {
		project.Status = model.ProjectStatusActive
	}

	filter := bson.M{"projectId": project.ProjectID}
	_, err := r.collection.ReplaceOne(ctx, filter, project, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateKey
		}
		return err
	}
	return nil
}

// GetByProjectID fetches one project by business key.
func (r *ProjectRepository) GetByProjectID(ctx context.Context, projectID string) (*model.Project, error) {
	var project model.Project
	err := r.collection.FindOne(ctx, bson.M{"projectId": projectID}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// List returns all projects ordered by business key.
func (r *ProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "projectId", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := make([]*model.Project, 0)
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Delete removes one project by business key.
func (r *ProjectRepository) Delete(ctx context.Context, projectID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}
