package mongodb

import (
	"context"
	"errors"
	"fmt"

	apperrors "workforce-api/internal/shared/errors"
	"workforce-api/internal/workforce/domain/model"
	"workforce-api/internal/workforce/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Department collection names, shared with the seeder.
const (
	CollectionDepartmentsParent = "departments_parent"
	CollectionDepartmentsChild  = "departments_child"
)

// DepartmentRepository persists parent and child departments in their
// respective collections. The target collection is derived from the document:
// a department with a parent reference is a child.
type DepartmentRepository struct {
	parents  *mongo.Collection
	children *mongo.Collection
}

// NewDepartmentRepository creates the repository and ensures the unique
// business-key index on both collections.
func NewDepartmentRepository(ctx context.Context, db *mongo.Database) (*DepartmentRepository, error) {
	repo := &DepartmentRepository{
		parents:  db.Collection(CollectionDepartmentsParent),
		children: db.Collection(CollectionDepartmentsChild),
	}

	keyIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "departmentId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, coll := range []*mongo.Collection{repo.parents, repo.children} {
		if _, err := coll.Indexes().CreateOne(ctx, keyIndex); err != nil {
			return nil, fmt.Errorf("create departmentId index on %s: %w", coll.Name(), err)
		}
	}

	return repo, nil
}

func (r *DepartmentRepository) collectionFor(d *model.Department) *mongo.Collection {
	if d.IsChild() {
		return r.children
	}
	return r.parents
}

// Upsert writes the department keyed by departmentId into the collection
// matching its kind.
func (r *DepartmentRepository) Upsert(ctx context.Context, department *model.Department) error {
	if department == nil {
		return apperrors.NewValidationError("department cannot be nil")
	}
	if department.DepartmentID == "" {
		return apperrors.ErrMissingBusinessKey
	}

	filter := bson.M{"departmentId": department.DepartmentID}
	_, err := r.collectionFor(department).ReplaceOne(ctx, filter, department,
		options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateKey
		}
		return err
	}
	return nil
}

// GetByDepartmentID looks the key up in parents first, then children.
func (r *DepartmentRepository) GetByDepartmentID(ctx context.Context, departmentID string) (*model.Department, error) {
	filter := bson.M{"departmentId": departmentID}

	for _, coll := range []*mongo.Collection{r.parents, r.children} {
		var department model.Department
		err := coll.FindOne(ctx, filter).Decode(&department)
		if err == nil {
			return &department, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

// List returns departments for the requested scope, parents before children.
func (r *DepartmentRepository) List(ctx context.Context, scope repository.DepartmentScope) ([]*model.Department, error) {
	var colls []*mongo.Collection
	switch scope {
	case repository.ScopeParents:
		colls = []*mongo.Collection{r.parents}
	case repository.ScopeChildren:
		colls = []*mongo.Collection{r.children}
	default:
		colls = []*mongo.Collection{r.parents, r.children}
	}

	departments := make([]*model.Department, 0)
	for _, coll := range colls {
		cursor, err := coll.Find(ctx, bson.M{},
			options.Find().SetSort(bson.D{{Key: "departmentId", Value: 1}}))
		if err != nil {
			return nil, err
		}
		var batch []*model.Department
		if err := cursor.All(ctx, &batch); err != nil {
			return nil, err
		}
		departments = append(departments, batch...)
	}
	return departments, nil
}

// Delete removes the department from whichever collection holds it.
func (r *DepartmentRepository) Delete(ctx context.Context, departmentID string) error {
	filter := bson.M{"departmentId": departmentID}

	for _, coll := range []*mongo.Collection{r.parents, r.children} {
		result, err := coll.DeleteOne(ctx, filter)
		if err != nil {
			return err
		}
		if result.DeletedCount > 0 {
			return nil
		}
	}
	return apperrors.ErrDepartmentNotFound
}
