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

// CollectionEmployees is the employees collection name, shared with the
// seeder and the counter namespace.
const CollectionEmployees = "employees"

// EmployeeRepository implements repository.EmployeeRepository on MongoDB.
type EmployeeRepository struct {
	collection *mongo.Collection
}

// NewEmployeeRepository creates the repository and ensures the unique index
// on the business key.
func NewEmployeeRepository(ctx context.Context, db *mongo.Database) (*EmployeeRepository, error) {
	repo := &EmployeeRepository{collection: db.Collection(CollectionEmployees)}

	keyIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "employeeId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.collection.Indexes().CreateOne(ctx, keyIndex); err != nil {
		return nil, fmt.Errorf("create employeeId index: %w", err)
	}

	return repo, nil
}

// Upsert writes the employee keyed by employeeId; at most one document per
// key exists afterwards regardless of how often this runs.
func (r *EmployeeRepository) Upsert(ctx context.Context, employee *model.Employee) error {
	if employee == nil {
		return apperrors.NewValidationError("employee cannot be nil")
	}
	if employee.EmployeeID == 0 {
		return apperrors.ErrMissingBusinessKey
	}
	if employee.Tags == nil {
		employee.Tags = []string{}
	}

	filter := bson.M{"employeeId": employee.EmployeeID}
	_, err := r.collection.ReplaceOne(ctx, filter, employee, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateKey
		}
		return err
	}
	return nil
}

// GetByEmployeeID fetches one employee by business key.
func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID int64) (*model.Employee, error) {
	var employee model.Employee
	err := r.collection.FindOne(ctx, bson.M{"employeeId": employeeID}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// List returns all employees ordered by business key.
func (r *EmployeeRepository) List(ctx context.Context) ([]*model.Employee, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "employeeId", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	employees := make([]*model.Employee, 0)
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// Delete removes one employee by business key.
func (r *EmployeeRepository) Delete(ctx context.Context, employeeID int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"employeeId": employeeID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}
