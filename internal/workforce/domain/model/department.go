package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department represents either a parent or a child department document.
// Children carry ParentDepartmentID; parents leave it empty. Parents and
// children live in separate collections but share this shape.
type Department struct {
	ObjectID           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	DepartmentID       string             `json:"departmentId" bson:"departmentId"`
	Name               string             `json:"name" bson:"name"`
	Description        string             `json:"description,omitempty" bson:"description,omitempty"`
	ParentDepartmentID string             `json:"parentDepartmentId,omitempty" bson:"parentDepartmentId,omitempty"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
}

// IsChild reports whether the department belongs to the child collection.
func (d *Department) IsChild() bool {
	return d.ParentDepartmentID != ""
}
