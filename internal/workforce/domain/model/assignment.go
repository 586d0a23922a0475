package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectEmployee is the join-style document linking a project to an
// employee, keyed by EmpProjectID. Referential integrity is the caller's
// responsibility; ProjectID and EmployeeID are plain FK-style fields.
type ProjectEmployee struct {
	ObjectID     primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	EmpProjectID string             `json:"empProjectId" bson:"empProjectId"`
	ProjectID    string             `json:"projectId" bson:"projectId"`
	EmployeeID   int64              `json:"employeeId" bson:"employeeId"`
	Role         string             `json:"role,omitempty" bson:"role,omitempty"`
	AssignedDate time.Time          `json:"assignedDate" bson:"assignedDate"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}
