package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses. New projects default to active.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on-hold"
)

// Project represents a project document keyed by ProjectID.
type Project struct {
	ObjectID    primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ProjectID   string             `json:"projectId" bson:"projectId"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Status      string             `json:"status" bson:"status"`
	Budget      float64            `json:"budget" bson:"budget"`
	StartDate   time.Time          `json:"startDate" bson:"startDate"`
	EndDate     *time.Time         `json:"endDate,omitempty" bson:"endDate,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
