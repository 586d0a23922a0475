package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is the nested address document carried by an employee.
type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

// Employee represents an employee document. EmployeeID is the business key
// used for upserts; ObjectID is the database identifier and is preserved
// verbatim when records arrive from an export.
type Employee struct {
	ObjectID     primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	EmployeeID   int64              `json:"employeeId" bson:"employeeId"`
	FirstName    string             `json:"firstName" bson:"firstName"`
	LastName     string             `json:"lastName" bson:"lastName"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"phone,omitempty" bson:"phone,omitempty"`
	DepartmentID string             `json:"departmentId,omitempty" bson:"departmentId,omitempty"`
	Position     string             `json:"position,omitempty" bson:"position,omitempty"`
	Salary       float64            `json:"salary" bson:"salary"`
	HireDate     time.Time          `json:"hireDate" bson:"hireDate"`
	Tags         []string           `json:"tags" bson:"tags"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	Address      *Address           `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// FullName returns the display name used in reports.
func (e *Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
