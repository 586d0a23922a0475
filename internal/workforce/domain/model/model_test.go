package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func marshalToMap(t *testing.T, v interface{}) bson.M {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func TestEmployeeBSONKeepsZeroValues(t *testing.T) {
	doc := marshalToMap(t, &Employee{
		EmployeeID: 1,
		FirstName:  "Ada",
		LastName:   "Lovelace",
	})

	assert.Contains(t, doc, "salary")
	assert.Equal(t, float64(0), doc["salary"])
	assert.Contains(t, doc, "hireDate")
}

func TestProjectBSONKeepsZeroBudget(t *testing.T) {
	doc := marshalToMap(t, &Project{ProjectID: "P-1", Name: "Internal"})

	assert.Contains(t, doc, "budget")
	assert.Equal(t, float64(0), doc["budget"])
	assert.Contains(t, doc, "startDate")
}

func TestAssignmentBSONKeepsAssignedDate(t *testing.T) {
	doc := marshalToMap(t, &ProjectEmployee{
		EmpProjectID: "EP-1",
		ProjectID:    "P-1",
		EmployeeID:   1,
	})
	assert.Contains(t, doc, "assignedDate")
}

func TestEmployeeFullName(t *testing.T) {
	assert.Equal(t, "Grace Hopper", (&Employee{FirstName: "Grace", LastName: "Hopper"}).FullName())
	assert.Equal(t, "Grace", (&Employee{FirstName: "Grace"}).FullName())
	assert.Equal(t, "Hopper", (&Employee{LastName: "Hopper"}).FullName())
}

func TestDepartmentIsChild(t *testing.T) {
	assert.False(t, (&Department{DepartmentID: "D-100"}).IsChild())
	assert.True(t, (&Department{DepartmentID: "D-110", ParentDepartmentID: "D-100"}).IsChild())
}
