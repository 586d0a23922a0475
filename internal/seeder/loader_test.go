package seeder

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func writeExport(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDocumentsConvertsExtendedJSON(t *testing.T) {
	path := writeExport(t, "employees.json", `[
		{
			"_id": {"$oid": "507f1f77bcf86cd799439011"},
			"employeeId": {"$numberLong": "1001"},
			"firstName": "Grace",
			"hireDate": {"$date": "2021-03-15T00:00:00Z"},
			"salary": 95000.5
		}
	]`)

	docs, err := LoadDocuments(path)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	oid, ok := doc["_id"].(primitive.ObjectID)
	require.True(t, ok, "expected _id to become an ObjectID, got %T", doc["_id"])
	assert.Equal(t, "507f1f77bcf86cd799439011", oid.Hex())
	assert.Equal(t, int64(1001), doc["employeeId"])
	assert.Equal(t, "Grace", doc["firstName"])

	hired, ok := doc["hireDate"].(time.Time)
	require.True(t, ok, "expected hireDate to become time.Time, got %T", doc["hireDate"])
	assert.Equal(t, time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), hired.UTC())
	assert.Equal(t, 95000.5, doc["salary"])
}

func TestLoadDocumentsMissingFile(t *testing.T) {
	docs, err := LoadDocuments(filepath.Join(t.TempDir(), "does_not_exist.json"))
	assert.Error(t, err)
	assert.Nil(t, docs)
}

func TestLoadDocumentsEmptyFile(t *testing.T) {
	path := writeExport(t, "employees.json", "")
	docs, err := LoadDocuments(path)
	assert.Error(t, err)
	assert.Nil(t, docs)
}

func TestLoadDocumentsMalformedJSON(t *testing.T) {
	path := writeExport(t, "employees.json", `{"not": "an array"`)
	docs, err := LoadDocuments(path)
	assert.Error(t, err)
	assert.Nil(t, docs)
}

func TestEmployeeDefaults(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	doc := map[string]interface{}{"employeeId": int64(1)}
	employeeDefaults(doc, now)
	assert.Equal(t, []interface{}{}, doc["tags"])
	assert.Equal(t, true, doc["isActive"])
	assert.Equal(t, now, doc["createdAt"])
	assert.Equal(t, now, doc["updatedAt"])

	// Present values are never overwritten.
	doc = map[string]interface{}{
		"employeeId": int64(2),
		"tags":       []interface{}{"go"},
		"isActive":   false,
	}
	employeeDefaults(doc, now)
	assert.Equal(t, []interface{}{"go"}, doc["tags"])
	assert.Equal(t, false, doc["isActive"])
}

func TestProjectDefaults(t *testing.T) {
	now := time.Now().UTC()

	doc := map[string]interface{}{"projectId": "P-1"}
	projectDefaults(doc, now)
	assert.Equal(t, "active", doc["status"])

	doc = map[string]interface{}{"projectId": "P-2", "status": "completed"}
	projectDefaults(doc, now)
	assert.Equal(t, "completed", doc["status"])
}

func TestRunOrderDependencies(t *testing.T) {
	order := runOrder()
	position := make(map[string]int, len(order))
	for i, spec := range order {
		position[spec.Collection] = i
	}

	// Departments precede employees, both precede assignments.
	assert.Less(t, position["departments_parent"], position["employees"])
	assert.Less(t, position["departments_child"], position["employees"])
	assert.Less(t, position["employees"], position["project_employees"])
	assert.Less(t, position["projects"], position["project_employees"])
}
