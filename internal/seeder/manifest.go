package seeder

import (
	"time"

	"workforce-api/internal/workforce/adapter/persistence/mongodb"
)

// collectionSpec describes one export file: where it loads from, which
// collection it targets, the business key used for upserts, and the defaults
// applied to each document before writing.
type collectionSpec struct {
	File       string
	Collection string
	Key        string
	Defaults   func(doc map[string]interface{}, now time.Time)
}

// runOrder lists the exports in dependency order: departments before the
// employees that reference them, projects and employees before the
// assignments linking them, counters last.
func runOrder() []collectionSpec {
	return []collectionSpec{
		{
			File:       "departments_parent.json",
			Collection: mongodb.CollectionDepartmentsParent,
			Key:        "departmentId",
			Defaults:   departmentDefaults,
		},
		{
			File:       "departments_child.json",
			Collection: mongodb.CollectionDepartmentsChild,
			Key:        "departmentId",
			Defaults:   departmentDefaults,
		},
		{
			File:       "employees.json",
			Collection: mongodb.CollectionEmployees,
			Key:        "employeeId",
			Defaults:   employeeDefaults,
		},
		{
			File:       "projects.json",
			Collection: mongodb.CollectionProjects,
			Key:        "projectId",
			Defaults:   projectDefaults,
		},
		{
			File:       "project_employees.json",
			Collection: mongodb.CollectionProjectEmployees,
			Key:        "empProjectId",
			Defaults:   assignmentDefaults,
		},
		{
			// Counter documents carry their name in _id and need no defaults
			// beyond what the export provides.
			File:       "counters.json",
			Collection: mongodb.CollectionCounters,
			Key:        "_id",
		},
	}
}
