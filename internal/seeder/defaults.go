package seeder

import "time"

// Default-value coalescing mirrors what the API applies on create: exports
// produced by hand or by older tooling may omit fields the application
// relies on.

func employeeDefaults(doc map[string]interface{}, now time.Time) {
	if _, ok := doc["tags"]; !ok {
		doc["tags"] = []interface{}{}
	}
	if _, ok := doc["isActive"]; !ok {
		doc["isActive"] = true
	}
	stampTimes(doc, now)
}

func departmentDefaults(doc map[string]interface{}, now time.Time) {
	stampTimes(doc, now)
}

func projectDefaults(doc map[string]interface{}, now time.Time) {
	if _, ok := doc["status"]; !ok {
		doc["status"] = "active"
	}
	stampTimes(doc, now)
}

func assignmentDefaults(doc map[string]interface{}, now time.Time) {
	if _, ok := doc["assignedDate"]; !ok {
		doc["assignedDate"] = now
	}
	stampTimes(doc, now)
}

func stampTimes(doc map[string]interface{}, now time.Time) {
	if _, ok := doc["createdAt"]; !ok {
		doc["createdAt"] = now
	}
	if _, ok := doc["updatedAt"]; !ok {
		doc["updatedAt"] = now
	}
}
