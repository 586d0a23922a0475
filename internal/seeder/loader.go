package seeder

import (
	"encoding/json"
	"fmt"
	"os"

	"workforce-api/internal/shared/extjson"
)

// LoadDocuments reads one export file and returns its documents with
// Extended JSON wrappers collapsed to native values. A missing, empty, or
// malformed file is not fatal: the caller logs a warning and seeds zero
// records for that collection.
func LoadDocuments(path string) ([]map[string]interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("read %s: file is empty", path)
	}

	var docs []map[string]interface{}
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for i, doc := range docs {
		docs[i] = extjson.NormalizeDocument(doc)
	}
	return docs, nil
}
