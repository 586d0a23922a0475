// Package seeder loads MongoDB Extended JSON exports into the workforce
// database. Runs are idempotent: every document is upserted by its business
// key, so reseeding the same export changes nothing.
package seeder

import (
	"context"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Result summarizes one collection's seed run.
type Result struct {
	Collection string
	Seeded     int
	Total      int
}

// Seeder drives the import of every export file in a data directory.
type Seeder struct {
	db      *mongo.Database
	dataDir string
	log     *zap.Logger
	now     func() time.Time
}

// New creates a seeder reading exports from dataDir.
func New(db *mongo.Database, dataDir string, log *zap.Logger) *Seeder {
	return &Seeder{db: db, dataDir: dataDir, log: log, now: time.Now}
}

// Run seeds every collection in dependency order. File-level problems
// (missing, empty, malformed) produce a warning and a zero-count result;
// record-level problems are logged and skipped so one bad document never
// aborts an import.
func (s *Seeder) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(runOrder()))
	for _, spec := range runOrder() {
		result, err := s.seedCollection(ctx, spec)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *Seeder) seedCollection(ctx context.Context, spec collectionSpec) (Result, error) {
	result := Result{Collection: spec.Collection}

	path := filepath.Join(s.dataDir, spec.File)
	docs, err := LoadDocuments(path)
	if err != nil {
		s.log.Warn("Skipping collection, export not loadable",
			zap.String("collection", spec.Collection),
			zap.String("file", path),
			zap.Error(err))
		return result, nil
	}
	result.Total = len(docs)

	now := s.now().UTC()
	coll := s.db.Collection(spec.Collection)
	for i, doc := range docs {
		key, ok := doc[spec.Key]
		if !ok || key == nil || key == "" {
			s.log.Warn("Skipping record without business key",
				zap.String("collection", spec.Collection),
				zap.String("key", spec.Key),
				zap.Int("index", i))
			continue
		}

		if spec.Defaults != nil {
			spec.Defaults(doc, now)
		}

		// ReplaceOne with upsert keeps any _id the export carries and
		// leaves an identical document untouched on reseed.
		_, err := coll.ReplaceOne(ctx,
			bson.M{spec.Key: key},
			bson.M(doc),
			options.Replace().SetUpsert(true))
		if err != nil {
			s.log.Error("Failed to upsert record",
				zap.String("collection", spec.Collection),
				zap.Any("businessKey", key),
				zap.Error(err))
			continue
		}
		result.Seeded++
	}

	s.log.Info("Collection seeded",
		zap.String("collection", spec.Collection),
		zap.Int("seeded", result.Seeded),
		zap.Int("total", result.Total))
	return result, nil
}
