package seeder

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// SeederTestSuite exercises the full import path against a local MongoDB.
// It skips when no server is reachable on the default port.
type SeederTestSuite struct {
	suite.Suite
	client *mongo.Client
	db     *mongo.Database
	ctx    context.Context
}

func TestSeederSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}

func (s *SeederTestSuite) SetupSuite() {
	s.ctx = context.Background()

	ctx, cancel := context.WithTimeout(s.ctx, 3*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		s.T().Skipf("MongoDB not available: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		s.T().Skipf("MongoDB not reachable: %v", err)
	}

	s.client = client
	s.db = client.Database("workforce_seeder_test_db")
}

func (s *SeederTestSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.db.Drop(s.ctx)
		_ = s.client.Disconnect(s.ctx)
	}
}

func (s *SeederTestSuite) SetupTest() {
	s.Require().NoError(s.db.Drop(s.ctx))
}

func (s *SeederTestSuite) writeDataDir(files map[string]string) string {
	dir := s.T().TempDir()
	for name, content := range files {
		s.Require().NoError(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

const employeesExport = `[
	{
		"_id": {"$oid": "507f1f77bcf86cd799439011"},
		"employeeId": {"$numberLong": "1001"},
		"firstName": "Grace",
		"lastName": "Hopper",
		"email": "grace@example.com",
		"hireDate": {"$date": "2021-03-15T00:00:00Z"}
	},
	{
		"employeeId": {"$numberInt": "1002"},
		"firstName": "Alan",
		"lastName": "Turing",
		"email": "alan@example.com",
		"tags": ["math"],
		"isActive": false
	}
]`

func (s *SeederTestSuite) TestSeedIsIdempotent() {
	dir := s.writeDataDir(map[string]string{"employees.json": employeesExport})
	seeder := New(s.db, dir, zap.NewNop())

	results, err := seeder.Run(s.ctx)
	s.Require().NoError(err)

	byCollection := make(map[string]Result)
	for _, r := range results {
		byCollection[r.Collection] = r
	}
	s.Equal(2, byCollection["employees"].Seeded)
	s.Equal(2, byCollection["employees"].Total)

	// Second run upserts the same keys; no duplicates appear.
	_, err = seeder.Run(s.ctx)
	s.Require().NoError(err)

	count, err := s.db.Collection("employees").CountDocuments(s.ctx, bson.M{})
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *SeederTestSuite) TestSeedAppliesDefaults() {
	dir := s.writeDataDir(map[string]string{"employees.json": employeesExport})
	seeder := New(s.db, dir, zap.NewNop())

	_, err := seeder.Run(s.ctx)
	s.Require().NoError(err)

	var grace bson.M
	s.Require().NoError(s.db.Collection("employees").
		FindOne(s.ctx, bson.M{"employeeId": int64(1001)}).Decode(&grace))
	s.Equal(true, grace["isActive"])
	s.Equal(bson.A{}, grace["tags"])

	var alan bson.M
	s.Require().NoError(s.db.Collection("employees").
		FindOne(s.ctx, bson.M{"employeeId": int64(1002)}).Decode(&alan))
	s.Equal(false, alan["isActive"], "explicit values survive defaulting")
	s.Equal(bson.A{"math"}, alan["tags"])
}

func (s *SeederTestSuite) TestSeedPreservesExportedObjectID() {
	dir := s.writeDataDir(map[string]string{"employees.json": employeesExport})
	seeder := New(s.db, dir, zap.NewNop())

	_, err := seeder.Run(s.ctx)
	s.Require().NoError(err)

	var grace bson.M
	s.Require().NoError(s.db.Collection("employees").
		FindOne(s.ctx, bson.M{"employeeId": int64(1001)}).Decode(&grace))
	oid, ok := grace["_id"].(primitive.ObjectID)
	s.Require().True(ok)
	s.Equal("507f1f77bcf86cd799439011", oid.Hex())
}

func (s *SeederTestSuite) TestMissingFileSeedsNothing() {
	dir := s.writeDataDir(nil)
	seeder := New(s.db, dir, zap.NewNop())

	results, err := seeder.Run(s.ctx)
	s.Require().NoError(err)

	for _, r := range results {
		s.Equal(0, r.Seeded, "collection %s", r.Collection)
		s.Equal(0, r.Total, "collection %s", r.Collection)
	}
}

func (s *SeederTestSuite) TestRecordWithoutKeyIsSkipped() {
	export := `[
		{"employeeId": {"$numberLong": "2001"}, "firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com"},
		{"firstName": "Nameless", "lastName": "Record", "email": "nobody@example.com"}
	]`
	dir := s.writeDataDir(map[string]string{"employees.json": export})
	seeder := New(s.db, dir, zap.NewNop())

	results, err := seeder.Run(s.ctx)
	s.Require().NoError(err)

	for _, r := range results {
		if r.Collection == "employees" {
			s.Equal(1, r.Seeded)
			s.Equal(2, r.Total)
		}
	}
}
