package extjson

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalize_NumberInt(t *testing.T) {
	got := Normalize(map[string]interface{}{"$numberInt": "5"})
	assert.Equal(t, int64(5), got)
}

func TestNormalize_NumberLong(t *testing.T) {
	got := Normalize(map[string]interface{}{"$numberLong": "9007199254740993"})
	assert.Equal(t, int64(9007199254740993), got)
}

func TestNormalize_NumberInt_OutOfRangeLeftAsIs(t *testing.T) {
	in := map[string]interface{}{"$numberInt": "5000000000"}
	got := Normalize(in)
	assert.Equal(t, in, got)
}

func TestNormalize_DateString(t *testing.T) {
	got := Normalize(map[string]interface{}{"$date": "2024-10-04T19:48:57.118Z"})
	ts, ok := got.(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 10, 4, 19, 48, 57, 118000000, time.UTC), ts)
}

func TestNormalize_DateEpochMillis(t *testing.T) {
	got := Normalize(map[string]interface{}{
		"$date": map[string]interface{}{"$numberLong": "1728071337118"},
	})
	ts, ok := got.(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.UnixMilli(1728071337118).UTC(), ts)
}

func TestNormalize_ObjectID(t *testing.T) {
	got := Normalize(map[string]interface{}{"$oid": "670046b9e4b0a8f3c2d11a01"})
	oid, ok := got.(primitive.ObjectID)
	require.True(t, ok)
	assert.Equal(t, "670046b9e4b0a8f3c2d11a01", oid.Hex())
}

func TestNormalize_InvalidObjectIDLeftAsIs(t *testing.T) {
	in := map[string]interface{}{"$oid": "not-a-hex"}
	assert.Equal(t, in, Normalize(in))
}

func TestNormalize_NumberDouble(t *testing.T) {
	assert.Equal(t, 3.14, Normalize(map[string]interface{}{"$numberDouble": "3.14"}))

	nan := Normalize(map[string]interface{}{"$numberDouble": "NaN"})
	f, ok := nan.(float64)
	require.True(t, ok)
	assert.True(t, math.IsNaN(f))
}

func TestNormalize_NestedDocument(t *testing.T) {
	raw := `{
		"employeeId": {"$numberLong": "42"},
		"hireDate": {"$date": "2023-01-15T08:00:00Z"},
		"tags": ["go", {"$numberInt": "7"}],
		"address": {
			"city": "Lima",
			"movedIn": {"$date": {"$numberLong": "1672531200000"}}
		}
	}`
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	got := NormalizeDocument(doc)

	assert.Equal(t, int64(42), got["employeeId"])
	assert.Equal(t, time.Date(2023, 1, 15, 8, 0, 0, 0, time.UTC), got["hireDate"])

	tags, ok := got["tags"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, "go", tags[0])
	assert.Equal(t, int64(7), tags[1])

	addr, ok := got["address"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Lima", addr["city"])
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), addr["movedIn"])
}

func TestNormalize_ScalarsPassThrough(t *testing.T) {
	assert.Equal(t, "hello", Normalize("hello"))
	assert.Equal(t, true, Normalize(true))
	assert.Equal(t, 1.5, Normalize(1.5))
	assert.Nil(t, Normalize(nil))
}

func TestNormalize_MultiKeyMapIsNotAWrapper(t *testing.T) {
	in := map[string]interface{}{"$date": "2024-01-01", "other": 1}
	got, ok := Normalize(in).(map[string]interface{})
	require.True(t, ok)
	// Keys recursed into, not unwrapped at the top level.
	assert.Equal(t, "2024-01-01", got["$date"])
	assert.Equal(t, 1, got["other"])
}
