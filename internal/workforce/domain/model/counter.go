package model

// Counter backs business-key generation. One document per collection name,
// bumped atomically with $inc on an upsert so the first use creates it.
type Counter struct {
	ID  string `json:"id" bson:"_id"`
	Seq int64  `json:"seq" bson:"seq"`
}
