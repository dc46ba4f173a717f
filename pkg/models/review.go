package models

import "time"

// Review is a stored customer review. Content and sentiment score are written
// together at creation time; rows are immutable afterwards.
type Review struct {
	ID             int64     `db:"id"              json:"id"`
	Content        string    `db:"content"         json:"content"`
	SentimentScore *float64  `db:"sentiment_score" json:"sentiment_score,omitempty"`
	CreatedAt      time.Time `db:"created_at"      json:"created_at"`
}
