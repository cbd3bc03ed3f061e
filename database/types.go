package database

import (
	"time"

	"github.com/google/uuid"
)

// FetchEntry to store each URL-to-data-URL conversion
type FetchEntry struct {
	Id                 uuid.UUID `db:"id"`
	FetchedAt          time.Time `db:"fetched_at"`
	InsertedAt         time.Time `db:"inserted_at"`
	FetchDurationMs    int64     `db:"fetch_duration_ms"`
	Url                string    `db:"url"`
	MediaType          string    `db:"media_type"`
	HttpResponseStatus int       `db:"http_response_status"`
	BodyBytes          int       `db:"body_bytes"`
	Error              string    `db:"error"`
}
