package database

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	connTimeOut = 10 * time.Second
)

type postgresStore struct {
	DB *sqlx.DB
}

func NewPostgresStore(dsn string) *postgresStore {
	db := sqlx.MustConnect("postgres", dsn)
	return &postgresStore{
		DB: db,
	}
}

func (d *postgresStore) Close() {
	d.DB.Close()
}

func (d *postgresStore) SaveFetchEntry(entry *FetchEntry) error {
	query := `INSERT INTO data_url_fetches
	(id, fetched_at, inserted_at, fetch_duration_ms, url, media_type, http_response_status, body_bytes, error) VALUES (:id, :fetched_at, :inserted_at, :fetch_duration_ms, :url, :media_type, :http_response_status, :body_bytes, :error)`
	ctx, cancel := context.WithTimeout(context.Background(), connTimeOut)
	defer cancel()
	_, err := d.DB.NamedExecContext(ctx, query, entry)
	return err
}
