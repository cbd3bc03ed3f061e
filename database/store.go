package database

type Store interface {
	SaveFetchEntry(in *FetchEntry) error
}
