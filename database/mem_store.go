package database

import (
	"sync"

	"github.com/google/uuid"
)

type memStore struct {
	Fetches map[uuid.UUID]*FetchEntry
	mutex   *sync.Mutex
}

func NewMemStore() *memStore {
	return &memStore{
		Fetches: make(map[uuid.UUID]*FetchEntry),
		mutex:   &sync.Mutex{},
	}
}

func (m *memStore) SaveFetchEntry(entry *FetchEntry) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Fetches[entry.Id] = entry
	return nil
}
