package session

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

var sessionKey = []byte("console/session")

var ErrNoSession = errors.New("no stored session")

type Store interface {
	Load() (Session, error)
	Save(s Session) error
	Delete() error
}

// BadgerStore keeps the session as a single JSON value.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens the store at path. An empty path keeps it in memory.
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open session store")
	}
	return &BadgerStore{db: db}, nil
}

func (b *BadgerStore) Load() (Session, error) {
	var s Session
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &s)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, errors.Wrap(err, "load session")
	}
	return s, nil
}

func (b *BadgerStore) Save(s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey, data)
	})
	return errors.Wrap(err, "save session")
}

func (b *BadgerStore) Delete() error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey)
	})
	return errors.Wrap(err, "delete session")
}

func (b *BadgerStore) Close() error {
	return b.db.Close()
}
