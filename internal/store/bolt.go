package store

import (
	"context"

	"go.etcd.io/bbolt"
)

var bucket = []byte("edusphere")

// BoltKV is the default backend: a single-file embedded store, one bucket,
// one key per collection.
type BoltKV struct {
	db *bbolt.DB
}

func NewBoltKV(db *bbolt.DB) (*BoltKV, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BoltKV{db: db}, nil
}

func (b *BoltKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	var out []byte
	var found bool
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucket).Get([]byte(key))
		if v != nil {
			found = true
			out = append([]byte(nil), v...) // value is only valid inside the tx
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, found, nil
}

func (b *BoltKV) Put(_ context.Context, key string, value []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), value)
	})
}

func (b *BoltKV) Delete(_ context.Context, key string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(key))
	})
}

func (b *BoltKV) Close() error {
	return b.db.Close()
}
