// Package storage persists the cart and order collections in a local
// BoltDB file. The layout mirrors the browser-storage origin of the data:
// a single bucket with one key per collection, each value a JSON array.
// Writers replace the whole array, so the last completed write wins.
package storage

import (
	"context"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/marketflow/storefront/pkg/simwait"
)

const bucketName = "marketflow"

const (
	CartKey   = "marketflow_cart"
	OrdersKey = "marketflow_orders"
)

// KV wraps a BoltDB database and carries the simulated-latency setting
// shared by the stores built on top of it.
type KV struct {
	db      *bolt.DB
	latency time.Duration
}

// OpenKV opens (or creates) the database file and ensures the bucket
// exists. The latency is applied once per store operation, not per raw
// read/write.
func OpenKV(path string, latency time.Duration) (*KV, error) {
	const op = "storage.OpenKV"

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &KV{db: db, latency: latency}, nil
}

func (kv *KV) Close() error {
	return kv.db.Close()
}

// delay emulates one round trip to a remote backend.
func (kv *KV) delay(ctx context.Context) error {
	return simwait.Wait(ctx, kv.latency)
}

// get returns the stored value for key, or nil when the key was never
// written.
func (kv *KV) get(key string) ([]byte, error) {
	var val []byte
	err := kv.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v != nil {
			val = make([]byte, len(v))
			copy(val, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (kv *KV) put(key string, val []byte) error {
	return kv.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), val)
	})
}
