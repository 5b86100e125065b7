package kv

import (
	bolt "go.etcd.io/bbolt"

	"barber-agenda/internal/pkg/errs"
)

var bucketName = []byte("barber")

// Bolt keeps all keys in a single bucket of one bbolt file. bbolt holds an
// exclusive file lock, so a second process opening the same database fails
// fast instead of silently interleaving writes.
type Bolt struct {
	db *bolt.DB
}

func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "open database %s", path), errs.ErrStorage)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errs.Mark(errs.Wrap(err, "create bucket"), errs.ErrStorage)
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(key string) (string, bool, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return "", false, errs.Mark(errs.Wrapf(err, "read %s", key), errs.ErrStorage)
	}
	if value == nil {
		return "", false, nil
	}
	return string(value), true, nil
}

func (b *Bolt) Set(key, value string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "write %s", key), errs.ErrStorage)
	}
	return nil
}

func (b *Bolt) Delete(key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "delete %s", key), errs.ErrStorage)
	}
	return nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
