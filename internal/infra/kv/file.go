package kv

import (
	"os"
	"path/filepath"

	"barber-agenda/internal/pkg/errs"
)

// File stores one document per key under a data directory. Writes go to a
// temp file first and are renamed into place, so a crash mid-write leaves
// the previous value intact.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "create data dir %s", dir), errs.ErrStorage)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Mark(errs.Wrapf(err, "read %s", key), errs.ErrStorage)
	}
	return string(data), true, nil
}

func (f *File) Set(key, value string) error {
	target := f.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return errs.Mark(errs.Wrapf(err, "write %s", key), errs.ErrStorage)
	}
	if err := os.Rename(tmp, target); err != nil {
		return errs.Mark(errs.Wrapf(err, "commit %s", key), errs.ErrStorage)
	}
	return nil
}

func (f *File) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errs.Mark(errs.Wrapf(err, "delete %s", key), errs.ErrStorage)
	}
	return nil
}
