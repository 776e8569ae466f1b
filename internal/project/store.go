package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// load reads the index cache at path. A missing file or a version mismatch
// both return a freshly version-stamped empty index, not an error: the
// caller is expected to repopulate via Sync. A malformed existing file is
// fatal and surfaces to the caller, per the lifecycle contract.
func load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return newEmptyIndex(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read project index: %w", err)
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse project index %s: %w", path, err)
	}
	if idx.Version != cacheVersion {
		return newEmptyIndex(), nil
	}
	if idx.Projects == nil {
		idx.Projects = make(map[string]Project)
	}
	return &idx, nil
}

// save writes idx to path atomically: write to path+".tmp", fsync isn't
// required for a cache of this size, then rename over the destination so a
// crash mid-write never leaves a truncated cache in place.
func save(path string, idx *Index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project index: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp cache: %w", err)
	}
	return nil
}

// withFileLock opens (creating if absent) the lock file alongside path and
// holds an exclusive advisory OS lock for the duration of fn, in addition
// to the in-process mutex callers already hold. This serializes
// read-modify-write cycles across separate process instances; within one
// process the Store's mutex is sufficient and this is an extra guard.
func withFileLock(path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	lockPath := path + ".lock"
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer f.Close()

	if err := flock(int(f.Fd())); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer funlock(int(f.Fd()))

	return fn()
}
