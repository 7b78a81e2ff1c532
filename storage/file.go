package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// Constants for file locking
const (
	lockTimeout    = 3 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 100 * time.Millisecond
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileSystem defines the interface for file system operations.
// This abstraction allows for easy mocking in tests.
type FileSystem interface {
	// Stat returns file info for the given path
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the entire file and returns its contents
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to a file with the specified permissions
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Rename renames (moves) a file from oldpath to newpath
	Rename(oldpath, newpath string) error

	// Remove removes the named file
	Remove(name string) error
}

// OSFileSystem is the default implementation using the os package
type OSFileSystem struct{}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (OSFileSystem) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

func (OSFileSystem) Remove(name string) error { return os.Remove(name) }

// FileLock defines the interface for cross-process file locking
type FileLock interface {
	// TryLockContext attempts to acquire an exclusive lock with retries
	TryLockContext(ctx context.Context, retryInterval time.Duration) (bool, error)

	// Unlock releases the lock
	Unlock() error
}

// FileLockFactory creates FileLock instances
type FileLockFactory interface {
	New(path string) FileLock
}

// FlockFactory is the default factory implementation using gofrs/flock
type FlockFactory struct{}

func (FlockFactory) New(path string) FileLock { return flock.New(path) }

// fileKV implements KV with one file per key inside a directory.
// Writes go to a temp file first and are renamed into place, so readers
// never observe a partial value. A single lock file guards the directory
// against concurrent processes.
type fileKV struct {
	dir         string
	fs          FileSystem
	lockFactory FileLockFactory
	fileLock    FileLock

	mu     sync.Mutex
	closed bool
}

// FileOption configures a file-backed KV.
type FileOption func(*fileKV)

// WithFileSystem sets a custom FileSystem implementation
func WithFileSystem(fsys FileSystem) FileOption {
	return func(kv *fileKV) { kv.fs = fsys }
}

// WithFileLockFactory sets a custom FileLockFactory implementation
func WithFileLockFactory(factory FileLockFactory) FileOption {
	return func(kv *fileKV) { kv.lockFactory = factory }
}

// NewFile creates a file-backed KV rooted at dir, creating dir if needed.
func NewFile(dir string, opts ...FileOption) (KV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	kv := &fileKV{dir: dir}
	for _, opt := range opts {
		opt(kv)
	}
	if kv.fs == nil {
		kv.fs = OSFileSystem{}
	}
	if kv.lockFactory == nil {
		kv.lockFactory = FlockFactory{}
	}
	kv.fileLock = kv.lockFactory.New(filepath.Join(dir, ".lock"))

	return kv, nil
}

func (kv *fileKV) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(kv.dir, key+".json"), nil
}

// acquireLock attempts to acquire the exclusive directory lock with retries
func (kv *fileKV) acquireLock(ctx context.Context) error {
	for i := 0; i < lockMaxRetries; i++ {
		locked, err := kv.fileLock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if locked {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
	return fmt.Errorf("failed to acquire lock after %d attempts", lockMaxRetries)
}

// withLock runs fn while holding the directory lock.
func (kv *fileKV) withLock(fn func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if err := kv.acquireLock(ctx); err != nil {
		return err
	}
	defer func() { _ = kv.fileLock.Unlock() }()

	return fn()
}

func (kv *fileKV) isClosed() bool {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	return kv.closed
}

func (kv *fileKV) Get(key string) (string, bool, error) {
	if kv.isClosed() {
		return "", false, ErrClosed
	}
	path, err := kv.path(key)
	if err != nil {
		return "", false, &Error{Op: "get", Key: key, Err: err}
	}

	var value string
	var found bool
	err = kv.withLock(func() error {
		if _, err := kv.fs.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}
		data, err := kv.fs.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		value = string(data)
		found = true
		return nil
	})
	if err != nil {
		return "", false, &Error{Op: "get", Key: key, Err: err}
	}
	return value, found, nil
}

func (kv *fileKV) Set(key, value string) error {
	if kv.isClosed() {
		return ErrClosed
	}
	path, err := kv.path(key)
	if err != nil {
		return &Error{Op: "set", Key: key, Err: err}
	}

	err = kv.withLock(func() error {
		// Write to a temp file, then rename (atomic on most filesystems)
		tmp := path + ".tmp"
		if err := kv.fs.WriteFile(tmp, []byte(value), 0644); err != nil {
			return fmt.Errorf("failed to write temp file: %w", err)
		}
		if err := kv.fs.Rename(tmp, path); err != nil {
			_ = kv.fs.Remove(tmp)
			return fmt.Errorf("failed to rename file: %w", err)
		}
		return nil
	})
	if err != nil {
		return &Error{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (kv *fileKV) Remove(key string) error {
	if kv.isClosed() {
		return ErrClosed
	}
	path, err := kv.path(key)
	if err != nil {
		return &Error{Op: "remove", Key: key, Err: err}
	}

	err = kv.withLock(func() error {
		if err := kv.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	})
	if err != nil {
		return &Error{Op: "remove", Key: key, Err: err}
	}
	return nil
}

func (kv *fileKV) Close() error {
	kv.mu.Lock()
	if kv.closed {
		kv.mu.Unlock()
		return nil
	}
	kv.closed = true
	kv.mu.Unlock()
	// Data is written on every Set; only the lock file needs cleanup.
	_ = kv.fs.Remove(filepath.Join(kv.dir, ".lock"))
	return nil
}
