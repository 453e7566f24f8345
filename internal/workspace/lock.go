// Package workspace guards a workspace root against concurrent server
// instances racing each other's atomic writes.
package workspace

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
)

const lockFileName = ".fuzzy-edit-mcp.lock"

// Lock represents an acquired exclusive lock on a workspace root.
type Lock struct {
	file        *os.File
	lockPath    string
	sigChan     chan os.Signal
	mu          sync.Mutex
	cleanupOnce sync.Once
}

// AcquireLock takes an exclusive, non-blocking lock on workspaceRoot, so
// that two server processes never hand out atomic writes to the same
// files concurrently. The caller must call Release.
func AcquireLock(workspaceRoot string) (*Lock, error) {
	lockPath := filepath.Join(workspaceRoot, lockFileName)

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("create workspace lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("workspace %q is already in use by another fuzzy-edit-mcp instance", workspaceRoot)
	}

	f.Truncate(0)
	f.Seek(0, 0)
	fmt.Fprintf(f, "%d\n", os.Getpid())

	lock := &Lock{
		file:     f,
		lockPath: lockPath,
		sigChan:  make(chan os.Signal, 1),
	}

	signal.Notify(lock.sigChan, syscall.SIGINT, syscall.SIGTERM)
	sigChan := lock.sigChan
	go func() {
		sig, ok := <-sigChan
		if ok && sig != nil {
			lock.cleanup()
			os.Exit(130)
		}
	}()

	return lock, nil
}

// Release releases the lock and removes the lock file.
func (l *Lock) Release() {
	l.mu.Lock()
	if l.file == nil {
		l.mu.Unlock()
		return
	}
	if l.sigChan != nil {
		signal.Stop(l.sigChan)
		close(l.sigChan)
		l.sigChan = nil
	}
	l.mu.Unlock()
	l.cleanup()
}

func (l *Lock) cleanup() {
	l.cleanupOnce.Do(func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.file == nil {
			return
		}
		syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN)
		l.file.Close()
		os.Remove(l.lockPath)
		l.file = nil
	})
}
