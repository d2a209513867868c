package filelock

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestNewFileLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	lock := NewFileLock(lockPath)
	if lock == nil {
		t.Fatal("NewFileLock should not return nil")
	}
	if lock.path != lockPath {
		t.Errorf("Expected lock path %s, got %s", lockPath, lock.path)
	}
}

func TestLockUnlock(t *testing.T) {
	lock := NewFileLock(filepath.Join(t.TempDir(), "test.lock"))

	if err := lock.Lock(); err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("Failed to release lock: %v", err)
	}
}

func TestTryLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	first := NewFileLock(lockPath)
	if err := first.Lock(); err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}
	defer first.Unlock()

	second := NewFileLock(lockPath)
	acquired, err := second.TryLock()
	if err != nil {
		t.Fatalf("TryLock returned error: %v", err)
	}
	if acquired {
		t.Error("TryLock should fail while another handle holds the lock")
	}
}

func TestLockAndAppend(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "actions.log")

	if err := LockAndAppend(logPath, []byte("first\n")); err != nil {
		t.Fatalf("LockAndAppend failed: %v", err)
	}
	if err := LockAndAppend(logPath, []byte("second\n")); err != nil {
		t.Fatalf("LockAndAppend failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if string(content) != "first\nsecond\n" {
		t.Errorf("Expected both lines in order, got %q", string(content))
	}
}

func TestConcurrentLockAndAppend(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "actions.log")

	const writers = 8
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			line := fmt.Sprintf("writer-%d %s\n", id, strings.Repeat("x", 512))
			if err := LockAndAppend(logPath, []byte(line)); err != nil {
				t.Errorf("writer %d: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if len(lines) != writers {
		t.Fatalf("Expected %d lines, got %d", writers, len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "writer-") || len(line) < 512 {
			t.Errorf("Interleaved or truncated line: %q", line)
		}
	}
}

func TestLockAndAppend_DirectoryIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "logs")
	if err := os.WriteFile(blocker, []byte("not a dir"), 0644); err != nil {
		t.Fatalf("Failed to create blocker: %v", err)
	}

	err := LockAndAppend(filepath.Join(blocker, "actions.log"), []byte("line\n"))
	if err == nil {
		t.Fatal("Expected error when parent path is a regular file")
	}
}

func TestAtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := AtomicWrite(path, []byte("one")); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}
	if err := AtomicWrite(path, []byte("two")); err != nil {
		t.Fatalf("AtomicWrite overwrite failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "two" {
		t.Errorf("Expected content %q, got %q", "two", string(content))
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp-") {
			t.Errorf("Temp file left behind: %s", e.Name())
		}
	}
}

func TestLockAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := LockAndWrite(path, []byte("target_dir: /tmp\n")); err != nil {
		t.Fatalf("LockAndWrite failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "target_dir: /tmp\n" {
		t.Errorf("Unexpected content %q", string(content))
	}
}
