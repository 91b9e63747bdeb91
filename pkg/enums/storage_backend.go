package enums

import "fmt"

// StorageBackend selects the persistence backing the client-state records.
type StorageBackend string

const (
	StorageBackendMemory StorageBackend = "memory"
	StorageBackendFile   StorageBackend = "file"
	StorageBackendSQLite StorageBackend = "sqlite"
	StorageBackendRedis  StorageBackend = "redis"
	StorageBackendNone   StorageBackend = "none"
)

var validStorageBackends = []StorageBackend{
	StorageBackendMemory,
	StorageBackendFile,
	StorageBackendSQLite,
	StorageBackendRedis,
	StorageBackendNone,
}

// String implements fmt.Stringer.
func (b StorageBackend) String() string {
	return string(b)
}

// IsValid reports whether the value is a known StorageBackend.
func (b StorageBackend) IsValid() bool {
	for _, candidate := range validStorageBackends {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseStorageBackend converts raw input into a StorageBackend.
func ParseStorageBackend(value string) (StorageBackend, error) {
	for _, candidate := range validStorageBackends {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid storage backend %q", value)
}
