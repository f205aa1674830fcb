package store

import (
	"fmt"
	"strings"
)

// Open selects a TeamStore implementation by driver name.
func Open(driver, path string) (TeamStore, error) {
	switch strings.ToLower(driver) {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite", "sqlite3":
		return NewSQLiteStore(path)
	}
	return nil, fmt.Errorf("unknown store driver %q", driver)
}
