// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"glossary/internal/config"
	"glossary/internal/db"
)

// Open returns a migrated in-memory sqlite database private to tb.
func Open(tb testing.TB) *gorm.DB {
	tb.Helper()
	gdb, err := db.Connect(config.DBConfig{
		Driver:     "sqlite",
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	tb.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}
