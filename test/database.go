package test

import (
	"path/filepath"
	"testing"

	"github.com/fincontrol/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TmpFile returns the path to a database file in a directory that is removed
// after the test.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}

// DB connects to a new, migrated database that is closed after the test.
func DB(t *testing.T) *gorm.DB {
	db, err := models.Connect(TmpFile(t))
	require.Nil(t, err, "Database initialization failed")

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}
