package docstore

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	s, err := NewPostgresStore(db)
	require.NoError(t, err)
	defer s.Close()

	db.Where("key IN ?", []string{"doc", "fresh", "keep", "broken", "race", "fields"}).Delete(&Document{})
	runStoreContract(t, s, false)
}
