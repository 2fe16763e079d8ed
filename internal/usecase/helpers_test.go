package usecase

import (
	"fmt"
	"io"
	"testing"

	"health-tracker/internal/domain/entity"
	"health-tracker/internal/infrastructure/database"
	"health-tracker/internal/repository"
	"health-tracker/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema. A single
// connection keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAuditService(log *logrus.Logger) service.AuditService {
	return service.NewAuditService(log, repository.NewAuditLogRepository())
}

func createTestUser(t *testing.T, db *gorm.DB, n int) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:    fmt.Sprintf("user%d@example.com", n),
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func float64Ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
