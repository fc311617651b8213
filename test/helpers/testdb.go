package helpers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"freelancehub_backend/database"
)

// NewTestDB открывает изолированную in-memory SQLite БД и прогоняет
// миграции. Каждый вызов дает чистую схему, поэтому тесты не зависят
// от внешнего Postgres.
func NewTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Не удалось открыть in-memory БД: %v", err)
	}

	// In-memory база живет в рамках одного соединения: пул из
	// нескольких коннектов увидел бы разные пустые базы.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Не удалось получить *sql.DB из GORM: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}

	return db
}
