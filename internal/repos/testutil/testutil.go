package testutil

import (
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/types"
)

var (
	dbOnce sync.Once
	db     *gorm.DB
	dbErr  error

	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens the shared test database. With TEST_POSTGRES_DSN set it runs
// against Postgres; otherwise it falls back to a shared in-memory SQLite
// database so the suite stays runnable without external services.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		cfg := &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
			Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
		}

		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn != "" {
			db, dbErr = gorm.Open(postgres.Open(dsn), cfg)
		} else {
			db, dbErr = gorm.Open(sqlite.Open("file::memory:?cache=shared"), cfg)
		}
		if dbErr != nil {
			return
		}

		if dbErr = autoMigrateAll(db); dbErr != nil {
			return
		}
		dbErr = seedRoles(db)
	})

	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return db
}

func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func autoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Role{},
		&types.User{},
		&types.Profile{},

		&types.Question{},
		&types.QuestionOption{},
		&types.Category{},
		&types.QuestionCategoryMapping{},

		&types.Survey{},
		&types.SurveyResponse{},
		&types.SurveyCategoryScore{},

		&types.ImprovementAreaOption{},
		&types.WellnessActivityOption{},
		&types.ProfileImprovementArea{},
		&types.ProfileWellnessActivity{},

		&types.WellnessMetric{},
		&types.LoginHistory{},
		&types.UserActivityLog{},
	)
}

func seedRoles(db *gorm.DB) error {
	for _, r := range []types.Role{{RoleID: 1, Name: types.RoleAdmin}, {RoleID: 2, Name: types.RoleUser}} {
		var count int64
		if err := db.Model(&types.Role{}).Where("role_id = ?", r.RoleID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&r).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
