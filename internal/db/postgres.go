package db

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/types"
	"github.com/lyrahhq/lyrah-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "lyrah", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
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
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		table string
		name  string
		fk    string
	}{
		{"profiles", "fk_profiles_user_id", `FOREIGN KEY ("user_id") REFERENCES "users"("user_id") ON DELETE CASCADE`},
		{"surveys", "fk_surveys_profile_id", `FOREIGN KEY ("profile_id") REFERENCES "profiles"("profile_id")`},
		{"survey_responses", "fk_survey_responses_survey_id", `FOREIGN KEY ("survey_id") REFERENCES "surveys"("survey_id") ON DELETE CASCADE`},
		{"survey_category_scores", "fk_survey_category_scores_survey_id", `FOREIGN KEY ("survey_id") REFERENCES "surveys"("survey_id") ON DELETE CASCADE`},
		{"survey_category_scores", "fk_survey_category_scores_category_id", `FOREIGN KEY ("category_id") REFERENCES "wellness_categories"("category_id")`},
		{"profile_improvement_areas", "fk_profile_improvement_areas_profile_id", `FOREIGN KEY ("profile_id") REFERENCES "profiles"("profile_id") ON DELETE CASCADE`},
		{"profile_wellness_activities", "fk_profile_wellness_activities_profile_id", `FOREIGN KEY ("profile_id") REFERENCES "profiles"("profile_id") ON DELETE CASCADE`},
	}
	for _, c := range constraints {
		drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, c.table, c.name)
		if err := s.db.Exec(drop).Error; err != nil {
			return fmt.Errorf("failed to drop constraint %s: %w", c.name, err)
		}
		add := fmt.Sprintf(`ALTER TABLE %q ADD CONSTRAINT %q %s`, c.table, c.name, c.fk)
		if err := s.db.Exec(add).Error; err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", c.name, err)
		}
	}
	return s.seedRoles()
}

func (s *PostgresService) seedRoles() error {
	for _, r := range []types.Role{{RoleID: 1, Name: types.RoleAdmin}, {RoleID: 2, Name: types.RoleUser}} {
		var count int64
		if err := s.db.Model(&types.Role{}).Where("role_id = ?", r.RoleID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := s.db.Create(&r).Error; err != nil {
				return fmt.Errorf("failed to seed role %q: %w", r.Name, err)
			}
		}
	}
	return nil
}

func (s *PostgresService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
