package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/rakibul/unibus/internal/app/models"
	appRepos "github.com/rakibul/unibus/internal/app/repositories"
	"github.com/rakibul/unibus/internal/pkg/apperrors"
	"github.com/rakibul/unibus/internal/pkg/auth"
)

const defaultAdminEmail = "admin@unibus.app"

// CreateDefaultData creates the default admin account and a starter
// timetable if the database is empty.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	scheduleRepo := appRepos.NewScheduleRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin account, starter timetable)...")
	var finalErr error

	if err := createDefaultAdmin(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if err := createStarterSchedules(ctx, scheduleRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func createDefaultAdmin(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger) error {
	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		return err
	}
	if exists {
		return nil
	}

	password := os.Getenv("ADMIN_DEFAULT_PASSWORD")
	if password == "" {
		password = "ChangeMe!2024"
		lgr.Warn().Msg("ADMIN_DEFAULT_PASSWORD not set, using built-in default; change it immediately")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.User{
		Email:    defaultAdminEmail,
		Password: hashed,
		Name:     "Transport Admin",
		RoleType: appModels.RoleAdmin,
		Provider: appModels.ProviderLocal,
		IsActive: true,
	}

	id, err := userRepo.CreateUser(ctx, admin)
	if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	if id > 0 {
		lgr.Info().Int64("userID", id).Str("email", defaultAdminEmail).Msg("Default admin account created")
	}
	return nil
}

func createStarterSchedules(ctx context.Context, scheduleRepo *appRepos.ScheduleRepository, lgr zerolog.Logger) error {
	existing, err := scheduleRepo.ListSchedules(ctx, appRepos.ScheduleFilter{})
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing schedules")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	femaleOnly := "female"
	starter := []*appModels.BusSchedule{
		{
			Time:          "07:00 AM",
			StartingPoint: "Dhanmondi",
			Route:         "Dhanmondi - Sobhanbagh - Shyamoli - Campus",
			EndPoint:      "Main Campus",
			Direction:     appModels.DirectionCityToCampus,
			ScheduleType:  appModels.ScheduleTypeRegular,
		},
		{
			Time:          "07:30 AM",
			StartingPoint: "Uttara",
			Route:         "Uttara - Mirpur 10 - Campus",
			EndPoint:      "Main Campus",
			Direction:     appModels.DirectionCityToCampus,
			ScheduleType:  appModels.ScheduleTypeRegular,
		},
		{
			Time:          "08:00 AM",
			StartingPoint: "Mirpur",
			Route:         "Mirpur - Technical - Campus",
			EndPoint:      "Main Campus",
			Direction:     appModels.DirectionCityToCampus,
			Gender:        &femaleOnly,
			ScheduleType:  appModels.ScheduleTypeRegular,
		},
		{
			Time:          "04:30 PM",
			StartingPoint: "Main Campus",
			Route:         "Campus - Shyamoli - Sobhanbagh - Dhanmondi",
			EndPoint:      "Dhanmondi",
			Direction:     appModels.DirectionCampusToCity,
			ScheduleType:  appModels.ScheduleTypeRegular,
		},
		{
			Time:          "09:00 AM",
			StartingPoint: "Dhanmondi",
			Route:         "Dhanmondi - Campus",
			EndPoint:      "Main Campus",
			Direction:     appModels.DirectionCityToCampus,
			ScheduleType:  appModels.ScheduleTypeFriday,
		},
		{
			Time:          "05:00 PM",
			StartingPoint: "Main Campus",
			Route:         "Campus - Dhanmondi",
			EndPoint:      "Dhanmondi",
			Direction:     appModels.DirectionCampusToCity,
			ScheduleType:  appModels.ScheduleTypeFriday,
		},
	}

	var finalErr error
	created := 0
	for _, s := range starter {
		if _, err := scheduleRepo.CreateSchedule(ctx, s); err != nil {
			lgr.Error().Err(err).Str("route", s.Route).Msg("Error creating starter schedule")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	if created > 0 {
		lgr.Info().Int("count", created).Msg("Starter timetable created")
	}
	return finalErr
}
