package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	appRepos "github.com/volunteerhub/volunteerhub/internal/app/repositories"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
	"github.com/volunteerhub/volunteerhub/internal/pkg/auth"
)

// CreateDefaultAdmin creates the seeded administrator account if it does
// not exist. Registration only produces volunteer accounts, so without
// this seed no one could manage events.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, email, password string, lgr zerolog.Logger) error {
	if email == "" || password == "" {
		lgr.Warn().Msg("Admin seed credentials not configured, skipping")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	id, err := userRepo.Create(ctx, email, passwordHash, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", email).Msg("Admin account already exists")
			return nil
		}
		return err
	}

	lgr.Info().Int64("userID", id).Str("email", email).Msg("Default admin account created")
	return nil
}
