package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"supportbot/internal/domain/entities"
	"supportbot/internal/ports/output"
)

var _ output.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByDiscordID(ctx context.Context, discordID string) (*entities.Profile, error) {
	var p entities.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, discord_id, display_name, email, game_uuid, member_code
		FROM profiles WHERE discord_id = $1`, discordID,
	).Scan(&p.ID, &p.DiscordID, &p.DisplayName, &p.Email, &p.GameUUID, &p.MemberCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Unlinked users compose with an empty template context.
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by discord id: %w", err)
	}
	return &p, nil
}
