package output

import (
	"context"

	"supportbot/internal/domain/entities"
)

type UserRepository interface {
	// FindByDiscordID returns the linked support profile, or nil (no error)
	// when the user never linked one.
	FindByDiscordID(ctx context.Context, discordID string) (*entities.Profile, error)
}
