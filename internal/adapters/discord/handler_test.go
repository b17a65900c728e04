package discord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supportbot/internal/infrastructure/kvstore"
	"supportbot/internal/localization"
)

func TestLanguageWithoutSession(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, langKey("u9"), "ja"))

	h := NewHandler(nil, nil, nil, nil, kv)
	assert.Equal(t, localization.Japanese, h.language(ctx, "u9"))
	assert.Equal(t, localization.Default, h.language(ctx, "never-seen"))
}

func TestLanguagePrefersLiveSession(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	h := NewHandler(nil, nil, nil, nil, kv)

	sess := h.session(ctx, "u10")
	defer sess.close()
	sess.lang.SetLanguage(ctx, localization.English)

	assert.Equal(t, localization.English, h.language(ctx, "u10"))
}
