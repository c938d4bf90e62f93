package services

import (
	"context"
	"testing"

	"e2d-ledger/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsTypedValues(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewSettingsService(repo)
	ctx := context.Background()

	_, err := svc.Set(ctx, &SetSettingInput{Key: "seuil", Value: "5", ValueType: models.SettingNumber}, 1)
	require.NoError(t, err)
	_, err = svc.Set(ctx, &SetSettingInput{Key: "alerte", Value: "true", ValueType: models.SettingBoolean}, 1)
	require.NoError(t, err)
	_, err = svc.Set(ctx, &SetSettingInput{Key: "libelle", Value: "E2D", ValueType: models.SettingText}, 1)
	require.NoError(t, err)
	_, err = svc.Set(ctx, &SetSettingInput{Key: "bureau", Value: `{"president":"Rose"}`, ValueType: models.SettingJSON}, 1)
	require.NoError(t, err)

	n, err := svc.GetValue(ctx, "seuil")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	b, err := svc.GetValue(ctx, "alerte")
	require.NoError(t, err)
	assert.Equal(t, true, b)

	s, err := svc.GetValue(ctx, "libelle")
	require.NoError(t, err)
	assert.Equal(t, "E2D", s)

	doc, err := svc.GetValue(ctx, "bureau")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"president": "Rose"}, doc)
}

func TestSettingsMalformedJSONDegradesToRawString(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewSettingsService(repo)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.Setting{
		Key:       "bureau",
		Value:     "{broken",
		ValueType: models.SettingJSON,
	}))

	v, err := svc.GetValue(ctx, "bureau")
	require.NoError(t, err)
	assert.Equal(t, "{broken", v)
}

func TestSettingsSetValidatesDeclaredType(t *testing.T) {
	svc := NewSettingsService(newFakeSettingRepo())
	ctx := context.Background()

	_, err := svc.Set(ctx, &SetSettingInput{Key: "seuil", Value: "abc", ValueType: models.SettingNumber}, 1)
	assert.ErrorIs(t, err, ErrBadSettingType)

	_, err = svc.Set(ctx, &SetSettingInput{Key: "alerte", Value: "oui", ValueType: models.SettingBoolean}, 1)
	assert.ErrorIs(t, err, ErrBadSettingType)
}

func TestSettingsReadOnlyKeyRejectsWrites(t *testing.T) {
	repo := newFakeSettingRepo()
	svc := NewSettingsService(repo)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.Setting{
		Key:        "version_statuts",
		Value:      "2024",
		ValueType:  models.SettingText,
		Modifiable: false,
	}))

	_, err := svc.Set(ctx, &SetSettingInput{Key: "version_statuts", Value: "2026", ValueType: models.SettingText}, 1)
	assert.ErrorIs(t, err, ErrSettingReadOnly)
}

func TestSettingsIntValueFallsBack(t *testing.T) {
	svc := NewSettingsService(newFakeSettingRepo())
	assert.Equal(t, int64(3), svc.IntValue(context.Background(), "absent", 3))
}
