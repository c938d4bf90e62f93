package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Settings service errors
var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrSettingReadOnly = errors.New("setting is not modifiable")
	ErrBadSettingType  = errors.New("invalid setting value for its type")
)

// SettingsService exposes the typed configuration store.
type SettingsService struct {
	settingRepo repositories.SettingRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingRepo repositories.SettingRepository) *SettingsService {
	return &SettingsService{settingRepo: settingRepo}
}

// SetSettingInput represents a configuration write.
type SetSettingInput struct {
	Key         string `json:"cle" validate:"required,max=100"`
	Value       string `json:"valeur" validate:"required"`
	ValueType   string `json:"type_valeur" validate:"required,oneof=text number boolean json"`
	Category    string `json:"categorie,omitempty"`
	Description string `json:"description,omitempty"`
}

// List returns every configuration entry.
func (s *SettingsService) List(ctx context.Context) ([]*models.Setting, error) {
	return s.settingRepo.List(ctx)
}

// Get returns a configuration entry by key.
func (s *SettingsService) Get(ctx context.Context, key string) (*models.Setting, error) {
	setting, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return setting, nil
}

// GetValue resolves a key to its typed value. number yields int64,
// boolean yields bool, json yields the decoded document. A json value
// that fails to decode degrades to the raw string instead of erroring.
func (s *SettingsService) GetValue(ctx context.Context, key string) (interface{}, error) {
	setting, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	switch setting.ValueType {
	case models.SettingNumber:
		n, err := strconv.ParseInt(setting.Value, 10, 64)
		if err != nil {
			return nil, ErrBadSettingType
		}
		return n, nil
	case models.SettingBoolean:
		b, err := strconv.ParseBool(setting.Value)
		if err != nil {
			return nil, ErrBadSettingType
		}
		return b, nil
	case models.SettingJSON:
		var doc interface{}
		if err := json.Unmarshal([]byte(setting.Value), &doc); err != nil {
			return setting.Value, nil
		}
		return doc, nil
	default:
		return setting.Value, nil
	}
}

// IntValue resolves a numeric key, falling back to def when the key is
// missing or not a parseable number.
func (s *SettingsService) IntValue(ctx context.Context, key string, def int64) int64 {
	setting, err := s.Get(ctx, key)
	if err != nil {
		return def
	}
	n, err := strconv.ParseInt(setting.Value, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// Set creates or replaces a configuration entry.
func (s *SettingsService) Set(ctx context.Context, input *SetSettingInput, actorID uint) (*models.Setting, error) {
	existing, err := s.settingRepo.GetByKey(ctx, input.Key)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && !existing.Modifiable {
		return nil, ErrSettingReadOnly
	}

	// Reject values that do not parse as their declared type. JSON is
	// exempt: malformed JSON is stored and read back as raw text.
	switch input.ValueType {
	case models.SettingNumber:
		if _, err := strconv.ParseInt(input.Value, 10, 64); err != nil {
			return nil, ErrBadSettingType
		}
	case models.SettingBoolean:
		if _, err := strconv.ParseBool(input.Value); err != nil {
			return nil, ErrBadSettingType
		}
	}

	category := input.Category
	if category == "" {
		category = "general"
	}

	setting := &models.Setting{
		Key:         input.Key,
		Value:       input.Value,
		ValueType:   input.ValueType,
		Category:    category,
		Description: input.Description,
		Modifiable:  true,
		ModifiedBy:  &actorID,
	}
	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}
