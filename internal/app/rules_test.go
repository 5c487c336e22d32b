package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dinosaurRules = RuleSet{
	{Field: "name", Required: true, MaxLen: 100},
	{Field: "diet", Enum: []string{"Herbivore", "Carnivore", "Omnivore", ""}},
	{Field: "description"},
	{Field: "era_id", Numeric: true},
}

func TestValidate_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    map[string]any
		wantErr string
	}{
		{
			name: "valid payload",
			data: map[string]any{"name": "T-Rex", "diet": "Carnivore", "era_id": float64(3)},
		},
		{
			name:    "missing required field",
			data:    map[string]any{"diet": "Carnivore"},
			wantErr: "name is required",
		},
		{
			name:    "empty required field",
			data:    map[string]any{"name": ""},
			wantErr: "name is required",
		},
		{
			name:    "name too long",
			data:    map[string]any{"name": strings.Repeat("x", 101)},
			wantErr: "must not exceed 100 characters",
		},
		{
			name:    "invalid enum value",
			data:    map[string]any{"name": "T-Rex", "diet": "Vegan"},
			wantErr: "invalid diet value",
		},
		{
			name:    "non-numeric id reference",
			data:    map[string]any{"name": "T-Rex", "era_id": "three"},
			wantErr: "invalid era_id",
		},
		{
			name:    "fractional id reference",
			data:    map[string]any{"name": "T-Rex", "era_id": 3.5},
			wantErr: "invalid era_id",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := dinosaurRules.Validate(tt.data, false)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_FirstViolationWins(t *testing.T) {
	t.Parallel()

	// Both fields violate; the rule order fixes which one is reported.
	_, err := dinosaurRules.Validate(map[string]any{
		"name": strings.Repeat("x", 101),
		"diet": "Vegan",
	}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not exceed")
}

func TestValidate_UpdateMode(t *testing.T) {
	t.Parallel()

	// Required presence is not re-checked in update mode.
	changeset, err := dinosaurRules.Validate(map[string]any{"diet": "Herbivore"}, true)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"diet": "Herbivore"}, changeset)

	// Format constraints still apply.
	_, err = dinosaurRules.Validate(map[string]any{"name": strings.Repeat("x", 101)}, true)
	assert.ErrorIs(t, err, ErrValidation)

	// An empty change-set after filtering unknown fields is rejected.
	_, err = dinosaurRules.Validate(map[string]any{}, true)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "no valid fields to update")

	_, err = dinosaurRules.Validate(map[string]any{"unknown_field": "x"}, true)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidate_EmailAndURL(t *testing.T) {
	t.Parallel()

	rules := RuleSet{
		{Field: "email", Required: true, Email: true},
		{Field: "location_url", URL: true},
	}

	_, err := rules.Validate(map[string]any{"email": "not-an-email"}, false)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "invalid email format")

	_, err = rules.Validate(map[string]any{"email": "rex@x.io", "location_url": "not a url"}, false)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "invalid url format")

	changeset, err := rules.Validate(map[string]any{"email": "rex@x.io", "location_url": "https://maps.example.com/site/1"}, false)
	require.NoError(t, err)
	assert.Equal(t, "rex@x.io", changeset["email"])
}

func TestParseID(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"0", "-1", "abc", "", "1.5"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrValidation, "raw=%q", raw)
	}

	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}
