package value_objects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
		expected  string
	}{
		{"plain", "Ada Lovelace", false, "Ada Lovelace"},
		{"trimmed", "  Ada Lovelace  ", false, "Ada Lovelace"},
		{"hyphen and apostrophe", "Mary-Jane O'Brien", false, "Mary-Jane O'Brien"},
		{"non-latin script", "Zoë Ångström", false, "Zoë Ångström"},
		{"devanagari", "आरव शर्मा", false, "आरव शर्मा"},
		{"empty", "", true, ""},
		{"only spaces", "   ", true, ""},
		{"one character", "A", true, ""},
		{"digits", "Ada99", true, ""},
		{"symbols", "ada@campus", true, ""},
		{"leading hyphen", "-Ada", true, ""},
		{"consecutive spaces", "Ada  Lovelace", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := NewName(tt.input)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name.String())
		})
	}
}

func TestName_DisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ada lovelace", "Ada Lovelace"},
		{"ADA LOVELACE", "Ada Lovelace"},
		{"zoë ångström", "Zoë Ångström"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, err := NewName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name.DisplayName())
		})
	}
}

func TestName_Initials(t *testing.T) {
	name, err := NewName("grace brewster hopper")
	require.NoError(t, err)
	assert.Equal(t, "GBH", name.Initials())
}

func TestName_Equals(t *testing.T) {
	a, _ := NewName("Ada Lovelace")
	b, _ := NewName("ada lovelace")
	c, _ := NewName("Grace Hopper")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestName_JSON(t *testing.T) {
	name, err := NewName(`Ada "the Countess" Lovelace`)
	require.Error(t, err)
	assert.Nil(t, name)

	name, err = NewName("Ada Lovelace")
	require.NoError(t, err)

	data, err := json.Marshal(name)
	require.NoError(t, err)
	assert.Equal(t, `"Ada Lovelace"`, string(data))

	var decoded Name
	require.NoError(t, json.Unmarshal([]byte(`"Grace Hopper"`), &decoded))
	assert.Equal(t, "Grace Hopper", decoded.String())

	assert.Error(t, json.Unmarshal([]byte(`"x"`), &decoded))
}
