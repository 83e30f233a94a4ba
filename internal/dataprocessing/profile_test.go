package dataprocessing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compasscli/internal/errors"
	"compasscli/pkg/contracts/domain"
)

func TestCanonicalCity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"canonical_spelling", "Mississauga", "Mississauga"},
		{"misspelling_with_suffix", "  Missisauga, ON", "Mississauga"},
		{"prefix_rule_beats_dictionary", "MIS-Town", "Mississauga"},
		{"synonym_lookup", "toronto", "Toronto"},
		{"province_suffix_stripped", "toronto on", "Toronto"},
		{"country_suffix_stripped", "oakville canada", "Oakville"},
		{"comma_segment_dropped", "Brampton, Ontario, Canada", "Brampton"},
		{"two_word_city", "richmond hill", "Richmond Hill"},
		{"unmapped_title_cased", "guelph", "Guelph"},
		{"unmapped_multiword_title_cased", "north york", "North York"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalCity(tt.input))
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Volunteer Applicant", domain.StatusApplicant},
		{"In Process - interview", domain.StatusInProcess},
		{"accepted 2023", domain.StatusAccepted},
		{"INACTIVE", domain.StatusInactive},
		{"archived (old system)", domain.StatusArchived},
		{"something else", domain.StatusOther},
		{"", domain.StatusUnknown},
		// applicant wins over a later-priority match in the same string
		{"applicant archived", domain.StatusApplicant},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeStatus(tt.input), "input %q", tt.input)
	}
}

func TestExtractAreaCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"L5B 3C2", "L5B"},
		{"l5b3c2", "L5B"},
		{" l 5 b ", "L5B"},
		{"L5", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtractAreaCode(tt.input), "input %q", tt.input)
	}
}

func TestClassifyLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"English, French", domain.LanguageMultilingual},
		{"english and hindi", domain.LanguageMultilingual},
		{"English/Urdu", domain.LanguageMultilingual},
		{"English; Mandarin", domain.LanguageMultilingual},
		{"English", domain.LanguageEnglishOnly},
		{"French", domain.LanguageOther},
		{"French, Spanish", domain.LanguageOther},
		{"", domain.LanguageOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyLanguage(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeProjectsPresentColumns(t *testing.T) {
	normalizer := NewProfileNormalizer(nil)
	csv := "DatabaseUserId,City,PostalCode,VolunteerStatus\n" +
		"V1,missisauga,L5B 3C2,Inactive\n" +
		"V2,Toronto,M4,accepted\n"

	profiles, err := normalizer.Normalize(context.Background(), strings.NewReader(csv), "test.csv")
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "Mississauga", profiles[0].City)
	assert.Equal(t, "L5B", profiles[0].AreaCode)
	assert.Equal(t, domain.StatusInactive, profiles[0].Status)
	assert.True(t, profiles[0].Stopped())

	// postal code too short leaves the area code undefined
	assert.Equal(t, "", profiles[1].AreaCode)
	assert.Equal(t, domain.StatusAccepted, profiles[1].Status)
	assert.False(t, profiles[1].Stopped())

	// absent optional columns are simply omitted
	assert.Empty(t, profiles[0].Language)
	assert.Empty(t, profiles[0].AgeRange)
}

func TestNormalizeDeduplicatesByID(t *testing.T) {
	normalizer := NewProfileNormalizer(nil)
	csv := "DatabaseUserId,City\nV1,toronto\nV1,oakville\n"

	profiles, err := normalizer.Normalize(context.Background(), strings.NewReader(csv), "test.csv")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Toronto", profiles[0].City)
}

func TestNormalizeMissingIDColumn(t *testing.T) {
	normalizer := NewProfileNormalizer(nil)
	csv := "City,PostalCode\ntoronto,L5B 3C2\n"

	_, err := normalizer.Normalize(context.Background(), strings.NewReader(csv), "test.csv")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
}
