package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"compasscli/internal/errors"
	"compasscli/pkg/contracts/domain"
)

// Recognized profile export columns. Only the volunteer id is required;
// every other column is projected in only when present.
const (
	colCity       = "City"
	colPostalCode = "PostalCode"
	colProvince   = "Province"
	colCountry    = "Country"
	colYears      = "YearsSinceVolunteerDateJoined"
	colStatus     = "VolunteerStatus"
	colAgeRange   = "CF - 2025 Update - Age Range (archived Nov 2025)"
	colLanguage   = "CF - Skills & Experience - Languages spoken:"
)

// cityCanonical maps lower-cased city spellings (and common misspellings)
// to their canonical names.
var cityCanonical = map[string]string{
	"mississauga":   "Mississauga",
	"missisauga":    "Mississauga",
	"mississauaga":  "Mississauga",
	"mississouga":   "Mississauga",
	"oakville":      "Oakville",
	"toronto":       "Toronto",
	"brampton":      "Brampton",
	"burlington":    "Burlington",
	"hamilton":      "Hamilton",
	"vaughan":       "Vaughan",
	"richmond hill": "Richmond Hill",
}

// citySuffixes are trailing province/country markers stripped before lookup.
var citySuffixes = []string{" on", " ab", " bc", " can", " canada", " ontario"}

// multiValueSeparators mark a languages-spoken cell as listing more than one
// language.
var multiValueSeparators = []string{",", ";", " and ", "/"}

var titleCaser = cases.Title(language.English)

// ProfileNormalizer normalizes raw volunteer profile records.
type ProfileNormalizer struct {
	logger *slog.Logger
}

// NewProfileNormalizer creates a profile normalizer.
func NewProfileNormalizer(logger *slog.Logger) *ProfileNormalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileNormalizer{logger: logger}
}

// NormalizeFile reads and normalizes the volunteer profile CSV at path.
func (n *ProfileNormalizer) NormalizeFile(ctx context.Context, path string) ([]domain.VolunteerProfile, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewMissingFileError(path, err)
		}
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open volunteer export %s", path), err)
	}
	defer file.Close()

	return n.Normalize(ctx, file, path)
}

// Normalize reads raw profile rows and returns normalized profiles, one per
// volunteer id (first occurrence wins).
func (n *ProfileNormalizer) Normalize(ctx context.Context, r io.Reader, name string) ([]domain.VolunteerProfile, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read header of %s", name), err)
	}

	positions := make(map[string]int, len(header))
	for i, h := range header {
		positions[strings.TrimSpace(stripBOM(h))] = i
	}

	if _, ok := positions[colUserID]; !ok {
		return nil, errors.NewMissingColumnError(name, colUserID)
	}

	present := func(col string) bool {
		_, ok := positions[col]
		return ok
	}

	var (
		profiles []domain.VolunteerProfile
		seen     = make(map[string]bool)
	)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("failed to read row of %s", name), err)
		}

		get := func(col string) string {
			idx, ok := positions[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		id := get(colUserID)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		profile := domain.VolunteerProfile{
			VolunteerID: id,
			Province:    get(colProvince),
			Country:     get(colCountry),
			YearsJoined: get(colYears),
		}
		if present(colCity) {
			profile.City = CanonicalCity(get(colCity))
		}
		if present(colPostalCode) {
			profile.PostalCode = get(colPostalCode)
			profile.AreaCode = ExtractAreaCode(profile.PostalCode)
		}
		if present(colStatus) {
			profile.Status = NormalizeStatus(get(colStatus))
		}
		if present(colAgeRange) {
			profile.AgeRange = get(colAgeRange)
		}
		if present(colLanguage) {
			profile.Language = ClassifyLanguage(get(colLanguage))
		}

		profiles = append(profiles, profile)
	}

	n.logger.InfoContext(ctx, "volunteer export normalized",
		slog.String("file", name),
		slog.Int("profiles", len(profiles)))

	return profiles, nil
}

// CanonicalCity normalizes a free-text city name. Secondary comma-separated
// segments and trailing province/country markers are stripped first; any
// remainder starting with "mis" is Mississauga (the prefix rule fires before
// the dictionary lookup); unmapped values fall back to title case.
func CanonicalCity(city string) string {
	s := strings.ToLower(strings.TrimSpace(city))
	if s == "" {
		return ""
	}

	if idx := strings.Index(s, ","); idx >= 0 {
		s = strings.TrimSpace(s[:idx])
	}

	for _, suffix := range citySuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
		}
	}

	if strings.HasPrefix(s, "mis") {
		return "Mississauga"
	}
	if canonical, ok := cityCanonical[s]; ok {
		return canonical
	}
	return titleCaser.String(s)
}

// NormalizeStatus classifies a raw status string by first-match substring,
// checked in priority order.
func NormalizeStatus(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	if s == "" {
		return domain.StatusUnknown
	}

	switch {
	case strings.Contains(s, "applicant"):
		return domain.StatusApplicant
	case strings.Contains(s, "process"):
		return domain.StatusInProcess
	case strings.Contains(s, "accepted"):
		return domain.StatusAccepted
	case strings.Contains(s, "inactive"):
		return domain.StatusInactive
	case strings.Contains(s, "archived"):
		return domain.StatusArchived
	}
	return domain.StatusOther
}

// ExtractAreaCode returns the forward sortation area: the first three
// non-space characters of the postal code, upper-cased. Undefined (empty)
// when fewer than three characters remain.
func ExtractAreaCode(postal string) string {
	s := strings.ToUpper(strings.ReplaceAll(postal, " ", ""))
	if len(s) < 3 {
		return ""
	}
	return s[:3]
}

// ClassifyLanguage buckets a languages-spoken cell. Multilingual requires an
// English mention plus a multi-value separator; an English mention alone is
// English only; anything else is Other/Unknown.
func ClassifyLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return domain.LanguageOther
	}

	t := strings.ToLower(text)
	hasEnglish := strings.Contains(t, "english")
	isMulti := false
	for _, sep := range multiValueSeparators {
		if strings.Contains(t, sep) {
			isMulti = true
			break
		}
	}

	if hasEnglish && isMulti {
		return domain.LanguageMultilingual
	}
	if hasEnglish {
		return domain.LanguageEnglishOnly
	}
	return domain.LanguageOther
}
