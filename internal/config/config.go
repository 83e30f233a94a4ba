package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration. Every analysis
// threshold is a named field so boundary values can be tested without
// editing constants.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	Analysis  AnalysisConfig  `yaml:"analysis" envconfig:"ANALYSIS"`
	Demand    DemandConfig    `yaml:"demand" envconfig:"DEMAND"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/compass.log"`
}

// TelemetryConfig controls the optional stage tracing
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled" envconfig:"ENABLED" default:"false"`
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME" default:"compasscli"`
}

// PathsConfig contains file system paths for inputs and outputs
type PathsConfig struct {
	DataDir          string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	OutputDir        string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"outputs"`
	HoursFile        string `yaml:"hours_file" envconfig:"HOURS_FILE" default:"Cleaned_Logged_Hours_Data.csv"`
	VolunteerFile    string `yaml:"volunteer_file" envconfig:"VOLUNTEER_FILE" default:"Compass Export - All volunteers since system implementation - UserData.csv"`
	DemandFile       string `yaml:"demand_file" envconfig:"DEMAND_FILE" default:"Daily Shopping trips and quantity since Jan 2017.csv"`
	BoundaryFile     string `yaml:"boundary_file" envconfig:"BOUNDARY_FILE" default:"lfsa000b21a_e.shp"`
	EngagementOutput string `yaml:"engagement_output" envconfig:"ENGAGEMENT_OUTPUT" default:"Volunteer_Engagement_Analysis.xlsx"`
	DemandOutput     string `yaml:"demand_output" envconfig:"DEMAND_OUTPUT" default:"Insight.xlsx"`
}

// AnalysisConfig contains the volunteer engagement pipeline thresholds
type AnalysisConfig struct {
	// MaxShiftHours is the plausibility cap: rows with more logged hours
	// are treated as data-entry errors and dropped.
	MaxShiftHours float64 `yaml:"max_shift_hours" envconfig:"MAX_SHIFT_HOURS" default:"16" validate:"gt=0"`
	// ExcludedYear drops pre-system-adoption noise.
	ExcludedYear int `yaml:"excluded_year" envconfig:"EXCLUDED_YEAR" default:"2016"`
	// ExcludedSubcategory names an out-of-scope activity type.
	ExcludedSubcategory string `yaml:"excluded_subcategory" envconfig:"EXCLUDED_SUBCATEGORY" default:"Holiday & Seasonal Meal Programs"`
	// TrainingCategory is excluded from retention and growth metrics.
	TrainingCategory string `yaml:"training_category" envconfig:"TRAINING_CATEGORY" default:"Training"`
	// InactivityDays is the year-end lookback: a volunteer whose last
	// shift predates Dec 31 by strictly more than this is inactive.
	InactivityDays int `yaml:"inactivity_days" envconfig:"INACTIVITY_DAYS" default:"180" validate:"gt=0"`
	// TopShare is the concentration cutoff (0.20 means top quintile).
	TopShare float64 `yaml:"top_share" envconfig:"TOP_SHARE" default:"0.20" validate:"gt=0,lte=1"`
}

// DemandConfig contains the demand pipeline thresholds
type DemandConfig struct {
	// ZScoreCutoff bounds the unusual-day counts in the daily summary.
	ZScoreCutoff float64 `yaml:"z_score_cutoff" envconfig:"Z_SCORE_CUTOFF" default:"3" validate:"gt=0"`
	// Volatility band upper edges for the coefficient of variation.
	VeryLowVolatilityMax  float64 `yaml:"very_low_volatility_max" envconfig:"VERY_LOW_VOLATILITY_MAX" default:"0.10"`
	LowVolatilityMax      float64 `yaml:"low_volatility_max" envconfig:"LOW_VOLATILITY_MAX" default:"0.20"`
	ModerateVolatilityMax float64 `yaml:"moderate_volatility_max" envconfig:"MODERATE_VOLATILITY_MAX" default:"0.40"`
	HighVolatilityMax     float64 `yaml:"high_volatility_max" envconfig:"HIGH_VOLATILITY_MAX" default:"0.60"`
	// HolidayYearsFrom/To bound the statutory holiday calendar.
	HolidayYearsFrom int `yaml:"holiday_years_from" envconfig:"HOLIDAY_YEARS_FROM" default:"2017"`
	HolidayYearsTo   int `yaml:"holiday_years_to" envconfig:"HOLIDAY_YEARS_TO" default:"2030"`
}

// HoursPath returns the full path of the shift log input file.
func (p PathsConfig) HoursPath() string { return filepath.Join(p.DataDir, p.HoursFile) }

// VolunteerPath returns the full path of the volunteer profile input file.
func (p PathsConfig) VolunteerPath() string { return filepath.Join(p.DataDir, p.VolunteerFile) }

// DemandPath returns the full path of the demand series input file.
func (p PathsConfig) DemandPath() string { return filepath.Join(p.DataDir, p.DemandFile) }

// BoundaryPath returns the full path of the optional boundary shapefile.
func (p PathsConfig) BoundaryPath() string { return filepath.Join(p.DataDir, p.BoundaryFile) }

// EngagementOutputPath returns the engagement workbook output path.
func (p PathsConfig) EngagementOutputPath() string {
	return filepath.Join(p.OutputDir, p.EngagementOutput)
}

// DemandOutputPath returns the demand workbook output path.
func (p PathsConfig) DemandOutputPath() string { return filepath.Join(p.OutputDir, p.DemandOutput) }

// Load loads configuration from defaults, an optional YAML file, and
// environment variables (in that precedence order, env winning).
func Load(configFile string) (*Config, error) {
	var cfg Config

	// Defaults come from the struct tags
	if err := envconfig.Process("COMPASS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if err := loadFromFile(&cfg, configFile); err != nil {
			return nil, err
		}
		// Re-apply env so explicit environment overrides the file
		if err := envconfig.Process("COMPASS", &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if c.Demand.VeryLowVolatilityMax >= c.Demand.LowVolatilityMax ||
		c.Demand.LowVolatilityMax >= c.Demand.ModerateVolatilityMax ||
		c.Demand.ModerateVolatilityMax >= c.Demand.HighVolatilityMax {
		return fmt.Errorf("config validation failed: volatility band edges must be strictly increasing")
	}
	if c.Demand.HolidayYearsFrom > c.Demand.HolidayYearsTo {
		return fmt.Errorf("config validation failed: holiday_years_from must not exceed holiday_years_to")
	}
	return nil
}
