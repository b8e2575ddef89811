package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"scribe/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// PageConfig describes page geometry used by the pagination engine. All
	// linear values are in points at 100% zoom.
	PageConfig struct {
		Width           float64 `yaml:"width" validate:"gt=0"`
		Height          float64 `yaml:"height" validate:"gt=0"`
		Margin          float64 `yaml:"margin" validate:"gte=0"`
		Gap             float64 `yaml:"gap" validate:"gte=0"`
		HeaderClearance float64 `yaml:"header_clearance" validate:"gte=0"`
		FooterClearance float64 `yaml:"footer_clearance" validate:"gte=0"`
		Zoom            float64 `yaml:"zoom" validate:"gt=0"`
	}

	// LeaderConfig controls dot leader reconstruction in repaired TOC and
	// index lines.
	LeaderConfig struct {
		DotUnitWidth float64 `yaml:"dot_unit_width" validate:"gt=0"`
		Clearance    float64 `yaml:"clearance" validate:"gte=0"`
	}

	// DebounceConfig holds repagination delays in milliseconds. Structural
	// delay is used when the edit touches a table or column block.
	DebounceConfig struct {
		PlainMS      int `yaml:"plain_ms" validate:"min=0"`
		StructuralMS int `yaml:"structural_ms" validate:"min=0"`
	}

	OutlineConfig struct {
		Report        bool `yaml:"report"`
		MaxTitleRunes int  `yaml:"max_title_runes" validate:"min=10"`
	}

	DocumentConfig struct {
		Template              common.TemplateKind `yaml:"template"`
		Layout                common.OutputLayout `yaml:"layout"`
		StylesheetPath        string              `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		OutputNameTemplate    string              `yaml:"output_name_template"`
		FileNameTransliterate bool                `yaml:"file_name_transliterate"`
		Outline               OutlineConfig       `yaml:"outline"`
	}

	SessionConfig struct {
		Path string `yaml:"path" sanitize:"path_clean,assure_dir_exists_for_file" validate:"omitempty,filepath"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Page      PageConfig     `yaml:"page"`
		Leader    LeaderConfig   `yaml:"leader"`
		Debounce  DebounceConfig `yaml:"debounce"`
		Session   SessionConfig  `yaml:"session"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
