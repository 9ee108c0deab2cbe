package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Files  Files
	Report Report
	Stats  Stats
}

type Files struct {
	InputFileName  string `env:"INPUT_FILE_NAME" env-default:"input.txt"`
	OutputFileName string `env:"OUTPUT_FILE_NAME" env-default:"output.txt"`
}

type Report struct {
	NameWidth  int `env:"REPORT_NAME_WIDTH" env-default:"20"`
	GradeWidth int `env:"REPORT_GRADE_WIDTH" env-default:"5"`
}

type Stats struct {
	ColumnWidth int `env:"STATS_COLUMN_WIDTH" env-default:"8"`
	Precision   int `env:"STATS_PRECISION" env-default:"2"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	return cfg, nil
}
