package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type FilesConfig struct {
	Data       string
	ReportCSV  string
	ReportXLSX string
	ReportPDF  string
}

type Config struct {
	Environment string
	Files       FilesConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		Files: FilesConfig{
			Data:       v.GetString("DATA_FILE"),
			ReportCSV:  v.GetString("REPORT_FILE"),
			ReportXLSX: v.GetString("REPORT_XLSX_FILE"),
			ReportPDF:  v.GetString("REPORT_PDF_FILE"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Files.Data == "" {
		cfg.Files.Data = "bus_data.txt"
	}
	if cfg.Files.ReportCSV == "" {
		cfg.Files.ReportCSV = "fleet_report.csv"
	}
	if cfg.Files.ReportXLSX == "" {
		cfg.Files.ReportXLSX = "fleet_report.xlsx"
	}
	if cfg.Files.ReportPDF == "" {
		cfg.Files.ReportPDF = "fleet_report.pdf"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	paths := map[string]string{
		"DATA_FILE":        cfg.Files.Data,
		"REPORT_FILE":      cfg.Files.ReportCSV,
		"REPORT_XLSX_FILE": cfg.Files.ReportXLSX,
		"REPORT_PDF_FILE":  cfg.Files.ReportPDF,
	}
	for key, path := range paths {
		if path == "" {
			return fmt.Errorf("%s must not be blank", key)
		}
	}
	return nil
}
