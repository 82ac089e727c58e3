package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"cleanup-kit/internal/flyer"
)

const (
	defaultConfigName = "config"
	envPrefix         = "CK"
)

type Config struct {
	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int

	// RunLogPath enables the NDJSON run journal when set.
	RunLogPath string

	ReportPath  string
	StepSummary bool

	Flyers FlyerConfig
}

type FlyerConfig struct {
	OutDir      string
	Page        flyer.Page
	FontRegular string
	FontBold    string
	Copy        flyer.Copy
	Specs       []flyer.Spec
}

// LoadDotEnv loads KEY=VALUE pairs from path without overriding variables
// that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads configuration. With an empty file the search paths are tried and
// a missing config file is fine; an explicit file must exist.
func Load(file string) (Config, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		LogLevel:      strings.TrimSpace(v.GetString("log.level")),
		LogFile:       strings.TrimSpace(v.GetString("log.file")),
		LogMaxSizeMB:  v.GetInt("log.max_size_mb"),
		LogMaxBackups: v.GetInt("log.max_backups"),
		RunLogPath:    strings.TrimSpace(v.GetString("runlog.path")),
		ReportPath:    strings.TrimSpace(v.GetString("report.path")),
		StepSummary:   v.GetBool("report.step_summary"),
		Flyers: FlyerConfig{
			OutDir: strings.TrimSpace(v.GetString("flyers.out_dir")),
			Page: flyer.Page{
				Name:     strings.TrimSpace(v.GetString("flyers.page.name")),
				WidthIn:  v.GetFloat64("flyers.page.width_in"),
				HeightIn: v.GetFloat64("flyers.page.height_in"),
				DPI:      v.GetInt("flyers.page.dpi"),
			},
			FontRegular: strings.TrimSpace(v.GetString("flyers.font.regular")),
			FontBold:    strings.TrimSpace(v.GetString("flyers.font.bold")),
			Copy: flyer.Copy{
				CTA:        v.GetString("flyers.cta"),
				Bullets:    v.GetStringSlice("flyers.bullets"),
				FooterLead: v.GetString("flyers.footer_lead"),
				SiteURL:    strings.TrimSpace(v.GetString("flyers.site_url")),
				Disclosure: v.GetString("flyers.disclosure"),
			},
		},
	}

	if v.IsSet("flyers.specs") {
		if err := v.UnmarshalKey("flyers.specs", &cfg.Flyers.Specs); err != nil {
			return Config{}, fmt.Errorf("decode flyers.specs: %w", err)
		}
	}
	if len(cfg.Flyers.Specs) == 0 {
		cfg.Flyers.Specs = flyer.DefaultSpecs()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("runlog.path", "")

	v.SetDefault("report.path", "open_ics_report.json")
	v.SetDefault("report.step_summary", false)

	v.SetDefault("flyers.out_dir", "assets/flyers")
	v.SetDefault("flyers.page.name", flyer.Letter.Name)
	v.SetDefault("flyers.page.width_in", flyer.Letter.WidthIn)
	v.SetDefault("flyers.page.height_in", flyer.Letter.HeightIn)
	v.SetDefault("flyers.page.dpi", flyer.Letter.DPI)
	v.SetDefault("flyers.font.regular", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf")
	v.SetDefault("flyers.font.bold", "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf")

	c := flyer.DefaultCopy()
	v.SetDefault("flyers.cta", c.CTA)
	v.SetDefault("flyers.bullets", c.Bullets)
	v.SetDefault("flyers.footer_lead", c.FooterLead)
	v.SetDefault("flyers.site_url", c.SiteURL)
	v.SetDefault("flyers.disclosure", c.Disclosure)
}

func (c Config) Validate() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log.level %q", c.LogLevel)
	}
	if c.LogFile != "" && c.LogMaxSizeMB <= 0 {
		return fmt.Errorf("invalid log.max_size_mb %d", c.LogMaxSizeMB)
	}
	if c.LogMaxBackups < 0 {
		return fmt.Errorf("invalid log.max_backups %d", c.LogMaxBackups)
	}
	if c.ReportPath == "" {
		return fmt.Errorf("report.path must not be empty")
	}
	return c.Flyers.Validate()
}

func (f FlyerConfig) Validate() error {
	if f.OutDir == "" {
		return fmt.Errorf("flyers.out_dir must not be empty")
	}
	if err := f.Page.Validate(); err != nil {
		return fmt.Errorf("flyers.page: %w", err)
	}
	if f.Copy.SiteURL == "" {
		return fmt.Errorf("flyers.site_url must not be empty")
	}
	seen := make(map[string]bool, len(f.Specs))
	for i, s := range f.Specs {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("flyers.specs[%d]: %w", i, err)
		}
		if seen[s.Slug] {
			return fmt.Errorf("flyers.specs[%d]: duplicate slug %q", i, s.Slug)
		}
		seen[s.Slug] = true
	}
	return nil
}
