package config

import (
	"errors"
	"fmt"
	"go/token"
	"reflect"
	"strings"

	"itemgen/core/database"
	"itemgen/core/logger"
	"itemgen/core/storage"
	"itemgen/feature/catalog"
	"itemgen/feature/emit"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Generate holds the parameters of a generator run.
	Generate GenerateConfig `mapstructure:"generate"`
	// Emit holds the code style of the generated file.
	Emit emit.Style `mapstructure:"emit"`
	// Source holds configuration for fetching the catalog.
	Source catalog.Config `mapstructure:"source"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// GenerateConfig holds the invocation parameters of a run.
type GenerateConfig struct {
	// Source is the catalog locator (URL, s3://bucket/key, db:table or path).
	Source string `mapstructure:"source" default:"" validate:"required"`
	// Output is where the generated file is written ("-" for stdout).
	Output string `mapstructure:"output" default:"" validate:"required"`
	// MaxID is the largest accepted item id.
	MaxID int `mapstructure:"max_id" default:"1048576" validate:"min=0"`
}

// LoadConfig loads configuration from an optional itemgen.yaml in path,
// environment variables and a .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. CI)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName("itemgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. GENERATE_SOURCE -> generate.source)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration. Fields named in except (relative to
// Config, e.g. "Generate.Output") are skipped.
func (c *Config) Validate(except ...string) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" {
			return field.Name
		}
		return name
	})
	if err := v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return name != "_" && token.IsIdentifier(name)
	}); err != nil {
		return err
	}

	err := v.StructExcept(c, except...)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", key))
		case "goident":
			msgs = append(msgs, fmt.Sprintf("%s %q is not a valid Go identifier", key, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", key, fe.Tag(), fe.Param()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
