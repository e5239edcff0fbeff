// Package config holds the project settings for the schema tooling: where
// the schema file lives, where the remote endpoint is, and how to reach the
// database named by the schema's datasource.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/schemacanvas/schemacanvas/pkg/sdl"
)

// DefaultFile is the project file read by Load when none is given.
const DefaultFile = "schemacanvas.yaml"

// Config holds all settings for the CLI and the schema server.
type Config struct {
	SchemaPath string `yaml:"schema"`
	Endpoint   string `yaml:"endpoint"`
	ListenAddr string `yaml:"listen"`
}

// Load reads the project file and fills defaults. A missing project file is
// not an error; the defaults stand. A .env file, when present, is loaded
// into the environment for later env() resolution.
func Load(path string) (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		SchemaPath: "prisma/schema.prisma",
		Endpoint:   "http://localhost:8080",
		ListenAddr: ":8080",
	}

	if path == "" {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

var (
	envRefRe = regexp.MustCompile(`^env\("([^"]+)"\)$`)
	// urlRe runs over the raw schema bytes: a quoted literal DSN contains
	// `//`, which the parser's comment stripping would cut off.
	urlRe = regexp.MustCompile(`url\s*=\s*(?:env\("([^"]+)"\)|"([^"]+)")`)
)

// ResolveDatasourceURL turns the datasource url of a parsed document into a
// usable DSN: env("NAME") references resolve against the environment,
// quoted literals lose their quotes.
func ResolveDatasourceURL(doc *sdl.Document) (string, error) {
	raw := strings.TrimSpace(doc.Datasource.URL)
	if raw == "" {
		return "", fmt.Errorf("schema has no datasource url")
	}
	if m := envRefRe.FindStringSubmatch(raw); m != nil {
		dsn := os.Getenv(m[1])
		if dsn == "" {
			return "", fmt.Errorf("environment variable %s not set", m[1])
		}
		return dsn, nil
	}
	return strings.Trim(raw, `"'`), nil
}

// DSNFromSchema reads schemaPath and resolves its datasource url. The url
// is matched against the raw file contents before any comment stripping.
func DSNFromSchema(schemaPath string) (string, error) {
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return "", fmt.Errorf("read schema: %w", err)
	}
	if m := urlRe.FindStringSubmatch(string(data)); m != nil {
		if m[1] != "" {
			dsn := os.Getenv(m[1])
			if dsn == "" {
				return "", fmt.Errorf("environment variable %s not set", m[1])
			}
			return dsn, nil
		}
		return m[2], nil
	}

	doc, err := sdl.Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("parse schema: %w", err)
	}
	return ResolveDatasourceURL(doc)
}
