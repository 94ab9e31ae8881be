package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings holds the tunable parts of the workflow. Everything has a
// default; a settings file only needs the keys it wants to override.
// The required-artifact list is fixed and deliberately not configurable.
type Settings struct {
	RemoteName           string `yaml:"remote_name"`
	PrimaryBranch        string `yaml:"primary_branch"`
	FeatureBranch        string `yaml:"feature_branch"`
	InitialCommitMessage string `yaml:"initial_commit_message"`
	DocsCommitMessage    string `yaml:"docs_commit_message"`
	PullRequestTitle     string `yaml:"pull_request_title"`
	Token                string `yaml:"token"` // Inline, ${ENV_VAR}, or file path
}

// DefaultSettings returns the workflow defaults.
func DefaultSettings() *Settings {
	return &Settings{
		RemoteName:           "origin",
		PrimaryBranch:        "main",
		FeatureBranch:        "feature/prototype-pipeline",
		InitialCommitMessage: "Initial commit: prototype analysis pipeline",
		DocsCommitMessage:    "Document the prototype pipeline in the README",
		PullRequestTitle:     "Add prototype analysis pipeline",
	}
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// LoadSettings reads a settings file and overlays it on the defaults,
// expanding environment variables and resolving token file paths.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	settings.Token = resolveToken(settings.Token)

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindSettingsFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindSettingsFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{"."}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".repoship.yaml",
		".repoship.yml",
		"repoship.yaml",
		"repoship.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("settings file not found in default locations")
}

// ResolveToken returns the bearer token for the REST backend: the
// configured token when set, otherwise GITHUB_TOKEN then GH_TOKEN.
func (s *Settings) ResolveToken() string {
	if s.Token != "" {
		return s.Token
	}
	if t := os.Getenv("GITHUB_TOKEN"); t != "" {
		return t
	}
	return os.Getenv("GH_TOKEN")
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for settings values the workflow cannot run with.
func validate(s *Settings) error {
	if s.RemoteName == "" {
		return errors.New("remote_name must not be empty")
	}
	if s.PrimaryBranch == "" || s.FeatureBranch == "" {
		return errors.New("primary_branch and feature_branch must not be empty")
	}
	if s.PrimaryBranch == s.FeatureBranch {
		return fmt.Errorf(
			"primary_branch and feature_branch must differ, both are %q",
			s.PrimaryBranch,
		)
	}
	return nil
}
