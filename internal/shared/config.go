package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
//
// Credentials are never read from TOML; call [Config.LoadCredentials] to
// populate them from the process environment.
type Config struct {
	Profile     ProfileConfig     `toml:"profile"`
	Server      ServerConfig      `toml:"server"`
	Widgets     WidgetsConfig     `toml:"widgets"`
	Experience  []ExperienceEntry `toml:"experience"`
	Projects    []ProjectEntry    `toml:"projects"`
	Credentials CredentialsConfig `toml:"-" json:"-"`
}

// ProfileConfig identifies the site owner.
type ProfileConfig struct {
	Name           string `toml:"name" json:"name"`
	Tagline        string `toml:"tagline" json:"tagline"`
	GitHubUsername string `toml:"github_username" json:"githubUsername"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// WidgetsConfig tunes the live-data widgets.
type WidgetsConfig struct {
	// AlbumArtIndex is the preferred position in Spotify's album image array.
	// The array is ordered largest-first, so index 2 is the smallest variant.
	AlbumArtIndex int `toml:"album_art_index"`
	// PollSeconds is the refresh interval used by client consumers (web shell, TUI).
	PollSeconds int `toml:"poll_seconds"`
}

// ExperienceEntry is one work-experience role rendered on the page.
type ExperienceEntry struct {
	Company     string `toml:"company" json:"company"`
	Title       string `toml:"title" json:"title"`
	Description string `toml:"description" json:"description"`
	URL         string `toml:"url" json:"url,omitempty"`
	Period      string `toml:"period" json:"period"`
}

// ProjectEntry is one curated project rendered alongside the pinned repositories.
type ProjectEntry struct {
	Name         string   `toml:"name" json:"name"`
	Description  string   `toml:"description" json:"description"`
	Technologies []string `toml:"technologies" json:"technologies"`
	Languages    []string `toml:"languages" json:"languages"`
	GitHub       string   `toml:"github" json:"github,omitempty"`
	Demo         string   `toml:"demo" json:"demo,omitempty"`
}

// CredentialsConfig contains service-specific secrets sourced from the environment.
type CredentialsConfig struct {
	GitHub   GitHubCredentials
	Spotify  SpotifyCredentials
	WakaTime WakaTimeCredentials
}

// GitHubCredentials contains the personal access token for the GraphQL API.
type GitHubCredentials struct {
	Token string
}

// SpotifyCredentials contains the OAuth2 client pair and long-lived refresh token.
type SpotifyCredentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// WakaTimeCredentials contains the WakaTime API key.
type WakaTimeCredentials struct {
	APIKey string
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, ErrInvalidConfig)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadCredentials populates the Credentials block from the process environment.
//
// Absent variables yield empty strings; each handler decides how a missing
// secret degrades (safe-default payload, never a fault).
func (c *Config) LoadCredentials() {
	c.Credentials = CredentialsConfig{
		GitHub: GitHubCredentials{
			Token: os.Getenv("GITHUB_TOKEN"),
		},
		Spotify: SpotifyCredentials{
			ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
			ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
			RefreshToken: os.Getenv("SPOTIFY_REFRESH_TOKEN"),
		},
		WakaTime: WakaTimeCredentials{
			APIKey: os.Getenv("WAKATIME_API_KEY"),
		},
	}
}

// Addr returns the host:port pair the HTTP server binds to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
