// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config types define the configuration structures used throughout
// skylineg. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

import "time"

// Output formats understood by the command.
const (
	FormatSummary = "summary"
	FormatNDJSON  = "ndjson"
)

// Config represents the complete configuration for skylineg.
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
	HTTP   HTTPConfig   `yaml:"http"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// GitHubConfig contains the GraphQL endpoint and where the API token is
// read from. Point GraphQLEndpoint at a GitHub Enterprise host to use one.
type GitHubConfig struct {
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
	TokenEnv        string `yaml:"token_env"`
	UserAgent       string `yaml:"user_agent"`
}

// HTTPConfig controls the HTTP client used for both queries.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig selects how results are printed. With the summary format
// only the decoded user id and the record count are printed; ndjson also
// emits one JSON object per contribution day.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// LogConfig sets the logrus level for diagnostics on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with defaults for public GitHub.com.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			GraphQLEndpoint: "https://api.github.com/graphql",
			TokenEnv:        "GITHUB_API_TOKEN",
		},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
		Output: OutputConfig{
			Format: FormatSummary,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
