package domain

// Config is the process-wide configuration, constructed once at startup and
// threaded through the container rather than read from globals.
type Config struct {
	ConfigFormatVersion string `yaml:"config_format_version"`

	// DefaultRegion is used when a profile's own region cannot be resolved.
	DefaultRegion string `yaml:"default_region"`

	// CacheDir and HistoryFile override the default ~/.wf locations.
	CacheDir    string `yaml:"cache_dir,omitempty"`
	HistoryFile string `yaml:"history_file,omitempty"`

	// Services maps resource kind -> human description for prompts.
	Services map[string]string `yaml:"services"`
	// Profiles maps credential profile -> human description for prompts.
	Profiles map[string]string `yaml:"profiles"`

	// SSOStartURLs optionally pins a profile's SSO start URL, consulted
	// before the AWS shared config file.
	SSOStartURLs map[string]string `yaml:"sso_start_urls,omitempty"`

	Jira  JiraSettings  `yaml:"jira"`
	Slack SlackSettings `yaml:"slack"`
}

// JiraSettings configures the issue-tracker search workflow.
type JiraSettings struct {
	Username  string `yaml:"username"`
	BaseURL   string `yaml:"base_url"`
	Project   string `yaml:"project"`
	IssueType string `yaml:"issue_type"`
}

// SlackSettings configures the channel launcher workflow.
type SlackSettings struct {
	EnvFile string `yaml:"env_file"`
}

// KnownService reports whether kind is configured or reserved.
func (c Config) KnownService(kind string) bool {
	if kind == string(KindHistory) {
		return true
	}
	_, ok := c.Services[kind]
	return ok
}

// KnownProfile reports whether the profile is configured.
func (c Config) KnownProfile(profile string) bool {
	_, ok := c.Profiles[profile]
	return ok
}
