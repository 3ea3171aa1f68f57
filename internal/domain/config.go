package domain

// Config mirrors ~/.animeprompt/config.yaml.
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	Generation          GenerationSettings `yaml:"generation"`
	History             HistorySettings    `yaml:"history"`
	Credential          CredentialSettings `yaml:"credential"`
}

// GenerationSettings controls the Gemini call.
type GenerationSettings struct {
	Model          string  `yaml:"model"`
	TimeoutSeconds int     `yaml:"timeout"`
	Temperature    float32 `yaml:"temperature"`
	TopP           float32 `yaml:"top_p"`
	// NegativePrompt, when set, replaces the built-in negative prompt.
	NegativePrompt string `yaml:"negative_prompt"`
}

// HistorySettings controls how much prior context is kept and replayed.
type HistorySettings struct {
	// Window is the number of recent exchanges sent to the model.
	Window int `yaml:"window"`
}

// CredentialSettings controls API key caching.
type CredentialSettings struct {
	// CachePath overrides the default temp-file location for the cached key.
	CachePath string `yaml:"cache_path"`
}
