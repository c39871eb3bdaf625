package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "./data",
			Files: FilesConfig{
				Users:     "users.csv",
				Tags:      "tags.csv",
				Photos:    "photos.csv",
				PhotoTags: "photo_tags.csv",
				Likes:     "likes.csv",
				Follows:   "follows.csv",
				Comments:  "comments.csv",
			},
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8742,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Report: ReportConfig{
			// The dashboard pages show top-5 by default.
			Limit: 5,
		},
	}
}
