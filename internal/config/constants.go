package config

import "time"

// Validation limits.
const (
	MaxSprintNameLength = 255
	MaxSprintGoalLength = 1000
)

// Backlog paging.
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// HTTP server settings.
const (
	DefaultListenAddr = ":8170"
	RequestTimeout    = 30 * time.Second
)

// Database/application settings.
const (
	AppName    = "sprintline"
	DBFileName = "sprintline.db"
)
