package model

// Scope identifies the caller at the delivery layer.
type Scope struct {
	UserID   string
	Username string
}

// Environment values for runtime mode.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)
