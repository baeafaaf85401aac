package core

// AdapterConfig holds configuration for connecting to a database.
// DSN, when set, takes precedence over the discrete fields.
type AdapterConfig struct {
	Type     string
	DSN      string
	Path     string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Options  map[string]string
}
