package database

import (
	"fmt"
	"strings"
)

// DatabaseConfig says where the recipe catalog lives. The catalog runs on a
// single SQLite file (recipes.db unless DB_PATH says otherwise), or on
// PostgreSQL when DB_DRIVER=postgres.
type DatabaseConfig struct {
	// Driver is "sqlite" (also the empty string) or "postgres"
	Driver string

	// Host, Port, User, Password, Name and SSLMode are read only by postgres
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// Path of the catalog file when Driver is sqlite
	Path string

	// MaxRetries bounds the connection attempts made at startup
	MaxRetries int
}

// IsSQLite reports whether the catalog is kept in a local SQLite file
func (c *DatabaseConfig) IsSQLite() bool {
	driver := strings.ToLower(c.Driver)
	return driver == "sqlite" || driver == ""
}

// String describes the catalog location without the password
func (c *DatabaseConfig) String() string {
	if c.IsSQLite() {
		return fmt.Sprintf("DatabaseConfig{Driver: sqlite, Path: %s, MaxRetries: %d}", c.Path, c.MaxRetries)
	}
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, MaxRetries: %d}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.MaxRetries)
}

// DSN is the connection string handed to the gorm driver: the file path for
// sqlite, a key/value string for postgres, empty for an unknown driver.
func (c *DatabaseConfig) DSN() string {
	switch {
	case c.IsSQLite():
		return c.Path
	case strings.EqualFold(c.Driver, "postgres") || strings.EqualFold(c.Driver, "postgresql"):
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	default:
		return ""
	}
}
