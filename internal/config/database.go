// internal/config/database.go
package config

import (
	"fmt"
	"strings"
)

// DSN builds the keyword/value connection string for the Postgres driver.
func (d *DatabaseConfig) DSN() string {
	pairs := []string{
		fmt.Sprintf("host=%s", d.Host),
		fmt.Sprintf("port=%s", d.Port),
		fmt.Sprintf("user=%s", d.User),
		fmt.Sprintf("dbname=%s", d.Database),
		fmt.Sprintf("sslmode=%s", d.SSLMode),
		"TimeZone=UTC",
	}
	if d.Password != "" {
		pairs = append(pairs, fmt.Sprintf("password=%s", d.Password))
	}
	return strings.Join(pairs, " ")
}
