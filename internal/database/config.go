package database

import (
	"fmt"
	"net/url"
)

// DatabaseConfig holds the MongoDB connection configuration
type DatabaseConfig struct {
	User     string
	Password string
	Host     string
	Name     string

	// URI overrides the credential fields when set (local development,
	// integration tests against a plain mongod)
	URI string
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{User: %s, Password: [REDACTED], Host: %s, Name: %s}",
		c.User, c.Host, c.Name)
}

// ConnectionURI builds the MongoDB connection string. Credentials are
// URL-escaped so passwords with reserved characters survive the trip.
func (c *DatabaseConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host)
}
