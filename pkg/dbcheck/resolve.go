package dbcheck

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind identifies a database engine.
type Kind string

const (
	KindPostgres Kind = "PostgreSQL"
	KindMySQL    Kind = "MySQL"
	KindSQLite   Kind = "SQLite"
)

// Resolved is a connection string that passed resolution.
type Resolved struct {
	URL      string // as configured
	Kind     Kind
	Host     string // host[:port]; empty for SQLite
	Name     string // database name or SQLite file
	Redacted string // URL with the password masked, safe to print
	parsed   *url.URL
}

var schemes = map[string]Kind{
	"postgres":   KindPostgres,
	"postgresql": KindPostgres,
	"mysql":      KindMySQL,
	"sqlite":     KindSQLite,
}

// Resolve validates a connection string. An empty raw falls back to DefaultURL.
func Resolve(raw string) (Resolved, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultURL
	}

	// sqlite://:memory: and sqlite://relative/path are not valid URLs.
	if name, ok := strings.CutPrefix(raw, "sqlite://"); ok {
		if name == "" {
			return Resolved{}, fmt.Errorf("sqlite URL %q has no database file", raw)
		}
		return Resolved{URL: raw, Kind: KindSQLite, Name: name, Redacted: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Resolved{}, fmt.Errorf("parse database URL: %w", err)
	}

	kind, ok := schemes[strings.ToLower(u.Scheme)]
	if !ok {
		if u.Scheme == "" {
			return Resolved{}, fmt.Errorf("database URL has no scheme")
		}
		return Resolved{}, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return Resolved{}, fmt.Errorf("database URL has no host")
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return Resolved{}, fmt.Errorf("database URL has no database name")
	}

	return Resolved{
		URL:      raw,
		Kind:     kind,
		Host:     u.Host,
		Name:     name,
		Redacted: u.Redacted(),
		parsed:   u,
	}, nil
}

// mysqlDSN converts a mysql:// URL into the go-sql-driver DSN format:
// user:password@tcp(host:port)/dbname?params
func mysqlDSN(r Resolved, timeoutSeconds int) string {
	u := r.parsed
	host := u.Host
	if u.Port() == "" {
		host += ":3306"
	}

	var userInfo string
	if u.User != nil {
		userInfo = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			userInfo += ":" + pw
		}
		userInfo += "@"
	}

	params := u.Query()
	params.Set("parseTime", "True")
	params.Set("timeout", fmt.Sprintf("%ds", timeoutSeconds))

	return fmt.Sprintf("%stcp(%s)/%s?%s", userInfo, host, r.Name, params.Encode())
}
