// Package dbcheck resolves the database connection string and probes connectivity.
package dbcheck

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mumega/launchpad/pkg/check"
)

// DefaultPingTimeout applies when Config.PingTimeout is zero.
const DefaultPingTimeout = 5 * time.Second

// Opener builds the GORM dialector for a resolved URL.
type Opener func(r Resolved, timeout time.Duration) (gorm.Dialector, error)

// DialectorFor is the production Opener.
func DialectorFor(r Resolved, timeout time.Duration) (gorm.Dialector, error) {
	switch r.Kind {
	case KindPostgres:
		return postgres.Open(r.URL), nil
	case KindMySQL:
		secs := int(math.Ceil(timeout.Seconds()))
		return mysql.New(mysql.Config{DSN: mysqlDSN(r, secs), SkipInitializeWithVersion: true}), nil
	default:
		return nil, fmt.Errorf("no driver for %s", r.Kind)
	}
}

// Probe resolves the configured URL and optionally pings the database.
type Probe struct {
	Config Config
	Open   Opener // injected for testing
}

// Run resolves and probes. A URL that does not resolve is fatal; an
// unreachable database is only a warning, the application retries on its own.
func (p *Probe) Run(ctx context.Context) (Resolved, check.Result) {
	result := check.Result{
		Name:  "Database",
		Fatal: true,
	}

	resolved, err := Resolve(p.Config.URL)
	if err != nil {
		return resolved, result.Fail(fmt.Sprintf("Database configuration could not be resolved: %v", err), err)
	}
	result.AddDetailf("url: %s", resolved.Redacted)
	result.AddDetailf("type: %s", resolved.Kind)

	if !p.Config.Ping || resolved.Kind == KindSQLite {
		return resolved, result.Pass()
	}

	timeout := p.Config.PingTimeout
	if timeout == 0 {
		timeout = DefaultPingTimeout
	}
	if err := p.ping(ctx, resolved, timeout); err != nil {
		return resolved, result.Warn(fmt.Sprintf("database unreachable: %v", err), err)
	}
	result.AddDetail("connectivity: ok")
	return resolved, result.Pass()
}

func (p *Probe) ping(ctx context.Context, r Resolved, timeout time.Duration) error {
	open := p.Open
	if open == nil {
		open = DialectorFor
	}
	dialector, err := open(r, timeout)
	if err != nil {
		return err
	}

	// Suppress GORM logging; the outcome is reported through the step result
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
