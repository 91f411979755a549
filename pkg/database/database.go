package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"

	"github.com/audiomint/backend/ent"
)

// Client holds the database client
type Client struct {
	Ent     *ent.Client
	db      *sql.DB
	dialect string
}

// PoolConfig holds connection pool configuration
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// SSLConfig holds SSL/TLS configuration for database connections
type SSLConfig struct {
	Mode         string // disable, require, verify-ca, verify-full
	RootCertPath string
}

// Options configures NewClient
type Options struct {
	URL         string
	Pool        PoolConfig
	SSL         *SSLConfig
	AutoMigrate bool
}

// DefaultPoolConfig returns sensible defaults for connection pooling
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}
}

// BuildConnectionString builds a PostgreSQL connection string with SSL parameters
func BuildConnectionString(baseURL string, sslCfg *SSLConfig) (string, error) {
	if sslCfg == nil {
		return baseURL, nil
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse database URL: %w", err)
	}

	query := parsedURL.Query()
	if sslCfg.Mode != "" {
		query.Set("sslmode", sslCfg.Mode)
	}
	if sslCfg.RootCertPath != "" {
		query.Set("sslrootcert", sslCfg.RootCertPath)
	}
	parsedURL.RawQuery = query.Encode()

	return parsedURL.String(), nil
}

// NewClient opens a pooled Postgres connection and wraps it in an ent client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	connStr, err := BuildConnectionString(opts.URL, opts.SSL)
	if err != nil {
		return nil, fmt.Errorf("failed building connection string: %w", err)
	}

	if opts.SSL != nil && opts.SSL.Mode != "" && opts.SSL.Mode != "disable" {
		log.Printf("🔒 Database SSL enabled (mode: %s)", opts.SSL.Mode)
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed opening connection to postgres: %w", err)
	}

	pool := opts.Pool
	if pool.MaxOpenConns == 0 {
		pool = DefaultPoolConfig()
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	log.Printf("✅ Database connection pool configured (max_open: %d, max_idle: %d, max_lifetime: %s)",
		pool.MaxOpenConns, pool.MaxIdleConns, pool.ConnMaxLifetime)

	client := Wrap(db, dialect.Postgres)

	if opts.AutoMigrate {
		if err := client.Ent.Schema.Create(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed creating schema resources: %w", err)
		}
		log.Println("✅ Database migrations applied")
	}

	return client, nil
}

// Wrap builds a Client around an already opened *sql.DB.
func Wrap(db *sql.DB, dialectName string) *Client {
	drv := entsql.OpenDB(dialectName, db)
	return &Client{
		Ent:     ent.NewClient(ent.Driver(drv)),
		db:      db,
		dialect: dialectName,
	}
}

// SupportsRowLocks reports whether SELECT ... FOR UPDATE is available on this dialect.
// SQLite serialises writers itself and rejects the clause.
func (c *Client) SupportsRowLocks() bool {
	return c.dialect == dialect.Postgres || c.dialect == dialect.MySQL
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.Ent.Close()
}

// Ping checks if the database is reachable
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Stats returns database connection pool statistics
func (c *Client) Stats() sql.DBStats {
	return c.db.Stats()
}
