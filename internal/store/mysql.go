package store

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/lottery-manager/internal/dependency"
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
)

// Config describes the MySQL connection of the waiting pool store.
type Config struct {
	DSN string `mapstructure:"dsn"`
	// Automigrate applies the embedded schema migrations on startup.
	Automigrate        bool   `mapstructure:"automigrate"`
	MaxOpenConnections int    `mapstructure:"max_open_connections"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
	TLSCAPath          string `mapstructure:"tls_ca_path"`
}

const (
	connMaxLifetime = 2 * time.Minute
	connMaxIdleTime = 30 * time.Second
	pingTimeout     = 10 * time.Second
	migrateTimeout  = 5 * time.Minute
)

// MYSQLStore keeps waiting pool entries and notifications in MySQL.
type MYSQLStore struct {
	db    dependency.DB
	txDB  txDB
	ts    time.Time
	close context.CancelFunc
}

// tlsConfigName is referenced from the DSN as tls=lottery.
const tlsConfigName = "lottery"

func registerTLSConfig(caPath string) error {
	if caPath == "" {
		return nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return fmt.Errorf("can't read mysql ca %s: %w", caPath, err)
	}
	roots := x509.NewCertPool()
	if !roots.AppendCertsFromPEM(pem) {
		return fmt.Errorf("no certificates found in mysql ca %s", caPath)
	}
	return mysql.RegisterTLSConfig(tlsConfigName, &tls.Config{RootCAs: roots})
}

func open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	if err := registerTLSConfig(cfg.TLSCAPath); err != nil {
		return nil, err
	}
	d, err := sqlx.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("can't open mysql: %w", err)
	}
	if cfg.MaxOpenConnections > 0 {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	d.SetConnMaxLifetime(connMaxLifetime)
	d.SetConnMaxIdleTime(connMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := d.PingContext(pingCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf("mysql is unreachable: %w", err)
	}
	return d, nil
}

// New opens the waiting pool database and, when configured, brings its
// schema up to date. The connection is closed by Close or when ctx ends.
func New(ctx context.Context, cfg Config) (*MYSQLStore, error) {
	d, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Automigrate {
		migrateCtx, cancel := context.WithTimeout(ctx, migrateTimeout)
		defer cancel()
		if err := MigrateWithContext(migrateCtx, d.Unsafe().DB); err != nil {
			d.Close()
			return nil, err
		}
	}

	ctx, stop := context.WithCancel(ctx)
	go func() {
		<-ctx.Done()
		d.Close()
	}()

	return &MYSQLStore{db: d, close: stop}, nil
}

//go:embed sql
var fs embed.FS

// Migrate applies the waiting pool and notification schema.
func Migrate(db *sql.DB) error {
	return MigrateWithContext(context.Background(), db)
}

func MigrateWithContext(ctx context.Context, db *sql.DB) error {
	m := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "sql",
	}

	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := migrate.Exec(db, "mysql", m, migrate.Up)
		done <- result{n: n, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("schema migration didn't finish: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("can't migrate waiting pool schema: %w", res.err)
		}
		slog.Default().InfoContext(ctx, "waiting pool schema migrated",
			slog.Int("count", res.n),
		)
		return nil
	}
}

func (ms *MYSQLStore) Close() {
	ms.close()
}

// Ping backs the health endpoint.
func (ms *MYSQLStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result int
	err := ms.db.QueryRowxContext(ctx, "SELECT 1").Scan(&result)
	if err != nil {
		return fmt.Errorf("mysql ping: %w", err)
	}
	return nil
}
