package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/patterns-go/patterns/pkg/log"
	"github.com/patterns-go/patterns/pkg/singleton"
)

// ErrNotConnected is returned by operations that need an open connection.
var ErrNotConnected = errors.New("database: not connected")

// DefaultDSN is a shared-cache in-memory SQLite database.
const DefaultDSN = "file::memory:?cache=shared"

// driverName is the database/sql driver used for connections.
const driverName = "sqlite3"

// Connection states reported in the journal.
const (
	StateDisconnected = "DISCONNECTED"
	StateConnected    = "CONNECTED"
)

// Options configures a Connection.
type Options struct {
	// DSN is the SQLite connection string. Empty means DefaultDSN.
	DSN string

	// Logger receives operational messages.
	Logger zerolog.Logger

	// Journal receives a state change event on connect and disconnect.
	Journal log.Logger
}

// Row is one result row keyed by column name.
type Row map[string]any

// Connection is a lazily opened SQLite connection.
// It is safe for concurrent use.
type Connection struct {
	dsn     string
	logger  zerolog.Logger
	journal log.Logger

	mu      sync.RWMutex
	db      *sql.DB
	session string
}

// New creates a disconnected Connection.
func New(opts Options) *Connection {
	if opts.DSN == "" {
		opts.DSN = DefaultDSN
	}
	if opts.Journal == nil {
		opts.Journal = log.NoopLogger{}
	}
	c := &Connection{
		dsn:     opts.DSN,
		logger:  opts.Logger.With().Str("component", "database").Logger(),
		journal: opts.Journal,
	}
	c.logger.Info().Str("dsn", c.dsn).Msg("connection created")
	return c
}

// NewHolder creates a holder that builds a Connection on first access.
func NewHolder() *singleton.Holder[Connection, Options] {
	return singleton.New(New, Options{})
}

var shared = NewHolder()

// Shared returns the process-wide Connection. opts only apply on the first call.
func Shared(opts ...Options) *Connection {
	return shared.Get(opts...)
}

// DSN returns the connection string.
func (c *Connection) DSN() string {
	return c.dsn
}

// Connect opens the database. Calling Connect while connected does nothing.
func (c *Connection) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		c.logger.Debug().Str("session", c.session).Msg("already connected")
		return nil
	}

	db, err := sql.Open(driverName, c.dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	// In-memory databases live as long as one connection holds them.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	c.db = db
	c.session = uuid.NewString()
	c.logger.Info().Str("session", c.session).Msg("connected")
	c.recordState(StateDisconnected, StateConnected, "connect")
	return nil
}

// Disconnect closes the database. Calling Disconnect while disconnected
// does nothing.
func (c *Connection) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		c.logger.Debug().Msg("not connected")
		return nil
	}

	err := c.db.Close()
	c.logger.Info().Str("session", c.session).Msg("disconnected")
	c.recordState(StateConnected, StateDisconnected, "disconnect")
	c.db = nil
	c.session = ""
	if err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// Connected reports whether the connection is open.
func (c *Connection) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db != nil
}

// Session returns the current session ID, or "" when disconnected.
func (c *Connection) Session() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Exec runs a statement that returns no rows and reports the number of
// affected rows.
func (c *Connection) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil {
		return 0, ErrNotConnected
	}

	c.logger.Debug().Str("query", query).Msg("exec")
	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec %q: %w", query, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// Query runs a statement and returns all result rows.
func (c *Connection) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil {
		return nil, ErrNotConnected
	}

	c.logger.Debug().Str("query", query).Msg("query")
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", query, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var result []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return result, nil
}

// recordState journals a state change. Caller must hold c.mu.
func (c *Connection) recordState(from, to, reason string) {
	event := log.NewEvent(log.PatternSingleton, log.CategoryState, "database")
	event.StateChange = &log.StateChangeEvent{
		Entity:   "database",
		OldState: from,
		NewState: to,
		Reason:   reason,
	}
	c.journal.Log(event)
}
