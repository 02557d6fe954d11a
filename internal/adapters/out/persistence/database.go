package persistence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"aquasphere/internal/adapters/out/persistence/historyrepo"
	"aquasphere/internal/adapters/out/persistence/orderrepo"
	"aquasphere/internal/adapters/out/persistence/watermarkrepo"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrUnknownDriver is returned by Open for anything but DriverPostgres or DriverSQLite.
var ErrUnknownDriver = errors.New("unknown database driver")

// Options selects and configures the database. The driver is chosen once at
// start-up; repositories do not know which one they run on.
type Options struct {
	Driver string
	// DSN is a PostgreSQL connection string, or a SQLite file path.
	DSN string
	// LogLevel is gorm's own SQL log level; logger.Silent when zero.
	LogLevel logger.LogLevel
}

// Open connects to the configured database.
//
// SQLite connections start every transaction with BEGIN IMMEDIATE so that the
// read of an order and the write of its new status cannot interleave with another
// writer, and wait up to five seconds for the lock instead of failing with SQLITE_BUSY.
//
// Example:
//
//	db, err := persistence.Open(persistence.Options{Driver: "sqlite", DSN: "aquasphere.db"})
//	if err != nil {
//	    log.Fatalf("open database: %v", err)
//	}
//	if err = persistence.Migrate(db); err != nil {
//	    log.Fatalf("migrate: %v", err)
//	}
func Open(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(opts.Driver) {
	case DriverPostgres:
		dialector = postgres.Open(opts.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(opts.DSN))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}

	level := opts.LogLevel
	if level == 0 {
		level = logger.Silent
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", opts.Driver, err)
	}

	return db, nil
}

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&historyrepo.HistoryDTO{},
		&watermarkrepo.WatermarkDTO{},
	)
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return "file:" + path + "?_txlock=immediate&_busy_timeout=5000&_foreign_keys=on"
}
