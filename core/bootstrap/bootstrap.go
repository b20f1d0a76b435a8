package bootstrap

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	coreconfig "github.com/m3rciful/shiftbot/core/config"
	coredatabase "github.com/m3rciful/shiftbot/core/database"
	"github.com/m3rciful/shiftbot/core/logger"
	"github.com/m3rciful/shiftbot/store"
)

// Options control the bootstrap pipeline.
type Options struct {
	Config   *coreconfig.Config
	Database coredatabase.Config

	LoggerInit func(*coreconfig.Config) error
	Connect    func(coredatabase.Config) (*sqlx.DB, error)
	Migrate    func(coredatabase.Config) error
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	// Store is the document store selected by storage.driver.
	Store store.Store
	// DB is non-nil only for the postgres driver.
	DB *sqlx.DB
}

// Run initializes the logger and opens the document store. For the postgres
// driver it also connects to the database and applies migrations.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	switch opts.Config.Storage.Driver {
	case coreconfig.StoragePostgres:
		connect := opts.Connect
		if connect == nil {
			connect = coredatabase.Connect
		}
		db, err := connect(opts.Database)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: database initialization failed: %w", err)
		}

		migrate := opts.Migrate
		if migrate == nil {
			migrate = coredatabase.RunMigrations
		}
		if err := migrate(opts.Database); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
		}

		return &Result{Store: store.NewPostgresStore(db), DB: db}, nil

	default:
		return &Result{Store: store.NewFileStore(opts.Config.Storage.Path)}, nil
	}
}
