package model

import (
	"fmt"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps the database handle and the application configuration.
type Store struct {
	db     *gorm.DB
	Config *Config
}

type Config struct {
	Mode       string
	Port       int
	MailAPIKey string
	MailSecret string
	MailSender string
	Issuer     Issuer
	Servers    map[string]server
}

// Issuer holds the letterhead details printed on invoices and receipts.
type Issuer struct {
	CompanyName string
	Address     string
	MobileNo    string
	Email       string
}

type server struct {
	Database   string
	DBName     string
	DBUser     string
	DBPassword string
	DBHost     string
	DBLogger   string
}

func gormLoggerFor(cfg *Config, svr server) *gorm.Config {
	gormConfig := &gorm.Config{}
	switch svr.DBLogger {
	case "info":
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case "silent":
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	default:
		if cfg.Mode == "development" {
			gormConfig.Logger = logger.Default.LogMode(logger.Info)
		} else {
			gormConfig.Logger = logger.Default.LogMode(logger.Silent)
		}
	}
	return gormConfig
}

func (s *Store) autoMigrate() error {
	var err error
	if err = s.db.AutoMigrate(&Client{}); err != nil {
		return err
	}
	if err = s.db.AutoMigrate(&CatalogItem{}); err != nil {
		return err
	}
	if err = s.db.AutoMigrate(&Term{}); err != nil {
		return err
	}
	if err = s.db.AutoMigrate(&Invoice{}); err != nil {
		return err
	}
	if err = s.db.AutoMigrate(&InvoiceItem{}); err != nil {
		return err
	}
	if err = s.db.AutoMigrate(&Payment{}); err != nil {
		return err
	}
	s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_payments_invoice_no ON payments(invoice_no)`)
	return nil
}

// InitDatabase opens the configured database and migrates the schema.
func InitDatabase(cfg *Config) (*Store, error) {
	var err error

	s := &Store{Config: cfg}
	svr := cfg.Servers[cfg.Mode]

	switch svr.Database {
	case "sqlite", "sqlite3":
		filename := filepath.Join("db", svr.DBName)
		s.db, err = gorm.Open(sqlite.Open(filename), gormLoggerFor(cfg, svr))
		if err != nil {
			return nil, err
		}
	case "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=5432 sslmode=disable TimeZone=UTC",
			svr.DBHost, svr.DBUser, svr.DBPassword, svr.DBName)
		s.db, err = gorm.Open(postgres.Open(dsn), gormLoggerFor(cfg, svr))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown database %q for mode %q", svr.Database, cfg.Mode)
	}
	if err = s.autoMigrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// OpenMemoryStore opens a throwaway in-memory SQLite store. Used by the
// fixtures package and anything else that needs a store without a config file.
func OpenMemoryStore(cfg *Config) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, Config: cfg}
	if err = s.autoMigrate(); err != nil {
		return nil, err
	}
	return s, nil
}
