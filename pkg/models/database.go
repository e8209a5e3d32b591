package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Connect opens the SQLite database, migrates the schema and registers the
// error translating callbacks.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: newLogger(log.Logger),
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors. Concurrent queries
	// of one request queue at the pool.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = Migrate(db)
	if err != nil {
		return nil, err
	}

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		register func(string, func(*gorm.DB)) error
		name     string
		fn       func(*gorm.DB)
	}{
		{db.Callback().Query().After("*").Register, "after_query", notFoundCallback},
		{db.Callback().Query().After("*").Register, "after_query_general", generalCallback},

		// Row callbacks are used by Scan on joined queries
		{db.Callback().Row().After("*").Register, "after_row_general", generalCallback},

		{db.Callback().Create().After("*").Register, "after_create", constraintCallback},
		{db.Callback().Create().After("*").Register, "after_create_general", generalCallback},
		{db.Callback().Update().After("*").Register, "after_update", constraintCallback},
		{db.Callback().Update().After("*").Register, "after_update_general", generalCallback},
		{db.Callback().Delete().After("*").Register, "after_delete_general", generalCallback},
	}

	for _, cb := range callbacks {
		if err := cb.register("fincontrol:"+cb.name, cb.fn); err != nil {
			return fmt.Errorf("registering callback %s: %w", cb.name, err)
		}
	}

	return nil
}

var camelCase = regexp.MustCompile("([a-z0-9])([A-Z])")

// resourceName returns a human readable name for the model of the statement,
// e.g. "credit card bill" for CreditCardBill.
func resourceName(db *gorm.DB) string {
	if db.Statement.Schema != nil {
		return strings.ToLower(camelCase.ReplaceAllString(db.Statement.Schema.Name, "$1 $2"))
	}

	name := strings.ReplaceAll(db.Statement.Table, "_", " ")
	if strings.HasSuffix(name, "ies") {
		return strings.TrimSuffix(name, "ies") + "y"
	}
	return strings.TrimSuffix(name, "s")
}

// notFoundCallback replaces the generic "no record" error with one naming
// the resource.
func notFoundCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db))
	}
}

// uniqueConstraints maps unique indexes to the error shown to users.
var uniqueConstraints = map[string]error{
	"users.email": ErrEmailInUse,
}

// constraintCallback replaces constraint violations on create and update
// with user friendly errors.
func constraintCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return
	}

	for column, err := range uniqueConstraints {
		if strings.Contains(msg, column) {
			db.Error = err
			return
		}
	}
}

// generalCallback handles errors the user cannot act on.
//
// They are logged for admins and replaced with ErrGeneral.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in database/sql and not exported
	var sqliteErr *go_sqlite.Error
	if db.Error.Error() == "sql: database is closed" || errors.As(db.Error, &sqliteErr) {
		log.Error().Str("resource", resourceName(db)).Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// Migrate migrates all models to the schema defined in the code.
func Migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(
		User{},
		UserSettings{},
		Bank{},
		Category{},
		CategoryRule{},
		Receipt{},
		Expense{},
		CreditCardBill{},
		SavingsAccount{},
		Goal{},
	)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
