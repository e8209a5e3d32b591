package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration after which a query is logged as a warning.
const slowQuery = 200 * time.Millisecond

// logger forwards gorm log output to zerolog.
type logger struct {
	zerolog zerolog.Logger
	level   gorm_logger.LogLevel
	slow    time.Duration
}

func newLogger(l zerolog.Logger) *logger {
	return &logger{
		zerolog: l.With().Str("component", "gorm").Logger(),
		level:   gorm_logger.Warn,
		slow:    slowQuery,
	}
}

// LogMode returns a copy of the logger with the level set.
func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	n := *l
	n.level = level
	return &n
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Info {
		l.zerolog.Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Warn {
		l.zerolog.Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Error {
		l.zerolog.Error().Msgf(s, args...)
	}
}

// Trace logs failed queries as errors and slow queries as warnings, all
// others at debug level.
//
// Missing records and queries cancelled by the client are not failures.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	var event *zerolog.Event
	switch {
	case err != nil && !expected(err):
		event = l.zerolog.Error().Err(err)
	case l.slow > 0 && elapsed > l.slow:
		event = l.zerolog.Warn().Dur("threshold", l.slow)
	default:
		event = l.zerolog.Debug()
	}

	event.Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("query")
}

// expected reports if a query error is part of normal operation.
func expected(err error) bool {
	return errors.Is(err, ErrResourceNotFound) ||
		errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, context.Canceled)
}
