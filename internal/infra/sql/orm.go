package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// ORM is the chainable subset of gorm the repositories use. Every chained
// call returns a new ORM; Error reports the outcome of the chain.
type ORM interface {
	AutoMigrate(dst ...any) error
	Count(count *int64) ORM
	Create(value any) ORM
	Find(dest any, conds ...any) ORM
	First(dest any, conds ...any) ORM
	Limit(limit int) ORM
	Model(value any) ORM
	Offset(offset int) ORM
	Order(value any) ORM
	Save(value any) ORM
	Transaction(fc func(tx ORM) error, opts ...*sql.TxOptions) error
	Where(query any, args ...any) ORM
	WithContext(ctx context.Context) ORM
	WithTimeout(ctx context.Context, timeout time.Duration) ORM

	Error() error
}

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

// DB wraps a gorm session. system names the database in span attributes.
type DB struct {
	*gorm.DB
	autoMigrationEnabled bool
	timeout              time.Duration
	system               string
}

var _ ORM = (*DB)(nil)

func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

func (d DB) Error() error {
	switch err := d.DB.Error; {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	default:
		return fmt.Errorf("%s error: %w", d.system, err)
	}
}

// with returns a copy of d bound to tx.
func (d DB) with(tx *gorm.DB) ORM {
	d.DB = tx
	return &d
}

func (d DB) traced(operation string) DB {
	ctx := d.DB.Statement.Context
	if ctx == nil {
		return d
	}
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.String("component", "database"),
			attribute.String("db.system", d.system),
			attribute.String("db.operation", operation),
		)
	}
	return d
}

func (d DB) AutoMigrate(dst ...any) error {
	if !d.autoMigrationEnabled {
		return nil
	}
	return d.DB.AutoMigrate(dst...)
}

func (d DB) Count(value *int64) ORM {
	return d.traced("count").with(d.DB.Count(value))
}

func (d DB) Create(value any) ORM {
	return d.traced("insert").with(d.DB.Create(value))
}

func (d DB) Find(value any, conds ...any) ORM {
	return d.traced("select").with(d.DB.Find(value, conds...))
}

func (d DB) First(value any, conds ...any) ORM {
	return d.traced("select").with(d.DB.First(value, conds...))
}

func (d DB) Save(value any) ORM {
	return d.traced("update").with(d.DB.Save(value))
}

func (d DB) Limit(value int) ORM {
	return d.with(d.DB.Limit(value))
}

func (d DB) Model(value any) ORM {
	return d.with(d.DB.Model(value))
}

func (d DB) Offset(value int) ORM {
	return d.with(d.DB.Offset(value))
}

func (d DB) Order(value any) ORM {
	return d.with(d.DB.Order(value))
}

func (d DB) Where(value any, conds ...any) ORM {
	return d.with(d.DB.Where(value, conds...))
}

// WithContext applies the configured query timeout, if any.
func (d DB) WithContext(ctx context.Context) ORM {
	if d.timeout > 0 {
		return d.WithTimeout(ctx, d.timeout)
	}
	return d.with(d.DB.WithContext(ctx))
}

// WithTimeout bounds the statement by timeout. The deadline is released by
// the timer itself, statements do not hand back a cancel func.
func (d DB) WithTimeout(ctx context.Context, timeout time.Duration) ORM {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	time.AfterFunc(timeout, cancel)
	return d.with(d.DB.WithContext(timeoutCtx))
}

func (d DB) Transaction(f func(ORM) error, opts ...*sql.TxOptions) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		return f(d.with(tx))
	}, opts...)
}

func (d DB) Close() error {
	pool, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("getting connection pool: %w", err)
	}
	return pool.Close()
}
