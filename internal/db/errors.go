package db

import "errors"

// Sentinel errors for database operations.
var (
	ErrKeyNotFound       = errors.New("db: key not found")
	ErrUnknownCollection = errors.New("db: unknown collection")
	ErrInvalidRow        = errors.New("db: invalid row")
)

// Op constants name the failing operation for error context.
const (
	OpPing    = "PING"
	OpSelect  = "SELECT"
	OpInsert  = "INSERT"
	OpMigrate = "MIGRATE"
	OpHGetAll = "HGETALL"
	OpHSet    = "HSET"
	OpScan    = "SCAN"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
