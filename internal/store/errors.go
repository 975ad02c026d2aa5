package store

import "errors"

var (
	ErrNilDB           = errors.New("db is nil")
	ErrInvalidDSN      = errors.New("invalid sqlite dsn")
	ErrTxBeginFailed   = errors.New("failed to begin transaction")
	ErrTxCommitFailed  = errors.New("failed to commit transaction")
	ErrQueryBuild      = errors.New("failed to build query")
	ErrCacheReadFailed = errors.New("failed to read cached records")
)
