package repository

import "errors"

var (
	ErrFailedToList      = errors.New("failed to list records")
	ErrFailedToAggregate = errors.New("failed to aggregate records")
	ErrFailedToInsert    = errors.New("failed to insert records")
	ErrFailedToMigrate   = errors.New("failed to reset schema")
	ErrInvalidOptions    = errors.New("invalid query options")
)
