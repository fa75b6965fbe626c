package service

import "errors"

var (
	// ErrPassNotStarted is returned by FetchNextPage when no download pass
	// is in progress for the collection.
	ErrPassNotStarted = errors.New("download pass not started")

	// ErrConflictBudgetExhausted is returned by SyncCollection when the
	// server collection keeps changing faster than the pass can finish.
	ErrConflictBudgetExhausted = errors.New("conflict retry budget exhausted")
)
