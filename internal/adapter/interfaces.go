// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote sync server.
//
// The primary abstraction is [CollectionClient], which decouples the
// service layer from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPCollectionClient]) speaking a
// Sync-1.5-style storage API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrPreconditionFailed] for 412,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-coll-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/collection_client_mock.go -package=mock

// CollectionClient defines transport-agnostic access to the remote record
// collections. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type CollectionClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or
	// an empty string if no token has been set yet.
	Token() string

	// FetchBatch retrieves one page of records for req.Collection:
	// records with Modified > req.Newer, newest first, at most req.Limit
	// entries, continuing from req.Offset when present. When
	// req.UnmodifiedSince is non-zero the request carries a precondition;
	// a server-detected concurrent modification is returned as
	// [ErrPreconditionFailed] (wrapped). Any other non-2xx response or
	// decode problem is returned as an error with no batch.
	FetchBatch(ctx context.Context, req models.FetchRequest) (models.BatchResponse, error)

	// GetCollectionInfo fetches the collection-level modification
	// timestamps for every collection visible to the authenticated user.
	// A collection absent from the map has no reported server state.
	GetCollectionInfo(ctx context.Context) (map[string]models.Timestamp, error)
}
