package adapter

import "errors"

var (
	// ErrBadRequest indicates the server rejected the request as malformed.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized indicates a missing or rejected bearer token.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound indicates the requested collection does not exist.
	ErrNotFound = errors.New("collection not found")
	// ErrPreconditionFailed indicates the server detected that the
	// collection changed since the client's last observation, invalidating
	// an in-flight continuation token. Recoverable: the downloader falls
	// back to its timestamp cursor.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrInternalServerError indicates a server-side failure.
	ErrInternalServerError = errors.New("internal server error")
	// ErrBadGateway indicates an upstream proxy failure.
	ErrBadGateway = errors.New("bad gateway")
)
