package domain

import "errors"

var (
	// ErrDocumentNotFound signals a missing document payload.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDecompositionUnavailable signals that the language-understanding
	// service could not be reached or did not answer in time.
	ErrDecompositionUnavailable = errors.New("decomposition unavailable")
	// ErrIndexUnavailable signals that the full-text index backend is down.
	ErrIndexUnavailable = errors.New("index unavailable")
	// ErrInvalidRequest signals a malformed search request.
	ErrInvalidRequest = errors.New("invalid request")
)
