package store

import "errors"

// ErrNotFound indicates a lookup matched no document. For the get-by-id
// routes the API layer translates this into a 200 with an empty object
// rather than a 404; that translation is a documented contract, so handlers
// must branch on this error explicitly instead of passing it through.
var ErrNotFound = errors.New("document not found")
