// Package api implements the HTTP resource handlers. Each handler is a thin
// mapping from one route to one document-store or gateway operation; the
// store's report or documents are returned verbatim. Get-by-id misses on the
// classSingle and singleSelect routes respond 200 with an empty object
// rather than 404 — the frontend depends on that convention.
package api
