package services

import "errors"

// Sentinel errors separating "the store could not be reached" from "the row
// does not exist". Callers decide how each degrades: list operations fall
// back to an empty result, lookups to a null body, and availability checks
// fail closed.
var (
	ErrStoreUnavailable = errors.New("store_unavailable")
	ErrNotFound         = errors.New("not_found")
)
