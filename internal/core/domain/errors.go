package domain

import "errors"

// Storage failures are never fatal: list paths degrade to an empty
// collection at the call site, mutations surface the error to the caller.
var ErrStorageRead = errors.New("storage read failed")
var ErrStorageWrite = errors.New("storage write failed")
