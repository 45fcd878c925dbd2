package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data could not be coerced into the expected shape.
var ErrValidation = errors.New("validation error")

// ErrStore indicates that a call to the remote document store failed.
// No distinction is made between transient and permanent failures.
var ErrStore = errors.New("store error")

// ErrStoreNotInitialized is returned by every store call when the process
// started without usable database credentials.
var ErrStoreNotInitialized = errors.New("database not initialized")
