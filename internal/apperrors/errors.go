package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTransition indicates that a requested status change is not permitted
// from the entity's current status.
var ErrTransition = errors.New("status transition not permitted")

// ErrConfiguration indicates a programmer error, e.g. an entity type that is
// not present in the reference ID configuration table.
var ErrConfiguration = errors.New("configuration error")
