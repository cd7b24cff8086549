package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the request carries no usable identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated user lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that the operation lost to a concurrent conflicting write.
var ErrConflict = errors.New("conflict")

// ErrAccountDisabled indicates a login attempt against a deactivated account.
var ErrAccountDisabled = errors.New("account disabled")

// ErrTokenExpired indicates that an invite token's validity window has passed.
var ErrTokenExpired = errors.New("token expired")

// ErrUnsupportedFileType indicates an upload whose extension maps to no accepted file type.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// ErrStorage indicates a failure writing, verifying or removing an on-disk artifact.
var ErrStorage = errors.New("storage error")
