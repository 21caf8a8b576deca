package storage

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned when a create would overwrite an existing record.
var ErrAlreadyExists = errors.New("record already exists")

// ErrVersionConflict is returned when a compare-and-commit lost a race on the per-code account version.
var ErrVersionConflict = errors.New("account version conflict")

// ErrNotPending is returned when a withdrawal transition is attempted on a non-pending request.
var ErrNotPending = errors.New("withdrawal request is not pending")

// ErrPartnerNotPending is returned when an applicant decision is attempted on a processed partner.
var ErrPartnerNotPending = errors.New("partner application is not pending")
