package core

import "errors"

// Sentinel errors returned by the service layer. The web layer maps
// these to HTTP statuses; everything else is treated as internal.
var (
	ErrNoRecords        = errors.New("no importable rows found in file")
	ErrSessionNotFound  = errors.New("import session not found")
	ErrRecordNotFound   = errors.New("record not found")
	ErrSessionConfirmed = errors.New("import session already confirmed")
	ErrBatchBlocked     = errors.New("batch has unresolved errors or duplicate invoice ids")
	ErrInvalidTier      = errors.New("unknown service tier")
)
