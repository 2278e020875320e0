package services

import "errors"

// Общие ошибки, используемые в сервисах и маппинге HTTP.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidationFailed  = errors.New("validation failed")
	ErrPersistenceFailed = errors.New("persistence failure")
	ErrReferenceNotFound = errors.New("referenced record not found")
	ErrExportDisabled    = errors.New("snapshot export is not configured")
)
