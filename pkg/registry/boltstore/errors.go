package boltstore

import "errors"

var (
	ErrFailedToOpen      = errors.New("failed to open bolt database")
	ErrHealthcheckFailed = errors.New("bolt healthcheck failed")
)
