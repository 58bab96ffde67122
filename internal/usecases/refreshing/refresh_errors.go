package refreshing

import "errors"

var (
	ErrRefreshInProgress = errors.New("refresh already in progress")
	ErrGenerateRunID     = errors.New("error generating refresh run id")
)
