package utils

import "errors"

var (
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrBackendStatus      = errors.New("backend returned non-success status")
	ErrBackendDecode      = errors.New("backend response could not be decoded")
	ErrViewStore          = errors.New("view store error")
	ErrInvalidVisitor     = errors.New("invalid visitor token")
)
