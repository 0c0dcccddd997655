package transport

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	// ErrBackend is returned for envelope codes without a dedicated sentinel
	// (e.g. the backend's 601 warning code).
	ErrBackend = errors.New("backend error")

	ErrUnsupportedParams = errors.New("unsupported query params type")
	ErrNoToken           = errors.New("no backend token configured")
)
