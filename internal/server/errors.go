package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no transport server created")
	errUnknownTransport    = errors.New("unknown transport")
)
