package api

import (
	"errors"
	"net/http"
)

// errRT always fails at the transport level.
type errRT struct{}

func (errRT) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial tcp: connection refused")
}
