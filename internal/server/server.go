package server

import (
	"time"

	"freshcart/internal/client"
	"freshcart/internal/store"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

type Server struct {
	Store         *store.MemStore
	Client        client.Client
	Logger        logger
	AuthSecretKey jwk.Key
	AdminAPIKey   string
	SessionTTL    time.Duration
	CodeTTL       time.Duration
}

type logger interface {
	Trace(v ...any)
	Debug(v ...any)
	Info(v ...any)
	Error(v ...any)
	Tracef(format string, v ...any)
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}
