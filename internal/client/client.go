package client

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// Client sends outbound Telegram Bot API messages: login codes relayed
// through the operator chat and new-order alerts. It never gates an API
// request; callers fire it from a goroutine and log failures.
type Client struct {
	*http.Client
	BotToken    string
	AdminChatID int64
	Logger      logger
}

type logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// ErrNotConfigured is returned when no bot token or admin chat is set;
// callers fall back to logging the message instead.
var ErrNotConfigured = errors.New("telegram client not configured")

func newRequest(method string, url string, body io.Reader) (*http.Request, error) {
	r, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	r.Header.Set("Accept", "application/json")
	return r, nil
}
