package handler

import (
	"net/http"
	"sync"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
	"frontdesk/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	app     http.Handler
	initErr error
)

// Handler serves the API as a single serverless function. The service graph, including the
// in-memory store, is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Init(cfg)

		server, err := di.InitializeService()
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize service")

			initErr = failure.InternalError(err)

			return
		}

		app = server.Handler()
	})

	if initErr != nil {
		response.WithError(w, initErr)

		return
	}

	app.ServeHTTP(w, r)
}
