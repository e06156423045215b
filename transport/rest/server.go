package rest

import (
	"fmt"
	"net/http"
	"time"
)

// StatusProvider reports the bot's progress in the current session.
type StatusProvider interface {
	Status() (turn int, direction string, outcome string)
}

func Start(port string, status StatusProvider) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", pingHandler)
	mux.HandleFunc("/status", statusHandler(status))

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
