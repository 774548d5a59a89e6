package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"handreader/internal/config"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  muxConfig
	version string
}

type muxConfig struct {
	// maxBatchSize is the most hands a single batch request may evaluate
	maxBatchSize int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		config: muxConfig{
			maxBatchSize: config.Instance().MaxBatchSize,
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postEvaluate())
	r.Methods(http.MethodPost).Path("/evaluate/batch").Handler(this.postEvaluateBatch())
	r.Methods(http.MethodGet).Path("/evaluate/ws").Handler(this.getEvaluateWS())

	return this
}
