package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"saloon-blackjack-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	table   *room.Table
}

// NewMux returns a new HTTP mux in front of the table
func NewMux(version string, table *room.Table) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		table:   table,
	}

	this.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
