// Package web serves the bot's health and status endpoints.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/steward-bot/steward/common"
)

// Server reports the running bot's state over plain HTTP. There's no auth
// and no dashboard, it only exists for health checks and monitoring.
type Server struct {
	mux   *chi.Mux
	sugar *zap.SugaredLogger

	start  time.Time
	guilds func() int
	cogs   func() []string
	shards func() int
}

// New builds the status server. guilds, cogs, and shards report live bot
// state when a request comes in.
func New(sugar *zap.SugaredLogger, start time.Time, guilds func() int, cogs func() []string, shards func() int) *Server {
	s := &Server{
		sugar:  sugar,
		start:  start,
		guilds: guilds,
		cogs:   cogs,
		shards: shards,
	}

	r := chi.NewRouter()
	r.Get("/health", s.health)
	r.Get("/status", s.status)
	s.mux = r

	return s
}

// Serve listens on addr until the process exits.
func (s *Server) Serve(addr string) {
	s.sugar.Infof("Status server listening on %v", addr)

	err := http.ListenAndServe(addr, s.mux)
	if err != nil {
		s.sugar.Errorf("Error serving status endpoints: %v", err)
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type statusResponse struct {
	Version string   `json:"version"`
	Uptime  string   `json:"uptime"`
	Guilds  int      `json:"guilds"`
	Cogs    []string `json:"cogs"`
	Shards  int      `json:"shards"`
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, statusResponse{
		Version: common.Version,
		Uptime:  time.Since(s.start).Round(time.Second).String(),
		Guilds:  s.guilds(),
		Cogs:    s.cogs(),
		Shards:  s.shards(),
	})
}
