package web

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/kutbudev/clickup-bridge/internal/models"
)

// TaskFetcher walks the remote hierarchy and returns the flat record set
type TaskFetcher interface {
	WalkAll(ctx context.Context) ([]models.TaskRecord, error)
}

// RecordSink replaces the persisted record set
type RecordSink interface {
	ReplaceAll(records []models.TaskRecord) error
}

// Answerer resolves a free-text query into a response payload
type Answerer interface {
	Answer(ctx context.Context, queryText string) (json.RawMessage, error)
}

// Server is the HTTP face of the bridge: one trigger to ingest, one to query
type Server struct {
	fetcher   TaskFetcher
	sink      RecordSink
	responder Answerer
	router    *gin.Engine
}

// NewServer creates the server and registers its routes
func NewServer(fetcher TaskFetcher, sink RecordSink, responder Answerer) *Server {
	router := gin.Default()

	s := &Server{
		fetcher:   fetcher,
		sink:      sink,
		responder: responder,
		router:    router,
	}

	router.GET("/ping", s.handlePing)
	router.GET("/ingest", s.handleIngest)
	router.POST("/query", s.handleQuery)

	return s
}

// Run starts the HTTP server on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
