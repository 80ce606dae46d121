package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// QueryInput DTO for the query trigger
type QueryInput struct {
	Query string `json:"query" binding:"required"`
}

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// handleIngest runs a full hierarchy walk and replaces the record store with
// its output. Any failure along the way aborts the whole run; the store is
// only touched after a fully successful walk.
func (s *Server) handleIngest(c *gin.Context) {
	records, err := s.fetcher.WalkAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	if err := s.sink.ReplaceAll(records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data ingested successfully"})
}

// handleQuery answers a free-text question over the stored records
func (s *Server) handleQuery(c *gin.Context) {
	var input QueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	response, err := s.responder.Answer(c.Request.Context(), input.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}
