package web

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/birdwatch/birdwatch/internal/sightings"
)

const maxFilterSize = 1 << 10 // 1KB

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAPIList(c *gin.Context) {
	filter := sightings.Filter{
		Species:  c.Query("species"),
		Location: c.Query("location"),
	}

	if len(filter.Species) > maxFilterSize || len(filter.Location) > maxFilterSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "filter exceeds maximum size of 1KB",
		})
		return
	}

	listing, err := s.catalog.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	records := listing.Sightings
	if records == nil {
		records = []sightings.Sighting{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"outcome":   listing.Outcome.String(),
		"message":   listing.Message(),
		"sightings": records,
		"count":     len(records),
	})
}

func (s *Server) handleAPIExport(c *gin.Context) {
	var buf bytes.Buffer
	n, err := s.catalog.WriteExport(&buf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "No sightings to export.",
		})
		return
	}

	filename := sightings.DefaultExportFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
