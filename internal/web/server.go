package web

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/birdwatch/birdwatch/internal/sightings"
)

// Catalog is the read-only part of sightings.Catalog the server needs
type Catalog interface {
	List(f sightings.Filter) (*sightings.Listing, error)
	WriteExport(w io.Writer) (int, error)
}

// Server is the read-only birdwatch web server
type Server struct {
	catalog Catalog
	router  *gin.Engine
}

// NewServer creates a new web server
func NewServer(catalog Catalog) *Server {
	router := gin.Default()

	s := &Server{
		catalog: catalog,
		router:  router,
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/sightings", s.handleAPIList)
		api.GET("/export.csv", s.handleAPIExport)
	}
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() *gin.Engine {
	return s.router
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
