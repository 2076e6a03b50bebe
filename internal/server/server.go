// Package server exposes the document parser over HTTP for callers that
// cannot run the CLI, such as the bookkeeping web frontend.
package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saleemayman/carpet-invoices/internal/model"
	"github.com/saleemayman/carpet-invoices/internal/parser"
	"github.com/saleemayman/carpet-invoices/internal/pdftext"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	parser    *parser.Parser
	extractor *pdftext.Extractor
}

// NewServer creates a new API server around the given parser.
func NewServer(config *Config, p *parser.Parser) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:    config,
		router:    router,
		parser:    p,
		extractor: pdftext.New(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/parse/text", s.handleParseText)
		v1.POST("/parse/pdf", s.handleParsePDF)
		v1.POST("/identifiers", s.handleIdentifiers)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleParseText parses a plain-text document body. The text goes in the
// request body, one document line per text line; filename and folder come
// from query parameters since the text itself carries neither.
func (s *Server) handleParseText(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return
	}

	lines := strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")
	s.parseAndRespond(c, lines)
}

// handleParsePDF accepts raw PDF bytes and runs text extraction before
// parsing.
func (s *Server) handleParsePDF(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return
	}

	filename := c.Query("filename")
	lines, err := s.extractor.ExtractLinesFromBytes(body, filename)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "text extraction failed",
			Details: err.Error(),
		})
		return
	}
	s.parseAndRespond(c, lines)
}

func (s *Server) parseAndRespond(c *gin.Context, lines []string) {
	filename := c.Query("filename")
	folder := c.Query("folder")

	doc, err := s.parser.Parse(lines, filename, folder)
	if err != nil {
		var headerErr *model.HeaderNotFoundError
		if errors.As(err, &headerErr) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "document heading not found",
				Details: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ParseResponse{Document: doc})
}

// handleIdentifiers extracts the filename-borne identifiers without
// touching any file content.
func (s *Server) handleIdentifiers(c *gin.Context) {
	var req IdentifiersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	ids := parser.ExtractFromFilename(req.Folder, req.Filename)
	c.JSON(http.StatusOK, IdentifiersResponse{
		Type:    ids.Type,
		Number:  ids.Number,
		OrderNr: ids.OrderNr,
		Date:    ids.Date,
	})
}
