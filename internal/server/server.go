// Package server exposes the orchestrator over HTTP for local
// frontends: daily timings, the Ramadan calendar, and the method
// table, all JSON.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/asksunna/salat/internal/location"
	"github.com/asksunna/salat/internal/method"
	"github.com/asksunna/salat/internal/ramadan"
	"github.com/asksunna/salat/internal/schedule"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Server serves the prayer-times HTTP API.
type Server struct {
	router  *gin.Engine
	service *schedule.Service
	port    int
	httpSrv *http.Server
}

// New creates a Server over the given orchestrator.
func New(service *schedule.Service, port int) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:  router,
		service: service,
		port:    port,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.healthHandler)

	api := s.router.Group("/api/v1")
	{
		api.GET("/timings", s.timingsHandler)
		api.GET("/ramadan/:year", s.ramadanHandler)
		api.GET("/methods", s.methodsHandler)
	}
}

// Run starts the server and blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", s.port).Msg("http server listening")
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// timingsHandler resolves one day's timings.
// Query: date (YYYY-MM-DD, default today), latitude+longitude or
// address, method (default 3).
func (s *Server) timingsHandler(c *gin.Context) {
	date := time.Now()
	if ds := c.Query("date"); ds != "" {
		parsed, err := time.Parse("2006-01-02", ds)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid date %q, want YYYY-MM-DD", ds)})
			return
		}
		date = parsed
	}

	loc, err := locationFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	methodID := methodFromQuery(c)

	t := s.service.PrayerTimes(c.Request.Context(), date, loc, methodID)

	c.JSON(http.StatusOK, gin.H{
		"date":     date.Format("2006-01-02"),
		"method":   gin.H{"id": methodID, "name": method.Name(methodID)},
		"source":   t.Source.String(),
		"degraded": t.Degraded,
		"timings":  t.Set.Map(),
	})
}

// ramadanDayJSON is the per-day wire shape consumed by the frontend.
type ramadanDayJSON struct {
	Day            int    `json:"day"`
	GregorianDate  int    `json:"gregorianDate"`
	GregorianMonth int    `json:"gregorianMonth"`
	GregorianYear  int    `json:"gregorianYear"`
	Times          struct {
		Suhoor string `json:"suhoor"`
		Iftar  string `json:"iftar"`
	} `json:"times"`
}

func toDayJSON(d ramadan.Day) ramadanDayJSON {
	var out ramadanDayJSON
	out.Day = d.Number
	out.GregorianDate = d.Date.Day()
	out.GregorianMonth = int(d.Date.Month())
	out.GregorianYear = d.Date.Year()
	out.Times.Suhoor = d.SuhoorEnd
	out.Times.Iftar = d.Iftar
	return out
}

func (s *Server) ramadanHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1900 || year > 2200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	loc, err := locationFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	methodID := methodFromQuery(c)

	days, err := s.service.RamadanCalendar(c.Request.Context(), loc, year, methodID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]ramadanDayJSON, len(days))
	for i, d := range days {
		out[i] = toDayJSON(d)
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "days": out})
}

func (s *Server) methodsHandler(c *gin.Context) {
	type m struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	out := make([]m, 0)
	for _, id := range method.IDs() {
		out = append(out, m{ID: id, Name: method.Name(id)})
	}
	c.JSON(http.StatusOK, gin.H{"methods": out})
}

// locationFromQuery builds the tagged location from query params.
// An address supersedes coordinates when both are present.
func locationFromQuery(c *gin.Context) (location.Location, error) {
	if addr := c.Query("address"); addr != "" {
		return location.Address(addr), nil
	}

	latS, lngS := c.Query("latitude"), c.Query("longitude")
	if latS == "" || lngS == "" {
		return location.Location{}, fmt.Errorf("latitude and longitude (or address) are required")
	}

	lat, err := strconv.ParseFloat(latS, 64)
	if err != nil {
		return location.Location{}, fmt.Errorf("invalid latitude %q", latS)
	}
	lng, err := strconv.ParseFloat(lngS, 64)
	if err != nil {
		return location.Location{}, fmt.Errorf("invalid longitude %q", lngS)
	}

	loc := location.Coordinates(lat, lng)
	if err := loc.Validate(); err != nil {
		return location.Location{}, err
	}
	return loc, nil
}

func methodFromQuery(c *gin.Context) int {
	if ms := c.Query("method"); ms != "" {
		if id, err := strconv.Atoi(ms); err == nil {
			return id
		}
	}
	return method.Default
}
