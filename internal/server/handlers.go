package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/techfilter"
	"github.com/Zachkp/folio/internal/tenant"
	"github.com/Zachkp/folio/internal/timeline"
)

// tenantID is the id a request resolves to after fallback.
func (s *Server) tenantID(c *gin.Context) string {
	if id := c.Query("tenant"); s.tenants.Has(id) {
		return id
	}
	return s.tenants.DefaultID()
}

func (s *Server) tenant(c *gin.Context) *tenant.Tenant {
	return s.tenants.Get(s.tenantID(c))
}

func (s *Server) experiences(c *gin.Context) {
	filter := techfilter.FromQuery(c.Request.URL.Query())
	items := techfilter.Keep(filter, s.tenant(c).Experiences, func(e tenant.Experience) []string {
		return e.Technologies
	})
	c.JSON(http.StatusOK, gin.H{"experiences": items})
}

func (s *Server) studies(c *gin.Context) {
	studies := s.tenant(c).Studies
	if studies == nil {
		studies = []tenant.Study{}
	}
	c.JSON(http.StatusOK, gin.H{"studies": studies})
}

func (s *Server) projects(c *gin.Context) {
	t := s.tenant(c).WithAssetBase(s.cfg.BaseURL)
	filter := techfilter.FromQuery(c.Request.URL.Query())
	items := techfilter.Keep(filter, t.Projects, func(p tenant.Project) []string {
		return p.Technologies
	})
	c.JSON(http.StatusOK, gin.H{"projects": items})
}

func (s *Server) profile(c *gin.Context) {
	p := s.tenant(c).Profile
	c.JSON(http.StatusOK, gin.H{
		"name":            p.Name,
		"fullName":        p.FullName(),
		"prependedTitles": p.PrependedTitles,
		"appendedTitles":  p.AppendedTitles,
		"about":           p.About,
	})
}

func (s *Server) technologies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"technologies": s.tenant(c).Technologies()})
}

func (s *Server) timeline(c *gin.Context) {
	height := s.cfg.TrackHeight
	if raw := c.Query("height"); raw != "" {
		h, err := strconv.Atoi(raw)
		if err != nil || h <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "height must be a positive integer"})
			return
		}
		height = h
	}

	tl := timeline.New(s.clock)
	c.JSON(http.StatusOK, tl.Layout(s.tenant(c).TimelineEntries(tl.Now()), height))
}
