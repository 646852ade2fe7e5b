package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"codereview/internal/analyzer"
	"codereview/internal/report"
	"codereview/internal/session"
	"codereview/internal/types"
)

const (
	minClients = 1
	maxClients = 10000
)

// analyzeForm mirrors the input form fields
type analyzeForm struct {
	OrgName  string `form:"org_name"`
	Clients  string `form:"clients"`
	Problem  string `form:"problem"`
	Language string `form:"language"`
	Code     string `form:"code"`
}

func (f analyzeForm) submission() types.Submission {
	lang, err := types.ParseLanguage(f.Language)
	if err != nil {
		lang = types.LangOther
	}
	return types.Submission{
		OrgName:  strings.TrimSpace(f.OrgName),
		Clients:  parseClients(f.Clients),
		Problem:  f.Problem,
		Language: lang,
		Code:     f.Code,
	}
}

// parseClients clamps the client count to the slider bounds
func parseClients(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < minClients {
		return minClients
	}
	if n > maxClients {
		return maxClients
	}
	return n
}

// session resolves the caller's session, issuing a cookie for new ones
func (s *Server) session(c *gin.Context) session.Session {
	id, _ := c.Cookie(sessionCookie)
	sess := s.store.Get(id)
	if sess.ID != id {
		c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
	}
	return sess
}

func (s *Server) index(c *gin.Context) {
	sess := s.session(c)
	form := types.Submission{Clients: minClients, Language: types.LangPython}
	if sess.Analysis != nil {
		form = sess.Analysis.Submission
	}
	c.HTML(http.StatusOK, "index.html", newPage(sess, form))
}

func (s *Server) analyze(c *gin.Context) {
	sess := s.session(c)

	var form analyzeForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}
	sub := form.submission()

	a, err := s.analyzer.Analyze(sub)
	switch {
	case errors.Is(err, analyzer.ErrEmptyCode):
		// prior result, if any, stays on screen
		page := newPage(sess, sub)
		page.Warning = err.Error()
		c.HTML(http.StatusOK, "index.html", page)
		return
	case err != nil:
		s.logger.Errorw("analysis failed", "session", sess.ID, "error", err)
		c.String(http.StatusInternalServerError, "analysis failed")
		return
	}

	sess = s.store.Record(sess.ID, a)
	s.logger.Infow("analysis recorded",
		"session", sess.ID,
		"org", sub.OrgName,
		"language", sub.Language,
		"findings", len(a.Result.Findings),
	)

	page := newPage(sess, sub)
	page.Success = true
	c.HTML(http.StatusOK, "index.html", page)
}

func (s *Server) chart(c *gin.Context) {
	a, ok := s.artifacts(c)
	if !ok {
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", a.Chart)
}

func (s *Server) downloadCSV(c *gin.Context) {
	a, ok := s.artifacts(c)
	if !ok {
		return
	}
	attachment(c, report.CSVFileName)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", a.CSV)
}

func (s *Server) downloadChart(c *gin.Context) {
	a, ok := s.artifacts(c)
	if !ok {
		return
	}
	attachment(c, report.ChartFileName)
	c.Data(http.StatusOK, "image/png", a.Chart)
}

// artifacts returns the session's report files, answering 404 when the
// session has no result yet
func (s *Server) artifacts(c *gin.Context) (*report.Artifacts, bool) {
	sess := s.session(c)
	if sess.State != session.HasResult || sess.Analysis == nil {
		c.String(http.StatusNotFound, "no analysis available")
		return nil, false
	}
	return sess.Analysis.Artifacts, true
}

func attachment(c *gin.Context, name string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
}
