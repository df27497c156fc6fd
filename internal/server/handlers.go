package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/heainKang/daily-me-app/internal/catalog"
	"github.com/heainKang/daily-me-app/internal/constants"
	apperrors "github.com/heainKang/daily-me-app/internal/errors"
	"github.com/heainKang/daily-me-app/internal/journal"
	"github.com/heainKang/daily-me-app/internal/logger"
	"github.com/heainKang/daily-me-app/internal/models"
)

type onboardingRequest struct {
	Answers []journal.Answer `json:"answers"`
}

type answerRequest struct {
	ItemID   string        `json:"item_id"`
	Selected models.Option `json:"selected_option"`
	Note     string        `json:"note"`
}

type moodRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

type recordedResponse struct {
	Response models.Response       `json:"response"`
	Analysis models.AnalysisRecord `json:"analysis"`
}

// writeError maps journal errors onto status codes. Internal failures are
// logged and answered with a generic message.
func writeError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, journal.ErrNoAnalysis):
		status = http.StatusNotFound
	case errors.Is(err, journal.ErrMoodAlreadyRecorded), errors.Is(err, journal.ErrAlreadyAnswered):
		status = http.StatusConflict
	case apperrors.IsInternal(err):
		status = http.StatusInternalServerError
		logger.Error("Request failed", "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, gin.H{"error": apperrors.UserMessage(err)})
}

func (s *Server) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.journal.Profile())
}

func (s *Server) completeOnboarding(c *gin.Context) {
	var req onboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, err)
		return
	}
	res, err := s.journal.CompleteOnboarding(req.Answers)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) skipOnboarding(c *gin.Context) {
	if err := s.journal.SkipOnboarding(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.journal.Profile())
}

func (s *Server) listQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Questions())
}

func (s *Server) listQuotes(c *gin.Context) {
	if slot := models.TimeSlot(c.Query("slot")); slot != "" {
		if !slot.Valid() {
			writeError(c, errors.New("invalid slot: use morning, afternoon or evening"))
			return
		}
		c.JSON(http.StatusOK, catalog.QuotesForSlot(slot))
		return
	}
	c.JSON(http.StatusOK, catalog.Quotes())
}

func (s *Server) getToday(c *gin.Context) {
	date := c.DefaultQuery("date", s.journal.Today())
	view, err := s.journal.Day(date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) postResponse(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, err)
		return
	}
	r, rec, err := s.journal.Answer(req.ItemID, req.Selected, req.Note)
	if err != nil {
		writeError(c, err)
		return
	}
	s.metrics.RecordResponse("answer")
	c.JSON(http.StatusCreated, recordedResponse{Response: r, Analysis: rec})
}

func (s *Server) listResponses(c *gin.Context) {
	var (
		rs  []models.Response
		err error
	)
	if c.Query("today") == "true" {
		rs, err = s.journal.TodayResponses()
	} else {
		rs, err = s.journal.AllResponses()
	}
	if err != nil {
		writeError(c, err)
		return
	}
	if rs == nil {
		rs = []models.Response{}
	}
	c.JSON(http.StatusOK, rs)
}

func (s *Server) postMood(c *gin.Context) {
	var req moodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, err)
		return
	}
	mood, err := models.ParseMood(req.Mood)
	if err != nil {
		writeError(c, err)
		return
	}
	r, rec, err := s.journal.RecordMood(mood, req.Note)
	if err != nil {
		writeError(c, err)
		return
	}
	s.metrics.RecordResponse("mood")
	c.JSON(http.StatusCreated, recordedResponse{Response: r, Analysis: rec})
}

func (s *Server) getAnalysis(c *gin.Context) {
	rec, err := s.journal.Report(c.Param("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) getHistory(c *gin.Context) {
	days := constants.DefaultHistoryDays
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, errors.New("days must be a number"))
			return
		}
		days = n
	}
	h, err := s.journal.History(days)
	if err != nil {
		writeError(c, err)
		return
	}
	if h.Entries == nil {
		h.Entries = []models.HistoryEntry{}
	}
	c.JSON(http.StatusOK, h)
}

func (s *Server) clearData(c *gin.Context) {
	if err := s.journal.ClearAll(); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
