package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/config"
	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/booking"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

// stubBookingRepo overrides just the methods ListPublic touches; the
// embedded interface panics on anything else.
type stubBookingRepo struct {
	domain.Repository

	landscaperErr error
	dayEntry      *models.AvailabilityDay
	dayErr        error
}

func (s *stubBookingRepo) GetLandscaperByID(ctx context.Context, id uint) (*models.Landscaper, error) {
	if s.landscaperErr != nil {
		return nil, s.landscaperErr
	}
	return &models.Landscaper{ID: id, Name: "Ana", Active: true}, nil
}

func (s *stubBookingRepo) GetAvailabilityDay(ctx context.Context, landscaperID uint, day time.Time) (*models.AvailabilityDay, error) {
	return s.dayEntry, s.dayErr
}

func publicAvailabilityRequest(repo domain.Repository, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	h := NewAvailabilityHandler(nil, nil, repo, &config.Config{DefaultTimezone: "UTC"})

	r := gin.New()
	r.GET("/api/public/landscapers/:id/availability", h.ListPublic)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListPublicAvailabilityByDate(t *testing.T) {
	repo := &stubBookingRepo{
		dayEntry: &models.AvailabilityDay{
			LandscaperID: 1,
			Slots:        models.StringList{"08:00-10:00"},
		},
	}

	w := publicAvailabilityRequest(repo, "/api/public/landscapers/1/availability?date=2030-05-10")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Date  string   `json:"date"`
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2030-05-10", body.Date)
	assert.Equal(t, []string{"08:00-10:00"}, body.Slots)
}

func TestListPublicAvailabilityMissingDayIsEmpty(t *testing.T) {
	repo := &stubBookingRepo{dayErr: gorm.ErrRecordNotFound}

	w := publicAvailabilityRequest(repo, "/api/public/landscapers/1/availability?date=2030-05-10")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Slots)
}

func TestListPublicAvailabilityDatabaseErrorIs500(t *testing.T) {
	repo := &stubBookingRepo{dayErr: errors.New("connection reset")}

	w := publicAvailabilityRequest(repo, "/api/public/landscapers/1/availability?date=2030-05-10")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed_to_list_availability")
}

func TestListPublicAvailabilityUnknownLandscaper(t *testing.T) {
	repo := &stubBookingRepo{landscaperErr: gorm.ErrRecordNotFound}

	w := publicAvailabilityRequest(repo, "/api/public/landscapers/9/availability?date=2030-05-10")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
