package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanofrontier/internal/authz"
	"nanofrontier/internal/config"
	"nanofrontier/internal/middleware"
	"nanofrontier/internal/models"
	"nanofrontier/internal/pdf"
	"nanofrontier/internal/realtime"
	"nanofrontier/internal/routes"
	"nanofrontier/internal/services"
)

var testSecret = []byte("test-secret")

type fakeLeadStore struct {
	leads  []*models.Lead
	nextID int64
	now    time.Time
}

func (s *fakeLeadStore) Create(lead *models.Lead) error {
	for _, existing := range s.leads {
		if existing.SubmissionToken == lead.SubmissionToken {
			return &pq.Error{Code: "23505"}
		}
	}
	s.nextID++
	if s.now.IsZero() {
		s.now = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
	s.now = s.now.Add(time.Second)
	stored := *lead
	stored.ID = s.nextID
	stored.SubmittedAt = s.now
	s.leads = append(s.leads, &stored)
	lead.ID = stored.ID
	lead.SubmittedAt = stored.SubmittedAt
	return nil
}

func (s *fakeLeadStore) GetBySubmissionToken(token string) (*models.Lead, error) {
	for _, l := range s.leads {
		if l.SubmissionToken == token {
			return l, nil
		}
	}
	return nil, nil
}

func (s *fakeLeadStore) ListByOffering(code string) ([]*models.Lead, error) {
	var out []*models.Lead
	for _, l := range s.leads {
		if l.OfferingCode == code {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeVisitorStore struct {
	visitors map[string]*models.Visitor
}

func (s *fakeVisitorStore) Create(v *models.Visitor) error {
	if s.visitors == nil {
		s.visitors = make(map[string]*models.Visitor)
	}
	v.CreatedAt = time.Now()
	s.visitors[v.ID] = v
	return nil
}

func (s *fakeVisitorStore) GetByID(id string) (*models.Visitor, error) {
	return s.visitors[id], nil
}

type fakeOperatorStore struct{}

func (fakeOperatorStore) GetByEmail(string) (*models.Operator, error)        { return nil, nil }
func (fakeOperatorStore) GetByRefreshToken(string) (*models.Operator, error) { return nil, nil }
func (fakeOperatorStore) UpdateRefresh(int, string, time.Time) error         { return nil }
func (fakeOperatorStore) RotateRefresh(string, string, time.Time) (*models.Operator, error) {
	return nil, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = string(testSecret)
	cfg.Offerings = []config.Offering{{
		Code:          "spacex-xai-frontier",
		ProductName:   "SpaceX + xAI Frontier Token",
		MinInvestment: 5000,
		Multiplier:    1.5,
		Currency:      "USD",
	}}
	return cfg
}

func newTestServer(t *testing.T) (*gin.Engine, *fakeLeadStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	leadStore := &fakeLeadStore{}
	hub := realtime.NewDashboardHub()

	identityService := services.NewIdentityService(&fakeVisitorStore{}, testSecret, 12*time.Hour)
	authService := services.NewAuthService(fakeOperatorStore{}, testSecret, 15*time.Minute, 30*24*time.Hour)
	reportService := services.NewReportService(leadStore, hub)
	surveyService := services.NewSurveyService(leadStore, reportService, nil, nil)

	r := gin.New()
	routes.SetupRoutes(
		r,
		testSecret,
		NewIdentityHandler(identityService),
		NewSurveyHandler(cfg, surveyService),
		NewDashboardHandler(cfg, reportService, hub, pdf.NewReportGenerator("test")),
		NewAuthHandler(authService),
	)
	return r, leadStore
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func obtainVisitorToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/session/anonymous", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var session models.VisitorSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func operatorToken(t *testing.T, roleID int) string {
	t.Helper()
	token, err := middleware.SignToken(&middleware.Claims{
		OperatorID: 1,
		RoleID:     roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)
	require.NoError(t, err)
	return token
}

func TestListOfferings(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(r, http.MethodGet, "/offerings", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "spacex-xai-frontier")
}

func TestProjectionEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodGet, "/offerings/spacex-xai-frontier/projection?amount=10000", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 15000.0, resp["projected_value"])
	assert.Equal(t, true, resp["meets_minimum"])

	// нечисловой ввод → 0, а не ошибка
	w = doJSON(r, http.MethodGet, "/offerings/spacex-xai-frontier/projection?amount=abc", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.0, resp["projected_value"])
	assert.Equal(t, false, resp["meets_minimum"])
}

func TestProjectionUnknownOffering(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(r, http.MethodGet, "/offerings/missing/projection?amount=1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitLeadFlow(t *testing.T) {
	r, store := newTestServer(t)

	// без сессии заявка не принимается
	w := doJSON(r, http.MethodPost, "/offerings/spacex-xai-frontier/leads", "", gin.H{
		"name": "Jane Doe", "email": "jane@example.com", "amount": 5000,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.leads)

	token := obtainVisitorToken(t, r)

	w = doJSON(r, http.MethodPost, "/offerings/spacex-xai-frontier/leads", token, gin.H{
		"name": "Jane Doe", "email": "jane@example.com", "amount": 5000,
		"submission_token": "tok-1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var result models.SubmissionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 5000.0, result.Amount)
	assert.Equal(t, 7500.0, result.ProjectedValue)
	require.Len(t, store.leads, 1)

	// повтор того же submission_token не создаёт вторую заявку
	w = doJSON(r, http.MethodPost, "/offerings/spacex-xai-frontier/leads", token, gin.H{
		"name": "Jane Doe", "email": "jane@example.com", "amount": 5000,
		"submission_token": "tok-1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.leads, 1)
}

func TestSubmitLeadBelowMinimum(t *testing.T) {
	r, store := newTestServer(t)
	token := obtainVisitorToken(t, r)

	w := doJSON(r, http.MethodPost, "/offerings/spacex-xai-frontier/leads", token, gin.H{
		"name": "Jane Doe", "email": "jane@example.com", "amount": 100,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "5000")
	assert.Empty(t, store.leads)
}

func TestSubmitLeadAmountAsString(t *testing.T) {
	r, store := newTestServer(t)
	token := obtainVisitorToken(t, r)

	w := doJSON(r, http.MethodPost, "/offerings/spacex-xai-frontier/leads", token, gin.H{
		"name": "Jane Doe", "email": "jane@example.com", "amount": "6000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, store.leads, 1)
	assert.Equal(t, 6000.0, store.leads[0].Amount)
}

func TestDashboardRequiresOperator(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodGet, "/dashboard/spacex-xai-frontier/summary", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	visitor := obtainVisitorToken(t, r)
	w = doJSON(r, http.MethodGet, "/dashboard/spacex-xai-frontier/summary", visitor, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDashboardSummary(t *testing.T) {
	r, _ := newTestServer(t)
	visitor := obtainVisitorToken(t, r)

	for i := 0; i < 3; i++ {
		w := doJSON(r, http.MethodPost, "/offerings/spacex-xai-frontier/leads", visitor, gin.H{
			"name": "Jane Doe", "email": "jane@example.com", "amount": 5000 + i*1000,
			"submission_token": fmt.Sprintf("tok-%d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/dashboard/spacex-xai-frontier/summary", operatorToken(t, authz.RoleAnalyst), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.DemandSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.LeadCount)
	assert.Equal(t, 18000.0, summary.TotalVolume)
	require.Len(t, summary.Leads, 3)
	// свежие первыми
	assert.True(t, summary.Leads[0].SubmittedAt.After(summary.Leads[2].SubmittedAt))
}

func TestDashboardReportPDF(t *testing.T) {
	r, _ := newTestServer(t)
	visitor := obtainVisitorToken(t, r)

	w := doJSON(r, http.MethodPost, "/offerings/spacex-xai-frontier/leads", visitor, gin.H{
		"name": "Jane Doe", "email": "jane@example.com", "amount": 5000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/dashboard/spacex-xai-frontier/report.pdf", operatorToken(t, authz.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}
