package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backstage/internal/domain"
	"backstage/internal/ports"
)

const (
	secret    = "test-secret"
	licenseID = "6f1c2a9e-3b4d-4c55-9a7e-0d2f8b1c4e11"
	workID    = "0b6c3d52-8f1e-4a7b-9c2d-5e4f3a2b1c10"
)

// envelope is the client view of api.ResultEnvelope.
type envelope struct {
	Success    bool   `json:"success"`
	ProposalID string `json:"proposal_id"`
	Error      string `json:"error"`
}

type mockLicensing struct {
	mock.Mock
}

func (m *mockLicensing) Quote(p domain.FeeParams) domain.FeeBreakdown {
	return m.Called(p).Get(0).(domain.FeeBreakdown)
}

func (m *mockLicensing) CreateProposal(ctx context.Context, s domain.Session, p domain.NewProposal) (string, error) {
	args := m.Called(ctx, s, p)
	return args.String(0), args.Error(1)
}

func (m *mockLicensing) GetLicense(ctx context.Context, id string) (domain.License, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.License), args.Error(1)
}

func (m *mockLicensing) ListLicenses(ctx context.Context, f ports.LicenseFilter) ([]domain.License, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.License), args.Error(1)
}

func (m *mockLicensing) UpdateStatus(ctx context.Context, s domain.Session, id string, status domain.LicenseStatus, notes *string) error {
	return m.Called(ctx, s, id, status, notes).Error(0)
}

func (m *mockLicensing) Activate(ctx context.Context, s domain.Session, id string) error {
	return m.Called(ctx, s, id).Error(0)
}

func (m *mockLicensing) DeactivateExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) Analyze(ctx context.Context) (domain.Analysis, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Analysis), args.Error(1)
}

type stubRoles map[string][]string

func (s stubRoles) RolesFor(_ context.Context, userID string) ([]string, error) {
	if userID == "broken" {
		return nil, errors.New("connection refused")
	}
	return s[userID], nil
}

type harness struct {
	licensing *mockLicensing
	analyzer  *mockAnalyzer
	handler   http.Handler
}

func newHarness() *harness {
	h := &harness{licensing: new(mockLicensing), analyzer: new(mockAnalyzer)}
	roles := stubRoles{
		"u-admin":   {"admin"},
		"u-manager": {"manager"},
		"u-viewer":  {"viewer"},
	}
	h.handler = New(h.analyzer, h.licensing, roles, secret, zerolog.Nop()).Routes()
	return h
}

func token(t *testing.T, subject, key string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tok.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func (h *harness) do(t *testing.T, method, path, user, body string, header ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+token(t, user, secret))
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func isManager(s domain.Session) bool { return s.UserID == "u-manager" && s.CanManageLicenses() }

func TestHealthzNeedsNoToken(t *testing.T) {
	h := newHarness()
	rec, _ := h.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuthenticate(t *testing.T) {
	h := newHarness()

	rec, env := h.do(t, http.MethodGet, "/api/v1/insights", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "u-admin", "wrong-secret"))
	rec = httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = h.do(t, http.MethodGet, "/api/v1/insights", "broken", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetInsights(t *testing.T) {
	h := newHarness()
	res := domain.Analysis{
		Alerts:  []domain.Insight{{ID: "overdue-transactions", Category: domain.CategoryAlert, Severity: domain.SeverityCritical}},
		Summary: domain.Summary{Total: 1, Critical: 1},
	}
	h.analyzer.On("Analyze", mock.Anything).Return(res, nil)

	rec, _ := h.do(t, http.MethodGet, "/api/v1/insights", "u-viewer", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Summary.Critical)
	require.Len(t, got.Alerts, 1)
	assert.Equal(t, "overdue-transactions", got.Alerts[0].ID)
}

func TestGetInsightsRendersEmptyBuckets(t *testing.T) {
	h := newHarness()
	h.analyzer.On("Analyze", mock.Anything).Return(domain.Analysis{}, nil)

	rec, _ := h.do(t, http.MethodGet, "/api/v1/insights", "u-viewer", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, bucket := range []string{"insights", "inconsistencies", "opportunities", "alerts"} {
		assert.Contains(t, body, `"`+bucket+`":[]`)
	}
	assert.NotContains(t, body, "unavailable")
}

func TestQuoteFee(t *testing.T) {
	h := newHarness()
	want := domain.FeeParams{BaseFee: decimal.NewFromInt(100), Territory: "brazil", Duration: "1_year", MediaType: "other", Exclusivity: true}
	h.licensing.On("Quote", mock.MatchedBy(func(p domain.FeeParams) bool {
		return p.BaseFee.Equal(want.BaseFee) && p.Territory == want.Territory && p.Exclusivity
	})).Return(domain.FeeBreakdown{BaseFee: decimal.NewFromInt(100), TotalFee: decimal.NewFromInt(200), ExclusivityMultiplier: 2})

	rec, _ := h.do(t, http.MethodPost, "/api/v1/licenses/fee", "u-viewer",
		`{"base_fee":100,"territory":"brazil","duration":"1_year","media_type":"other","exclusivity":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_fee":"200"`)
	h.licensing.AssertExpectations(t)
}

func TestCreateLicense(t *testing.T) {
	h := newHarness()
	h.licensing.On("CreateProposal", mock.Anything, mock.MatchedBy(isManager), mock.MatchedBy(func(p domain.NewProposal) bool {
		return p.WorkID == workID && p.BaseFee.Equal(decimal.RequireFromString("1500.50"))
	})).Return(licenseID, nil)

	rec, env := h.do(t, http.MethodPost, "/api/v1/licenses", "u-manager",
		`{"work_id":"`+workID+`","title":"Ad","licensee":"Acme","territory":"brazil","duration":"1_year","media_type":"tv","base_fee":"1500.50"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, licenseID, env.ProposalID)
}

func TestCreateLicenseErrors(t *testing.T) {
	validation := &domain.ValidationError{Problems: multierror.Append(nil,
		errors.New("title is required"), errors.New("licensee is required"))}

	tests := []struct {
		name     string
		err      error
		lang     string
		wantCode int
		wantMsg  string
	}{
		{"validation", validation, "", http.StatusUnprocessableEntity, "invalid request: title is required; licensee is required"},
		{"missing work", &domain.NotFoundError{Entity: "work", ID: workID}, "", http.StatusNotFound, "work not found"},
		{"missing work localized", &domain.NotFoundError{Entity: "work", ID: workID}, "pt-BR", http.StatusNotFound, "obra não encontrada"},
		{"missing license localized", &domain.NotFoundError{Entity: "license", ID: licenseID}, "pt-BR", http.StatusNotFound, "licença não encontrada"},
		{"missing other", &domain.NotFoundError{Entity: "contract", ID: "c1"}, "pt-BR", http.StatusNotFound, "registro não encontrado"},
		{"conflict", &domain.ConflictError{}, "", http.StatusConflict, msgConflict},
		{"conflict localized", &domain.ConflictError{}, "pt-BR,pt;q=0.9", http.StatusConflict, "já existe uma licença exclusiva ativa para esta obra, território e mídia"},
		{"forbidden", domain.ErrForbidden, "", http.StatusForbidden, msgForbidden},
		{"storage", domain.Storage("create license", errors.New("timeout")), "", http.StatusServiceUnavailable, msgUnavailable},
		{"unexpected", errors.New("boom"), "", http.StatusInternalServerError, msgInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.licensing.On("CreateProposal", mock.Anything, mock.Anything, mock.Anything).Return("", tt.err)

			var header []string
			if tt.lang != "" {
				header = []string{"Accept-Language", tt.lang}
			}
			rec, env := h.do(t, http.MethodPost, "/api/v1/licenses", "u-manager", `{"work_id":"`+workID+`"}`, header...)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMsg, env.Error)
		})
	}
}

func TestCreateLicenseMalformedBody(t *testing.T) {
	h := newHarness()
	rec, env := h.do(t, http.MethodPost, "/api/v1/licenses", "u-manager", `{"work_id":`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Error, "can't decode JSON body")
	h.licensing.AssertNotCalled(t, "CreateProposal", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateLicenseRejectsBadWorkID(t *testing.T) {
	h := newHarness()
	rec, env := h.do(t, http.MethodPost, "/api/v1/licenses", "u-manager",
		`{"work_id":"not-a-uuid","title":"Ad","licensee":"Acme","territory":"brazil","duration":"1_year","media_type":"tv","base_fee":"10"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, env.Success)
	assert.True(t, strings.HasPrefix(env.Error, "invalid request: "))
	h.licensing.AssertNotCalled(t, "CreateProposal", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetLicense(t *testing.T) {
	h := newHarness()
	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	h.licensing.On("GetLicense", mock.Anything, licenseID).Return(domain.License{
		ID: licenseID, WorkID: workID, Status: domain.LicenseActive,
		TotalFee: decimal.NewFromInt(450), StartDate: &start,
	}, nil)

	rec, env := h.do(t, http.MethodGet, "/api/v1/licenses/"+licenseID, "u-viewer", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, rec.Body.String(), `"start_date":"2026-03-01"`)
	assert.Contains(t, rec.Body.String(), `"status":"active"`)
}

func TestGetLicenseRejectsBadID(t *testing.T) {
	h := newHarness()
	rec, env := h.do(t, http.MethodGet, "/api/v1/licenses/not-a-uuid", "u-viewer", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Error, "Invalid format for parameter id")
	h.licensing.AssertNotCalled(t, "GetLicense", mock.Anything, mock.Anything)
}

func TestListLicenses(t *testing.T) {
	h := newHarness()
	h.licensing.On("ListLicenses", mock.Anything, ports.LicenseFilter{Status: domain.LicenseSent, WorkID: workID, Limit: 5}).
		Return([]domain.License{{ID: licenseID, Status: domain.LicenseSent}}, nil)

	rec, env := h.do(t, http.MethodGet, "/api/v1/licenses?status=sent&work_id="+workID+"&limit=5", "u-viewer", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, rec.Body.String(), licenseID)

	rec, _ = h.do(t, http.MethodGet, "/api/v1/licenses?status=bogus", "u-viewer", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = h.do(t, http.MethodGet, "/api/v1/licenses?limit=many", "u-viewer", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, env = h.do(t, http.MethodGet, "/api/v1/licenses?work_id=abc", "u-viewer", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Error, "work_id")
	h.licensing.AssertNumberOfCalls(t, "ListLicenses", 1)
}

func TestUpdateStatus(t *testing.T) {
	h := newHarness()
	h.licensing.On("UpdateStatus", mock.Anything, mock.MatchedBy(isManager), licenseID, domain.LicenseNegotiation,
		mock.MatchedBy(func(n *string) bool { return n != nil && *n == "counter offer" })).Return(nil)

	rec, env := h.do(t, http.MethodPatch, "/api/v1/licenses/"+licenseID+"/status", "u-manager",
		`{"status":"negotiation","notes":"counter offer"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, licenseID, env.ProposalID)

	rec, _ = h.do(t, http.MethodPatch, "/api/v1/licenses/"+licenseID+"/status", "u-manager", `{"status":"signed"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	h.licensing.AssertNumberOfCalls(t, "UpdateStatus", 1)
}

func TestActivateLicense(t *testing.T) {
	h := newHarness()
	h.licensing.On("Activate", mock.Anything, mock.MatchedBy(isManager), licenseID).Return(nil).Once()

	rec, env := h.do(t, http.MethodPost, "/api/v1/licenses/"+licenseID+"/activate", "u-manager", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	h.licensing.On("Activate", mock.Anything, mock.Anything, licenseID).Return(&domain.ConflictError{}).Once()
	rec, env = h.do(t, http.MethodPost, "/api/v1/licenses/"+licenseID+"/activate", "u-manager", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
}

func TestExpireLicensesAdminOnly(t *testing.T) {
	h := newHarness()
	h.licensing.On("DeactivateExpired", mock.Anything).Return(3, nil)

	rec, _ := h.do(t, http.MethodPost, "/api/v1/licenses/expire", "u-manager", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	h.licensing.AssertNotCalled(t, "DeactivateExpired", mock.Anything)

	rec, env := h.do(t, http.MethodPost, "/api/v1/licenses/expire", "u-admin", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, rec.Body.String(), `"deactivated":3`)
}

func TestSessionFromDefaultsToViewer(t *testing.T) {
	s := SessionFrom(context.Background())
	assert.Equal(t, domain.RoleViewer, s.PrimaryRole)
	assert.False(t, s.CanManageLicenses())
}
