package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/adapters/database/memory"
	"github.com/SscSPs/expense_tracker/internal/adapters/database/offline"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/handlers"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/docstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// RouterTestSuite drives the full router against an in-memory store.
type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func newRouter(store portsrepo.DocumentStore) (*gin.Engine, error) {
	return newRouterWithConfig(store, &config.Config{})
}

func newRouterWithConfig(store portsrepo.DocumentStore, cfg *config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	repos := docstore.NewRepositoryProvider(store)
	if err := handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(&repos)); err != nil {
		return nil, err
	}
	return r, nil
}

func (suite *RouterTestSuite) SetupTest() {
	r, err := newRouter(memory.NewStore())
	suite.Require().NoError(err)
	suite.router = r
}

func (suite *RouterTestSuite) do(method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) create(body string) string {
	w := suite.do(http.MethodPost, "/api/transactions", body)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		ID string `json:"id"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotEmpty(resp.ID)
	return resp.ID
}

func (suite *RouterTestSuite) list() map[string]map[string]any {
	w := suite.do(http.MethodGet, "/api/transactions", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var txns map[string]map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &txns))
	return txns
}

func (suite *RouterTestSuite) TestPages() {
	for _, path := range []string{"/", "/summary"} {
		w := suite.do(http.MethodGet, path, "")
		suite.Equal(http.StatusOK, w.Code, path)
		suite.Contains(w.Header().Get("Content-Type"), "text/html")
		suite.Contains(w.Body.String(), "<html")
	}

	w := suite.do(http.MethodGet, "/static/index.js", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "/api/transactions")

	w = suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *RouterTestSuite) TestSwaggerDoc() {
	w := suite.do(http.MethodGet, "/swagger/doc.json", "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &doc))
	suite.Contains(doc.Paths, "/api/transactions")
	suite.Contains(doc.Paths["/api/transactions"], "get")
	suite.Contains(doc.Paths["/api/transactions"], "post")
	suite.Contains(doc.Paths, "/api/transactions/{id}")
	suite.Contains(doc.Paths, "/api/transactions/reset")
	suite.Contains(doc.Paths, "/api/summary")
}

func (suite *RouterTestSuite) TestListEmpty() {
	w := suite.do(http.MethodGet, "/api/transactions", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{}`, w.Body.String())
}

func (suite *RouterTestSuite) TestCreateThenList() {
	id := suite.create(`{"date":"2024-03-01","category":"Food","income":0,"expense":25.5,"note":"lunch"}`)

	txns := suite.list()
	suite.Require().Contains(txns, id)
	rec := txns[id]
	suite.Equal("2024-03-01", rec["date"])
	suite.Equal("Food", rec["category"])
	suite.Equal(25.5, rec["expense"])
	suite.Equal(float64(0), rec["income"])
	suite.Equal("lunch", rec["note"])

	ts, ok := rec["timestamp"].(string)
	suite.Require().True(ok)
	parsed, err := time.ParseInLocation(domain.TimestampLayout, ts, time.Local)
	suite.Require().NoError(err)
	suite.WithinDuration(time.Now(), parsed, time.Minute)
}

func (suite *RouterTestSuite) TestClientTimestampIgnored() {
	id := suite.create(`{"income":"10","timestamp":"1999-01-01T00:00:00"}`)

	rec := suite.list()[id]
	suite.NotEqual("1999-01-01T00:00:00", rec["timestamp"])
	suite.Equal(float64(10), rec["income"])
	suite.Equal(domain.DefaultCategory, rec["category"])
	suite.Equal("", rec["note"])
	suite.Equal(domain.FormatDate(time.Now()), rec["date"])
}

func (suite *RouterTestSuite) TestCreateInvalidAmount() {
	w := suite.do(http.MethodPost, "/api/transactions", `{"income":"lots"}`)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Empty(suite.list())
}

func (suite *RouterTestSuite) TestCreateOverflowingAmount() {
	w := suite.do(http.MethodPost, "/api/transactions", `{"income":"1e400"}`)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "out of range")
	suite.NotContains(w.Body.String(), "store error")
	suite.Empty(suite.list())
}

func (suite *RouterTestSuite) TestCreateNullBody() {
	w := suite.do(http.MethodPost, "/api/transactions", `null`)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Empty(suite.list())
}

func (suite *RouterTestSuite) TestDeleteMissingIsOK() {
	w := suite.do(http.MethodDelete, "/api/transactions/does-not-exist", "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RouterTestSuite) TestDeleteOne() {
	keep := suite.create(`{"income":1}`)
	drop := suite.create(`{"expense":2}`)

	w := suite.do(http.MethodDelete, "/api/transactions/"+drop, "")
	suite.Equal(http.StatusOK, w.Code)

	txns := suite.list()
	suite.Len(txns, 1)
	suite.Contains(txns, keep)
}

func (suite *RouterTestSuite) TestResetThenList() {
	suite.create(`{"income":1}`)
	suite.create(`{"expense":2}`)

	w := suite.do(http.MethodPost, "/api/transactions/reset", "")
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/transactions", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{}`, w.Body.String())
}

func (suite *RouterTestSuite) TestSummaryDefault() {
	w := suite.do(http.MethodGet, "/api/summary", "")
	suite.Equal(http.StatusOK, w.Code)

	var got domain.Summary
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Zero(got.IncomeTotal)
	suite.Zero(got.ExpenseTotal)
	suite.Zero(got.TotalBalance)
	parsed, err := time.ParseInLocation(domain.TimestampLayout, got.UpdatedAt, time.Local)
	suite.Require().NoError(err)
	suite.WithinDuration(time.Now(), parsed, time.Minute)
}

func (suite *RouterTestSuite) TestSummaryRoundTrip() {
	w := suite.do(http.MethodPost, "/api/summary", `{"income_total":100,"expense_total":40,"total_balance":60,"updated_at":"2024-01-01T00:00:00"}`)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/summary", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"income_total":100,"expense_total":40,"total_balance":60,"updated_at":"2024-01-01T00:00:00"}`, w.Body.String())
}

func (suite *RouterTestSuite) TestSummaryInvalid() {
	w := suite.do(http.MethodPost, "/api/summary", `{"income_total":"abc","expense_total":0,"total_balance":0}`)
	suite.Equal(http.StatusInternalServerError, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.NotEmpty(body["error"])
}

func (suite *RouterTestSuite) TestSummaryNotRecomputed() {
	suite.create(`{"income":500}`)

	w := suite.do(http.MethodGet, "/api/summary", "")
	var got domain.Summary
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Zero(got.IncomeTotal)
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func TestRouter_NoSwaggerInProduction(t *testing.T) {
	r, err := newRouterWithConfig(memory.NewStore(), &config.Config{IsProduction: true})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", w.Code)
	}
}

func TestRouter_DegradedMode(t *testing.T) {
	r, err := newRouter(offline.NewStore())
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct{ method, path, body string }{
		{http.MethodGet, "/api/transactions", ""},
		{http.MethodPost, "/api/transactions", `{"income":1}`},
		{http.MethodDelete, "/api/transactions/abc", ""},
		{http.MethodPost, "/api/transactions/reset", ""},
		{http.MethodPost, "/api/summary", `{}`},
		{http.MethodGet, "/api/summary", ""},
	}
	for _, tc := range cases {
		var req *http.Request
		if tc.body == "" {
			req, _ = http.NewRequest(tc.method, tc.path, nil)
		} else {
			req, _ = http.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s %s: status %d, want 500", tc.method, tc.path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "database not initialized") {
			t.Errorf("%s %s: body %s", tc.method, tc.path, w.Body.String())
		}
	}

	// Pages still render without a database.
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET /: status %d", w.Code)
	}
}
