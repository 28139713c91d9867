package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/feriae/liturgical-calendar/internal/config"
	"github.com/feriae/liturgical-calendar/internal/database"
)

// testEnv holds a complete test environment: in-memory archive,
// config, handlers, and the assembled router.
type testEnv struct {
	db       *database.DB
	cfg      *config.Config
	router   http.Handler
	adminKey string
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))

	db, err := database.Open(database.Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}, log)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	adminKey := "admin-test-key"
	cfg := &config.Config{
		Port:          8080,
		Env:           config.EnvDevelopment,
		DatabasePath:  ":memory:",
		AdminAPIKey:   adminKey,
		BaptismPolicy: config.BaptismPolicyFollowingSunday,
		LogLevel:      "error",
		LogFormat:     "text",
	}

	handlers := NewHandlers(db, cfg, log)

	return &testEnv{
		db:       db,
		cfg:      cfg,
		router:   SetupRoutes(handlers, cfg, log),
		adminKey: adminKey,
	}
}

// do performs a request against the test router and decodes the
// response envelope.
func (env *testEnv) do(t *testing.T, method, path string, headers map[string]string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var body envelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return rec.Code, body
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorInfo      `json:"error"`
}

func TestHealthCheck(t *testing.T) {
	env := setupTest(t)

	status, body := env.do(t, http.MethodGet, "/health", nil)
	if status != http.StatusOK {
		t.Fatalf("GET /health status = %d, want 200", status)
	}
	if !body.Success {
		t.Error("GET /health success = false")
	}
}

func TestGetCalendarYear(t *testing.T) {
	env := setupTest(t)

	status, body := env.do(t, http.MethodGet, "/api/v1/calendar/2024", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var cal calendarJSON
	if err := json.Unmarshal(body.Data, &cal); err != nil {
		t.Fatalf("unmarshal calendar: %v", err)
	}

	if cal.Year != 2024 || cal.Calendar != "Gregorian" || !cal.LeapYear {
		t.Errorf("metadata = %d/%s/leap=%v, want 2024/Gregorian/leap=true", cal.Year, cal.Calendar, cal.LeapYear)
	}
	if cal.Source != "computed" {
		t.Errorf("first request source = %q, want computed", cal.Source)
	}
	if len(cal.Feasts) != 18 {
		t.Errorf("feast count = %d, want 18", len(cal.Feasts))
	}

	want := map[string]string{
		"Easter Sunday":  "2024-03-31",
		"Ash Wednesday":  "2024-02-14",
		"Pentecost":      "2024-05-19",
		"Corpus Christi": "2024-05-30",
	}
	for _, feast := range cal.Feasts {
		if date, ok := want[feast.Name]; ok && feast.Date != date {
			t.Errorf("%s = %s, want %s", feast.Name, feast.Date, date)
		}
	}

	if cal.Lent.Start != "2024-02-14" || cal.Lent.End != "2024-03-30" {
		t.Errorf("lent = %s..%s, want 2024-02-14..2024-03-30", cal.Lent.Start, cal.Lent.End)
	}

	// Second request must be served from the archive, byte-identical
	// feasts included.
	status, body = env.do(t, http.MethodGet, "/api/v1/calendar/2024", nil)
	if status != http.StatusOK {
		t.Fatalf("second request status = %d, want 200", status)
	}
	var archived calendarJSON
	if err := json.Unmarshal(body.Data, &archived); err != nil {
		t.Fatalf("unmarshal archived calendar: %v", err)
	}
	if archived.Source != "archive" {
		t.Errorf("second request source = %q, want archive", archived.Source)
	}
	if len(archived.Feasts) != len(cal.Feasts) {
		t.Fatalf("archived feast count = %d, want %d", len(archived.Feasts), len(cal.Feasts))
	}
	for i := range cal.Feasts {
		if archived.Feasts[i] != cal.Feasts[i] {
			t.Errorf("feast[%d] = %v from archive, want %v", i, archived.Feasts[i], cal.Feasts[i])
		}
	}
	if archived.Lent != cal.Lent {
		t.Errorf("archived lent = %v, want %v", archived.Lent, cal.Lent)
	}
}

func TestGetCalendarYear_JulianEra(t *testing.T) {
	env := setupTest(t)

	status, body := env.do(t, http.MethodGet, "/api/v1/calendar/1000", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var cal calendarJSON
	if err := json.Unmarshal(body.Data, &cal); err != nil {
		t.Fatalf("unmarshal calendar: %v", err)
	}
	if cal.Calendar != "Julian" {
		t.Errorf("calendar = %q, want Julian", cal.Calendar)
	}
	for _, feast := range cal.Feasts {
		if feast.Name == "Easter Sunday" && feast.Date != "1000-03-31" {
			t.Errorf("Easter Sunday = %s, want recorded 1000-03-31", feast.Date)
		}
	}
}

func TestGetCalendarYear_Errors(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantErr  string
	}{
		{"year below domain", "/api/v1/calendar/531", http.StatusBadRequest, "RANGE_ERROR"},
		{"non-numeric year", "/api/v1/calendar/MLXVI", http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := env.do(t, http.MethodGet, tt.path, nil)
			if status != tt.wantCode {
				t.Errorf("status = %d, want %d", status, tt.wantCode)
			}
			if body.Error == nil || body.Error.Code != tt.wantErr {
				t.Errorf("error = %+v, want code %s", body.Error, tt.wantErr)
			}
		})
	}
}

func TestGetEaster_BothEras(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		path     string
		wantDate string
	}{
		{"/api/v1/calendar/2025/easter", "2025-04-20"},
		{"/api/v1/calendar/1582/easter", "1582-04-15"},
	}

	for _, tt := range tests {
		status, body := env.do(t, http.MethodGet, tt.path, nil)
		if status != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", tt.path, status)
		}
		var data struct {
			Easter string `json:"easter"`
		}
		if err := json.Unmarshal(body.Data, &data); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if data.Easter != tt.wantDate {
			t.Errorf("GET %s easter = %s, want %s", tt.path, data.Easter, tt.wantDate)
		}
	}
}

func TestComputeGregorianEaster(t *testing.T) {
	env := setupTest(t)

	status, body := env.do(t, http.MethodGet, "/api/v1/easter/2024", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var data struct {
		Easter string `json:"easter"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data.Easter != "2024-03-31" {
		t.Errorf("easter = %s, want 2024-03-31", data.Easter)
	}

	// The direct computus endpoint rejects Julian-era years.
	status, body = env.do(t, http.MethodGet, "/api/v1/easter/1000", nil)
	if status != http.StatusBadRequest {
		t.Errorf("julian year status = %d, want 400", status)
	}
	if body.Error == nil || body.Error.Code != "RANGE_ERROR" {
		t.Errorf("julian year error = %+v, want RANGE_ERROR", body.Error)
	}
}

func TestGetLeapYear(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name     string
		path     string
		wantLeap bool
		wantCal  string
	}{
		{"gregorian century", "/api/v1/leap-year/1900", false, "Gregorian"},
		{"julian override", "/api/v1/leap-year/1900?calendar=julian", true, "Julian"},
		{"gregorian override on julian-era year", "/api/v1/leap-year/1500?calendar=gregorian", false, "Gregorian"},
		{"year-implied julian", "/api/v1/leap-year/1500", true, "Julian"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := env.do(t, http.MethodGet, tt.path, nil)
			if status != http.StatusOK {
				t.Fatalf("status = %d, want 200", status)
			}
			var data struct {
				Calendar string `json:"calendar"`
				LeapYear bool   `json:"leap_year"`
			}
			if err := json.Unmarshal(body.Data, &data); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if data.LeapYear != tt.wantLeap || data.Calendar != tt.wantCal {
				t.Errorf("got %s/leap=%v, want %s/leap=%v", data.Calendar, data.LeapYear, tt.wantCal, tt.wantLeap)
			}
		})
	}

	status, _ := env.do(t, http.MethodGet, "/api/v1/leap-year/1900?calendar=lunar", nil)
	if status != http.StatusBadRequest {
		t.Errorf("invalid calendar param status = %d, want 400", status)
	}
}

func TestAdminArchive(t *testing.T) {
	env := setupTest(t)
	auth := map[string]string{"X-API-Key": env.adminKey}

	// Populate the archive.
	if status, _ := env.do(t, http.MethodGet, "/api/v1/calendar/2024", nil); status != http.StatusOK {
		t.Fatalf("populate archive status = %d", status)
	}

	// No key.
	status, _ := env.do(t, http.MethodDelete, "/api/v1/admin/archive/2024", nil)
	if status != http.StatusUnauthorized {
		t.Errorf("delete without key status = %d, want 401", status)
	}

	// Wrong key.
	status, _ = env.do(t, http.MethodDelete, "/api/v1/admin/archive/2024", map[string]string{"X-API-Key": "wrong"})
	if status != http.StatusUnauthorized {
		t.Errorf("delete with wrong key status = %d, want 401", status)
	}

	// List.
	status, body := env.do(t, http.MethodGet, "/api/v1/admin/archive", auth)
	if status != http.StatusOK {
		t.Fatalf("list archive status = %d, want 200", status)
	}
	var list struct {
		Years []int `json:"years"`
		Count int   `json:"count"`
	}
	if err := json.Unmarshal(body.Data, &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if list.Count != 1 || len(list.Years) != 1 || list.Years[0] != 2024 {
		t.Errorf("archive list = %+v, want single year 2024", list)
	}

	// Evict.
	status, _ = env.do(t, http.MethodDelete, "/api/v1/admin/archive/2024", auth)
	if status != http.StatusOK {
		t.Errorf("delete status = %d, want 200", status)
	}

	// Evicting again is a 404.
	status, body = env.do(t, http.MethodDelete, "/api/v1/admin/archive/2024", auth)
	if status != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", status)
	}
	if body.Error == nil || body.Error.Code != "NOT_FOUND" {
		t.Errorf("second delete error = %+v, want NOT_FOUND", body.Error)
	}
}
