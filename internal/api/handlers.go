package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/feriae/liturgical-calendar/internal/calendar"
	"github.com/feriae/liturgical-calendar/internal/config"
	"github.com/feriae/liturgical-calendar/internal/database"
	"github.com/feriae/liturgical-calendar/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db            *database.DB
	cfg           *config.Config
	logger        *slog.Logger
	baptismPolicy calendar.BaptismPolicy
}

// NewHandlers creates a new Handlers instance. The configured baptism
// policy is resolved once here so every computed calendar uses it.
func NewHandlers(db *database.DB, cfg *config.Config, log *slog.Logger) *Handlers {
	policy := calendar.BaptismFollowingSunday
	if cfg.BaptismPolicy == config.BaptismPolicyEpiphany {
		policy = calendar.BaptismOnEpiphany
	}
	return &Handlers{
		db:            db,
		cfg:           cfg,
		logger:        log,
		baptismPolicy: policy,
	}
}

// feastJSON is a feast with its date rendered as YYYY-MM-DD.
type feastJSON struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// lentJSON is the closed Lent interval, Ash Wednesday through Holy
// Saturday.
type lentJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// calendarJSON is the bulk all-dates view of one civil year.
type calendarJSON struct {
	Year     int         `json:"year"`
	Calendar string      `json:"calendar"`
	LeapYear bool        `json:"leap_year"`
	Source   string      `json:"source"` // "computed" or "archive"
	Lent     lentJSON    `json:"lent"`
	Feasts   []feastJSON `json:"feasts"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetCalendarYear handles GET /api/v1/calendar/{year}
//
// The archive is consulted first; a miss computes the year, archives
// it, and serves the computed result. The archive is an optimization,
// so a failing archive read or write degrades to plain computation
// rather than failing the request.
func (h *Handlers) GetCalendarYear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	if archived, err := h.db.GetCalendar(ctx, year); err == nil {
		WriteSuccess(w, archivedToJSON(archived))
		return
	} else if !database.IsNotFound(err) {
		log.Warn("archive read failed, recomputing",
			slog.Int("year", year),
			slog.Any("error", err))
	}

	cal, err := calendar.New(year, calendar.WithBaptismPolicy(h.baptismPolicy))
	if err != nil {
		if errors.Is(err, calendar.ErrYearOutOfRange) {
			WriteRangeError(w, err.Error())
			return
		}
		log.Error("calendar construction failed", slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Failed to compute calendar")
		return
	}

	if err := h.db.SaveCalendar(ctx, toArchived(cal)); err != nil {
		log.Warn("archive write failed",
			slog.Int("year", year),
			slog.Any("error", err))
	}

	WriteSuccess(w, computedToJSON(cal))
}

// GetEaster handles GET /api/v1/calendar/{year}/easter
func (h *Handlers) GetEaster(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	easter, err := calendar.Easter(year)
	if err != nil {
		if errors.Is(err, calendar.ErrYearOutOfRange) {
			WriteRangeError(w, err.Error())
			return
		}
		h.logger.Error("easter resolution failed", slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Failed to resolve Easter")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":     year,
		"calendar": calendar.SystemForYear(year).String(),
		"easter":   calendar.FormatDate(easter),
	})
}

// ComputeGregorianEaster handles GET /api/v1/easter/{year}
//
// Direct computus endpoint for callers that want Gregorian Easter
// without a full calendar; Julian-era years are a range error here.
func (h *Handlers) ComputeGregorianEaster(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	easter, err := calendar.GregorianEaster(year)
	if err != nil {
		if errors.Is(err, calendar.ErrYearOutOfRange) {
			WriteRangeError(w, err.Error())
			return
		}
		h.logger.Error("computus failed", slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Failed to compute Easter")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":   year,
		"easter": calendar.FormatDate(easter),
	})
}

// GetLeapYear handles GET /api/v1/leap-year/{year}?calendar=julian|gregorian
//
// The optional calendar parameter overrides the year-implied system
// for historical comparison (1900 is Julian-leap, not Gregorian-leap).
func (h *Handlers) GetLeapYear(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	system := calendar.SystemForYear(year)
	switch r.URL.Query().Get("calendar") {
	case "":
		// Year-implied system
	case "julian":
		system = calendar.Julian
	case "gregorian":
		system = calendar.Gregorian
	default:
		WriteBadRequest(w, "calendar must be julian or gregorian")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":      year,
		"calendar":  system.String(),
		"leap_year": calendar.IsLeapYear(year, system),
	})
}

// ListArchivedYears handles GET /api/v1/admin/archive
func (h *Handlers) ListArchivedYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.db.ListYears(r.Context())
	if err != nil {
		h.logger.Error("failed to list archived years", slog.Any("error", err))
		WriteInternalError(w, "Failed to list archive")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"years": years,
		"count": len(years),
	})
}

// DeleteArchivedYear handles DELETE /api/v1/admin/archive/{year}
func (h *Handlers) DeleteArchivedYear(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	if err := h.db.DeleteCalendar(r.Context(), year); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, fmt.Sprintf("Year %d is not archived", year))
			return
		}
		h.logger.Error("failed to delete archived year", slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Failed to delete archived year")
		return
	}

	WriteSuccess(w, map[string]string{"message": fmt.Sprintf("Year %d evicted from archive", year)})
}

// yearParam extracts and parses the {year} path parameter, writing a
// 400 response on failure.
func (h *Handlers) yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %q", yearStr))
		return 0, false
	}
	return year, true
}

// toArchived converts a computed calendar into its archive record.
func toArchived(cal *calendar.Calendar) *database.ArchivedCalendar {
	feasts := cal.AllDates()
	archived := &database.ArchivedCalendar{
		Year:       cal.Year,
		System:     cal.System.String(),
		IsLeapYear: cal.IsLeapYear(),
		Feasts:     make([]database.ArchivedFeast, len(feasts)),
	}
	for i, feast := range feasts {
		archived.Feasts[i] = database.ArchivedFeast{
			Position: i,
			Name:     feast.Name,
			Date:     feast.Date,
		}
	}
	return archived
}

// computedToJSON renders a freshly computed calendar.
func computedToJSON(cal *calendar.Calendar) calendarJSON {
	feasts := cal.AllDates()
	out := calendarJSON{
		Year:     cal.Year,
		Calendar: cal.System.String(),
		LeapYear: cal.IsLeapYear(),
		Source:   "computed",
		Feasts:   make([]feastJSON, len(feasts)),
	}
	lentStart, lentEnd := cal.LentRange()
	out.Lent = lentJSON{
		Start: calendar.FormatDate(lentStart),
		End:   calendar.FormatDate(lentEnd),
	}
	for i, feast := range feasts {
		out.Feasts[i] = feastJSON{Name: feast.Name, Date: calendar.FormatDate(feast.Date)}
	}
	return out
}

// archivedToJSON renders an archived calendar, rebuilding the Lent
// interval from the stored Ash Wednesday and Holy Saturday rows.
func archivedToJSON(archived *database.ArchivedCalendar) calendarJSON {
	out := calendarJSON{
		Year:     archived.Year,
		Calendar: archived.System,
		LeapYear: archived.IsLeapYear,
		Source:   "archive",
		Feasts:   make([]feastJSON, len(archived.Feasts)),
	}
	for i, feast := range archived.Feasts {
		date := calendar.FormatDate(feast.Date)
		out.Feasts[i] = feastJSON{Name: feast.Name, Date: date}
		switch feast.Name {
		case calendar.FeastAshWednesday:
			out.Lent.Start = date
		case calendar.FeastHolySaturday:
			out.Lent.End = date
		}
	}
	return out
}
