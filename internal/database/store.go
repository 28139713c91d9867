package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Storage layouts for civil dates and SQLite's datetime('now').
const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"
)

// GetCalendar loads an archived year with its feasts in liturgical
// order. Returns ErrNotFound when the year has not been archived.
func (db *DB) GetCalendar(ctx context.Context, year int) (*ArchivedCalendar, error) {
	cal := &ArchivedCalendar{Year: year}

	var isLeap int
	var computedAt string
	err := db.QueryRowContext(ctx, `
		SELECT calendar_system, is_leap_year, computed_at
		FROM calendar_years
		WHERE year = ?
	`, year).Scan(&cal.System, &isLeap, &computedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("calendar year %d: %w", year, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query calendar year %d: %w", year, err)
	}
	cal.IsLeapYear = isLeap != 0
	if t, err := time.Parse(datetimeLayout, computedAt); err == nil {
		cal.ComputedAt = t
	}

	rows, err := db.QueryContext(ctx, `
		SELECT position, name, date
		FROM feast_dates
		WHERE year = ?
		ORDER BY position
	`, year)
	if err != nil {
		return nil, fmt.Errorf("query feast dates for %d: %w", year, err)
	}
	defer rows.Close()

	for rows.Next() {
		var feast ArchivedFeast
		var date string
		if err := rows.Scan(&feast.Position, &feast.Name, &date); err != nil {
			return nil, fmt.Errorf("scan feast date: %w", err)
		}
		feast.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q for %d: %w", date, year, err)
		}
		cal.Feasts = append(cal.Feasts, feast)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feast dates: %w", err)
	}

	return cal, nil
}

// SaveCalendar archives a computed year, replacing any previous record
// for the same year atomically.
func (db *DB) SaveCalendar(ctx context.Context, cal *ArchivedCalendar) error {
	return db.WithTx(ctx, func(tx *Tx) error {
		isLeap := 0
		if cal.IsLeapYear {
			isLeap = 1
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO calendar_years (year, calendar_system, is_leap_year)
			VALUES (?, ?, ?)
			ON CONFLICT (year) DO UPDATE SET
				calendar_system = excluded.calendar_system,
				is_leap_year = excluded.is_leap_year,
				computed_at = datetime('now')
		`, cal.Year, cal.System, isLeap)
		if err != nil {
			return fmt.Errorf("upsert calendar year %d: %w", cal.Year, err)
		}

		_, err = tx.ExecContext(ctx, "DELETE FROM feast_dates WHERE year = ?", cal.Year)
		if err != nil {
			return fmt.Errorf("clear feast dates for %d: %w", cal.Year, err)
		}

		for _, feast := range cal.Feasts {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO feast_dates (year, position, name, date)
				VALUES (?, ?, ?, ?)
			`, cal.Year, feast.Position, feast.Name, feast.Date.Format(dateLayout))
			if err != nil {
				return fmt.Errorf("insert feast %q for %d: %w", feast.Name, cal.Year, err)
			}
		}

		return nil
	})
}

// DeleteCalendar removes an archived year and its feasts. Returns
// ErrNotFound when the year was not archived.
func (db *DB) DeleteCalendar(ctx context.Context, year int) error {
	result, err := db.ExecContext(ctx, "DELETE FROM calendar_years WHERE year = ?", year)
	if err != nil {
		return fmt.Errorf("delete calendar year %d: %w", year, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete calendar year %d: %w", year, err)
	}
	if affected == 0 {
		return fmt.Errorf("calendar year %d: %w", year, ErrNotFound)
	}

	return nil
}

// ListYears returns all archived years in ascending order.
func (db *DB) ListYears(ctx context.Context) ([]int, error) {
	rows, err := db.QueryContext(ctx, "SELECT year FROM calendar_years ORDER BY year")
	if err != nil {
		return nil, fmt.Errorf("query archived years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("scan archived year: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate archived years: %w", err)
	}

	return years, nil
}
