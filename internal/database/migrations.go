package database

// migrationsSQL contains all database migrations, applied in order by
// version number. Each migration is idempotent.
var migrationsSQL = map[int]string{
	1: migrationV1CalendarArchive,
}

// migrationV1CalendarArchive creates the calendar archive schema.
//
// calendar_years holds one row per archived civil year with its
// calendar-system metadata; feast_dates holds that year's resolved
// feasts. The position column preserves the liturgical ordering the
// engine produced, so a read rebuilds the bulk view exactly.
const migrationV1CalendarArchive = `
-- Migration 001: calendar archive

CREATE TABLE IF NOT EXISTS calendar_years (
    year INTEGER PRIMARY KEY,
    calendar_system TEXT NOT NULL CHECK (calendar_system IN ('Julian', 'Gregorian')),
    is_leap_year INTEGER NOT NULL CHECK (is_leap_year IN (0, 1)),
    computed_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS feast_dates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    year INTEGER NOT NULL,

    -- Liturgical-year ordering within the year
    position INTEGER NOT NULL,

    name TEXT NOT NULL,

    -- Civil date as YYYY-MM-DD
    date TEXT NOT NULL,

    FOREIGN KEY (year) REFERENCES calendar_years(year) ON DELETE CASCADE,

    UNIQUE (year, name)
);

CREATE INDEX IF NOT EXISTS idx_feast_dates_year
    ON feast_dates(year, position);
`
