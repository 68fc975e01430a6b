package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var reservationRowColumns = []string{
	"id", "guest_id", "property_id", "start_date", "end_date",
	"title", "cost_per_night", "average_rating",
}

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestReservationRepository_ListForGuest(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewReservationRepository(db)

	first := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Two stays at the same property come back as distinct rows.
	rows := sqlmock.NewRows(reservationRowColumns).
		AddRow(11, 1, 5, first, first.AddDate(0, 0, 3), "Speed lamp", 9300, 4.25).
		AddRow(12, 1, 5, second, second.AddDate(0, 0, 7), "Speed lamp", 9300, 4.25)

	mock.ExpectQuery(regexp.QuoteMeta(selectGuestReservationsSQL)).
		WithArgs(1, 2).
		WillReturnRows(rows)

	got, err := repo.ListForGuest(ctx(t), 1, 2)
	if err != nil {
		t.Fatalf("ListForGuest: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 reservations, got %d", len(got))
	}
	if got[0].ID != 11 || got[1].ID != 12 {
		t.Fatalf("unexpected ids: %d, %d", got[0].ID, got[1].ID)
	}
	if !got[0].StartDate.Before(got[1].StartDate) {
		t.Fatalf("expected ascending start dates, got %v then %v", got[0].StartDate, got[1].StartDate)
	}
	if got[0].Title != "Speed lamp" || got[0].CostPerNight != 9300 || got[0].AverageRating != 4.25 {
		t.Fatalf("unexpected property fields: %+v", got[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestReservationRepository_ListForGuest_DefaultLimit(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewReservationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(selectGuestReservationsSQL)).
		WithArgs(9, DefaultLimit).
		WillReturnRows(sqlmock.NewRows(reservationRowColumns))

	got, err := repo.ListForGuest(ctx(t), 9, 0)
	if err != nil {
		t.Fatalf("ListForGuest: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestReservationRepository_ListForGuest_QueryError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewReservationRepository(db)

	mock.ExpectQuery("SELECT reservations.id").
		WillReturnError(errors.New("down"))

	_, err = repo.ListForGuest(ctx(t), 1, 10)
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestReservationRepository_ListForGuest_ScanError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewReservationRepository(db)

	rows := sqlmock.NewRows(reservationRowColumns).
		// start_date of the wrong type
		AddRow(1, 1, 1, 123, time.Now(), "t", 100, 5.0)

	mock.ExpectQuery(regexp.QuoteMeta(selectGuestReservationsSQL)).
		WithArgs(1, 10).
		WillReturnRows(rows)

	_, err = repo.ListForGuest(ctx(t), 1, 10)
	if err == nil || !strings.Contains(err.Error(), "scan reservation") {
		t.Fatalf("expected scan error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
