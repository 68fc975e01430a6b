package seed_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lightbnb/internal/models"
	"lightbnb/internal/repository"
	"lightbnb/internal/repository/db"
	"lightbnb/internal/seed"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func count(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := conn.QueryRow("SELECT count(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestLoad(t *testing.T) {
	f, err := seed.Load("testdata/fixtures.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Users) != 2 || len(f.Properties) != 3 || len(f.Reservations) != 3 || len(f.PropertyReviews) != 3 {
		t.Fatalf("unexpected fixture sizes: %d users, %d properties, %d reservations, %d reviews",
			len(f.Users), len(f.Properties), len(f.Reservations), len(f.PropertyReviews))
	}
}

func TestLoad_Errors(t *testing.T) {
	malformed := filepath.Join(t.TempDir(), "malformed.json")
	if err := os.WriteFile(malformed, []byte(`{"users": [`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", "testdata/does-not-exist.json", "read seed file"},
		{"malformed json", malformed, "parse seed file"},
		{"dangling reference", "testdata/bad_reference.json", "review property 1 references position 9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Load(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestApply_SeedsEmptyStoreOnce(t *testing.T) {
	conn := openSQLite(t)
	f, err := seed.Load("testdata/fixtures.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	seeded, err := seed.Apply(context.Background(), conn, f)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !seeded {
		t.Fatalf("expected empty store to be seeded")
	}
	for table, want := range map[string]int{"users": 2, "properties": 3, "reservations": 3, "property_reviews": 3} {
		if got := count(t, conn, table); got != want {
			t.Fatalf("%s count = %d, want %d", table, got, want)
		}
	}

	seeded, err = seed.Apply(context.Background(), conn, f)
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if seeded {
		t.Fatalf("expected non-empty store to be left alone")
	}
	if got := count(t, conn, "users"); got != 2 {
		t.Fatalf("users count after second Apply = %d, want 2", got)
	}
}

func TestApply_SeededDataIsSearchable(t *testing.T) {
	conn := openSQLite(t)
	f, err := seed.Load("testdata/fixtures.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := seed.Apply(context.Background(), conn, f); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	repos := repository.NewRepository(conn)
	got, err := repos.Properties.Search(context.Background(), models.PropertyFilter{City: "Vancouver", MinimumRating: 4}, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 Vancouver properties, got %+v", got)
	}
	if got[0].CostPerNight != 8400 || got[1].CostPerNight != 12500 {
		t.Fatalf("unexpected order: %d, %d", got[0].CostPerNight, got[1].CostPerNight)
	}

	u, err := repos.Users.GetByEmail(context.Background(), "SEBASTIANGUERRA@YMAIL.COM")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.Name != "Eva Stanley" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestApply_RejectsDanglingReferences(t *testing.T) {
	conn := openSQLite(t)
	f := &seed.Fixtures{
		Users:      []seed.User{{Name: "A", Email: "a@example.com", Password: "h"}},
		Properties: []seed.Property{{OwnerID: 2, Title: "Orphan"}},
	}
	if _, err := seed.Apply(context.Background(), conn, f); err == nil {
		t.Fatalf("expected reference error")
	}
	if got := count(t, conn, "users"); got != 0 {
		t.Fatalf("nothing should be written, users = %d", got)
	}
}
