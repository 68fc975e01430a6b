package service

import (
	"context"

	"lightbnb/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn     func(u models.NewUser) (models.User, error)
	GetByEmailFn func(email string) (models.User, error)
	GetByIDFn    func(id int64) (models.User, error)

	createCalls []models.NewUser
}

func (m *mockUserRepo) Create(_ context.Context, u models.NewUser) (models.User, error) {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	return m.GetByEmailFn(email)
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (models.User, error) {
	return m.GetByIDFn(id)
}

type mockReservationRepo struct {
	resp      []models.Reservation
	err       error
	calls     int
	lastGuest int64
	lastLimit int
}

func (m *mockReservationRepo) ListForGuest(_ context.Context, guestID int64, limit int) ([]models.Reservation, error) {
	m.calls++
	m.lastGuest = guestID
	m.lastLimit = limit
	return m.resp, m.err
}

type mockPropertyRepo struct {
	searchResp []models.Property
	searchErr  error
	createResp models.Property
	createErr  error

	searchCalls int
	createCalls int
	lastFilter  models.PropertyFilter
	lastLimit   int
	lastNew     models.NewProperty
}

func (m *mockPropertyRepo) Search(_ context.Context, f models.PropertyFilter, limit int) ([]models.Property, error) {
	m.searchCalls++
	m.lastFilter = f
	m.lastLimit = limit
	return m.searchResp, m.searchErr
}

func (m *mockPropertyRepo) Create(_ context.Context, p models.NewProperty) (models.Property, error) {
	m.createCalls++
	m.lastNew = p
	return m.createResp, m.createErr
}
