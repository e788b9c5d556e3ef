package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/plantnet-api/internal/domain/entity"
	"github.com/jhoicas/plantnet-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, compartidos por los tests
// del paquete. Reproducen el contrato de los adaptadores de PostgreSQL:
// lecturas devuelven (nil, nil) cuando la fila no existe.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Upsert(_ context.Context, user *entity.User) (bool, error) {
	if existing, ok := f.users[user.Email]; ok {
		existing.LastLogin = user.LastLogin
		return false, nil
	}
	cp := *user
	f.users[user.Email] = &cp
	return true, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) ListExcept(_ context.Context, email string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Email != email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, email, role, status string) (bool, error) {
	u, ok := f.users[email]
	if !ok {
		return false, nil
	}
	u.Role, u.Status = role, status
	return true, nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, email, status string) (bool, error) {
	u, ok := f.users[email]
	if !ok {
		return false, nil
	}
	u.Status = status
	return true, nil
}

func (f *fakeUserRepo) CountAll(context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakePlantRepo struct {
	plants map[string]*entity.Plant
}

func newFakePlantRepo() *fakePlantRepo {
	return &fakePlantRepo{plants: map[string]*entity.Plant{}}
}

func (f *fakePlantRepo) Create(_ context.Context, plant *entity.Plant) error {
	cp := *plant
	f.plants[plant.ID] = &cp
	return nil
}

func (f *fakePlantRepo) GetByID(_ context.Context, id string) (*entity.Plant, error) {
	return f.plants[id], nil
}

func (f *fakePlantRepo) List(context.Context) ([]*entity.Plant, error) {
	var out []*entity.Plant
	for _, p := range f.plants {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePlantRepo) AdjustQuantity(_ context.Context, id string, delta int) (bool, error) {
	p, ok := f.plants[id]
	if !ok {
		return false, nil
	}
	p.Quantity += delta
	return true, nil
}

func (f *fakePlantRepo) CountAll(context.Context) (int64, error) {
	return int64(len(f.plants)), nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
	daily  []repository.DailyOrderStats
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	cp := *order
	f.orders = append(f.orders, &cp)
	return nil
}

func (f *fakeOrderRepo) ListByCustomer(_ context.Context, email string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.CustomerEmail == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListBySeller(_ context.Context, email string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.SellerEmail == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) DailyStats(context.Context) ([]repository.DailyOrderStats, error) {
	return f.daily, nil
}

func (f *fakeOrderRepo) Totals(context.Context) (repository.OrderTotals, error) {
	t := repository.OrderTotals{Revenue: decimal.Zero}
	for _, o := range f.orders {
		t.Orders++
		t.Revenue = t.Revenue.Add(o.Price)
	}
	return t, nil
}

// fakeIntents registra la última solicitud al proveedor de pagos.
type fakeIntents struct {
	lastAmount   int64
	lastCurrency string
	clientSecret string
	err          error
}

func (f *fakeIntents) CreateIntent(_ context.Context, amountCents int64, currency string) (string, error) {
	f.lastAmount = amountCents
	f.lastCurrency = currency
	if f.err != nil {
		return "", f.err
	}
	return f.clientSecret, nil
}
