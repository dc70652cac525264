package orders

import (
	"context"
	"errors"
	"testing"

	"myMiloStore/domain"
	"myMiloStore/pkg/config"
)

//
// ---------- FAKES ----------
//

// fakeOrdersRepo keeps orders in memory and counts writes.
type fakeOrdersRepo struct {
	orders []domain.Order
	nextID uint
}

func (f *fakeOrdersRepo) Create(ctx context.Context, order *domain.Order) error {
	f.nextID++
	order.ID = f.nextID
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrdersRepo) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrOrderNotFound
}

func (f *fakeOrdersRepo) FindAllJoined(ctx context.Context) ([]domain.OrderView, error) {
	views := make([]domain.OrderView, 0, len(f.orders))
	for _, o := range f.orders {
		views = append(views, domain.OrderView{
			ID:     o.ID,
			Qty:    o.Qty,
			Total:  o.Total,
			Status: o.Status,
		})
	}
	return views, nil
}

func (f *fakeOrdersRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

type fakeProductRepo struct {
	products map[uint]domain.Product
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

type fakeUserRepo struct {
	users map[uint]domain.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func newService(cfg config.OrdersConfig) (*OrdersService, *fakeOrdersRepo, *fakeProductRepo, *fakeUserRepo) {
	ordersRepo := &fakeOrdersRepo{}
	productRepo := &fakeProductRepo{products: map[uint]domain.Product{
		1: {ID: 1, Name: "Milo 1kg", Price: 95000},
	}}
	userRepo := &fakeUserRepo{users: map[uint]domain.User{
		1: {ID: 1, Username: "alice"},
	}}
	return NewOrdersService(ordersRepo, productRepo, userRepo, cfg), ordersRepo, productRepo, userRepo
}

//
// ---------- TESTS ----------
//

func TestCheckout_TotalIsPriceTimesQty(t *testing.T) {
	svc, repo, _, _ := newService(config.OrdersConfig{})

	order, err := svc.Checkout(context.Background(), 1, 1, 2)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if order.Total != 190000 {
		t.Errorf("total = %d, want 190000", order.Total)
	}
	if order.Status != domain.StatusProcessing {
		t.Errorf("status = %q, want %q", order.Status, domain.StatusProcessing)
	}
	if order.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
	if len(repo.orders) != 1 {
		t.Fatalf("orders written = %d, want 1", len(repo.orders))
	}
}

func TestCheckout_TotalIsSnapshot(t *testing.T) {
	svc, repo, productRepo, _ := newService(config.OrdersConfig{})

	order, err := svc.Checkout(context.Background(), 1, 1, 3)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// a later price change must not touch the stored total
	productRepo.products[1] = domain.Product{ID: 1, Name: "Milo 1kg", Price: 1}

	stored, err := repo.FindByID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("find order: %v", err)
	}
	if stored.Total != 285000 {
		t.Errorf("total = %d, want 285000", stored.Total)
	}
}

func TestCheckout_ProductMissing(t *testing.T) {
	svc, repo, _, _ := newService(config.OrdersConfig{})

	_, err := svc.Checkout(context.Background(), 1, 999, 1)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
	if len(repo.orders) != 0 {
		t.Errorf("orders written = %d, want 0", len(repo.orders))
	}
}

func TestCheckout_InvalidQuantity(t *testing.T) {
	svc, repo, _, _ := newService(config.OrdersConfig{})

	for _, qty := range []int{0, -1, -100} {
		_, err := svc.Checkout(context.Background(), 1, 1, qty)
		if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Errorf("qty=%d: err = %v, want ErrInvalidQuantity", qty, err)
		}
	}
	if len(repo.orders) != 0 {
		t.Errorf("orders written = %d, want 0", len(repo.orders))
	}
}

func TestCheckout_UnknownUserPermissive(t *testing.T) {
	svc, repo, _, _ := newService(config.OrdersConfig{})

	// default behavior: the user id is accepted unchecked
	order, err := svc.Checkout(context.Background(), 42, 1, 1)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.UserID != 42 {
		t.Errorf("user_id = %d, want 42", order.UserID)
	}
	if len(repo.orders) != 1 {
		t.Errorf("orders written = %d, want 1", len(repo.orders))
	}
}

func TestCheckout_UnknownUserStrict(t *testing.T) {
	svc, repo, _, _ := newService(config.OrdersConfig{EnforceUserRef: true})

	_, err := svc.Checkout(context.Background(), 42, 1, 1)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
	if len(repo.orders) != 0 {
		t.Errorf("orders written = %d, want 0", len(repo.orders))
	}

	// a known user still passes
	if _, err := svc.Checkout(context.Background(), 1, 1, 1); err != nil {
		t.Fatalf("checkout for known user failed: %v", err)
	}
}

func TestUpdateStatus_Unrestricted(t *testing.T) {
	svc, repo, _, _ := newService(config.OrdersConfig{})

	order, err := svc.Checkout(context.Background(), 1, 1, 1)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	for _, status := range []string{"Shipped", "Diproses", "☃ weird status", "", "Shipped"} {
		if err := svc.UpdateStatus(context.Background(), order.ID, status); err != nil {
			t.Fatalf("update to %q failed: %v", status, err)
		}
		stored, _ := repo.FindByID(context.Background(), order.ID)
		if stored.Status != status {
			t.Errorf("status = %q, want %q", stored.Status, status)
		}
	}
}

func TestUpdateStatus_MissingOrderPermissive(t *testing.T) {
	svc, _, _, _ := newService(config.OrdersConfig{})

	// silent no-op like the source
	if err := svc.UpdateStatus(context.Background(), 999, "Shipped"); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
}

func TestUpdateStatus_MissingOrderStrict(t *testing.T) {
	svc, _, _, _ := newService(config.OrdersConfig{StrictStatusUpdate: true})

	err := svc.UpdateStatus(context.Background(), 999, "Shipped")
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestListOrders(t *testing.T) {
	svc, _, _, _ := newService(config.OrdersConfig{})

	if _, err := svc.Checkout(context.Background(), 1, 1, 2); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	rows, err := svc.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Total != 190000 || rows[0].Qty != 2 {
		t.Errorf("row = %+v, want qty=2 total=190000", rows[0])
	}
}
