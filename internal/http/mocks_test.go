package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/cart"
	httpapi "github.com/kavia-common/cafe-pos/pos-service-go/internal/http"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/menu"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/money"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/order"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/session"
)

type menuRepoMock struct {
	ListFunc    func(ctx context.Context, activeOnly bool) ([]menu.Item, error)
	GetByIDFunc func(ctx context.Context, id string) (*menu.Item, error)
	CreateFunc  func(ctx context.Context, it *menu.Item) error
	UpdateFunc  func(ctx context.Context, it *menu.Item) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *menuRepoMock) List(ctx context.Context, activeOnly bool) ([]menu.Item, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *menuRepoMock) GetByID(ctx context.Context, id string) (*menu.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *menuRepoMock) Create(ctx context.Context, it *menu.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, it)
	}
	return nil
}

func (m *menuRepoMock) Update(ctx context.Context, it *menu.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, it)
	}
	return nil
}

func (m *menuRepoMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type orderRepoMock struct {
	CreateFunc     func(ctx context.Context, o *order.Order) error
	GetByIDFunc    func(ctx context.Context, orderID string) (*order.Order, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]order.Order, error)
	SummarizeFunc  func(ctx context.Context, since time.Time) (*order.Summary, error)
}

func (m *orderRepoMock) Create(ctx context.Context, o *order.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *orderRepoMock) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *orderRepoMock) ListRecent(ctx context.Context, limit int) ([]order.Order, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *orderRepoMock) Summarize(ctx context.Context, since time.Time) (*order.Summary, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, since)
	}
	return &order.Summary{Since: since, TenderCounts: map[string]int64{}}, nil
}

type checkoutServiceMock struct {
	CheckoutFunc func(ctx context.Context, store *cart.Store, tender order.Tender) (*order.Order, error)
}

func (m *checkoutServiceMock) Checkout(ctx context.Context, store *cart.Store, tender order.Tender) (*order.Order, error) {
	if m.CheckoutFunc != nil {
		return m.CheckoutFunc(ctx, store, tender)
	}
	return &order.Order{ID: "order-1", TenderType: tender}, nil
}

type dbPingerMock struct {
	err error
}

func (m dbPingerMock) PingContext(ctx context.Context) error { return m.err }

type testApp struct {
	router   http.Handler
	carts    *cart.Manager
	menu     *menuRepoMock
	orders   *orderRepoMock
	checkout *checkoutServiceMock
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	app := &testApp{
		carts:    cart.NewManager(money.DefaultTaxRateTenthBps, session.NewMemoryStore()),
		menu:     &menuRepoMock{},
		orders:   &orderRepoMock{},
		checkout: &checkoutServiceMock{},
	}

	logger := log.New(io.Discard, "", log.LstdFlags)
	app.router = httpapi.NewRouter(
		httpapi.NewCartHandler(app.carts),
		httpapi.NewMenuHandler(app.menu),
		httpapi.NewCheckoutHandler(app.carts, app.checkout),
		httpapi.NewSalesHandler(app.orders),
		httpapi.NewDiagHandler(dbPingerMock{}, session.NewMemoryStore(), false, money.DefaultTaxRateTenthBps),
		logger,
	)
	return app
}

func (app *testApp) do(t *testing.T, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	r := httptest.NewRequest(method, path, reader)
	if sessionID != "" {
		r.Header.Set(httpapi.HeaderSessionID, sessionID)
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, r)
	return w
}

type cartViewResp struct {
	SessionID     string          `json:"sessionId"`
	Items         []cart.LineItem `json:"items"`
	SubtotalCents int64           `json:"subtotalCents"`
	TaxCents      int64           `json:"taxCents"`
	TotalCents    int64           `json:"totalCents"`
}

func decodeCartView(t *testing.T, w *httptest.ResponseRecorder) cartViewResp {
	t.Helper()
	var v cartViewResp
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decode cart view: %v", err)
	}
	return v
}
