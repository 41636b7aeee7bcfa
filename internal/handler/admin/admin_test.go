package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunwoopark/podomarket/internal/domain"
	"github.com/hyunwoopark/podomarket/internal/handler/admin"
	"github.com/hyunwoopark/podomarket/internal/router"
	"github.com/hyunwoopark/podomarket/internal/routes"
	"github.com/hyunwoopark/podomarket/internal/service"
	"github.com/hyunwoopark/podomarket/internal/storage"
)

type adminFixture struct {
	router  *router.Router
	catalog service.CatalogService
	cart    service.CartService
	coupons service.CouponService
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemoryStore()

	catalog := service.NewCatalogService(ctx, store, 9999, nil, nil)
	cart := service.NewCartService(ctx, store, catalog, 10000, nil, nil)
	coupons := service.NewCouponService(ctx, store, cart.DeselectIfCode, nil, nil)

	r := router.New()
	routes.RegisterAdminRoutes(r, routes.AdminDeps{
		ProductHandler: admin.NewProductHandler(catalog),
		CouponHandler:  admin.NewCouponHandler(coupons),
	})

	return &adminFixture{router: r, catalog: catalog, cart: cart, coupons: coupons}
}

func (f *adminFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestAdminProductListUsesAdminPriceFormat(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.do(t, http.MethodGet, "/admin/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeBody(t, rec)["products"].([]any)
	require.Len(t, products, 3)
	assert.Equal(t, "10,000원", products[0].(map[string]any)["displayPrice"])
}

func TestAdminProductCreate(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.do(t, http.MethodPost, "/admin/products", map[string]any{
		"name":  "Hand Grinder",
		"price": 55000,
		"stock": 8,
		"discounts": []map[string]any{
			{"quantity": 5, "rate": 0.1},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "55,000원", body["displayPrice"])

	products := f.catalog.List(context.Background())
	assert.Len(t, products, 4)
}

func TestAdminProductCreateRejectsInvalidPayload(t *testing.T) {
	f := newAdminFixture(t)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{
			name:    "missing name",
			payload: map[string]any{"price": 1000, "stock": 1},
		},
		{
			name:    "negative price",
			payload: map[string]any{"name": "Bad", "price": -1, "stock": 1},
		},
		{
			name: "discount rate of one or more",
			payload: map[string]any{
				"name": "Bad", "price": 1000, "stock": 1,
				"discounts": []map[string]any{{"quantity": 1, "rate": 1.0}},
			},
		},
		{
			name: "discount tier below one unit",
			payload: map[string]any{
				"name": "Bad", "price": 1000, "stock": 1,
				"discounts": []map[string]any{{"quantity": 0, "rate": 0.1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/admin/products", tt.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAdminProductUpdate(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.do(t, http.MethodPut, "/admin/products/p1", map[string]any{
		"name":  "Renamed",
		"price": 12000,
		"stock": 30,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	updated, err := f.catalog.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, int64(12000), updated.Price)
}

func TestAdminProductUpdateUnknownID(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.do(t, http.MethodPut, "/admin/products/ghost", map[string]any{
		"name": "Ghost", "price": 1, "stock": 1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminProductDelete(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.do(t, http.MethodDelete, "/admin/products/p1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err := f.catalog.Get(context.Background(), "p1")
	assert.Error(t, err)
}

func TestAdminCouponCreate(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.do(t, http.MethodPost, "/admin/coupons", map[string]any{
		"code":          "WELCOME20",
		"name":          "Welcome 20%",
		"discountType":  "percentage",
		"discountValue": 20,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created, err := f.coupons.Get(context.Background(), "WELCOME20")
	require.NoError(t, err)
	assert.Equal(t, domain.DiscountPercentage, created.DiscountType)
}

func TestAdminCouponCreateDuplicateCode(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.do(t, http.MethodPost, "/admin/coupons", map[string]any{
		"code":          "AMOUNT5000",
		"name":          "Again",
		"discountType":  "amount",
		"discountValue": 1000,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminCouponCreateRejectsUnknownType(t *testing.T) {
	f := newAdminFixture(t)

	rec := f.do(t, http.MethodPost, "/admin/coupons", map[string]any{
		"code":          "ODD",
		"name":          "Odd",
		"discountType":  "bogus",
		"discountValue": 10,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminCouponDeleteDeselectsFromCart(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cart.Add(ctx, "p1"))
	coupon, err := f.coupons.Get(ctx, "AMOUNT5000")
	require.NoError(t, err)
	require.NoError(t, f.cart.ApplyCoupon(ctx, coupon))

	rec := f.do(t, http.MethodDelete, "/admin/coupons/AMOUNT5000", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Nil(t, f.cart.SelectedCoupon(ctx), "deleting a coupon clears it from the cart")
}
