package storefront_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunwoopark/podomarket/internal/domain"
	"github.com/hyunwoopark/podomarket/internal/handler/storefront"
	"github.com/hyunwoopark/podomarket/internal/notify"
	"github.com/hyunwoopark/podomarket/internal/router"
	"github.com/hyunwoopark/podomarket/internal/routes"
	"github.com/hyunwoopark/podomarket/internal/service"
	"github.com/hyunwoopark/podomarket/internal/storage"
)

type storefrontFixture struct {
	router   *router.Router
	catalog  service.CatalogService
	cart     service.CartService
	coupons  service.CouponService
	notifier *notify.Center
}

func newStorefrontFixture(t *testing.T) *storefrontFixture {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemoryStore()

	notifier := notify.NewCenter(time.Minute, nil)
	t.Cleanup(notifier.Close)

	catalog := service.NewCatalogService(ctx, store, 9999, notifier, nil)
	cart := service.NewCartService(ctx, store, catalog, 10000, notifier, nil)
	coupons := service.NewCouponService(ctx, store, cart.DeselectIfCode, notifier, nil)

	search := storefront.NewSearchTracker(time.Millisecond, nil, nil)
	t.Cleanup(search.Close)

	r := router.New()
	routes.RegisterStorefrontRoutes(r, routes.StorefrontDeps{
		ProductHandler:      storefront.NewProductHandler(catalog, cart, search),
		CartHandler:         storefront.NewCartHandler(cart, nil),
		CouponHandler:       storefront.NewCouponHandler(coupons, cart, nil),
		OrderHandler:        storefront.NewOrderHandler(cart, nil),
		NotificationHandler: storefront.NewNotificationHandler(notifier),
	})

	return &storefrontFixture{router: r, catalog: catalog, cart: cart, coupons: coupons, notifier: notifier}
}

func (f *storefrontFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
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

func TestProductList(t *testing.T) {
	f := newStorefrontFixture(t)

	rec := f.do(t, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	products := body["products"].([]any)
	require.Len(t, products, 3, "seed catalog has three products")

	first := products[0].(map[string]any)
	assert.Equal(t, "₩10,000", first["displayPrice"])
	assert.Equal(t, float64(20), first["remainingStock"])
	assert.Equal(t, false, first["soldOut"].(bool))
}

func TestProductListSearchFilters(t *testing.T) {
	f := newStorefrontFixture(t)
	ctx := context.Background()

	_, err := f.catalog.Add(ctx, domain.Product{Name: "Drip Kettle", Price: 45000, Stock: 5})
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/products?q=kettle", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeBody(t, rec)["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "Drip Kettle", products[0].(map[string]any)["name"])
}

func TestProductListShowsSoldOut(t *testing.T) {
	f := newStorefrontFixture(t)
	ctx := context.Background()

	p, err := f.catalog.Add(ctx, domain.Product{Name: "Last One", Price: 7000, Stock: 1})
	require.NoError(t, err)
	require.NoError(t, f.cart.Add(ctx, p.ID))

	rec := f.do(t, http.MethodGet, "/products?q=last+one", nil)
	products := decodeBody(t, rec)["products"].([]any)
	require.Len(t, products, 1)

	view := products[0].(map[string]any)
	assert.Equal(t, true, view["soldOut"].(bool))
	assert.Equal(t, float64(0), view["remainingStock"])
	assert.Equal(t, "SOLD OUT", view["displayPrice"])
}

func TestCartAddAndView(t *testing.T) {
	f := newStorefrontFixture(t)

	rec := f.do(t, http.MethodPost, "/cart/items", map[string]string{"productId": "p1"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["itemCount"])

	rec = f.do(t, http.MethodGet, "/cart", nil)
	body = decodeBody(t, rec)
	totals := body["totals"].(map[string]any)
	assert.Equal(t, float64(10000), totals["totalAfterDiscount"])
	assert.Equal(t, "₩10,000", totals["displayTotalAfterDiscount"])
}

func TestCartAddUnknownProduct(t *testing.T) {
	f := newStorefrontFixture(t)

	rec := f.do(t, http.MethodPost, "/cart/items", map[string]string{"productId": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartAddMissingProductID(t *testing.T) {
	f := newStorefrontFixture(t)

	rec := f.do(t, http.MethodPost, "/cart/items", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartUpdateQuantityBeyondStock(t *testing.T) {
	f := newStorefrontFixture(t)

	rec := f.do(t, http.MethodPost, "/cart/items", map[string]string{"productId": "p1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPut, "/cart/items/p1", map[string]int{"quantity": 21})
	assert.Equal(t, http.StatusConflict, rec.Code, "seed stock is 20")
}

func TestCartUpdateQuantityAppliesBulkDiscount(t *testing.T) {
	f := newStorefrontFixture(t)

	f.do(t, http.MethodPost, "/cart/items", map[string]string{"productId": "p1"})
	rec := f.do(t, http.MethodPut, "/cart/items/p1", map[string]int{"quantity": 15})
	require.Equal(t, http.StatusOK, rec.Code)

	totals := decodeBody(t, rec)["totals"].(map[string]any)
	assert.Equal(t, float64(150000), totals["totalBeforeDiscount"])
	assert.Equal(t, float64(135000), totals["totalAfterDiscount"], "ten-unit tier at 10%")
}

func TestCartRemove(t *testing.T) {
	f := newStorefrontFixture(t)

	f.do(t, http.MethodPost, "/cart/items", map[string]string{"productId": "p1"})
	rec := f.do(t, http.MethodDelete, "/cart/items/p1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeBody(t, rec)["itemCount"])
}

func TestCouponList(t *testing.T) {
	f := newStorefrontFixture(t)

	rec := f.do(t, http.MethodGet, "/coupons", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["coupons"].([]any), 2, "seed coupons")
}

func TestCouponApplyAmount(t *testing.T) {
	f := newStorefrontFixture(t)

	f.do(t, http.MethodPost, "/cart/items", map[string]string{"productId": "p1"})

	rec := f.do(t, http.MethodPost, "/cart/coupon", map[string]string{"code": "AMOUNT5000"})
	require.Equal(t, http.StatusOK, rec.Code)

	totals := decodeBody(t, rec)["totals"].(map[string]any)
	assert.Equal(t, float64(5000), totals["totalAfterDiscount"])
}

func TestCouponApplyUnknownCode(t *testing.T) {
	f := newStorefrontFixture(t)

	rec := f.do(t, http.MethodPost, "/cart/coupon", map[string]string{"code": "NOPE"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCouponApplyPercentageBelowThreshold(t *testing.T) {
	f := newStorefrontFixture(t)
	ctx := context.Background()

	cheap, err := f.catalog.Add(ctx, domain.Product{Name: "Sticker", Price: 2000, Stock: 10})
	require.NoError(t, err)
	require.NoError(t, f.cart.Add(ctx, cheap.ID))

	rec := f.do(t, http.MethodPost, "/cart/coupon", map[string]string{"code": "PERCENT10"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCouponDeselect(t *testing.T) {
	f := newStorefrontFixture(t)

	f.do(t, http.MethodPost, "/cart/items", map[string]string{"productId": "p1"})
	f.do(t, http.MethodPost, "/cart/coupon", map[string]string{"code": "AMOUNT5000"})

	rec := f.do(t, http.MethodDelete, "/cart/coupon", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/cart", nil)
	body := decodeBody(t, rec)
	assert.Nil(t, body["coupon"])
	totals := body["totals"].(map[string]any)
	assert.Equal(t, float64(10000), totals["totalAfterDiscount"])
}

func TestOrderComplete(t *testing.T) {
	f := newStorefrontFixture(t)

	f.do(t, http.MethodPost, "/cart/items", map[string]string{"productId": "p1"})

	rec := f.do(t, http.MethodPost, "/orders", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	orderNumber := decodeBody(t, rec)["orderNumber"].(string)
	assert.True(t, strings.HasPrefix(orderNumber, "ORD-"), "got %q", orderNumber)

	rec = f.do(t, http.MethodGet, "/cart", nil)
	assert.Equal(t, float64(0), decodeBody(t, rec)["itemCount"], "checkout clears the cart")
}

func TestNotificationsListAndDismiss(t *testing.T) {
	f := newStorefrontFixture(t)

	f.do(t, http.MethodPost, "/cart/items", map[string]string{"productId": "p1"})

	rec := f.do(t, http.MethodGet, "/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	notifications := decodeBody(t, rec)["notifications"].([]any)
	require.NotEmpty(t, notifications)

	id := notifications[0].(map[string]any)["id"].(string)
	rec = f.do(t, http.MethodDelete, "/notifications/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/notifications", nil)
	assert.Empty(t, decodeBody(t, rec)["notifications"])
}
