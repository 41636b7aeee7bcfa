package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunwoopark/podomarket/internal/domain"
	"github.com/hyunwoopark/podomarket/internal/service"
	"github.com/hyunwoopark/podomarket/internal/storage"
)

func newCoupons(t *testing.T, onDelete func(code string)) service.CouponService {
	t.Helper()
	return service.NewCouponService(context.Background(), storage.NewMemoryStore(), onDelete, nil, nil)
}

func TestCouponService_SeedsWhenEmpty(t *testing.T) {
	coupons := newCoupons(t, nil)

	all := coupons.List(context.Background())
	require.Len(t, all, 2)
	assert.Equal(t, "AMOUNT5000", all[0].Code)
	assert.Equal(t, "PERCENT10", all[1].Code)
}

func TestCouponService_AddRejectsDuplicateCode(t *testing.T) {
	coupons := newCoupons(t, nil)
	ctx := context.Background()

	err := coupons.Add(ctx, domain.Coupon{
		Code:          "AMOUNT5000",
		Name:          "duplicate",
		DiscountType:  domain.DiscountAmount,
		DiscountValue: 1000,
	})
	assert.ErrorIs(t, err, service.ErrDuplicateCouponCode)
	assert.Len(t, coupons.List(ctx), 2, "rejected add leaves the list unchanged")
}

func TestCouponService_AddValidation(t *testing.T) {
	coupons := newCoupons(t, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		coupon domain.Coupon
	}{
		{"missing code", domain.Coupon{Name: "x", DiscountType: domain.DiscountAmount, DiscountValue: 1}},
		{"bad type", domain.Coupon{Code: "X", Name: "x", DiscountType: "half-off", DiscountValue: 1}},
		{"percentage above 100", domain.Coupon{Code: "X", Name: "x", DiscountType: domain.DiscountPercentage, DiscountValue: 150}},
		{"negative amount", domain.Coupon{Code: "X", Name: "x", DiscountType: domain.DiscountAmount, DiscountValue: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := coupons.Add(ctx, tt.coupon)
			assert.True(t, domain.IsCode(err, domain.EINVALID), "expected invalid, got %v", err)
		})
	}
}

func TestCouponService_DeleteRunsHook(t *testing.T) {
	var deselected []string
	coupons := newCoupons(t, func(code string) { deselected = append(deselected, code) })
	ctx := context.Background()

	require.NoError(t, coupons.Delete(ctx, "PERCENT10"))
	assert.Equal(t, []string{"PERCENT10"}, deselected)
	assert.Len(t, coupons.List(ctx), 1)

	_, err := coupons.Get(ctx, "PERCENT10")
	assert.ErrorIs(t, err, service.ErrCouponNotFound)

	err = coupons.Delete(ctx, "PERCENT10")
	assert.ErrorIs(t, err, service.ErrCouponNotFound)
	assert.Len(t, deselected, 1, "hook runs only for actual deletions")
}
