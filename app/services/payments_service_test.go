package services_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/services"
	"github.com/shashiranjanraj/platter/pkg/faults"
)

func TestCreatePaymentPromotesRestaurant(t *testing.T) {
	db := setupDB(t)
	svc := services.NewPaymentsService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	other := mustUser(t, db, "other@example.com", models.RoleOwner)
	restaurant := mustRestaurant(t, db, owner.ID, "Burger Barn")

	if _, ferr := svc.CreatePayment(other.ID, "tx-1", restaurant.ID); ferr == nil || ferr.Kind != faults.NotOwner {
		t.Fatalf("payment by non-owner = %v, want NotOwner", ferr)
	}

	before := time.Now()
	payment, ferr := svc.CreatePayment(owner.ID, "tx-2", restaurant.ID)
	if ferr != nil {
		t.Fatalf("create payment: %v", ferr)
	}
	if payment.TransactionID != "tx-2" {
		t.Errorf("transaction id = %q", payment.TransactionID)
	}

	var fresh models.Restaurant
	db.First(&fresh, restaurant.ID)
	if !fresh.IsPromoted {
		t.Fatal("restaurant not promoted after payment")
	}
	if fresh.PromotedUntil == nil {
		t.Fatal("promotion window not set")
	}
	want := before.Add(7 * 24 * time.Hour)
	if fresh.PromotedUntil.Before(want.Add(-time.Minute)) || fresh.PromotedUntil.After(want.Add(time.Minute)) {
		t.Errorf("promoted until = %v, want about %v", fresh.PromotedUntil, want)
	}
}

func TestGetPaymentsScopedToUser(t *testing.T) {
	db := setupDB(t)
	svc := services.NewPaymentsService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	other := mustUser(t, db, "other@example.com", models.RoleOwner)
	mine := mustRestaurant(t, db, owner.ID, "Burger Barn")
	theirs := mustRestaurant(t, db, other.ID, "Sushi Spot")

	if _, ferr := svc.CreatePayment(owner.ID, "tx-1", mine.ID); ferr != nil {
		t.Fatalf("payment: %v", ferr)
	}
	if _, ferr := svc.CreatePayment(other.ID, "tx-2", theirs.ID); ferr != nil {
		t.Fatalf("payment: %v", ferr)
	}

	payments, ferr := svc.GetPayments(owner.ID)
	if ferr != nil {
		t.Fatalf("get payments: %v", ferr)
	}
	if len(payments) != 1 || payments[0].TransactionID != "tx-1" {
		t.Fatalf("payments = %+v, want only tx-1", payments)
	}
}

func TestExpirePromotionsClearsOnlyLapsedWindows(t *testing.T) {
	db := setupDB(t)
	svc := services.NewPaymentsService()
	owner := mustUser(t, db, "owner@example.com", models.RoleOwner)
	lapsed := mustRestaurant(t, db, owner.ID, "Lapsed")
	active := mustRestaurant(t, db, owner.ID, "Active")

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	db.Model(&models.Restaurant{}).Where("id = ?", lapsed.ID).
		Updates(map[string]interface{}{"is_promoted": true, "promoted_until": past})
	db.Model(&models.Restaurant{}).Where("id = ?", active.ID).
		Updates(map[string]interface{}{"is_promoted": true, "promoted_until": future})

	svc.ExpirePromotions()

	var fresh models.Restaurant
	db.First(&fresh, lapsed.ID)
	if fresh.IsPromoted || fresh.PromotedUntil != nil {
		t.Errorf("lapsed promotion still active: promoted=%v until=%v", fresh.IsPromoted, fresh.PromotedUntil)
	}

	db.First(&fresh, active.ID)
	if !fresh.IsPromoted {
		t.Error("active promotion was cleared early")
	}
}
