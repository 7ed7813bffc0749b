package services

import (
	"time"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/app/repositories"
	"github.com/shashiranjanraj/platter/pkg/faults"
	"github.com/shashiranjanraj/platter/pkg/logger"
)

// promotionWindow is how long one payment keeps a restaurant promoted.
const promotionWindow = 7 * 24 * time.Hour

// PaymentsService records promotion purchases and runs the expiry sweep.
type PaymentsService struct {
	payments    *repositories.PaymentRepository
	restaurants *RestaurantsService
}

func NewPaymentsService() *PaymentsService {
	return &PaymentsService{
		payments:    repositories.NewPaymentRepository(),
		restaurants: NewRestaurantsService(),
	}
}

// CreatePayment records a transaction against an owned restaurant and
// promotes it for seven days.
func (s *PaymentsService) CreatePayment(ownerID uint, transactionID string, restaurantID uint) (*models.Payment, *faults.Error) {
	restaurant, ferr := s.restaurants.canEdit(ownerID, restaurantID)
	if ferr != nil {
		return nil, ferr
	}

	payment := models.Payment{
		TransactionID: transactionID,
		UserID:        ownerID,
		RestaurantID:  restaurantID,
	}
	if err := s.payments.Create(&payment); err != nil {
		return nil, faults.Wrap(err, "Could not create payment")
	}

	if ferr := s.restaurants.Promote(&restaurant, time.Now().Add(promotionWindow)); ferr != nil {
		return nil, ferr
	}
	return &payment, nil
}

// GetPayments returns the calling user's payments.
func (s *PaymentsService) GetPayments(userID uint) ([]models.Payment, *faults.Error) {
	payments, err := s.payments.ByUser(userID)
	if err != nil {
		return nil, faults.Wrap(err, "Could not load payments")
	}
	return payments, nil
}

// ExpirePromotions clears the promoted flag on every restaurant whose
// window lapsed. Registered as a scheduled task at boot.
func (s *PaymentsService) ExpirePromotions() {
	n, err := s.restaurants.restaurants.ClearExpiredPromotions(time.Now())
	if err != nil {
		logger.Error("payments: promotion sweep", "error", err)
		return
	}
	if n > 0 {
		logger.Info("payments: promotions expired", "count", n)
	}
}
