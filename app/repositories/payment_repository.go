package repositories

import (
	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/pkg/orm"
)

// PaymentRepository handles database operations for Payment.
type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

// Create persists a new payment record.
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return orm.DB().Create(payment)
}

// ByUser returns the calling user's payments, newest first.
func (r *PaymentRepository) ByUser(userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := orm.DB().Model(&models.Payment{}).
		Where("user_id = ?", userID).
		Order("id desc").
		Get(&payments)
	return payments, err
}
