package repositories

import (
	"github.com/google/uuid"

	"github.com/shashiranjanraj/platter/app/models"
	"github.com/shashiranjanraj/platter/pkg/orm"
)

// VerificationRepository handles the one-time email confirmation codes.
type VerificationRepository struct{}

func NewVerificationRepository() *VerificationRepository {
	return &VerificationRepository{}
}

// Issue replaces any existing verification for the user with a fresh
// random code and returns it.
func (r *VerificationRepository) Issue(userID uint) (models.Verification, error) {
	// A user holds at most one live code; email edits re-issue it. Hard
	// delete, otherwise the unique user_id index blocks the new row.
	if err := orm.DB().Gorm().Unscoped().
		Where("user_id = ?", userID).
		Delete(&models.Verification{}).Error; err != nil {
		return models.Verification{}, err
	}

	v := models.Verification{
		Code:   uuid.NewString(),
		UserID: userID,
	}
	if err := orm.DB().Create(&v); err != nil {
		return models.Verification{}, err
	}
	return v, nil
}

// FindByCode looks up a verification by its code, with the user loaded.
func (r *VerificationRepository) FindByCode(code string) (models.Verification, error) {
	var v models.Verification
	err := orm.DB().Model(&models.Verification{}).
		Preload("User").
		Where("code = ?", code).
		First(&v)
	return v, err
}

// Consume deletes a verification after use. Codes are single-use.
func (r *VerificationRepository) Consume(v *models.Verification) error {
	return orm.DB().Gorm().Unscoped().Delete(v).Error
}
