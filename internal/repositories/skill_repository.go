package repositories

import (
	"context"

	"gorm.io/gorm"

	"careerpro_backend/internal/models"
)

type SkillRepository interface {
	// FindOrCreate resolves a skill by name, creating it when missing.
	FindOrCreate(ctx context.Context, name, category string) (*models.Skill, error)
	// ReplaceForSeeker swaps the seeker's skill set atomically.
	ReplaceForSeeker(ctx context.Context, seekerID string, skillIDs []string) error
	ListForSeeker(ctx context.Context, seekerID string) ([]models.SeekerSkill, error)
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) FindOrCreate(ctx context.Context, name, category string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Attrs(models.Skill{Category: category}).
		FirstOrCreate(&skill, models.Skill{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) ReplaceForSeeker(ctx context.Context, seekerID string, skillIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("seeker_id = ?", seekerID).Delete(&models.SeekerSkill{}).Error; err != nil {
			return err
		}
		for _, id := range skillIDs {
			link := models.SeekerSkill{SeekerID: seekerID, SkillID: id}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *skillRepository) ListForSeeker(ctx context.Context, seekerID string) ([]models.SeekerSkill, error) {
	var links []models.SeekerSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("seeker_id = ?", seekerID).
		Find(&links).Error
	return links, err
}
