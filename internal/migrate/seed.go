package migrate

import (
	"context"

	"boba-storefront/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts the fixed customization options and default categories.
// Upserts on the natural key so re-running is harmless.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	customizations := []models.CustomizationOption{
		{Category: models.CustomizationSugarLevel, Name: "no_sugar", DisplayName: "0% Sugar", SortOrder: 1, IsActive: true},
		{Category: models.CustomizationSugarLevel, Name: "light_sugar", DisplayName: "25% Sugar", SortOrder: 2, IsActive: true},
		{Category: models.CustomizationSugarLevel, Name: "half_sugar", DisplayName: "50% Sugar", SortOrder: 3, IsActive: true},
		{Category: models.CustomizationSugarLevel, Name: "less_sugar", DisplayName: "75% Sugar", SortOrder: 4, IsActive: true},
		{Category: models.CustomizationSugarLevel, Name: "normal_sugar", DisplayName: "100% Sugar", SortOrder: 5, IsActive: true},

		{Category: models.CustomizationIceLevel, Name: "no_ice", DisplayName: "No Ice", SortOrder: 1, IsActive: true},
		{Category: models.CustomizationIceLevel, Name: "less_ice", DisplayName: "Less Ice", SortOrder: 2, IsActive: true},
		{Category: models.CustomizationIceLevel, Name: "normal_ice", DisplayName: "Normal Ice", SortOrder: 3, IsActive: true},
		{Category: models.CustomizationIceLevel, Name: "extra_ice", DisplayName: "Extra Ice", SortOrder: 4, IsActive: true},

		{Category: models.CustomizationTopping, Name: "tapioca_pearl", DisplayName: "Tapioca Pearls", PriceModifier: 5000, SortOrder: 1, IsActive: true},
		{Category: models.CustomizationTopping, Name: "coconut_jelly", DisplayName: "Coconut Jelly", PriceModifier: 5000, SortOrder: 2, IsActive: true},
		{Category: models.CustomizationTopping, Name: "aloe_vera", DisplayName: "Aloe Vera", PriceModifier: 6000, SortOrder: 3, IsActive: true},
		{Category: models.CustomizationTopping, Name: "pudding", DisplayName: "Pudding", PriceModifier: 7000, SortOrder: 4, IsActive: true},
		{Category: models.CustomizationTopping, Name: "red_bean", DisplayName: "Red Bean", PriceModifier: 6000, SortOrder: 5, IsActive: true},
		{Category: models.CustomizationTopping, Name: "cheese_foam", DisplayName: "Cheese Foam", PriceModifier: 10000, SortOrder: 6, IsActive: true},
		{Category: models.CustomizationTopping, Name: "brown_sugar", DisplayName: "Brown Sugar Jelly", PriceModifier: 5000, SortOrder: 7, IsActive: true},
		{Category: models.CustomizationTopping, Name: "grass_jelly", DisplayName: "Grass Jelly", PriceModifier: 5000, SortOrder: 8, IsActive: true},
	}

	if err := db.WithContext(ctx).Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_customization_options_category_name
		 ON customization_options (category, name);`,
	).Error; err != nil {
		log.Error("failed to create customization natural key", zap.Error(err))
		return err
	}

	if err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "price_modifier", "sort_order", "is_active"}),
	}).Create(&customizations).Error; err != nil {
		log.Error("failed to seed customization options", zap.Error(err))
		return err
	}

	categories := []models.Category{
		{Name: "Milk Tea", Slug: "milk-tea", SortOrder: 1, IsActive: true},
		{Name: "Fruit Tea", Slug: "fruit-tea", SortOrder: 2, IsActive: true},
		{Name: "Specialty", Slug: "specialty", SortOrder: 3, IsActive: true},
		{Name: "Coffee", Slug: "coffee", SortOrder: 4, IsActive: true},
		{Name: "Smoothies", Slug: "smoothies", SortOrder: 5, IsActive: true},
	}

	if err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "sort_order", "is_active"}),
	}).Create(&categories).Error; err != nil {
		log.Error("failed to seed categories", zap.Error(err))
		return err
	}

	log.Info("seed data applied",
		zap.Int("customizations", len(customizations)),
		zap.Int("categories", len(categories)))
	return nil
}
