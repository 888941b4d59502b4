package migrate

import (
	"context"

	"boba-storefront/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto for gen_random_uuid
	CreateChecks           bool // CHECK constraints for integrity
	CreateIndexes          bool // secondary indexes
	CreateFKsViaSQL        bool // FKs via SQL on top of GORM constraints
	CreateUpdatedAtTrigger bool // updated_at maintenance trigger
	SeedCustomizations     bool // seed customization_options and categories
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateFKsViaSQL:        true,
		CreateUpdatedAtTrigger: true,
		SeedCustomizations:     false,
	}
}

func MigrateStoreDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("starting storefront database migration")

	if opt.CreateExtensions {
		if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("failed to enable pgcrypto extension", zap.Error(err))
			return err
		}
	}

	log.Info("creating storefront tables")
	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.CustomizationOption{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemCustomization{},
		&models.Payment{},
	); err != nil {
		log.Error("failed to create tables", zap.Error(err))
		return err
	}

	if opt.CreateUpdatedAtTrigger {
		if err := db.WithContext(ctx).Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_products_updated ON products;
CREATE TRIGGER trg_products_updated
BEFORE UPDATE ON products
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_cart_items_updated ON cart_items;
CREATE TRIGGER trg_cart_items_updated
BEFORE UPDATE ON cart_items
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("failed to create updated_at triggers", zap.Error(err))
			return err
		}
	}

	if opt.CreateChecks {
		checks := []struct {
			name string
			sql  string
		}{
			{"order status allowed", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('pending','confirmed','preparing','ready','out_for_delivery','delivered','cancelled','refunded'));
`},
			{"order totals identity", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_total_identity;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_total_identity
  CHECK (total_amount = subtotal + tax_amount + shipping_amount - discount_amount);
`},
			{"order amounts non-negative", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_amounts_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_amounts_non_negative
  CHECK (subtotal >= 0 AND tax_amount >= 0 AND shipping_amount >= 0
         AND discount_amount >= 0
         AND discount_amount <= subtotal + tax_amount + shipping_amount);
`},
			{"order item quantity positive", `
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_quantity_gt_zero
  CHECK (quantity > 0);
`},
			{"order item prices non-negative", `
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_prices_non_negative;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_prices_non_negative
  CHECK (unit_price >= 0 AND total_price >= 0);
`},
			{"cart item quantity positive", `
ALTER TABLE cart_items
  DROP CONSTRAINT IF EXISTS chk_cart_items_quantity_gt_zero;
ALTER TABLE cart_items
  ADD CONSTRAINT chk_cart_items_quantity_gt_zero
  CHECK (quantity > 0);
`},
			{"payment status allowed", `
ALTER TABLE payments
  DROP CONSTRAINT IF EXISTS chk_payments_status_allowed;
ALTER TABLE payments
  ADD CONSTRAINT chk_payments_status_allowed
  CHECK (status IN ('pending','processing','succeeded','failed','cancelled','refunded'));
`},
			{"payment provider allowed", `
ALTER TABLE payments
  DROP CONSTRAINT IF EXISTS chk_payments_provider_allowed;
ALTER TABLE payments
  ADD CONSTRAINT chk_payments_provider_allowed
  CHECK (provider IN ('bank_transfer','e_wallet','cod','qris'));
`},
			{"payment amount non-negative", `
ALTER TABLE payments
  DROP CONSTRAINT IF EXISTS chk_payments_amount_non_negative;
ALTER TABLE payments
  ADD CONSTRAINT chk_payments_amount_non_negative
  CHECK (amount >= 0);
`},
			{"product base price non-negative", `
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS chk_products_base_price_non_negative;
ALTER TABLE products
  ADD CONSTRAINT chk_products_base_price_non_negative
  CHECK (base_price >= 0);
`},
		}
		for _, c := range checks {
			if err := db.WithContext(ctx).Exec(c.sql).Error; err != nil {
				log.Error("failed to create CHECK constraint", zap.String("check", c.name), zap.Error(err))
				return err
			}
		}
	}

	if opt.CreateIndexes {
		indexes := []string{
			`CREATE INDEX IF NOT EXISTS ix_orders_user_created ON orders (user_id, created_at DESC);`,
			`CREATE INDEX IF NOT EXISTS ix_orders_status_created ON orders (status, created_at DESC);`,
			`CREATE INDEX IF NOT EXISTS ix_cart_items_user_variant ON cart_items (user_id, variant_id);`,
			`CREATE INDEX IF NOT EXISTS ix_products_category_active ON products (category_id, is_active);`,
			`CREATE INDEX IF NOT EXISTS ix_payments_order ON payments (order_id);`,
		}
		for _, s := range indexes {
			if err := db.WithContext(ctx).Exec(s).Error; err != nil {
				log.Error("failed to create index", zap.Error(err))
				return err
			}
		}
	}

	if opt.CreateFKsViaSQL {
		fks := []string{
			`ALTER TABLE addresses
  DROP CONSTRAINT IF EXISTS fk_addresses_user,
  ADD CONSTRAINT fk_addresses_user
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;`,
			`ALTER TABLE product_variants
  DROP CONSTRAINT IF EXISTS fk_product_variants_product,
  ADD CONSTRAINT fk_product_variants_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE;`,
			`ALTER TABLE cart_items
  DROP CONSTRAINT IF EXISTS fk_cart_items_user,
  ADD CONSTRAINT fk_cart_items_user
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;`,
			`ALTER TABLE cart_items
  DROP CONSTRAINT IF EXISTS fk_cart_items_variant,
  ADD CONSTRAINT fk_cart_items_variant
    FOREIGN KEY (variant_id) REFERENCES product_variants(id) ON DELETE CASCADE;`,
			`ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS fk_orders_user,
  ADD CONSTRAINT fk_orders_user
    FOREIGN KEY (user_id) REFERENCES users(id);`,
			`ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;`,
			`ALTER TABLE order_item_customizations
  DROP CONSTRAINT IF EXISTS fk_order_item_customizations_item,
  ADD CONSTRAINT fk_order_item_customizations_item
    FOREIGN KEY (order_item_id) REFERENCES order_items(id) ON DELETE CASCADE;`,
			`ALTER TABLE payments
  DROP CONSTRAINT IF EXISTS fk_payments_order,
  ADD CONSTRAINT fk_payments_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;`,
		}
		for _, s := range fks {
			if err := db.WithContext(ctx).Exec(s).Error; err != nil {
				log.Error("failed to create foreign key", zap.Error(err))
				return err
			}
		}
	}

	if opt.SeedCustomizations {
		if err := Seed(ctx, db, log); err != nil {
			return err
		}
	}

	log.Info("storefront database migration completed")
	return nil
}
