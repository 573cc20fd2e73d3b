package infra

import (
	"fmt"

	"gastropos/internal/config"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection backed by pgx, sizes the pool and
// brings the schema up to date with Migrate.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	logMode := logger.Silent
	if cfg.DBLogSQL {
		logMode = logger.Info
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

type migration struct {
	version int
	descr   string
	sql     string
}

// Schema history. Append only: never edit an entry that has shipped.
var migrations = []migration{
	{1, "users and employees", `
CREATE TABLE employees (
  id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  apellido      TEXT NOT NULL,
  nombre        TEXT NOT NULL,
  dni           TEXT NOT NULL,
  cuil          TEXT NOT NULL,
  fecha_nac     VARCHAR(10),
  telefono      TEXT,
  email         TEXT,
  direccion     TEXT,
  localidad     TEXT,
  provincia     TEXT,
  puesto        TEXT,
  fecha_ingreso VARCHAR(10),
  estado        VARCHAR(20) NOT NULL DEFAULT 'activo',
  created_by    UUID NOT NULL,
  updated_by    UUID,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE users (
  id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  email         TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  full_name     TEXT NOT NULL,
  role          VARCHAR(20) NOT NULL CHECK (role IN ('admin','cajero','cocina','mozo')),
  employee_id   UUID REFERENCES employees(id),
  active        BOOLEAN NOT NULL DEFAULT true,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX uq_users_email ON users (LOWER(email));`},

	{2, "catalog and master data", `
CREATE TABLE products (
  id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name       TEXT NOT NULL,
  category   TEXT NOT NULL DEFAULT '',
  price      NUMERIC(12,2) NOT NULL CHECK (price >= 0),
  sku        TEXT,
  active     BOOLEAN NOT NULL DEFAULT true,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX uq_products_sku ON products (sku) WHERE sku IS NOT NULL;
CREATE INDEX idx_products_name ON products (name);
CREATE TABLE customers (
  id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  razon_social     TEXT NOT NULL DEFAULT '',
  nombre           TEXT,
  apellido         TEXT,
  tipo_documento   TEXT NOT NULL,
  numero_documento TEXT NOT NULL,
  condicion_iva    TEXT NOT NULL,
  tipo_cliente     TEXT NOT NULL,
  direccion        TEXT,
  localidad        TEXT,
  provincia        TEXT,
  codigo_postal    TEXT,
  telefono         TEXT,
  email            TEXT,
  created_by       UUID NOT NULL,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX uq_customers_documento ON customers (numero_documento);
CREATE TABLE suppliers (
  id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  razon_social  TEXT NOT NULL,
  cuit          TEXT NOT NULL,
  iibb          TEXT,
  condicion_iva TEXT,
  telefono      TEXT,
  email         TEXT,
  direccion     TEXT,
  localidad     TEXT,
  provincia     TEXT,
  contacto      TEXT,
  notas         TEXT,
  active        BOOLEAN NOT NULL DEFAULT true,
  created_by    UUID NOT NULL,
  updated_by    UUID,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`},

	{3, "cash sessions, orders and sales", `
CREATE TABLE sequences (
  scope TEXT PRIMARY KEY,
  value BIGINT NOT NULL
);
CREATE TABLE cash_sessions (
  id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  opening_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
  closing_amount NUMERIC(12,2),
  difference     NUMERIC(12,2),
  status         VARCHAR(20) NOT NULL CHECK (status IN ('abierta','cerrada')),
  shift_number   INT NOT NULL,
  shift_date     VARCHAR(10) NOT NULL,
  opened_by      UUID NOT NULL REFERENCES users(id),
  closed_by      UUID REFERENCES users(id),
  opened_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  closed_at      TIMESTAMPTZ
);
CREATE UNIQUE INDEX uq_cash_sessions_one_open ON cash_sessions ((true)) WHERE status = 'abierta';
CREATE UNIQUE INDEX uq_cash_sessions_shift ON cash_sessions (shift_date, shift_number);
CREATE INDEX idx_cash_sessions_opened_at ON cash_sessions (opened_at);

CREATE TABLE orders (
  id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  cash_session_id  UUID NOT NULL REFERENCES cash_sessions(id),
  order_number     INT NOT NULL,
  status           VARCHAR(20) NOT NULL CHECK (status IN ('abierto','cerrado')),
  prep_status      VARCHAR(20) NOT NULL CHECK (prep_status IN ('abierto','en_preparacion','preparado')),
  total            NUMERIC(12,2) NOT NULL DEFAULT 0,
  was_modified     BOOLEAN NOT NULL DEFAULT false,
  items_updated_at TIMESTAMPTZ,
  prep_started_at  TIMESTAMPTZ,
  prep_done_at     TIMESTAMPTZ,
  sale_id          UUID,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  closed_at        TIMESTAMPTZ,
  UNIQUE (cash_session_id, order_number)
);
CREATE INDEX idx_orders_created_at ON orders (created_at);
CREATE TABLE order_items (
  id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  order_id    UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id  UUID,
  description TEXT NOT NULL DEFAULT '',
  quantity    INT NOT NULL CHECK (quantity > 0),
  unit_price  NUMERIC(12,2) NOT NULL CHECK (unit_price >= 0),
  total       NUMERIC(12,2) NOT NULL,
  position    INT NOT NULL DEFAULT 0
);
CREATE INDEX idx_order_items_order ON order_items (order_id);

CREATE TABLE sales (
  id              UUID PRIMARY KEY,
  user_id         UUID NOT NULL REFERENCES users(id),
  total           NUMERIC(12,2) NOT NULL,
  payment_method  VARCHAR(20) NOT NULL,
  cash_session_id UUID NOT NULL REFERENCES cash_sessions(id),
  shift_number    INT NOT NULL,
  order_id        UUID REFERENCES orders(id),
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX idx_sales_session ON sales (cash_session_id);
CREATE INDEX idx_sales_created_at ON sales (created_at);
CREATE TABLE sale_items (
  id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  sale_id     UUID NOT NULL REFERENCES sales(id),
  product_id  UUID,
  description TEXT NOT NULL DEFAULT '',
  qty         INT NOT NULL CHECK (qty > 0),
  price       NUMERIC(12,2) NOT NULL,
  position    INT NOT NULL DEFAULT 0
);
CREATE INDEX idx_sale_items_sale ON sale_items (sale_id);
ALTER TABLE orders ADD CONSTRAINT fk_orders_sale FOREIGN KEY (sale_id) REFERENCES sales(id);

CREATE TABLE cash_movements (
  id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  session_id  UUID NOT NULL REFERENCES cash_sessions(id),
  type        VARCHAR(20) NOT NULL CHECK (type IN ('ingreso','egreso','venta')),
  amount      NUMERIC(12,2) NOT NULL CHECK (amount > 0 OR (type = 'venta' AND amount = 0)),
  reference   TEXT NOT NULL DEFAULT '',
  user_id     UUID NOT NULL REFERENCES users(id),
  supplier_id UUID REFERENCES suppliers(id),
  sale_id     UUID REFERENCES sales(id),
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX idx_cash_movements_session ON cash_movements (session_id);`},

	{4, "invoices", `
CREATE TABLE invoices (
  id                    UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  sale_id               UUID NOT NULL REFERENCES sales(id),
  customer_id           UUID REFERENCES customers(id),
  tipo_comprobante      VARCHAR(1) NOT NULL CHECK (tipo_comprobante IN ('A','B')),
  punto_venta           INT NOT NULL,
  numero_comprobante    BIGINT NOT NULL,
  subtotal              NUMERIC(12,2) NOT NULL,
  iva                   NUMERIC(12,2) NOT NULL,
  total                 NUMERIC(12,2) NOT NULL,
  condicion_venta       TEXT NOT NULL,
  cliente_razon_social  TEXT NOT NULL,
  cliente_documento     TEXT,
  cliente_direccion     TEXT,
  cliente_condicion_iva TEXT NOT NULL,
  cliente_email         TEXT,
  created_by            UUID NOT NULL REFERENCES users(id),
  fecha_emision         TIMESTAMPTZ NOT NULL DEFAULT now(),
  pdf_path              TEXT,
  pdf_attempts          INT NOT NULL DEFAULT 0,
  pdf_error             TEXT,
  UNIQUE (punto_venta, tipo_comprobante, numero_comprobante)
);
CREATE INDEX idx_invoices_sale ON invoices (sale_id);
CREATE INDEX idx_invoices_fecha ON invoices (fecha_emision);
CREATE INDEX idx_invoices_pending_pdf ON invoices (fecha_emision) WHERE pdf_path IS NULL;`},
}

// Migrate applies every migration newer than the recorded schema version,
// each in its own transaction. A transaction-scoped advisory lock keeps two
// instances from migrating at once.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
  version    INT PRIMARY KEY,
  descr      TEXT NOT NULL,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`).Error; err != nil {
		return fmt.Errorf("schema_migrations: %w", err)
	}

	for _, m := range migrations {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext('schema_migrations'))").Error; err != nil {
				return err
			}
			var applied int64
			if err := tx.Raw("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.version).Scan(&applied).Error; err != nil {
				return err
			}
			if applied > 0 {
				return nil
			}
			if err := tx.Exec(m.sql).Error; err != nil {
				return err
			}
			log.Info().Int("version", m.version).Str("descr", m.descr).Msg("migration applied")
			return tx.Exec("INSERT INTO schema_migrations (version, descr) VALUES (?, ?)", m.version, m.descr).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.descr, err)
		}
	}
	return nil
}
