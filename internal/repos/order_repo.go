package repos

import (
	"database/sql"
	"strconv"

	"decoyauction/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderRow is an order enriched with car name/price via a read-time join.
// The car fields are null once the listing has been deleted; orders are
// never deleted with it.
type OrderRow struct {
	ID          string          `db:"id"`
	CarID       string          `db:"car_id"`
	PhoneNumber string          `db:"phone_number"`
	CreatedAt   string          `db:"created_at"`
	CarName     sql.NullString  `db:"car_name"`
	CarPrice    sql.NullFloat64 `db:"car_price"`
}

// DisplayCarName renders the not-found placeholder for orphaned orders.
func (o OrderRow) DisplayCarName() string {
	if !o.CarName.Valid {
		return "Car not found"
	}
	return o.CarName.String
}

func (o OrderRow) DisplayCarPrice() string {
	if !o.CarPrice.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(o.CarPrice.Float64, 'f', 2, 64)
}

// Insert persists a new order and returns the stored record with the
// server-assigned created_at.
func (r *OrderRepo) Insert(o domain.Order) (domain.Order, error) {
	_, err := r.db.Exec(`
	  INSERT INTO orders(id, car_id, phone_number, created_at)
	  VALUES(?, ?, ?, CURRENT_TIMESTAMP)
	`, o.ID, o.CarID, o.PhoneNumber)
	if err != nil {
		return domain.Order{}, err
	}
	var out domain.Order
	err = r.db.Get(&out, `SELECT id, car_id, phone_number, created_at FROM orders WHERE id = ?`, o.ID)
	return out, err
}

// ListWithCars returns every order joined to its car, newest first.
func (r *OrderRepo) ListWithCars() ([]OrderRow, error) {
	var out []OrderRow
	err := r.db.Select(&out, `
	  SELECT o.id, o.car_id, o.phone_number, o.created_at,
	         c.name AS car_name, c.price AS car_price
	  FROM orders o
	  LEFT JOIN cars c ON c.id = o.car_id
	  ORDER BY datetime(o.created_at) DESC, o.rowid DESC
	`)
	return out, err
}

func (r *OrderRepo) CountByCar(carID string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM orders WHERE car_id = ?`, carID)
	return n, err
}
