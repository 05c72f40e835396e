package repos

import (
	"database/sql"

	"decoyauction/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CarRepo struct{ db *sqlx.DB }

func NewCarRepo(db *sqlx.DB) *CarRepo { return &CarRepo{db: db} }

const carCols = `id, name, COALESCE(description,'') AS description, price,
  COALESCE(image_url,'') AS image_url, COALESCE(country,'') AS country, created_at`

// ListAll returns every car, newest first. rowid breaks created_at ties so a
// fresh insert always lands at the head even within the same second.
func (r *CarRepo) ListAll() ([]domain.Car, error) {
	var out []domain.Car
	err := r.db.Select(&out, `
	  SELECT `+carCols+`
	  FROM cars
	  ORDER BY datetime(created_at) DESC, rowid DESC
	`)
	return out, err
}

func (r *CarRepo) Get(id string) (domain.Car, error) {
	var c domain.Car
	err := r.db.Get(&c, `SELECT `+carCols+` FROM cars WHERE id = ?`, id)
	return c, err
}

// Insert persists a new car and returns the stored record, which carries the
// server-assigned created_at.
func (r *CarRepo) Insert(c domain.Car) (domain.Car, error) {
	_, err := r.db.Exec(`
	  INSERT INTO cars(id, name, description, price, image_url, country, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, c.ID, c.Name, c.Description, c.Price, c.ImageURL, c.Country)
	if err != nil {
		return domain.Car{}, err
	}
	return r.Get(c.ID)
}

// Update replaces all mutable fields and returns the stored record.
func (r *CarRepo) Update(id string, c domain.Car) (domain.Car, error) {
	res, err := r.db.Exec(`
	  UPDATE cars SET name=?, description=?, price=?, image_url=?, country=?
	  WHERE id=?
	`, c.Name, c.Description, c.Price, c.ImageURL, c.Country, id)
	if err != nil {
		return domain.Car{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Car{}, sql.ErrNoRows
	}
	return r.Get(id)
}

func (r *CarRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM cars WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
