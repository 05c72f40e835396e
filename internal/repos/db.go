package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo listings if DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure accounts exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Cars up for auction
CREATE TABLE IF NOT EXISTS cars(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price > 0),
  image_url TEXT,
  country TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_cars_created_at ON cars(created_at);

-- Purchase-intent orders. car_id is deliberately not a foreign key:
-- orders outlive their car, and the board joins at read time.
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  car_id TEXT NOT NULL,
  phone_number TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
CREATE INDEX IF NOT EXISTS idx_orders_car ON orders(car_id);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as your 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM cars`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo car listings")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO cars(id,name,description,price,image_url,country) VALUES
	  ('car-m3-2019','2019 BMW M3','Twin-turbo inline six, competition package, full service history.',46500,'https://images.decoyauction.test/m3.jpg','Germany'),
	  ('car-sky-1972','1972 Datsun 240Z','Numbers-matching classic, restored interior, runs strong.',38900,'https://images.decoyauction.test/240z.jpg','Japan'),
	  ('car-mus-1967','1967 Ford Mustang Fastback','Frame-off restoration, 289 V8, four-speed manual.',72000,'https://images.decoyauction.test/mustang.jpg','USA')`)

	return tx.Commit()
}

// seedUsers ensures the two admin accounts and one regular account exist
// (idempotent). Admin capability is decided by the allow-list policy, not
// by anything stored here.
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Hash string
	}
	mk := func(id, email, name, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Hash: string(h)}
	}

	users := []u{
		mk("u-rich", "rich@decoyauction.test", "Rich", "Passw0rd!"),
		mk("u-osahara", "osahara@decoyauction.test", "Osahara", "Passw0rd!"),
		mk("u-buyer", "buyer@decoyauction.test", "Buyer", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash)
			VALUES(?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash); err != nil {
			return err
		}
	}

	return tx.Commit()
}
