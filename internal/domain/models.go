package domain

type Car struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	ImageURL    string  `db:"image_url" json:"image_url"`
	Country     string  `db:"country" json:"country"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
}

type Order struct {
	ID          string `db:"id" json:"id"`
	CarID       string `db:"car_id" json:"car_id"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
	CreatedAt   string `db:"created_at" json:"created_at"`
}
