package services

import (
	"decoyauction/internal/domain"
	"decoyauction/internal/repos"

	"github.com/google/uuid"
)

// CarInput carries the admin form fields for a create or full-field update.
// Price has already been parsed to a float by the caller.
type CarInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Country     string
}

type CatalogService struct {
	Cars *repos.CarRepo
}

func NewCatalogService(cars *repos.CarRepo) *CatalogService {
	return &CatalogService{Cars: cars}
}

func (s *CatalogService) ListCars() ([]domain.Car, error) {
	return s.Cars.ListAll()
}

func (s *CatalogService) GetCar(id string) (domain.Car, error) {
	return s.Cars.Get(id)
}

// CreateCar assigns a server-side id and persists the listing; the returned
// record carries the assigned id and timestamp.
func (s *CatalogService) CreateCar(in CarInput) (domain.Car, error) {
	return s.Cars.Insert(domain.Car{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Country:     in.Country,
	})
}

func (s *CatalogService) UpdateCar(id string, in CarInput) (domain.Car, error) {
	return s.Cars.Update(id, domain.Car{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Country:     in.Country,
	})
}

func (s *CatalogService) DeleteCar(id string) error {
	return s.Cars.Delete(id)
}
