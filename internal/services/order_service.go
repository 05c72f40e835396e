package services

import (
	"errors"

	"decoyauction/internal/domain"
	"decoyauction/internal/repos"
	"decoyauction/internal/validate"

	"github.com/google/uuid"
)

var (
	ErrBadPhone    = errors.New("phone number must be international format, e.g. +14155550123")
	ErrCarNotFound = errors.New("car not found")
)

// OrderPublisher receives the bare inserted order row. The admin board's
// push subscription hangs off this; intake itself is fire-and-forget.
type OrderPublisher interface {
	PublishOrder(o domain.Order)
}

type OrderService struct {
	Cars   *repos.CarRepo
	Orders *repos.OrderRepo
	Events OrderPublisher
}

func NewOrderService(cars *repos.CarRepo, orders *repos.OrderRepo, events OrderPublisher) *OrderService {
	return &OrderService{Cars: cars, Orders: orders, Events: events}
}

// Place validates the phone number, inserts one order for the car and
// publishes the inserted row. Duplicate submissions for the same car and
// phone are allowed; customers retry.
func (s *OrderService) Place(carID, phone string) (domain.Order, domain.Car, error) {
	phone, ok := validate.Phone(phone)
	if !ok {
		return domain.Order{}, domain.Car{}, ErrBadPhone
	}

	car, err := s.Cars.Get(carID)
	if err != nil {
		return domain.Order{}, domain.Car{}, ErrCarNotFound
	}

	order, err := s.Orders.Insert(domain.Order{
		ID:          uuid.NewString(),
		CarID:       car.ID,
		PhoneNumber: phone,
	})
	if err != nil {
		return domain.Order{}, domain.Car{}, err
	}

	if s.Events != nil {
		s.Events.PublishOrder(order)
	}
	return order, car, nil
}
