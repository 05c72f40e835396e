package handlers

import (
	"decoyauction/internal/config"
	"decoyauction/internal/repos"
	"decoyauction/internal/services"
	"decoyauction/internal/ws"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CarHandler   *CarHandler
	OrderHandler *OrderHandler
	AdminHandler *AdminHandler
	WSHandler    *WSHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, hub *ws.Hub) *Deps {
	carRepo := repos.NewCarRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(carRepo)
	orderSvc := services.NewOrderService(carRepo, orderRepo, hub)
	isAdmin := services.NewAllowlistPolicy(cfg.AdminEmails)

	return &Deps{
		CarHandler:   &CarHandler{Catalog: catalogSvc},
		OrderHandler: &OrderHandler{Catalog: catalogSvc, Orders: orderSvc},
		AdminHandler: &AdminHandler{Catalog: catalogSvc, Orders: orderRepo, IsAdmin: isAdmin},
		WSHandler:    &WSHandler{Hub: hub},
	}
}
