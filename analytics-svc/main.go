package main

import (
	"os"

	httpapi "comanda-pos/analytics-svc/internal/api/http"
	"comanda-pos/analytics-svc/internal/service"
	"comanda-pos/config"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	salesSvc := service.NewSalesService(db, rdb)

	handler := httpapi.NewHandler(salesSvc)
	router := httpapi.NewRouter(handler)

	addr := os.Getenv("ANALYTICS_SVC_ADDR")
	if addr == "" {
		addr = ":8084"
	}
	httpapi.StartServer(addr, router)
}
