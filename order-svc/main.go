package main

import (
	"log"
	"os"

	"comanda-pos/config"
	httpapi "comanda-pos/order-svc/internal/api/http"
	"comanda-pos/order-svc/internal/service"
	"comanda-pos/order-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	writer := config.NewKafkaWriter("ventas")
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	qr := service.DefaultQRGenerator{BaseURL: baseURL}

	orderSvc := service.NewOrderService(repo, publisher, qr)

	handler := httpapi.NewHandler(orderSvc)
	router := httpapi.NewRouter(handler)

	addr := os.Getenv("ORDER_SVC_ADDR")
	if addr == "" {
		addr = ":8083"
	}
	httpapi.StartServer(addr, router)
}
