package main

import (
	"log"
	"net/http"
	"os"

	"comanda-pos/api-gateway/internal/auth"
	"comanda-pos/api-gateway/internal/gateway"
	"comanda-pos/config"

	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	userRepo := auth.NewPostgresUserRepository(db)
	if err := userRepo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	authSvc := auth.NewService(userRepo, config.MustJWTSecret())

	gwConfig := gateway.Config{
		TableSvcURL:     getEnv("TABLE_SVC_URL", "http://localhost:8081"),
		MenuSvcURL:      getEnv("MENU_SVC_URL", "http://localhost:8082"),
		OrderSvcURL:     getEnv("ORDER_SVC_URL", "http://localhost:8083"),
		AnalyticsSvcURL: getEnv("ANALYTICS_SVC_URL", "http://localhost:8084"),
	}

	gw := gateway.NewGateway(gwConfig, &http.Client{}, authSvc)

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := getEnv("GATEWAY_ADDR", ":8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
