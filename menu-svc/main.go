package main

import (
	"log"
	"os"

	"comanda-pos/config"
	httpapi "comanda-pos/menu-svc/internal/api/http"
	"comanda-pos/menu-svc/internal/service"
	"comanda-pos/menu-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	menuSvc := service.NewMenuService(repo)
	handler := httpapi.NewHandler(menuSvc)
	router := httpapi.NewRouter(handler)

	addr := os.Getenv("MENU_SVC_ADDR")
	if addr == "" {
		addr = ":8082"
	}
	httpapi.StartServer(addr, router)
}
