package main

import (
	"os"
	"time"

	"comanda-pos/config"
	httpapi "comanda-pos/table-svc/internal/api/http"
	"comanda-pos/table-svc/internal/service"
	"comanda-pos/table-svc/internal/storage"

	"log"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisEstadoCache(rdb, 24*time.Hour)
	tableSvc := service.NewTableService(repo, cache)

	handler := httpapi.NewHandler(tableSvc)
	router := httpapi.NewRouter(handler)

	addr := os.Getenv("TABLE_SVC_ADDR")
	if addr == "" {
		addr = ":8081"
	}
	httpapi.StartServer(addr, router)
}
