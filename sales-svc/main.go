package main

import (
	"context"
	"log"

	"comanda-pos/config"
	"comanda-pos/sales-svc/internal/service"
	"comanda-pos/sales-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewStore(db, rdb)
	if err := store.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	reader := config.NewKafkaReader("ventas", "sales-svc-consumer")
	defer reader.Close()

	consumer := service.NewConsumer(reader, store)
	consumer.Start(context.Background())
}
