package service

import (
	"context"
	"encoding/json"
	"log"

	"comanda-pos/sales-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Sales Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.SaleMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == domain.SaleMessageType {
			c.ProcessSale(msg)
		}
	}
}

func (c *Consumer) ProcessSale(msg domain.SaleMessage) {
	if msg.Type != domain.SaleMessageType {
		return
	}
	log.Printf("Processing sale: Monto=%.2f, Platos=%d", msg.Monto, len(msg.Platos))

	if err := c.Store.RecordSale(msg); err != nil {
		log.Printf("Error recording sale: %v", err)
		return
	}

	if err := c.Store.UpdateDailyAggregates(msg); err != nil {
		log.Printf("Error updating daily aggregates: %v", err)
		return
	}

	log.Printf("Successfully processed sale of %.2f", msg.Monto)
}
