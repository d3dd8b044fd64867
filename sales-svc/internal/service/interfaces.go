package service

import (
	"context"

	"comanda-pos/sales-svc/internal/domain"
	"comanda-pos/sales-svc/internal/storage"
)

type StoreInterface interface {
	RecordSale(msg domain.SaleMessage) error
	UpdateDailyAggregates(msg domain.SaleMessage) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessSale(msg domain.SaleMessage)
}

var _ StoreInterface = (*storage.Store)(nil)
