// Package mocks holds testify mocks for the sales-svc interfaces.
package mocks

import (
	"testing"

	"comanda-pos/sales-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t *testing.T) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StoreInterface) RecordSale(msg domain.SaleMessage) error {
	return m.Called(msg).Error(0)
}

func (m *StoreInterface) UpdateDailyAggregates(msg domain.SaleMessage) error {
	return m.Called(msg).Error(0)
}
