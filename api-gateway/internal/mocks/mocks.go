// Package mocks holds testify mocks for the api-gateway interfaces.
package mocks

import (
	"net/http"
	"testing"

	"comanda-pos/api-gateway/internal/auth"

	"github.com/stretchr/testify/mock"
)

type HTTPClient struct {
	mock.Mock
}

func NewHTTPClient(t *testing.T) *HTTPClient {
	m := &HTTPClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

type AuthService struct {
	mock.Mock
}

func NewAuthService(t *testing.T) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AuthService) Login(email, password string) (string, *auth.Usuario, error) {
	args := m.Called(email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*auth.Usuario), args.Error(2)
}

func (m *AuthService) Register(nombre, email, password, rol string) (*auth.Usuario, error) {
	args := m.Called(nombre, email, password, rol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Usuario), args.Error(1)
}

func (m *AuthService) Validate(tokenString string) (*auth.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t *testing.T) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) Save(usuario *auth.Usuario) error {
	return m.Called(usuario).Error(0)
}

func (m *UserRepository) FindByEmail(email string) (*auth.Usuario, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Usuario), args.Error(1)
}

func (m *UserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}
