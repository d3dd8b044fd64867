package tests

import (
	"database/sql"
	"testing"

	"comanda-pos/api-gateway/internal/auth"
	"comanda-pos/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-secret")

func TestAuthService_LoginRoundTrip(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	svc := auth.NewService(repo, testSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	repo.On("FindByEmail", "carmen@pos.local").Return(&auth.Usuario{
		ID:           1,
		Nombre:       "Carmen",
		Email:        "carmen@pos.local",
		Rol:          auth.RolAdministradora,
		PasswordHash: string(hash),
	}, nil).Once()

	token, usuario, err := svc.Login("carmen@pos.local", "secreto")

	assert.NoError(t, err)
	assert.Equal(t, auth.RolAdministradora, usuario.Rol)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "Carmen", claims.Nombre)
	assert.Equal(t, auth.RolAdministradora, claims.Rol)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	svc := auth.NewService(repo, testSecret)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.DefaultCost)
	repo.On("FindByEmail", "carmen@pos.local").Return(&auth.Usuario{
		ID:           1,
		Email:        "carmen@pos.local",
		PasswordHash: string(hash),
	}, nil).Once()

	_, _, err := svc.Login("carmen@pos.local", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	svc := auth.NewService(repo, testSecret)

	repo.On("FindByEmail", "nadie@pos.local").Return(nil, sql.ErrNoRows).Once()

	_, _, err := svc.Login("nadie@pos.local", "secreto")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("hashes password and saves", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := auth.NewService(repo, testSecret)

		repo.On("ExistsByEmail", "rosa@pos.local").Return(false, nil).Once()
		repo.On("Save", mock.AnythingOfType("*auth.Usuario")).
			Run(func(args mock.Arguments) {
				usuario := args.Get(0).(*auth.Usuario)
				usuario.ID = 2
				assert.NotEqual(t, "secreto", usuario.PasswordHash)
			}).Return(nil).Once()

		usuario, err := svc.Register("Rosa", "rosa@pos.local", "secreto", auth.RolMesero)
		assert.NoError(t, err)
		assert.Equal(t, 2, usuario.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte("secreto")))
	})

	t.Run("rejects unknown rol", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := auth.NewService(repo, testSecret)

		_, err := svc.Register("Rosa", "rosa@pos.local", "secreto", "Cocinero")
		assert.ErrorIs(t, err, auth.ErrRolInvalido)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		svc := auth.NewService(repo, testSecret)

		repo.On("ExistsByEmail", "rosa@pos.local").Return(true, nil).Once()

		_, err := svc.Register("Rosa", "rosa@pos.local", "secreto", auth.RolMesero)
		assert.ErrorIs(t, err, auth.ErrEmailTaken)
	})
}

func TestValidateToken_Tampered(t *testing.T) {
	usuario := &auth.Usuario{ID: 1, Nombre: "Carmen", Email: "carmen@pos.local", Rol: auth.RolAdministradora}
	token, err := auth.GenerateToken(testSecret, usuario)
	assert.NoError(t, err)

	_, err = auth.ValidateToken([]byte("other-secret"), token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
