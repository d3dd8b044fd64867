package auth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RolMesero         = "Mesero"
	RolAdministradora = "Administradora"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRolInvalido        = errors.New("unknown rol")
	ErrEmailTaken         = errors.New("email already exists")
)

type Usuario struct {
	ID           int       `json:"id"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	Rol          string    `json:"rol"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRepository interface {
	Save(usuario *Usuario) error
	FindByEmail(email string) (*Usuario, error)
	ExistsByEmail(email string) (bool, error)
}

type Service struct {
	repo   UserRepository
	secret []byte
}

func NewService(repo UserRepository, secret []byte) *Service {
	return &Service{repo: repo, secret: secret}
}

func (s *Service) Register(nombre, email, password, rol string) (*Usuario, error) {
	if nombre == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}
	if rol != RolMesero && rol != RolAdministradora {
		return nil, ErrRolInvalido
	}

	exists, _ := s.repo.ExistsByEmail(email)
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	usuario := &Usuario{
		Nombre:       nombre,
		Email:        email,
		Rol:          rol,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.Save(usuario); err != nil {
		return nil, err
	}

	return usuario, nil
}

// Login checks the credentials and mints a session token on success.
func (s *Service) Login(email, password string) (string, *Usuario, error) {
	usuario, err := s.repo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(usuario.PasswordHash),
		[]byte(password),
	); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(s.secret, usuario)
	if err != nil {
		return "", nil, err
	}
	return token, usuario, nil
}

func (s *Service) Validate(tokenString string) (*Claims, error) {
	return ValidateToken(s.secret, tokenString)
}
