package auth

import "database/sql"

type PostgresUserRepository struct {
	DB *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

var _ UserRepository = (*PostgresUserRepository)(nil)

func (r *PostgresUserRepository) Save(usuario *Usuario) error {
	return r.DB.QueryRow(`
		INSERT INTO usuarios (nombre, email, rol, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, usuario.Nombre, usuario.Email, usuario.Rol, usuario.PasswordHash).
		Scan(&usuario.ID, &usuario.CreatedAt)
}

func (r *PostgresUserRepository) FindByEmail(email string) (*Usuario, error) {
	var usuario Usuario
	err := r.DB.QueryRow(`
		SELECT id, nombre, email, rol, password_hash, created_at
		FROM usuarios
		WHERE email = $1
	`, email).Scan(&usuario.ID, &usuario.Nombre, &usuario.Email,
		&usuario.Rol, &usuario.PasswordHash, &usuario.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *PostgresUserRepository) ExistsByEmail(email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

func (r *PostgresUserRepository) EnsureSchema() error {
	_, err := r.DB.Exec(`
		CREATE TABLE IF NOT EXISTS usuarios (
			id SERIAL PRIMARY KEY,
			nombre TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			rol TEXT NOT NULL CHECK (rol IN ('Mesero', 'Administradora')),
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}
