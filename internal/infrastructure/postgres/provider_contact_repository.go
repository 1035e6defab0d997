package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
)

var _ repository.ProviderContactRepository = (*ProviderContactRepo)(nil)

const contactColumns = `id, provider_id, contact_name, contact_email, contact_phone, position, created_at, updated_at`

// ProviderContactRepo implementación del puerto ProviderContactRepository sobre PostgreSQL.
type ProviderContactRepo struct {
	pool *pgxpool.Pool
}

// NewProviderContactRepository construye el adaptador de persistencia para contactos.
func NewProviderContactRepository(pool *pgxpool.Pool) *ProviderContactRepo {
	return &ProviderContactRepo{pool: pool}
}

// Create persiste un nuevo contacto y asigna el id generado.
func (r *ProviderContactRepo) Create(contact *entity.ProviderContact) error {
	query := `
		INSERT INTO provider_contacts (provider_id, contact_name, contact_email, contact_phone, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		contact.ProviderID, contact.ContactName, contact.ContactEmail, contact.ContactPhone,
		contact.Position, contact.CreatedAt, contact.UpdatedAt,
	).Scan(&contact.ID)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto por id.
func (r *ProviderContactRepo) GetByID(id int64) (*entity.ProviderContact, error) {
	query := `SELECT ` + contactColumns + ` FROM provider_contacts WHERE id = $1`
	var c entity.ProviderContact
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ProviderID, &c.ContactName, &c.ContactEmail, &c.ContactPhone, &c.Position,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// ListByProvider lista los contactos de un proveedor, más recientes primero.
func (r *ProviderContactRepo) ListByProvider(providerID int64) ([]*entity.ProviderContact, error) {
	query := `SELECT ` + contactColumns + ` FROM provider_contacts WHERE provider_id = $1 ORDER BY id DESC`
	rows, err := r.pool.Query(context.Background(), query, providerID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProviderContact
	for rows.Next() {
		var c entity.ProviderContact
		if err := rows.Scan(&c.ID, &c.ProviderID, &c.ContactName, &c.ContactEmail, &c.ContactPhone,
			&c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un contacto.
func (r *ProviderContactRepo) Update(contact *entity.ProviderContact) error {
	query := `
		UPDATE provider_contacts SET contact_name = $2, contact_email = $3, contact_phone = $4,
			position = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		contact.ID, contact.ContactName, contact.ContactEmail, contact.ContactPhone,
		contact.Position, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// Delete elimina un contacto por id. Devuelve domain.ErrNotFound si no existe.
func (r *ProviderContactRepo) Delete(id int64) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM provider_contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
