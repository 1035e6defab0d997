package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

const providerColumns = `id, name, nit, email, phone, address, status, created_at, updated_at`

// ProviderRepo implementación del puerto ProviderRepository sobre PostgreSQL.
type ProviderRepo struct {
	pool *pgxpool.Pool
}

// NewProviderRepository construye el adaptador de persistencia para proveedores.
func NewProviderRepository(pool *pgxpool.Pool) *ProviderRepo {
	return &ProviderRepo{pool: pool}
}

// Create persiste un nuevo proveedor y asigna el id generado.
func (r *ProviderRepo) Create(provider *entity.Provider) error {
	query := `
		INSERT INTO providers (name, nit, email, phone, address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		provider.Name, provider.NIT, provider.Email, provider.Phone, provider.Address,
		provider.Status, provider.CreatedAt, provider.UpdatedAt,
	).Scan(&provider.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por id.
func (r *ProviderRepo) GetByID(id int64) (*entity.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id), "get provider")
}

// GetByNIT obtiene un proveedor por NIT (match exacto, case-sensitive).
func (r *ProviderRepo) GetByNIT(nit string) (*entity.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE nit = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, nit), "get provider by nit")
}

// List lista proveedores con búsqueda, filtro por estado y paginación,
// ordenados por id descendente. Devuelve también el total sin paginar.
func (r *ProviderRepo) List(filter repository.ProviderFilter) ([]*entity.Provider, int, error) {
	var conds []string
	var args []interface{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%d OR nit ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", n, n, n, n))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM providers` + where
	if err := r.pool.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count providers: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM providers%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		providerColumns, where, len(args)-1, len(args))
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.NIT, &p.Email, &p.Phone, &p.Address, &p.Status,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// Update actualiza un proveedor.
func (r *ProviderRepo) Update(provider *entity.Provider) error {
	query := `
		UPDATE providers SET name = $2, nit = $3, email = $4, phone = $5, address = $6,
			status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		provider.ID, provider.Name, provider.NIT, provider.Email, provider.Phone,
		provider.Address, provider.Status, provider.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update provider: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por id; la FK con ON DELETE CASCADE borra sus
// contactos. Devuelve domain.ErrNotFound si el id no existe.
func (r *ProviderRepo) Delete(id int64) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProviderRepo) scanOne(row pgx.Row, op string) (*entity.Provider, error) {
	var p entity.Provider
	err := row.Scan(&p.ID, &p.Name, &p.NIT, &p.Email, &p.Phone, &p.Address, &p.Status,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
