package dto

// APIResponse envoltura uniforme de todas las respuestas de la API:
// {status, message, data}. En fallos de validación se agrega errors
// con los mensajes por campo.
type APIResponse struct {
	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Límites de paginación del listado de proveedores.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ListProvidersQuery parámetros del listado (?search=&status=&page=&per_page=).
type ListProvidersQuery struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

// Normalize aplica defaults y clamps: page >= 1, per_page en [1,100].
func (q *ListProvidersQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
}
