package kernel

// PaginationOptions controla la paginación de listados
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize aplica los defaults de paginación
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 20
	}
	return p
}

// Offset retorna el offset SQL correspondiente
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paginated es una página de resultados con el total global
type Paginated[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}
