package fsx

import (
	"context"
	"io"
	"net/http"

	"github.com/talenta-pe/talenta/pkg/errx"
)

// FileReader es el subconjunto de solo lectura del filesystem
type FileReader interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// FileSystem abstrae el almacenamiento de archivos del sistema.
// Las claves son rutas relativas tipo "resumes/<id>/<filename>".
type FileSystem interface {
	FileReader
	// Save almacena el contenido bajo la clave y retorna la referencia
	// persistible del archivo
	Save(ctx context.Context, key string, content io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ============================================================================
// Error Registry - Errores de almacenamiento
// ============================================================================

var ErrRegistry = errx.NewRegistry("FSX")

var (
	CodeFileNotFound = ErrRegistry.Register("FILE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Archivo no encontrado")
	CodeStoreFailed  = ErrRegistry.Register("STORE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "No se pudo almacenar el archivo")
)

func ErrFileNotFound() *errx.Error {
	return ErrRegistry.New(CodeFileNotFound)
}

func ErrStoreFailed() *errx.Error {
	return ErrRegistry.New(CodeStoreFailed)
}
