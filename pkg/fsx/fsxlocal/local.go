package fsxlocal

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/talenta-pe/talenta/pkg/fsx"
)

// LocalFileSystem guarda archivos bajo un directorio raíz del disco local
type LocalFileSystem struct {
	basePath string
}

// NewLocalFileSystem crea un filesystem local, asegurando el directorio raíz
func NewLocalFileSystem(basePath string) (*LocalFileSystem, error) {
	if basePath == "" {
		basePath = "."
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fsx.ErrStoreFailed().WithError(err).WithDetail("path", basePath)
	}
	return &LocalFileSystem{basePath: basePath}, nil
}

// GetBasePath retorna el directorio raíz configurado
func (l *LocalFileSystem) GetBasePath() string {
	return l.basePath
}

func (l *LocalFileSystem) path(key string) string {
	// Las claves vienen con separador "/"; se normalizan al separador local
	clean := filepath.Clean(strings.ReplaceAll(key, "/", string(filepath.Separator)))
	return filepath.Join(l.basePath, clean)
}

// Save escribe el contenido en disco, creando los directorios intermedios
func (l *LocalFileSystem) Save(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	target := l.path(key)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fsx.ErrStoreFailed().WithError(err).WithDetail("key", key)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fsx.ErrStoreFailed().WithError(err).WithDetail("key", key)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fsx.ErrStoreFailed().WithError(err).WithDetail("key", key)
	}

	return key, nil
}

// Open abre un archivo almacenado
func (l *LocalFileSystem) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(l.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fsx.ErrFileNotFound().WithDetail("key", key)
		}
		return nil, fsx.ErrStoreFailed().WithError(err).WithDetail("key", key)
	}
	return f, nil
}

// Exists verifica si la clave tiene un archivo almacenado
func (l *LocalFileSystem) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(l.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fsx.ErrStoreFailed().WithError(err).WithDetail("key", key)
	}
	return true, nil
}

// Delete elimina un archivo; borrar una clave inexistente no es error
func (l *LocalFileSystem) Delete(ctx context.Context, key string) error {
	if err := os.Remove(l.path(key)); err != nil && !os.IsNotExist(err) {
		return fsx.ErrStoreFailed().WithError(err).WithDetail("key", key)
	}
	return nil
}
