package fsxs3

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/talenta-pe/talenta/pkg/fsx"
)

// S3FileSystem guarda archivos en un bucket de S3 bajo un prefijo opcional
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3FileSystem crea un filesystem respaldado por S3
func NewS3FileSystem(client *s3.Client, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *S3FileSystem) objectKey(key string) string {
	key = strings.TrimPrefix(key, "/")
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

// Save sube el contenido al bucket
func (s *S3FileSystem) Save(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
		Body:   content,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fsx.ErrStoreFailed().WithError(err).WithDetail("key", key)
	}

	return key, nil
}

// Open descarga un archivo del bucket
func (s *S3FileSystem) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fsx.ErrFileNotFound().WithDetail("key", key)
		}
		return nil, fsx.ErrStoreFailed().WithError(err).WithDetail("key", key)
	}

	return output.Body, nil
}

// Exists verifica si la clave tiene un objeto almacenado
func (s *S3FileSystem) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fsx.ErrStoreFailed().WithError(err).WithDetail("key", key)
	}
	return true, nil
}

// Delete elimina un objeto del bucket
func (s *S3FileSystem) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return fsx.ErrStoreFailed().WithError(err).WithDetail("key", key)
	}
	return nil
}
