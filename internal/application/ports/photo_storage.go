package ports

import "io"

type PhotoStorage interface {
	Save(src io.Reader, filename string) (string, error)
	Remove(key string) error
	GetPublicURL(key string) string
}
