package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"donations-api/config"
)

// Client stores user photos on local disk, the way the platform always has:
// one flat uploads directory, keys of the form "<unix ms>-<original name>".
// The directory is served statically by the HTTP layer.
type Client struct {
	logger  *zap.Logger
	dir     string
	baseURL string
}

func New(logger *zap.Logger, cfg config.Uploads) (*Client, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	return &Client{
		logger:  logger,
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

func (c *Client) Save(src io.Reader, filename string) (string, error) {
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))

	dst, err := os.Create(filepath.Join(c.dir, key))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return key, nil
}

func (c *Client) Remove(key string) error {
	return os.Remove(filepath.Join(c.dir, filepath.Base(key)))
}

func (c *Client) GetPublicURL(key string) string {
	return c.baseURL + "/" + key
}

func (c *Client) GetDir() string { return c.dir }
