// Package storage abstracts where uploaded blobs (restaurant cover
// images, dish photos) live.
//
// Two drivers ship out of the box:
//   - "local": local filesystem, served under /storage (default)
//   - "s3": S3-compatible object storage (AWS S3, MinIO, R2)
//
// Boot once at startup, then use the default disk:
//
//	storage.Connect()
//	storage.Put("covers/pizza.jpg", data)
//	url := storage.URL("covers/pizza.jpg")
package storage

import "io"

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the file. Caller closes it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Size returns the byte size of the file.
	Size(path string) (int64, error)

	// Delete removes a file. Nil if the file did not exist.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string
}
