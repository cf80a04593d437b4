package storage

// Provider is the interface for blob storage backends. File metadata lives
// in the database; the provider only holds content, addressed by an opaque
// key.
type Provider interface {
	// Put stores content under the key, overwriting any previous content
	Put(key string, data []byte) error

	// Get retrieves the content stored under the key
	Get(key string) ([]byte, error)

	// Delete removes the content stored under the key
	Delete(key string) error
}
