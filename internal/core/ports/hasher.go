package ports

// Hasher defines the interface for computing content hashes.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashFile computes the hash of the file's content.
	HashFile(path string) (uint64, error)

	// HashBytes computes the hash of data.
	HashBytes(data []byte) uint64
}
