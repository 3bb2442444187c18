package storage

import "io"

// Store saves uploaded report images and hands back stable URL references.
// Reports keep only the reference; bytes never enter the database.
type Store interface {
	// Save writes the content and returns a URL the API can serve or redirect to.
	Save(filename string, r io.Reader) (string, error)
	// Delete removes a previously saved object by its URL reference.
	Delete(url string) error
}

// Default is the store the handlers write through; main wires it at boot.
var Default Store

// Setup points Default at a local-disk store rooted at dir, served under /uploads.
func Setup(dir string) error {
	s, err := NewLocalStore(dir, "/uploads")
	if err != nil {
		return err
	}
	Default = s
	return nil
}
