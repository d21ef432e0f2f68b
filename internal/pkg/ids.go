package pkg

import "github.com/google/uuid"

// GenerateGameID returns a new session identifier.
func GenerateGameID() string {
	return uuid.NewString()
}
