package pkg

import "github.com/google/uuid"

// GenerateResultID - generates a new unique id for a finished game.
func GenerateResultID() string {
	return uuid.NewString()
}
