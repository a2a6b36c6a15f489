package pkg

import "github.com/google/uuid"

const gameIDLength = 8

// GenerateGameID - returns a short unique identifier for a game session.
func GenerateGameID() string {
	return uuid.NewString()[:gameIDLength]
}

// GeneratePlayerID - returns a unique identifier for a player.
func GeneratePlayerID() string {
	return uuid.NewString()
}
