package util

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Waiving", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Alpha", "Growling", "Slithering", "Swimming", "Flying", "Jumping", "Running", "Charging", "Shooting", "Bouncing",
	"Bounding", "Leaping",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe", "Antelope", "Lion", "Tiger",
	"Bear", "Muskrat", "Otter", "Dolphin", "Porcupine", "Gerbil", "Hedgehog", "Snake", "Lizard", "Chipmunk",
	"Bird", "Dinosaur", "Okapi", "Eagle", "Mandrill", "Bonobo", "Wolf", "Fox", "Armadillo", "Rhino", "Anteater",
	"Reindeer", "Deer", "Panda",
}

var emojis = []string{
	"🦊", "🐼", "🐯", "🦁", "🐸", "🐙", "🦉", "🐺", "🦈", "🐢",
	"🦜", "🐳", "🦔", "🐗", "🦅", "🐍", "🦎", "🐿", "🦦", "🦩",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], animals[random.Intn(len(animals))])
}

// GetRandomEmoji returns a random avatar emoji
func GetRandomEmoji() string {
	return emojis[random.Intn(len(emojis))]
}

// NewPlayerID returns an opaque 12-character hex player identifier
func NewPlayerID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// roomCodeAlphabet omits easily confused characters like 0/O and 1/I
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewRoomCode returns a 6-character room code
func NewRoomCode() string {
	var sb strings.Builder
	for i := 0; i < 6; i++ {
		sb.WriteByte(roomCodeAlphabet[random.Intn(len(roomCodeAlphabet))])
	}

	return sb.String()
}
