package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/vinser/tilestep/internal/flags"
)

// State holds the settings remembered between runs.
type State struct {
	MazePath  string        `json:"maze_path"` // Layout file, empty for a generated maze
	Seed      int64         `json:"seed"`      // Seed of the last generated maze
	TileSize  float64       `json:"tile_size"` // Tile size in pixels
	Speed     float64       `json:"speed"`     // Walker speed in pixels per second
	Direction string        `json:"direction"` // Start direction
	Tick      time.Duration `json:"tick"`      // Simulation tick
	SavedAt   time.Time     `json:"saved_at"`  // Last save time
}

const appName = "tilestep"

var encryptionKey = generateKey()

// configDir is replaced in tests.
var configDir = os.UserConfigDir

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	appID, err := machineid.ProtectedID(appName)
	if err != nil {
		appID = "default-tilestep-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(appID))
	return sum[:]
}

// New returns the default settings with a fresh seed.
func New() *State {
	return &State{
		Seed:      time.Now().UnixNano(),
		TileSize:  flags.DefaultTileSize,
		Speed:     flags.DefaultSpeed,
		Direction: flags.DefaultDirection,
		Tick:      flags.DefaultTick,
	}
}

// Apply overrides the settings with the flags given on the command line.
func (s *State) Apply(f *flags.Flags) {
	if f.IsCustom("maze") {
		s.MazePath = f.MazePath
	}
	if f.IsCustom("seed") {
		s.Seed = f.Seed
		if s.Seed == 0 {
			s.Seed = time.Now().UnixNano()
		}
		s.MazePath = ""
	}
	if f.IsCustom("tile-size") {
		s.TileSize = f.TileSize
	}
	if f.IsCustom("speed") {
		s.Speed = f.Speed
	}
	if f.IsCustom("dir") {
		s.Direction = f.Direction.String()
	}
	if f.IsCustom("tick") {
		s.Tick = f.Tick
	}
}

// Save persists the current state to an encrypted file with an integrity check.
func (s *State) Save() error {
	path, err := getSavePath()
	if err != nil {
		return err
	}

	s.SavedAt = time.Now()
	// Serialize to JSON
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	// Prepend CRC32 checksum
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)

	// Encrypt
	encrypted, err := encrypt(data)
	if err != nil {
		return err
	}

	// Save to file
	return os.WriteFile(path, encrypted, 0644)
}

// Load reads the state from disk, decrypts and verifies it.
// Any failure yields the defaults.
func Load() *State {
	s := New()

	path, err := getSavePath()
	if err != nil {
		return s
	}

	encrypted, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	decrypted, err := decrypt(encrypted)
	if err != nil || len(decrypted) < 5 {
		return New()
	}

	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return New()
	}

	// Unmarshal over the defaults so missing fields keep them
	if err = json.Unmarshal(payload, s); err != nil {
		return New() // Corrupted JSON
	}
	if s.TileSize <= 0 || s.Speed < 0 || s.Tick <= 0 {
		return New()
	}
	return s
}

// Reset removes the saved state file.
func Reset() error {
	path, err := getSavePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ======================
// 🔐 AES Encryption
// ======================

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}

// getSavePath returns the path to the save file inside the user config directory.
func getSavePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	saveDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(saveDir, "state.dat"), nil
}
