package domain

import "fmt"

// Accent selects which pronunciation variant an audio clip carries.
type Accent string

// Supported accents
const (
	AccentUK Accent = "uk"
	AccentUS Accent = "us"
)

// Valid reports whether the accent is one of the supported values.
func (a Accent) Valid() bool {
	return a == AccentUK || a == AccentUS
}

// AudioKey builds the natural storage key for a word's pronunciation clip.
// The key doubles as the sync identity for audio, so no surrogate id exists
// for this record type.
func AudioKey(word string, accent Accent) string {
	return fmt.Sprintf("%s_%s", word, accent)
}

// AudioClip is a cached pronunciation recording for a vocabulary word.
type AudioClip struct {
	Key      string `json:"key"` // "{word}_{accent}"
	Data     []byte `json:"data"`
	IsSynced bool   `json:"is_synced"`
}

// NewAudioClip creates an audio clip pending sync.
func NewAudioClip(key string, data []byte) (*AudioClip, error) {
	if key == "" {
		return nil, ErrEmptyAudioKey
	}

	if len(data) == 0 {
		return nil, ErrEmptyAudioData
	}

	return &AudioClip{
		Key:      key,
		Data:     data,
		IsSynced: false,
	}, nil
}

// Clone returns a deep copy of the audio clip.
func (c *AudioClip) Clone() *AudioClip {
	clone := *c
	clone.Data = append([]byte(nil), c.Data...)
	return &clone
}
