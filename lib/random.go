package changewallpaperlib

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Picker selects uniformly at random. It is not safe for concurrent use.
type Picker struct {
	rng *rand.Rand
}

func NewPicker() *Picker {
	return NewSeededPicker(entropySeed())
}

func NewSeededPicker(seed int64) *Picker {
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		Debugf("Falling back to the clock for a random seed: %s", err)
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func (p *Picker) Pick(images []string) (string, error) {
	if len(images) == 0 {
		return "", ErrEmptyCollection
	}
	return images[p.rng.Intn(len(images))], nil
}
