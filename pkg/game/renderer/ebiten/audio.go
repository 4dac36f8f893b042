package ebiten

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"menulayer/pkg/engine/menu"
)

// cue is a decoded sound rewound on every play.
type cue struct {
	name   string
	player *audio.Player
}

func (c *cue) Play() {
	if err := c.player.Rewind(); err != nil {
		log.Printf("Rewind %s: %v", c.name, err)
		return
	}
	c.player.Play()
}

func audioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(sampleRate)
}

// LoadCue decodes a WAV file into a cue. An empty path yields no cue.
func (e *EbitenRenderer) LoadCue(path string) (menu.Cue, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cue: %w", err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode cue %s: %w", path, err)
	}
	player, err := audioContext().NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("player for %s: %w", path, err)
	}
	return &cue{name: path, player: player}, nil
}
