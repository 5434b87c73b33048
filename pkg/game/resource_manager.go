package game

import (
	"bytes"
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// 纹理名称
const (
	TextureSock  = "sock"
	TextureWater = "waterTex"
	TextureBar   = "barTex"
)

// ResourceManager is responsible for centralized management of game resources.
// It caches generated textures and font faces so each is built once.
//
// This implementation is NOT thread-safe; it is only used from the game loop.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image
	fontSources   map[bool]*text.GoTextFaceSource // bold -> source
	fontFaceCache map[string]*text.GoTextFace
	rng           *rand.Rand
}

// NewResourceManager creates a ResourceManager with empty caches.
// rng drives procedural texture generation (water ripples).
func NewResourceManager(rng *rand.Rand) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontSources:   make(map[bool]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
		rng:           rng,
	}
}

// LoadFonts parses the embedded Go fonts.
func (rm *ResourceManager) LoadFonts() error {
	for bold, ttf := range map[bool][]byte{false: goregular.TTF, true: gobold.TTF} {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return fmt.Errorf("failed to create font source (bold=%v): %w", bold, err)
		}
		rm.fontSources[bold] = source
	}
	return nil
}

// Font returns a cached text face of the given pixel size.
// LoadFonts must have been called; otherwise nil is returned.
func (rm *ResourceManager) Font(size float64, bold bool) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%v:%.1f", bold, size)
	if face, ok := rm.fontFaceCache[cacheKey]; ok {
		return face
	}

	source := rm.fontSources[bold]
	if source == nil {
		return nil
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face
}

// LoadTextures generates the procedural textures used by the level.
func (rm *ResourceManager) LoadTextures() {
	rm.imageCache[TextureSock] = GenerateSockTexture()
	rm.imageCache[TextureWater] = GenerateWaterTexture(rm.rng)
	rm.imageCache[TextureBar] = GenerateBarTexture()
}

// GetImage retrieves a cached image or texture, nil when not loaded.
func (rm *ResourceManager) GetImage(name string) *ebiten.Image {
	return rm.imageCache[name]
}
