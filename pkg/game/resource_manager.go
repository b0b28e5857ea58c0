package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"os"
	"sort"

	"github.com/decker502/pumpballoon/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontPath 是内置 Go Regular 字体的缓存键，LoadFont 遇到它时不读文件
const DefaultFontPath = "builtin:goregular"

// PlaceholderFunc builds a stand-in texture for a texture key that has no image file.
type PlaceholderFunc func(key string) *ebiten.Image

// ResourceManager is responsible for centralized management of scene textures.
// Images are cached by file path, and each loaded image is exposed to the scene
// under a texture key (e.g. "balloon", "balloonBurst").
//
// This implementation is NOT thread-safe; all loading happens on the main
// goroutine before the game loop starts.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // path -> Image
	textures      map[string]*ebiten.Image    // texture key -> Image
	fontFaceCache map[string]*text.GoTextFace // "path:size" -> Face
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		textures:      make(map[string]*ebiten.Image),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// Paths starting with "data/" are read from the embedded filesystem, everything
// else from disk. If the image has already been loaded, the cached version is returned.
//
// Returns an error if the file cannot be read or decoded; it never panics.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	var (
		data []byte
		err  error
	)
	if embedded.IsEmbeddedPath(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// RegisterImage makes img available under the given texture key.
func (rm *ResourceManager) RegisterImage(key string, img *ebiten.Image) {
	rm.textures[key] = img
}

// GetImage returns the image registered under key, or nil if there is none.
func (rm *ResourceManager) GetImage(key string) *ebiten.Image {
	return rm.textures[key]
}

// LoadTextures registers one image per texture key.
//
// A key with a non-empty path is loaded from that path and a load failure is
// returned as an error. A key with an empty path, and any key in required that
// is missing from paths, gets a placeholder from the fallback function.
func (rm *ResourceManager) LoadTextures(paths map[string]string, required []string, fallback PlaceholderFunc) error {
	keys := make(map[string]struct{}, len(paths)+len(required))
	for key := range paths {
		keys[key] = struct{}{}
	}
	for _, key := range required {
		keys[key] = struct{}{}
	}

	// 排序只是为了日志顺序稳定
	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)

	for _, key := range sorted {
		path := paths[key]
		if path == "" {
			if fallback == nil {
				return fmt.Errorf("texture %q has no path and no placeholder", key)
			}
			rm.RegisterImage(key, fallback(key))
			log.Printf("[ResourceManager] Texture %s: placeholder", key)
			continue
		}

		img, err := rm.LoadImage(path)
		if err != nil {
			return fmt.Errorf("failed to load texture %q: %w", key, err)
		}
		rm.RegisterImage(key, img)
		log.Printf("[ResourceManager] Texture %s: %s", key, path)
	}

	return nil
}

// LoadFont loads a TrueType font and creates a face of the given size.
// Faces are cached by path and size. DefaultFontPath selects the bundled
// Go Regular font; other paths follow the same embedded/disk rule as LoadImage.
//
// Example:
//
//	face, err := rm.LoadFont(game.DefaultFontPath, 16)
//	if err != nil {
//	    log.Printf("Failed to load font: %v", err)
//	}
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	var (
		fontData []byte
		err      error
	)
	switch {
	case path == DefaultFontPath:
		fontData = goregular.TTF
	case embedded.IsEmbeddedPath(path):
		fontData, err = embedded.ReadFile(path)
	default:
		fontData, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}
