package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"mooduck/internal/config"
	"mooduck/internal/models"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const (
	DefaultMediaDir     = "/tmp/mooduck/media"
	DefaultMediaBaseURL = "/media"
	MaxImageBytes       = 10 * 1024 * 1024
	ThumbMaxSize        = 512
	ThumbWebPQuality    = 70
)

// extByMIME is the closed set of accepted inline image types.
var extByMIME = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/gif":  "gif",
}

// ImageService persists inline base64 images under the media root and hands
// back their public URLs.
type ImageService struct {
	mediaDir string
	baseURL  string
}

func NewImageService(cfg *config.Config) *ImageService {
	mediaDir := DefaultMediaDir
	baseURL := DefaultMediaBaseURL
	if cfg != nil {
		if cfg.MediaDir != "" {
			mediaDir = cfg.MediaDir
		}
		if cfg.MediaBaseURL != "" {
			baseURL = cfg.MediaBaseURL
		}
	}
	return &ImageService{mediaDir: mediaDir, baseURL: baseURL}
}

// MediaDir exposes the storage root so the server can mount it statically.
func (s *ImageService) MediaDir() string {
	return s.mediaDir
}

// IsDataURI reports whether the value is an inline image rather than a URL.
func IsDataURI(v string) bool {
	return strings.HasPrefix(v, "data:image/")
}

// SaveDataURI decodes a `data:image/...;base64,` payload, validates it by
// actually decoding the pixels, and stores it under a content-hash filename.
// Re-uploading identical bytes lands on the same file.
func (s *ImageService) SaveDataURI(dataURI string) (string, error) {
	mimeType, payload, err := splitDataURI(dataURI)
	if err != nil {
		return "", err
	}

	ext, ok := extByMIME[mimeType]
	if !ok {
		return "", models.NewValidationError(fmt.Sprintf("Unsupported image type %q", mimeType))
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", models.NewValidationError("Malformed base64 image payload")
	}
	if len(raw) == 0 {
		return "", models.NewValidationError("Empty image payload")
	}
	if len(raw) > MaxImageBytes {
		return "", models.NewValidationError(fmt.Sprintf("Image too large (max %dMB)", MaxImageBytes/(1024*1024)))
	}

	if _, _, err := image.Decode(bytes.NewReader(raw)); err != nil {
		return "", models.NewValidationError("Invalid image file")
	}

	sum := sha256.Sum256(raw)
	name := hex.EncodeToString(sum[:]) + "." + ext

	if err := os.MkdirAll(s.mediaDir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}
	path := filepath.Join(s.mediaDir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return "", models.NewInternalError(err)
		}
	}

	return s.baseURL + "/" + name, nil
}

// SaveCover stores the image and additionally writes a webp thumbnail next
// to it. The board keeps the full-size URL; clients derive the thumb URL by
// swapping the extension.
func (s *ImageService) SaveCover(dataURI string) (string, error) {
	url, err := s.SaveDataURI(dataURI)
	if err != nil {
		return "", err
	}

	name := filepath.Base(url)
	raw, err := os.ReadFile(filepath.Join(s.mediaDir, name))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", models.NewValidationError("Invalid image file")
	}

	thumbName := strings.TrimSuffix(name, filepath.Ext(name)) + "_thumb.webp"
	thumbPath := filepath.Join(s.mediaDir, thumbName)
	if _, statErr := os.Stat(thumbPath); os.IsNotExist(statErr) {
		if err := writeWebPThumb(thumbPath, decoded); err != nil {
			return "", models.NewInternalError(err)
		}
	}

	return url, nil
}

func splitDataURI(v string) (mimeType, payload string, err error) {
	if !IsDataURI(v) {
		return "", "", models.NewValidationError("Not an image data URI")
	}
	rest := strings.TrimPrefix(v, "data:")
	semi := strings.Index(rest, ";base64,")
	if semi < 0 {
		return "", "", models.NewValidationError("Image data URI must be base64 encoded")
	}
	return rest[:semi], rest[semi+len(";base64,"):], nil
}

// writeWebPThumb scales the image down to fit ThumbMaxSize and encodes webp.
func writeWebPThumb(path string, src image.Image) error {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("degenerate image %dx%d", w, h)
	}

	scale := 1.0
	if w > h && w > ThumbMaxSize {
		scale = float64(ThumbMaxSize) / float64(w)
	} else if h >= w && h > ThumbMaxSize {
		scale = float64(ThumbMaxSize) / float64(h)
	}
	tw := int(float64(w) * scale)
	th := int(float64(h) * scale)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, dst, &webp.Options{Quality: ThumbWebPQuality}); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
