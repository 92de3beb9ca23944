package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"  // register GIF decoder
	_ "image/png"  // register PNG decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"tutegram/internal/config"
	"tutegram/internal/models"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const (
	DefaultMediaUploadDir   = "/tmp/tutegram/uploads"
	DefaultMediaMaxUploadMB = 10
	PictureMaxSize          = 1024
	JPEGQuality             = 82
	WebPQuality             = 70
)

// MediaService stores uploaded pictures. Each upload is normalized to a
// bounded JPEG plus a WebP sibling and addressed by content hash, so
// re-uploading the same bytes is idempotent.
type MediaService struct {
	uploadDir      string
	maxUploadBytes int64
}

// NewMediaService returns a MediaService configured from cfg.
func NewMediaService(cfg *config.Config) *MediaService {
	uploadDir := DefaultMediaUploadDir
	maxUploadMB := DefaultMediaMaxUploadMB

	if cfg != nil {
		if cfg.MediaUploadDir != "" {
			uploadDir = cfg.MediaUploadDir
		}
		if cfg.MediaMaxUploadMB > 0 {
			maxUploadMB = cfg.MediaMaxUploadMB
		}
	}

	return &MediaService{
		uploadDir:      uploadDir,
		maxUploadBytes: int64(maxUploadMB) * 1024 * 1024,
	}
}

// UploadDir returns the directory served under /uploads.
func (s *MediaService) UploadDir() string {
	return s.uploadDir
}

// StorePicture validates, normalizes and persists an uploaded picture.
// It returns the public URL path of the stored JPEG.
func (s *MediaService) StorePicture(_ context.Context, userID uint, content []byte) (string, error) {
	if userID == 0 {
		return "", models.NewValidationError("Invalid user")
	}
	if len(content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if int64(len(content)) > s.maxUploadBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadBytes/(1024*1024)))
	}

	detectedType := http.DetectContentType(content)
	if !isAllowedImageMIME(detectedType) {
		return "", models.NewValidationError("Invalid image type")
	}

	decoded, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return "", models.NewValidationError("Invalid image file")
	}

	normalized := resizeToFit(decoded, PictureMaxSize, PictureMaxSize)

	encodedJPEG, err := encodeJPEG(normalized, JPEGQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	encodedWebP, err := encodeWebP(normalized, WebPQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	sum := sha256.Sum256(encodedJPEG)
	hash := hex.EncodeToString(sum[:16])

	dir := filepath.Join(s.uploadDir, fmt.Sprintf("%d", userID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := os.WriteFile(filepath.Join(dir, hash+".jpg"), encodedJPEG, 0o644); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := os.WriteFile(filepath.Join(dir, hash+".webp"), encodedWebP, 0o644); err != nil {
		return "", models.NewInternalError(err)
	}

	return fmt.Sprintf("/uploads/%d/%s.jpg", userID, hash), nil
}

func isAllowedImageMIME(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}

// resizeToFit scales the image down to fit within maxW x maxH, keeping aspect
// ratio. Images already within bounds are re-drawn as-is.
func resizeToFit(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeWebP(img image.Image, quality float32) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
