package website

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

const (
	thumbDefaultWidth = 800
	thumbMaxWidth     = 1600
	jpegQuality       = 80
	maxMediaBytes     = 20 << 20 // 20MB
)

var mediaClient = &http.Client{Timeout: 15 * time.Second}

// handleThumb proxies and downscales an image from the CMS media library.
// Only the content API's host is allowed as a source, so the endpoint cannot
// be used as an open proxy. Processed thumbnails are cached on disk keyed by
// source URL and width.
func (a *App) handleThumb(c echo.Context) error {
	src := c.QueryParam("src")
	if src == "" {
		return c.String(http.StatusBadRequest, "src required")
	}
	if !a.allowedMediaSource(src) {
		return c.String(http.StatusBadRequest, "source not allowed")
	}

	width, _ := strconv.Atoi(c.QueryParam("w"))
	if width <= 0 {
		width = thumbDefaultWidth
	}
	if width > thumbMaxWidth {
		width = thumbMaxWidth
	}

	cachePath := a.thumbCachePath(src, width)
	if _, err := os.Stat(cachePath); err == nil {
		return c.File(cachePath)
	}

	data, err := renderThumb(c.Request().Context(), src, width)
	if err != nil {
		a.Log.Warn("thumbnail failed", zap.String("src", src), zap.Error(err))
		return c.NoContent(http.StatusNotFound)
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err == nil {
		_ = os.WriteFile(cachePath, data, 0o644)
	}

	return c.Blob(http.StatusOK, "image/jpeg", data)
}

// allowedMediaSource reports whether src points at the same host as the
// content API.
func (a *App) allowedMediaSource(src string) bool {
	srcURL, err := url.Parse(src)
	if err != nil || srcURL.Host == "" {
		return false
	}
	apiURL, err := url.Parse(a.Config.ContentAPIURL)
	if err != nil {
		return false
	}
	return srcURL.Host == apiURL.Host
}

func (a *App) thumbCachePath(src string, width int) string {
	sum := sha256.Sum256([]byte(src))
	name := fmt.Sprintf("%s-%d.jpg", hex.EncodeToString(sum[:16]), width)
	return filepath.Join(a.Config.MediaCacheDir, name)
}

// renderThumb fetches src, downscales it to at most width, and encodes JPEG.
func renderThumb(ctx context.Context, src string, width int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := mediaClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch media: status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxMediaBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		newH := h * width / w
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
