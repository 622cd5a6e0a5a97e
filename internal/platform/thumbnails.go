package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // decoder registration
	"image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp" // decoder registration
	"golang.org/x/sync/singleflight"
)

// Thumbnail defaults
const (
	DefaultThumbnailWidth  = 320
	DefaultThumbnailHeight = 200
	DefaultThumbnailCache  = 128
	DefaultImageTimeout    = 15 * time.Second
	MaxImageBytes          = 8 << 20
	MaxImagePixels         = 4096 * 4096
	thumbnailExt           = ".png"
)

// ErrImageTooLarge is returned for images whose size or declared dimensions
// exceed the loader limits
var ErrImageTooLarge = errors.New("image too large")

// ThumbnailLoader downloads recipe images and turns them into small PNG
// thumbnails. Results are kept in a bounded in-memory cache and, when a
// directory is configured, on disk. Concurrent requests for the same URL
// share a single download, and at most MaxParallel downloads run at once.
type ThumbnailLoader struct {
	client    *http.Client
	cache     *lru.Cache[string, []byte]
	group     singleflight.Group
	downloads *Throttle
	dir       string
	maxWidth  uint
	maxHeight uint
	maxPixels int64
	timeout   time.Duration
}

// ThumbnailOptions configure a ThumbnailLoader. Zero values use defaults.
type ThumbnailOptions struct {
	HTTPClient  *http.Client
	CacheSize   int
	Dir         string // empty disables the disk cache
	MaxWidth    uint
	MaxHeight   uint
	MaxPixels   int           // largest accepted width*height of a source image
	MaxParallel int           // concurrent downloads
	Timeout     time.Duration // bounds one shared download
}

// NewThumbnailLoader creates a loader
func NewThumbnailLoader(opts ThumbnailOptions) (*ThumbnailLoader, error) {
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultThumbnailCache
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: DefaultImageTimeout}
	}
	if opts.MaxWidth == 0 {
		opts.MaxWidth = DefaultThumbnailWidth
	}
	if opts.MaxHeight == 0 {
		opts.MaxHeight = DefaultThumbnailHeight
	}
	if opts.MaxPixels <= 0 {
		opts.MaxPixels = MaxImagePixels
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultImageTimeout
	}

	cache, err := lru.New[string, []byte](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create thumbnail cache: %w", err)
	}
	if opts.Dir != "" {
		if err := CreateDirectoryIfNotExists(opts.Dir); err != nil {
			return nil, fmt.Errorf("failed to create thumbnail directory: %w", err)
		}
	}

	l := &ThumbnailLoader{
		client:    opts.HTTPClient,
		cache:     cache,
		dir:       opts.Dir,
		maxWidth:  opts.MaxWidth,
		maxHeight: opts.MaxHeight,
		maxPixels: int64(opts.MaxPixels),
		timeout:   opts.Timeout,
	}
	l.downloads = NewThrottle(ImageSourceFunc(l.fetch), opts.MaxParallel)
	return l, nil
}

// Load returns PNG bytes for the thumbnail of imageURL. ctx only bounds how
// long this caller waits; the shared download keeps running for the others.
func (l *ThumbnailLoader) Load(ctx context.Context, imageURL string) ([]byte, error) {
	if imageURL == "" {
		return nil, errors.New("empty image URL")
	}
	if data, ok := l.cache.Get(imageURL); ok {
		return data, nil
	}

	ch := l.group.DoChan(imageURL, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
		defer cancel()
		return l.load(loadCtx, imageURL)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (l *ThumbnailLoader) load(ctx context.Context, imageURL string) ([]byte, error) {
	if data, ok := l.cache.Get(imageURL); ok {
		return data, nil
	}
	if data, ok := l.readDisk(imageURL); ok {
		l.cache.Add(imageURL, data)
		return data, nil
	}

	data, err := l.downloads.Load(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	l.cache.Add(imageURL, data)
	l.writeDisk(imageURL, data)
	return data, nil
}

// Cached reports whether imageURL is in the memory cache
func (l *ThumbnailLoader) Cached(imageURL string) bool {
	return l.cache.Contains(imageURL)
}

// Purge empties the memory cache
func (l *ThumbnailLoader) Purge() {
	l.cache.Purge()
}

func (l *ThumbnailLoader) fetch(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create image request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("download image: status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	if len(raw) > MaxImageBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrImageTooLarge, MaxImageBytes)
	}

	// Check declared dimensions before any pixel buffer is allocated
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode image: invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > l.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return l.encodeThumbnail(img)
}

func (l *ThumbnailLoader) encodeThumbnail(img image.Image) ([]byte, error) {
	thumb := resize.Thumbnail(l.maxWidth, l.maxHeight, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

func (l *ThumbnailLoader) diskPath(imageURL string) string {
	name := uuid.NewSHA1(uuid.NameSpaceURL, []byte(imageURL)).String()
	return filepath.Join(l.dir, name+thumbnailExt)
}

func (l *ThumbnailLoader) readDisk(imageURL string) ([]byte, bool) {
	if l.dir == "" {
		return nil, false
	}
	data, err := os.ReadFile(l.diskPath(imageURL))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (l *ThumbnailLoader) writeDisk(imageURL string, data []byte) {
	if l.dir == "" {
		return
	}
	if err := os.WriteFile(l.diskPath(imageURL), data, DefaultFilePermissions); err != nil {
		log.Printf("Failed to write thumbnail cache: %v", err)
	}
}
