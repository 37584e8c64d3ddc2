package render

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Pictures loads and caches the images the page shows. Loads run in the
// background so a slow URL never stalls a frame; until a picture is ready
// the renderer draws a placeholder.
type Pictures struct {
	base   string
	client *http.Client

	mu     sync.Mutex
	images map[string]*picture
	thumbs map[thumbKey]*image.RGBA
}

type picture struct {
	img  image.Image
	err  error
	done bool
}

type thumbKey struct {
	src  string
	w, h int
}

// NewPictures resolves relative sources against base, normally the
// directory of the config file.
func NewPictures(base string) *Pictures {
	return &Pictures{
		base:   base,
		client: &http.Client{Timeout: 15 * time.Second},
		images: make(map[string]*picture),
		thumbs: make(map[thumbKey]*image.RGBA),
	}
}

// Thumbnail returns src scaled to fit w × h pixels, centered on a
// transparent canvas. ok is false while the picture is loading or when it
// failed to load.
func (p *Pictures) Thumbnail(src string, w, h int) (*image.RGBA, bool) {
	if src == "" || w <= 0 || h <= 0 {
		return nil, false
	}
	key := thumbKey{src, w, h}

	p.mu.Lock()
	if t, ok := p.thumbs[key]; ok {
		p.mu.Unlock()
		return t, true
	}
	pic, ok := p.images[src]
	if !ok {
		pic = &picture{}
		p.images[src] = pic
		go p.fetch(src, pic)
	}
	if !pic.done || pic.err != nil {
		p.mu.Unlock()
		return nil, false
	}
	img := pic.img
	p.mu.Unlock()

	t := fit(img, w, h)
	p.mu.Lock()
	p.thumbs[key] = t
	p.mu.Unlock()
	return t, true
}

// Err returns the load error for src, if its load has failed.
func (p *Pictures) Err(src string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pic, ok := p.images[src]; ok && pic.done {
		return pic.err
	}
	return nil
}

func (p *Pictures) fetch(src string, pic *picture) {
	img, err := p.Load(src)
	p.mu.Lock()
	pic.img, pic.err, pic.done = img, err, true
	p.mu.Unlock()
}

// Load opens and decodes src synchronously. http(s) URLs are fetched;
// anything else is a file path.
func (p *Pictures) Load(src string) (image.Image, error) {
	rc, err := p.open(src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return img, nil
}

func (p *Pictures) open(src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := p.client.Get(src)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: %s", src, resp.Status)
		}
		return resp.Body, nil
	}
	path := strings.TrimPrefix(src, "file://")
	if path == "" {
		return nil, errors.New("empty picture source")
	}
	if !filepath.IsAbs(path) && p.base != "" {
		path = filepath.Join(p.base, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open picture: %w", err)
	}
	return f, nil
}

// fit scales img to the largest size that fits w × h while keeping its
// aspect ratio, centered on a transparent w × h canvas.
func fit(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return dst
	}
	sw, sh := w, b.Dy()*w/b.Dx()
	if sh > h {
		sw, sh = b.Dx()*h/b.Dy(), h
	}
	sw, sh = max(sw, 1), max(sh, 1)
	x0, y0 := (w-sw)/2, (h-sh)/2
	draw.ApproxBiLinear.Scale(dst, image.Rect(x0, y0, x0+sw, y0+sh), img, b, draw.Src, nil)
	return dst
}
