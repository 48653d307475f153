package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barber-booking-web/internal/httperr"
	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

const (
	MaxUploadBytes = 5 << 20

	AvatarMaxSide  = 512
	ServiceMaxSide = 1024

	webpQuality = 80
)

// Normalize decodifica a imagem enviada, reduz para caber em maxSide e regrava como WebP.
func Normalize(up models.Upload, maxSide int) (models.Upload, error) {
	if len(up.Data) == 0 {
		return up, httperr.ErrBusinessMsg("invalid_image", "Imagem vazia")
	}
	if len(up.Data) > MaxUploadBytes {
		return up, httperr.ErrBusinessMsg("image_too_large", "Imagem maior que 5MB")
	}

	src, _, err := image.Decode(bytes.NewReader(up.Data))
	if err != nil {
		return up, httperr.ErrBusinessMsg("invalid_image", "Formato de imagem não suportado")
	}

	img := fit(src, maxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return up, fmt.Errorf("encode webp: %w", err)
	}

	return models.Upload{
		Field:       up.Field,
		Filename:    webpName(up.Filename),
		ContentType: "image/webp",
		Data:        buf.Bytes(),
	}, nil
}

func fit(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return src
	}

	if w >= h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func webpName(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" || base == "." || base == "/" {
		base = "image"
	}
	return base + ".webp"
}
