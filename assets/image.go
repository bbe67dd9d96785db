package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

// RGBImage is a tightly packed 8 bit RGB pixel buffer, rows ordered as they are handed to glTexImage2D.
type RGBImage struct {
	Width  int
	Height int
	Pix    []byte
}

// DecodeRGB decodes a PNG or JPEG image and repacks it into RGB, dropping alpha. With flipY the last row of the
// image becomes the first one in Pix.
func DecodeRGB(r io.Reader, flipY bool) (*RGBImage, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decoded %s image is empty", format)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	w, h := b.Dx(), b.Dy()
	img := &RGBImage{
		Width:  w,
		Height: h,
		Pix:    make([]byte, w*h*3),
	}
	for y := 0; y < h; y++ {
		srcRow := y
		if flipY {
			srcRow = h - 1 - y
		}
		row := rgba.Pix[srcRow*rgba.Stride : srcRow*rgba.Stride+w*4]
		dst := img.Pix[y*w*3 : (y+1)*w*3]
		for x := 0; x < w; x++ {
			copy(dst[x*3:x*3+3], row[x*4:x*4+3])
		}
	}
	return img, nil
}
