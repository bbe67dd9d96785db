package renderer

import (
	"fmt"
	"log/slog"

	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/assets"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture is a 2D RGB texture that is bound to a fixed texture unit for every frame.
type Texture struct {
	Name   string
	Unit   uint32
	handle uint32
}

// loadTexture decodes an embedded image and uploads it with mipmaps. flipY mirrors the image vertically before the
// upload.
func loadTexture(name string, unit uint32, flipY bool) (*Texture, error) {
	f, err := assets.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := assets.DecodeRGB(f, flipY)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture '%s': %w", name, err)
	}

	t := &Texture{Name: name, Unit: unit}
	gl.GenTextures(1, &t.handle)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGB,
		int32(img.Width),
		int32(img.Height),
		0,
		gl.RGB,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	slog.Info("Loaded texture", "name", name, "unit", unit, "w", img.Width, "h", img.Height, "bytes", len(img.Pix))
	return t, nil
}

// Bind attaches the texture to its unit.
func (t *Texture) Bind() {
	gl.ActiveTexture(gl.TEXTURE0 + t.Unit)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
}

func (t *Texture) Destroy() {
	gl.DeleteTextures(1, &t.handle)
	t.handle = 0
}
