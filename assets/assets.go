// Package assets bundles the images the scene textures are created from and decodes them into GL ready pixel
// buffers.
package assets

import (
	"embed"
	"fmt"
	"io"
)

const (
	ContainerTexture = "textures/container.png"
	FaceTexture      = "textures/awesomeface.png"
)

//go:embed textures
var files embed.FS

// Open returns a reader for an embedded asset. The caller closes it.
func Open(name string) (io.ReadCloser, error) {
	f, err := files.Open(name)
	if err != nil {
		return nil, fmt.Errorf("asset '%s' not bundled: %w", name, err)
	}
	return f, nil
}
