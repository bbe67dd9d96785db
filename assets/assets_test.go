package assets

import "testing"

// TestTexturesDecode makes sure both bundled textures decode into RGB buffers of the advertised size
func TestTexturesDecode(t *testing.T) {
	for _, name := range []string{ContainerTexture, FaceTexture} {
		f, err := Open(name)
		if err != nil {
			t.Fatalf("Failed to open %s: %s", name, err)
		}
		img, err := DecodeRGB(f, false)
		f.Close()
		if err != nil {
			t.Fatalf("Failed to decode %s: %s", name, err)
		}
		if img.Width != 256 || img.Height != 256 {
			t.Errorf("%s should be 256x256 but is %dx%d", name, img.Width, img.Height)
		}
		if len(img.Pix) != img.Width*img.Height*3 {
			t.Errorf("%s RGB buffer has wrong size %d", name, len(img.Pix))
		}
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open("textures/missing.png"); err == nil {
		t.Errorf("Opening a missing asset should fail")
	}
}
