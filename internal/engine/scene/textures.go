package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/megaquad/internal/engine/texture"
)

// TextureLoader reads image files from disk and uploads them as 2D textures.
// It must be used on the thread that owns the GL context.
type TextureLoader struct {
	// Root is prepended to relative paths.
	Root string

	textures []uint32
}

// NewTextureLoader creates a loader resolving relative paths against root.
func NewTextureLoader(root string) *TextureLoader {
	return &TextureLoader{Root: root}
}

// LoadTexture decodes the image at path and uploads it with the given wrap modes.
func (l *TextureLoader) LoadTexture(path string, wrapS, wrapT texture.WrapMode) (texture.Handle, error) {
	full := path
	if l.Root != "" && !filepath.IsAbs(path) {
		full = filepath.Join(l.Root, path)
	}

	f, err := os.Open(full)
	if err != nil {
		return 0, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, err := texture.Decode(full, f)
	if err != nil {
		return 0, err
	}
	if img.Bounds().Empty() {
		return 0, fmt.Errorf("texture %s is empty", full)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(wrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(wrapT))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	l.textures = append(l.textures, id)
	log.Debug("texture loaded",
		zap.String("path", full),
		zap.Uint32("id", id),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Stringer("wrap_s", wrapS),
		zap.Stringer("wrap_t", wrapT),
	)
	return texture.Handle(id), nil
}

// Close deletes every texture this loader uploaded.
func (l *TextureLoader) Close() {
	if len(l.textures) > 0 {
		gl.DeleteTextures(int32(len(l.textures)), &l.textures[0])
		l.textures = nil
	}
}

func glWrap(w texture.WrapMode) int32 {
	if w == texture.Repeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}
