package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	"voxcraft/internal/registry"
)

// InitBlockAtlas loads the block texture atlas from disk, or builds a
// flat-color placeholder atlas when the asset is missing, and uploads it
// as a GL texture. Returns the texture name.
func InitBlockAtlas(path string) (uint32, error) {
	rgba, err := loadAtlasImage(path)
	if err != nil {
		log.Printf("block atlas %s unavailable (%v), using placeholder colors", path, err)
		rgba = placeholderAtlas()
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(rgba.Bounds().Dx()), int32(rgba.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix),
	)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture, nil
}

func loadAtlasImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas: %w", err)
	}
	if img.Bounds().Dx() != registry.AtlasSizePx || img.Bounds().Dy() != registry.AtlasSizePx {
		return nil, fmt.Errorf("atlas must be %dx%d, got %dx%d",
			registry.AtlasSizePx, registry.AtlasSizePx, img.Bounds().Dx(), img.Bounds().Dy())
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)
	return rgba, nil
}

// placeholderAtlas paints each tile slot a distinct flat color so the
// world stays readable without shipped textures.
func placeholderAtlas() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, registry.AtlasSizePx, registry.AtlasSizePx))
	for ty := 0; ty < registry.AtlasTilesXY; ty++ {
		for tx := 0; tx < registry.AtlasTilesXY; tx++ {
			idx := ty*registry.AtlasTilesXY + tx
			c := color.RGBA{
				R: uint8(37 * (idx + 1)),
				G: uint8(73 * (idx + 5)),
				B: uint8(151 * (idx + 11)),
				A: 255,
			}
			tile := image.Rect(
				tx*registry.AtlasTilePx, ty*registry.AtlasTilePx,
				(tx+1)*registry.AtlasTilePx, (ty+1)*registry.AtlasTilePx,
			)
			draw.Draw(rgba, tile, &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}
	return rgba
}
