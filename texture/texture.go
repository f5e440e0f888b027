// Package texture decodes images and uploads them as sampleable GPU
// textures.
//
// Decoding supports PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image. Every decoded image is normalized
// to 8-bit RGBA before upload.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Loader errors.
var (
	// ErrEmptyData is returned when there are no bytes to decode.
	ErrEmptyData = errors.New("texture: empty data")

	// ErrDecode is returned when the bytes are not a supported image.
	ErrDecode = errors.New("texture: decode")

	// ErrRead is returned when the image file cannot be read.
	ErrRead = errors.New("texture: read file")

	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("texture: image has no pixels")
)

// Format is the GPU format every texture is uploaded as.
const Format = gputypes.TextureFormatRGBA8Unorm

// Texture is an immutable GPU image with its view and sampler.
type Texture struct {
	Texture hal.Texture
	View    hal.TextureView
	Sampler hal.Sampler
	Width   uint32
	Height  uint32
}

// Decode decodes an encoded image into RGBA pixels with the origin at the
// top-left.
func Decode(data []byte) (*image.RGBA, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return RGBA(img), nil
}

// RGBA returns img as a tightly packed *image.RGBA anchored at (0,0),
// converting or copying only when needed.
func RGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// ReadFile reads an encoded image from disk.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return data, nil
}

// Load reads, decodes and uploads the image at path.
func Load(device hal.Device, queue hal.Queue, path string) (*Texture, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromBytes(device, queue, data, filepath.Base(path))
}

// FromBytes decodes data and uploads it.
func FromBytes(device hal.Device, queue hal.Queue, data []byte, label string) (*Texture, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Upload(device, queue, img, label)
}

// Upload creates a texture the size of img, copies the pixels into it and
// creates a view and a linear clamp-to-edge sampler.
func Upload(device hal.Device, queue hal.Queue, img *image.RGBA, label string) (*Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	w, h := uint32(b.Dx()), uint32(b.Dy()) //nolint:gosec // image bounds are positive

	t := &Texture{Width: w, Height: h}
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        Format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("texture: create %q: %w", label, err)
	}
	t.Texture = tex

	if err := t.Write(queue, img); err != nil {
		t.Destroy(device)
		return nil, fmt.Errorf("texture: upload %q: %w", label, err)
	}

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        Format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		t.Destroy(device)
		return nil, fmt.Errorf("texture: create view %q: %w", label, err)
	}
	t.View = view

	sampler, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        label + "_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
	})
	if err != nil {
		t.Destroy(device)
		return nil, fmt.Errorf("texture: create sampler %q: %w", label, err)
	}
	t.Sampler = sampler
	return t, nil
}

// Write replaces the texture contents with img, which must have the
// texture's size.
func (t *Texture) Write(queue hal.Queue, img *image.RGBA) error {
	return queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.Texture,
			MipLevel: 0,
		},
		img.Pix,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  t.Width * 4,
			RowsPerImage: t.Height,
		},
		&hal.Extent3D{Width: t.Width, Height: t.Height, DepthOrArrayLayers: 1},
	)
}

// BindGroupLayout creates the layout textures are bound with: a filterable
// 2D texture at binding 0 and a filtering sampler at binding 1, both
// visible to the fragment stage.
func BindGroupLayout(device hal.Device) (hal.BindGroupLayout, error) {
	return device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "texture_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
}

// BindGroup binds the texture's view and sampler against layout, which
// must come from BindGroupLayout.
func (t *Texture) BindGroup(device hal.Device, layout hal.BindGroupLayout) (hal.BindGroup, error) {
	bg, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "texture_bind_group",
		Layout: layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{TextureView: t.View.NativeHandle()}},
			{Binding: 1, Resource: gputypes.SamplerBinding{Sampler: t.Sampler.NativeHandle()}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("texture: create bind group: %w", err)
	}
	return bg, nil
}

// Destroy releases the sampler, view and texture. It is safe on a
// partially constructed Texture.
func (t *Texture) Destroy(device hal.Device) {
	if t.Sampler != nil {
		device.DestroySampler(t.Sampler)
		t.Sampler = nil
	}
	if t.View != nil {
		device.DestroyTextureView(t.View)
		t.View = nil
	}
	if t.Texture != nil {
		device.DestroyTexture(t.Texture)
		t.Texture = nil
	}
}
