// internal/camera/source.go
package camera

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// FrameSource выдаёт последовательные кадры фиксированного небольшого
// разрешения. Визуал только читает пиксели и никогда их не меняет.
type FrameSource interface {
	Grab() (*image.RGBA, error)
}

// Downscale ужимает кадр до размера w на h. Кадры отправляются во
// внешний vision-API, которому хватает маленького разрешения, поэтому
// полные кадры камеры по сети не гоняются.
func Downscale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
