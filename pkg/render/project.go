// pkg/render/project.go
package render

import (
	"math"

	"go-magic-circle/internal/config"
)

// Камера фиксирована: смотрит на центр формации спереди-сверху.
// Наклон выводится из высоты и дистанции камеры один раз.
var (
	camTiltSin = config.CameraHeight / math.Hypot(config.CameraHeight, config.CameraDistance)
	camTiltCos = config.CameraDistance / math.Hypot(config.CameraHeight, config.CameraDistance)
)

// Project переводит мировую точку (x, y, z) в экранные координаты.
// rotation — накопленный угол вращения формации вокруг вертикальной оси.
// Третье возвращаемое значение — перспективный множитель размера:
// чем дальше точка от камеры, тем мельче рисуется частица.
func Project(x, y, z, rotation float64) (sx, sy, sizeScale float64) {
	// Вращение формации вокруг оси Y
	sinR, cosR := math.Sin(rotation), math.Cos(rotation)
	xr := x*cosR - z*sinR
	zr := x*sinR + z*cosR

	// Перспектива относительно фиксированной камеры: глубина отсчитывается
	// от ближнего края сферы хаоса, чтобы множитель не превышал единицу
	sizeScale = 1 / (1 + config.DepthFalloff*(zr*camTiltCos+config.ChaosRadius))
	scale := config.ViewScale * sizeScale

	sx = config.ScreenWidth/2 + xr*scale
	sy = config.ScreenHeight/2 + (zr*camTiltSin-y*camTiltCos)*scale
	return sx, sy, sizeScale
}
