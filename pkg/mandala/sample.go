// pkg/mandala/sample.go
package mandala

import "math"

const (
	starTips = 5
	// Сдвиг на половину луча: угол между соседними лучами 2π/5,
	// пол-луча — π/5.
	starTipOffset = math.Pi / starTips
)

// RingPoint возвращает точку на окружности заданного радиуса
func RingPoint(r Rand, radius float64) Point {
	a := r.Float64() * 2 * math.Pi
	return Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
}

// StarTips возвращает пять вершин пентаграммы на окружности радиуса radius.
// Первая вершина смотрит вверх (угол -π/2 до поворота rotation).
func StarTips(radius, rotation float64) [starTips]Point {
	var tips [starTips]Point
	for i := 0; i < starTips; i++ {
		a := rotation - math.Pi/2 + float64(i)*2*math.Pi/starTips
		tips[i] = Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return tips
}

// StarPoint возвращает точку на контуре пятиконечной звезды.
// Вершины соединяются через одну (i → i+2), что даёт пентаграмму,
// а не пятиугольник. Отрезок выбирается равномерно, точка на нём —
// линейной интерполяцией со случайной долей.
func StarPoint(r Rand, radius, rotation float64) Point {
	tips := StarTips(radius, rotation)
	seg := r.Intn(starTips)
	a := tips[seg]
	b := tips[(seg+2)%starTips]
	t := r.Float64()
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// DiskPoint возвращает точку, равномерно распределённую внутри круга.
// Радиус масштабируется корнем, иначе точки сгущались бы в центре.
func DiskPoint(r Rand, radius float64) Point {
	a := r.Float64() * 2 * math.Pi
	d := radius * math.Sqrt(r.Float64())
	return Point{X: d * math.Cos(a), Y: d * math.Sin(a)}
}

// SpherePoint возвращает точку, равномерную по объёму шара радиуса radius.
// Кубический корень по радиусу даёт равномерную объёмную плотность,
// а не скопление на оболочке.
func SpherePoint(r Rand, radius float64) (x, y, z float64) {
	theta := r.Float64() * 2 * math.Pi
	phi := math.Acos(2*r.Float64() - 1)
	d := radius * math.Cbrt(r.Float64())
	sinPhi := math.Sin(phi)
	x = d * sinPhi * math.Cos(theta)
	y = d * math.Cos(phi)
	z = d * sinPhi * math.Sin(theta)
	return x, y, z
}

// Crescent — полумесяц: круг-тело, из которого второй круг вырезает серп
type Crescent struct {
	BodyX, BodyY, BodyR float64
	CutX, CutY, CutR    float64
	MaxTries            int
}

// Contains сообщает, лежит ли точка внутри серпа:
// внутри тела и вне выреза.
func (c Crescent) Contains(p Point) bool {
	dbx, dby := p.X-c.BodyX, p.Y-c.BodyY
	if dbx*dbx+dby*dby > c.BodyR*c.BodyR {
		return false
	}
	dcx, dcy := p.X-c.CutX, p.Y-c.CutY
	return dcx*dcx+dcy*dcy > c.CutR*c.CutR
}

// Point подбирает точку серпа rejection sampling-ом по ограничивающему
// квадрату тела. Цикл ограничен MaxTries: при разумной геометрии серпа
// предел практически не срабатывает, но гарантирует завершение за
// фиксированное число шагов. После исчерпания попыток возвращается
// детерминированная запасная точка.
func (c Crescent) Point(r Rand) Point {
	for i := 0; i < c.MaxTries; i++ {
		p := Point{
			X: c.BodyX + (r.Float64()*2-1)*c.BodyR,
			Y: c.BodyY + (r.Float64()*2-1)*c.BodyR,
		}
		if c.Contains(p) {
			return p
		}
	}
	return c.Fallback()
}

// Fallback — запасная точка: центр тела, сдвинутый от центра выреза
// на 0.6 радиуса тела. При любой геометрии, где вырез не накрывает
// тело целиком, такая точка лежит внутри серпа.
func (c Crescent) Fallback() Point {
	dx, dy := c.BodyX-c.CutX, c.BodyY-c.CutY
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		// Вырожденный случай: концентричные круги, серпа нет
		return Point{X: c.BodyX, Y: c.BodyY}
	}
	k := 0.6 * c.BodyR / mag
	return Point{X: c.BodyX + dx*k, Y: c.BodyY + dy*k}
}
