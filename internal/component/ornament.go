// internal/component/ornament.go
package component

// Orbit — движение украшения по круговой орбите вокруг центра формации.
// Угол накапливается только когда круг собран: в хаосе украшения висят
// там, где их застало рассеивание.
type Orbit struct {
	Angle  float64 // текущий угол, радианы
	Radius float64
	Speed  float64 // радиан в секунду
}

// Pulse — «дыхание» украшения: синусоидальное изменение радиуса.
// Активируется только когда вес интерполяции выше порога сборки.
type Pulse struct {
	Rate   float64 // частота дыхания
	Amount float64 // доля базового радиуса
}

// FormationFlash — короткая вспышка в момент сборки круга
type FormationFlash struct {
	Timer    float64 // сколько времени эффект уже активен
	Duration float64 // общая продолжительность эффекта
}
