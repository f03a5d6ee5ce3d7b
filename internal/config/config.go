// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Частицы магического круга
	ParticleCount = 6000
	ChaosRadius   = 9.0 // радиус сферы хаоса
	MinSize       = 0.04
	MaxSize       = 0.14

	// Радиусы мандалы (менять нельзя — подобраны под общий рисунок)
	OuterRadius  = 6.5
	MiddleRadius = 3.2
	InnerRadius  = 1.2
	CenterRadius = 0.5

	// Полумесяц: тело и вырез
	MoonBodyX      = 0.8
	MoonBodyY      = 0.15
	MoonBodyRadius = 1.05
	MoonCutX       = 1.25
	MoonCutY       = 0.4
	MoonCutRadius  = 0.85
	MoonMaxTries   = 32 // предел попыток rejection sampling

	PlaneJitter = 0.08 // небольшой разброс по глубине, чтобы круг не был плоским листом

	// Сглаживание chaos↔formed (единиц в секунду, не за кадр)
	BlendRate         = 1.2
	RotationThreshold = 0.9  // вращение включается только когда круг почти собран
	RotationSpeed     = 0.15 // радиан в секунду
	TurbulenceChaos   = 0.9  // амплитуда шума в хаосе
	TurbulenceFormed  = 0.05 // остаточное дрожание собранного круга
	TwinkleSpeed      = 3.0

	// Проекция
	CameraDistance = 16.0
	CameraHeight   = 5.5
	ViewScale      = 52.0
	DepthFalloff   = 0.055 // перспективное уменьшение размера точки

	// Украшения (орбитальные глифы)
	OrnamentCount     = 5
	OrnamentOrbit     = 7.4
	OrnamentSpeed     = 0.35
	OrnamentPulseRate = 1.6
	FlashDuration     = 0.9

	// Опрос жестов
	GesturePollInterval = 250 // миллисекунды между запросами
	GestureTimeout      = 800 // таймаут одного запроса, мс
	FrameWidth          = 160 // кадры ужимаются до этого размера перед отправкой
	FrameHeight         = 120

	// UI
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	PauseButtonX     = ScreenWidth - 80
	PauseButtonY     = 30
	PauseButtonSize  = 12.0
	CursorSpringFreq = 6.0
	CursorSpringDamp = 0.7
	FontSize         = 14.0
)

// Границы поддиапазонов выбора примитива. Одно равномерное число из [0,1)
// попадает в один из девяти поддиапазонов; границы — дизайн-константа,
// от них зависит плотность каждого слоя мандалы.
const (
	RangeOuterRing  = 0.08
	RangeStarA      = 0.20
	RangeStarB      = 0.32
	RangeMiddleRing = 0.40
	RangeInnerStar  = 0.50
	RangeMoon       = 0.60
	RangeInnerRing  = 0.68
	RangeCenterStar = 0.92
	// остаток до 1.00 — заполненный центр
)

var (
	BackgroundColor = color.RGBA{8, 6, 18, 255}

	// Палитра хаоса — холодный бело-голубой
	ChaosColorA = color.RGBA{160, 190, 255, 255}
	ChaosColorB = color.RGBA{220, 235, 255, 255}

	// Палитра собранного круга
	FormedColorA = color.RGBA{255, 150, 220, 255} // розовый
	FormedColorB = color.RGBA{255, 240, 250, 255} // почти белый
	MoonColorA   = color.RGBA{255, 220, 140, 255} // бледное золото
	MoonColorB   = color.RGBA{255, 245, 200, 255}

	GuideLineColor = color.RGBA{200, 160, 255, 90}

	OrnamentColor = color.RGBA{235, 200, 255, 255}
	FlashColor    = color.RGBA{255, 255, 255, 255}

	// Индикатор жеста
	OpenColor    = color.RGBA{120, 230, 150, 220}
	ClosedColor  = color.RGBA{220, 80, 80, 220}
	UnknownColor = color.RGBA{120, 120, 140, 220}

	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	StrokeWidth     = 2.0
)
