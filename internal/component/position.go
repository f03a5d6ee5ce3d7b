// internal/component/position.go
package component

// Position — позиция сущности в мировых координатах
type Position struct {
	X, Y, Z float64
}
