// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности
type EntityID uint64
