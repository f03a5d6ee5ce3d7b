// internal/event/types.go
package event

const (
	GestureChanged     EventType = "GestureChanged"     // состояние ладони изменилось
	FormationFormed    EventType = "FormationFormed"    // круг собрался
	FormationDispersed EventType = "FormationDispersed" // круг рассеялся
)
