// Package mission holds the static 30-day mission catalog. The table is
// built once at init and never changes.
package mission

import "fmt"

// Four weekly themes: days 1-7 observation, 8-14 memory, 15-21
// communication, 22-30 strategy.
const (
	textObservation   = "Наблюдение: выбери место, 5 мин — запомни 10 деталей, потом восстанови."
	textMemory        = "Память: 10 минут головоломок или тренировка loci на 10 элементов."
	textCommunication = "Коммуникация: отзеркаль 1–2 собеседников и проанализируй реакцию."
	textStrategy      = "Стратегия: сформируй план дня в формате OODA и выполни миссию вне зоны комфорта."
)

var missions [30]string

func init() {
	for i := 1; i <= 30; i++ {
		var m string
		switch {
		case i <= 7:
			m = textObservation
		case i <= 14:
			m = textMemory
		case i <= 21:
			m = textCommunication
		default:
			m = textStrategy
		}
		missions[i-1] = fmt.Sprintf("День %d: %s", i, m)
	}
}

// For returns the mission text for a day index in 1..30. Callers normalize
// dates through clock.DayIndex first; anything else is a bug.
func For(dayIndex int) string {
	if dayIndex < 1 || dayIndex > len(missions) {
		panic(fmt.Sprintf("mission: day index %d out of range", dayIndex))
	}
	return missions[dayIndex-1]
}
