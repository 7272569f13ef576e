package datetime

import "time"

// DayStart возвращает начало суток (00:00:00.000) для даты
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd возвращает конец суток (23:59:59.999) для даты
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// WeekBounds возвращает границы недели, содержащей дату
// Неделя начинается в понедельник 00:00:00.000 и заканчивается
// в воскресенье 23:59:59.999 независимо от локали.
func WeekBounds(t time.Time) (start, end time.Time) {
	// time.Weekday: воскресенье = 0, понедельник = 1
	diffToMonday := (int(t.Weekday()) + 6) % 7
	start = DayStart(t.AddDate(0, 0, -diffToMonday))
	end = DayEnd(start.AddDate(0, 0, 6))
	return start, end
}

// MonthBounds возвращает границы календарного месяца, содержащего дату
// Конец месяца вычисляется переходом на следующий месяц и вычитанием дня,
// что корректно обрабатывает месяцы разной длины и високосные годы.
func MonthBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = DayEnd(start.AddDate(0, 1, 0).AddDate(0, 0, -1))
	return start, end
}

// YearBounds возвращает границы календарного года, содержащего дату
func YearBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	end = DayEnd(time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location()))
	return start, end
}

// SameDay возвращает true, если обе даты относятся к одним суткам
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
