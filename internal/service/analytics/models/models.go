package models

// RangeSummary сводка бронирований за период
type RangeSummary struct {
	TotalBookedSlots     int     `json:"totalBookedSlots"`
	AttendedSlots        int     `json:"attendedSlots"`
	AttendancePercentage float64 `json:"attendancePercentage"`
}

// PopularSlotStat самый востребованный часовой диапазон месяца
type PopularSlotStat struct {
	Month        string `json:"month"` // "2026-07"
	SlotLabel    string `json:"slotLabel"`
	BookingCount int    `json:"bookingCount"`
}

// DashboardResponse агрегированная статистика тренера
type DashboardResponse struct {
	Weekly            RangeSummary      `json:"weekly"`
	Monthly           RangeSummary      `json:"monthly"`
	Yearly            RangeSummary      `json:"yearly"`
	PopularSlots      []PopularSlotStat `json:"popularSlots"`
	TotalWorkingHours float64           `json:"totalWorkingHours"`
}
