package domain

// Default appointment type values
const (
	DefaultDurationMinutes   = 60
	DefaultIntervalMinutes   = 30
	DefaultBufferTimeMinutes = 0
	DefaultMaxConcurrent     = 1
	DefaultTenantID          = 1
)

// Business validation constants
const (
	MinDurationMinutes   = 5
	MaxDurationMinutes   = 480 // 8 hours
	MinIntervalMinutes   = 5
	MaxIntervalMinutes   = 480
	MinConcurrent        = 1
	MaxConcurrentAllowed = 100
	MinBufferTimeMinutes = 0
	MaxBufferTimeMinutes = 10080 // 1 week
	MaxNotesLength       = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих ёмкость дока
// Используется при подсчёте пересечений для доступных слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих ёмкость дока
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
