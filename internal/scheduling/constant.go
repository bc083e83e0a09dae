package scheduling

const (
	LogPrefixBook = "internal.scheduling.Book"

	// Booking window: from today up to 30 days out.
	MaxDaysAhead = 30

	// Working hours for consultation slots.
	FirstSlotHour   = 9
	LastSlotHour    = 17
	LastSlotMinute  = 30
	SlotMinuteStep  = 30
	SlotEventLength = 30 // minutes

	ConfirmMessageFormat = "Đã đặt lịch tư vấn vào %s lúc %s. Chuyên viên của chúng tôi sẽ liên hệ qua số %s để xác nhận."

	EventSummaryFormat = "Tư vấn bảo hiểm - %s"
)
