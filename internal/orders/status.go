package orders

// Order status values. The Arabic strings are the wire contract: they are
// stored verbatim and must round-trip unchanged.
const (
	StatusNew        = "جديد"
	StatusInProgress = "قيد التنفيذ"
	StatusCompleted  = "مكتمل"
	StatusCancelled  = "ملغي"
)

var validStatuses = map[string]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

func ValidStatus(status string) bool {
	return validStatuses[status]
}

// Pending reports whether a status counts toward the dashboard's pending
// figure (not yet completed or cancelled).
func Pending(status string) bool {
	return status == StatusNew || status == StatusInProgress
}
