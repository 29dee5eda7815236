package enum

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusBooked   BookingStatus = "booked"
	BookingStatusCanceled BookingStatus = "canceled"
)

func (s BookingStatus) String() string {
	return string(s)
}
