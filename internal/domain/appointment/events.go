package appointment

// Event is emitted by a lifecycle transition and consumed after the
// appointment row has been written in the same transaction.
type Event interface {
	appointmentEvent()
}

type AppointmentCompleted struct {
	AppointmentID uint
	UserID        uint
	ServiceType   ServiceType
}

type AppointmentCancelled struct {
	AppointmentID uint
	UserID        uint
	FreeHaircut   bool
}

type FreeHaircutBooked struct {
	AppointmentID uint
	UserID        uint
}

func (AppointmentCompleted) appointmentEvent() {}
func (AppointmentCancelled) appointmentEvent() {}
func (FreeHaircutBooked) appointmentEvent()    {}
