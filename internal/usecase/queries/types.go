package queries

// RoomView represents read-optimized room data
type RoomView struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Equipment   []string `json:"equipment"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID            int    `json:"id"`
	RoomName      string `json:"room_name"`
	Date          string `json:"date"`
	FormattedDate string `json:"formatted_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	Participants  int    `json:"participants,omitempty"`
	Description   string `json:"description,omitempty"`
}

type ProfileView struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// ScheduleCell is one room at one hour of the day schedule.
type ScheduleCell struct {
	RoomID        int    `json:"room_id"`
	Reserved      bool   `json:"reserved"`
	ReservationID int    `json:"reservation_id,omitempty"`
	Description   string `json:"description,omitempty"`
}

type ScheduleRow struct {
	Hour  string         `json:"hour"`
	Cells []ScheduleCell `json:"cells"`
}

type DaySchedule struct {
	Date          string        `json:"date"`
	FormattedDate string        `json:"formatted_date"`
	Rooms         []*RoomView   `json:"rooms"`
	Rows          []ScheduleRow `json:"rows"`
}
