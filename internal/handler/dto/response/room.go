package response

import (
	"room-booking/internal/usecase/queries"
)

type RoomResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Equipment   []string `json:"equipment"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

func FromRoomView(rv *queries.RoomView) *RoomResponse {
	equipment := rv.Equipment
	if equipment == nil {
		equipment = []string{}
	}
	return &RoomResponse{
		ID:          rv.ID,
		Name:        rv.Name,
		Capacity:    rv.Capacity,
		Equipment:   equipment,
		Image:       rv.Image,
		Description: rv.Description,
	}
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	res := make([]*RoomResponse, len(views))
	for i, rv := range views {
		res[i] = FromRoomView(rv)
	}
	return res
}

type EquipmentResponse struct {
	Equipment []string `json:"equipment"`
}

type ScheduleCellResponse struct {
	RoomID        int    `json:"roomId"`
	Reserved      bool   `json:"reserved"`
	ReservationID int    `json:"reservationId,omitempty"`
	Description   string `json:"description,omitempty"`
}

type ScheduleRowResponse struct {
	Hour  string                  `json:"hour"`
	Cells []*ScheduleCellResponse `json:"cells"`
}

type ScheduleResponse struct {
	Date          string                 `json:"date"`
	FormattedDate string                 `json:"formattedDate"`
	Rooms         []*RoomResponse        `json:"rooms"`
	Rows          []*ScheduleRowResponse `json:"rows"`
}

func FromDaySchedule(ds *queries.DaySchedule) *ScheduleResponse {
	rows := make([]*ScheduleRowResponse, len(ds.Rows))
	for i, row := range ds.Rows {
		cells := make([]*ScheduleCellResponse, len(row.Cells))
		for j, c := range row.Cells {
			cells[j] = &ScheduleCellResponse{
				RoomID:        c.RoomID,
				Reserved:      c.Reserved,
				ReservationID: c.ReservationID,
				Description:   c.Description,
			}
		}
		rows[i] = &ScheduleRowResponse{Hour: row.Hour, Cells: cells}
	}
	return &ScheduleResponse{
		Date:          ds.Date,
		FormattedDate: ds.FormattedDate,
		Rooms:         FromRoomViews(ds.Rooms),
		Rows:          rows,
	}
}
