package response

import (
	"room-booking/internal/usecase/queries"
)

type ReservationResponse struct {
	ID            int    `json:"id"`
	RoomName      string `json:"roomName"`
	Date          string `json:"date"`
	FormattedDate string `json:"formattedDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
	Participants  int    `json:"participants,omitempty"`
	Description   string `json:"description,omitempty"`
}

func FromReservationView(rv *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            rv.ID,
		RoomName:      rv.RoomName,
		Date:          rv.Date,
		FormattedDate: rv.FormattedDate,
		StartTime:     rv.StartTime,
		EndTime:       rv.EndTime,
		Status:        rv.Status,
		Participants:  rv.Participants,
		Description:   rv.Description,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(views))
	for i, rv := range views {
		res[i] = FromReservationView(rv)
	}
	return res
}
