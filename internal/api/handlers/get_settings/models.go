package get_settings

import (
	"time"

	"github.com/glowtress/booking-service/internal/domain"
)

// DayScheduleModel HTTP model of one weekday's opening window.
type DayScheduleModel struct {
	Closed    bool `json:"closed"`
	OpenHour  int  `json:"openHour"`
	CloseHour int  `json:"closeHour"`
}

// BusinessHoursModel HTTP model of the weekly schedule.
type BusinessHoursModel struct {
	Monday    DayScheduleModel `json:"monday"`
	Tuesday   DayScheduleModel `json:"tuesday"`
	Wednesday DayScheduleModel `json:"wednesday"`
	Thursday  DayScheduleModel `json:"thursday"`
	Friday    DayScheduleModel `json:"friday"`
	Saturday  DayScheduleModel `json:"saturday"`
	Sunday    DayScheduleModel `json:"sunday"`
}

// SettingsResponse HTTP model of the business configuration.
type SettingsResponse struct {
	BusinessHours           BusinessHoursModel `json:"businessHours"`
	SlotIntervalMinutes     int                `json:"slotIntervalMinutes"`
	MinBookingNoticeMinutes int                `json:"minBookingNoticeMinutes"`
	DepositInfo             string             `json:"depositInfo"`
	NotificationEmail       string             `json:"notificationEmail"`
	NotificationPhone       string             `json:"notificationPhone"`
	ServiceArea             string             `json:"serviceArea"`
	UpdatedAt               string             `json:"updatedAt,omitempty"`
}

func dayFromDomain(d domain.DaySchedule) DayScheduleModel {
	return DayScheduleModel{Closed: d.Closed, OpenHour: d.OpenHour, CloseHour: d.CloseHour}
}

// FromDomain converts the settings into the HTTP response.
func FromDomain(s *domain.Settings) *SettingsResponse {
	resp := &SettingsResponse{
		BusinessHours: BusinessHoursModel{
			Monday:    dayFromDomain(s.BusinessHours.Monday),
			Tuesday:   dayFromDomain(s.BusinessHours.Tuesday),
			Wednesday: dayFromDomain(s.BusinessHours.Wednesday),
			Thursday:  dayFromDomain(s.BusinessHours.Thursday),
			Friday:    dayFromDomain(s.BusinessHours.Friday),
			Saturday:  dayFromDomain(s.BusinessHours.Saturday),
			Sunday:    dayFromDomain(s.BusinessHours.Sunday),
		},
		SlotIntervalMinutes:     s.SlotIntervalMinutes,
		MinBookingNoticeMinutes: s.MinBookingNoticeMinutes,
		DepositInfo:             s.DepositInfo,
		NotificationEmail:       s.NotificationEmail,
		NotificationPhone:       s.NotificationPhone,
		ServiceArea:             s.ServiceArea,
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
