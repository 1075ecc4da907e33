package update_settings

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

// UpdateSettingsRequest HTTP request model. Every field is required: the
// admin UI always submits the full form.
type UpdateSettingsRequest struct {
	BusinessHours           BusinessHoursModel `json:"businessHours"`
	SlotIntervalMinutes     int                `json:"slotIntervalMinutes"`
	MinBookingNoticeMinutes int                `json:"minBookingNoticeMinutes"`
	DepositInfo             string             `json:"depositInfo"`
	NotificationEmail       string             `json:"notificationEmail"`
	NotificationPhone       string             `json:"notificationPhone"`
	ServiceArea             string             `json:"serviceArea"`
}

// SettingsResponse HTTP model of the stored configuration.
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

func dayToDomain(d DayScheduleModel) domain.DaySchedule {
	return domain.DaySchedule{Closed: d.Closed, OpenHour: d.OpenHour, CloseHour: d.CloseHour}
}

func dayFromDomain(d domain.DaySchedule) DayScheduleModel {
	return DayScheduleModel{Closed: d.Closed, OpenHour: d.OpenHour, CloseHour: d.CloseHour}
}

// ToDomain converts the request into domain settings.
func (r *UpdateSettingsRequest) ToDomain() *domain.Settings {
	return &domain.Settings{
		BusinessHours: domain.BusinessHours{
			Monday:    dayToDomain(r.BusinessHours.Monday),
			Tuesday:   dayToDomain(r.BusinessHours.Tuesday),
			Wednesday: dayToDomain(r.BusinessHours.Wednesday),
			Thursday:  dayToDomain(r.BusinessHours.Thursday),
			Friday:    dayToDomain(r.BusinessHours.Friday),
			Saturday:  dayToDomain(r.BusinessHours.Saturday),
			Sunday:    dayToDomain(r.BusinessHours.Sunday),
		},
		SlotIntervalMinutes:     r.SlotIntervalMinutes,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
		DepositInfo:             r.DepositInfo,
		NotificationEmail:       r.NotificationEmail,
		NotificationPhone:       r.NotificationPhone,
		ServiceArea:             r.ServiceArea,
	}
}

// FromDomain converts the stored settings into the HTTP response.
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
