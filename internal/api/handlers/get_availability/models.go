package get_availability

import (
	"time"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
	getAvailability "github.com/davidrm-dev/BarberShop-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string `json:"date"`
	Class string `json:"class"`
	Slots []Slot `json:"slots"`
}

// Slot is one classified time slot of the day.
type Slot struct {
	StartTime  string `json:"startTime"`
	State      string `json:"state"`
	Selectable bool   `json:"selectable"`
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, sv := range resp.Slots {
		slots[i] = Slot{
			StartTime:  sv.Time.String(),
			State:      string(sv.State),
			Selectable: sv.IsSelectable(),
		}
	}

	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Class: string(resp.Class),
		Slots: slots,
	}
}

// ToUseCaseRequest builds the use case request from the date query param.
func ToUseCaseRequest(dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{Date: date}, nil
}
