package create_appointment

import (
	"fmt"
	"strings"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

// validateRequest validates the booking submission.
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: client name exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	phone := strings.TrimSpace(req.ClientPhone)
	if phone == "" {
		return fmt.Errorf("%w: client phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: client phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if len(req.TreatmentIDs) == 0 {
		return fmt.Errorf("%w: at least one treatment is required", ErrInvalidInput)
	}
	if len(req.TreatmentIDs) > domain.MaxTreatmentsPerVisit {
		return fmt.Errorf("%w: at most %d treatments per visit", ErrInvalidInput, domain.MaxTreatmentsPerVisit)
	}
	for _, id := range req.TreatmentIDs {
		if id <= 0 {
			return fmt.Errorf("%w: treatment ids must be positive", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// uniqueIDs deduplicates the treatment id list preserving order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
