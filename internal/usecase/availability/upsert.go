package availability

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/booking"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
	"github.com/GreenvaleServices/landscape-platform/internal/timezone"
)

// Upsert publishes a landscaper's slots for one calendar day. An existing
// entry for that day has its slot list replaced wholesale; slot strings
// themselves are not validated.
type Upsert struct {
	repo domain.Repository
}

func NewUpsert(repo domain.Repository) *Upsert {
	return &Upsert{repo: repo}
}

func (uc *Upsert) Execute(
	ctx context.Context,
	landscaperID uint,
	dateStr string,
	slots []string,
	tz string,
) (*models.AvailabilityDay, error) {

	if dateStr == "" || len(slots) == 0 {
		return nil, httperr.ErrBusiness("missing_date_or_slots")
	}

	if _, err := uc.repo.GetLandscaperByID(ctx, landscaperID); err != nil {
		return nil, httperr.ErrBusiness("landscaper_not_found")
	}

	day, err := timezone.ParseDay(dateStr, tz)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	entry, err := uc.repo.GetAvailabilityDay(ctx, landscaperID, day)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		entry = &models.AvailabilityDay{
			LandscaperID: landscaperID,
			Date:         day,
		}
	}

	// wholesale replace, never a merge of old and new slots
	entry.Slots = models.StringList(slots)

	if err := uc.repo.SaveAvailabilityDay(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}
