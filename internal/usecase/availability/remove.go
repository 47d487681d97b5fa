package availability

import (
	"context"

	domain "github.com/GreenvaleServices/landscape-platform/internal/domain/booking"
	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/timezone"
)

// Remove retracts one calendar day from the ledger. A date with no entry
// is still a success; the ledger just stays as it was.
type Remove struct {
	repo domain.Repository
}

func NewRemove(repo domain.Repository) *Remove {
	return &Remove{repo: repo}
}

func (uc *Remove) Execute(
	ctx context.Context,
	landscaperID uint,
	dateStr string,
	tz string,
) error {

	if dateStr == "" {
		return httperr.ErrBusiness("missing_date")
	}

	if _, err := uc.repo.GetLandscaperByID(ctx, landscaperID); err != nil {
		return httperr.ErrBusiness("landscaper_not_found")
	}

	day, err := timezone.ParseDay(dateStr, tz)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.DeleteAvailabilityDay(ctx, landscaperID, day)
}
