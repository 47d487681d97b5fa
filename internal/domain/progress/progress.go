package progress

import (
	"math"

	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

// RequiredImages is the fixed image count per progress post.
const RequiredImages = 5

// CompletionPercentage derives the completion figure from the task list.
// Both the create and the update path go through here; nothing else may
// write Percentage.
func CompletionPercentage(tasks []models.ProgressTask) int {
	if len(tasks) == 0 {
		return 0
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / float64(len(tasks))))
}

// ValidateImages enforces the exactly-five rule.
func ValidateImages(images []string) error {
	if len(images) != RequiredImages {
		return httperr.ErrBusiness("invalid_image_count")
	}
	return nil
}
