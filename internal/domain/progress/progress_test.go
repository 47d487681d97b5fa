package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

func tasks(done ...bool) []models.ProgressTask {
	out := make([]models.ProgressTask, len(done))
	for i, d := range done {
		out[i] = models.ProgressTask{Name: "task", Completed: d}
	}
	return out
}

func TestCompletionPercentage(t *testing.T) {
	cases := []struct {
		name  string
		tasks []models.ProgressTask
		want  int
	}{
		{"empty list", nil, 0},
		{"none done", tasks(false, false, false), 0},
		{"half done", tasks(true, false, true, false), 50},
		{"all done", tasks(true, true), 100},
		{"one of three rounds to 33", tasks(true, false, false), 33},
		{"two of three rounds to 67", tasks(true, true, false), 67},
		{"one of six rounds to 17", tasks(true, false, false, false, false, false), 17},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CompletionPercentage(tc.tasks))
		})
	}
}

func TestValidateImages(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e", "f"}
	assert.NoError(t, ValidateImages(keys[:5]))

	for _, n := range []int{0, 4, 6} {
		err := ValidateImages(keys[:n])
		require.Error(t, err, "count %d", n)
		code, ok := httperr.BusinessCode(err)
		require.True(t, ok)
		assert.Equal(t, "invalid_image_count", code)
	}
}
