//go:build unit

package inspection_test

import (
	"testing"

	"vtv-turnos/internal/domain/inspection"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checklist(ratings ...int) []inspection.CriterionResult {
	items := make([]inspection.CriterionResult, len(ratings))
	for i, r := range ratings {
		items[i] = inspection.CriterionResult{CriterionID: i + 1, Rating: r}
	}
	return items
}

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		ratings      []int
		wantTotal    int
		wantCritical bool
		errIs        error
	}{
		{
			name:      "perfect checklist",
			ratings:   []int{10, 10, 10, 10, 10, 10, 10, 10},
			wantTotal: 80,
		},
		{
			name:      "mixed ratings without critical failure",
			ratings:   []int{8, 7, 9, 6, 8, 8, 7, 5},
			wantTotal: 58,
		},
		{
			name:         "single rating below five is critical",
			ratings:      []int{10, 10, 10, 10, 10, 10, 10, 4},
			wantTotal:    74,
			wantCritical: true,
		},
		{
			name:         "all minimum ratings",
			ratings:      []int{1, 1, 1, 1, 1, 1, 1, 1},
			wantTotal:    8,
			wantCritical: true,
		},
		{
			name:    "rating above maximum rejected",
			ratings: []int{10, 10, 10, 10, 10, 10, 10, 11},
			errIs:   inspection.ErrRatingOutOfRange,
		},
		{
			name:    "rating of zero rejected",
			ratings: []int{0, 10, 10, 10, 10, 10, 10, 10},
			errIs:   inspection.ErrRatingOutOfRange,
		},
		{
			name:    "negative rating rejected",
			ratings: []int{8, 8, 8, -3, 8, 8, 8, 8},
			errIs:   inspection.ErrRatingOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := inspection.Score(checklist(tt.ratings...))
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, summary.Total)
			assert.Equal(t, tt.wantCritical, summary.CriticalFailure)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		critical bool
		want     inspection.Verdict
	}{
		{"just below recheck threshold", 39, false, inspection.VerdictRecheck},
		{"exactly at recheck threshold", 40, false, inspection.VerdictWithWarning},
		{"just below safe threshold", 79, false, inspection.VerdictWithWarning},
		{"exactly at safe threshold", 80, false, inspection.VerdictSafe},
		{"high total with critical failure still recheck", 74, true, inspection.VerdictRecheck},
		{"critical failure dominates any total", 79, true, inspection.VerdictRecheck},
		{"zero total", 0, false, inspection.VerdictRecheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inspection.Classify(tt.total, tt.critical))
		})
	}
}

func TestAutoNote(t *testing.T) {
	note := inspection.AutoNote(inspection.VerdictWithWarning, 58)
	assert.Equal(t, "Resultado automatico: SEGURO CON ADVERTENCIA con 58/80 puntos.", note)
}

func TestNewResult(t *testing.T) {
	t.Run("scores and classifies a full checklist", func(t *testing.T) {
		result, err := inspection.NewResult(checklist(8, 7, 9, 6, 8, 8, 7, 5))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, result.ID)
		assert.Equal(t, inspection.VerdictWithWarning, result.Verdict)
		assert.Equal(t, 58, result.Total)
		assert.Equal(t, "Resultado automatico: SEGURO CON ADVERTENCIA con 58/80 puntos.", result.Notes)
		assert.Len(t, result.Items, inspection.ChecklistSize)
	})

	t.Run("rejects a short checklist", func(t *testing.T) {
		_, err := inspection.NewResult(checklist(8, 8, 8))
		require.ErrorIs(t, err, inspection.ErrChecklistSize)
	})

	t.Run("rejects a long checklist", func(t *testing.T) {
		_, err := inspection.NewResult(checklist(8, 8, 8, 8, 8, 8, 8, 8, 8))
		require.ErrorIs(t, err, inspection.ErrChecklistSize)
	})

	t.Run("rejects an empty checklist", func(t *testing.T) {
		_, err := inspection.NewResult(nil)
		require.ErrorIs(t, err, inspection.ErrChecklistSize)
	})

	t.Run("propagates rating validation", func(t *testing.T) {
		_, err := inspection.NewResult(checklist(8, 8, 8, 8, 8, 8, 8, 11))
		require.ErrorIs(t, err, inspection.ErrRatingOutOfRange)
	})
}
