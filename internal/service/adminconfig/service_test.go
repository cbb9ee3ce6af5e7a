package adminconfig

import (
	"context"
	"testing"

	"github.com/shiftlens/shiftlens-backend-go/internal/domain/adminconfig"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/session"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminConfigService_GetReturnsDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAdminConfigService(session.NewStore())

	result, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, adminconfig.DefaultHourConfig(), result.Config)
	assert.Equal(t, adminconfig.WeekdayGatedShifts, result.WeekdayGated)
	assert.Equal(t, 10, result.MaxHoursPerShift)
}

func TestAdminConfigService_ExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := session.NewStore()
	svc := NewAdminConfigService(store)

	original := adminconfig.HourConfig{"CST": 10, "MIC": 5, "HB CDU AM": 0}
	_, err := svc.Replace(ctx, adminconfig.ReplaceRequest{Config: original})
	require.NoError(t, err)

	exported, err := svc.Export(ctx)
	require.NoError(t, err)

	entries := make(map[string]float64, len(exported.Config))
	for code, hours := range exported.Config {
		entries[code] = float64(hours)
	}
	imported, err := svc.Import(ctx, adminconfig.ImportRequest{Entries: entries})
	require.NoError(t, err)

	assert.Equal(t, 0, imported.Rejected)
	assert.Equal(t, original, imported.Config)
	assert.Equal(t, original, store.Config())
}

func TestAdminConfigService_ImportDropsInvalidEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAdminConfigService(session.NewStore())

	result, err := svc.Import(ctx, adminconfig.ImportRequest{
		Entries: map[string]float64{
			"CST":       10,
			"MIC":       5.5, // non-integer
			"HB IC PM":  11,  // above ceiling
			"HB 21C PM": -1,  // below floor
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 3, result.Rejected)
	assert.Equal(t, adminconfig.HourConfig{"CST": 10}, result.Config)

	// Dropped and missing codes look up as 0.
	assert.Equal(t, 0, result.Config.Hours("MIC"))
	assert.Equal(t, 0, result.Config.Hours("NEVER CONFIGURED"))
}

func TestAdminConfigService_ReplaceRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := session.NewStore()
	svc := NewAdminConfigService(store)

	_, err := svc.Replace(ctx, adminconfig.ReplaceRequest{
		Config: map[string]int{"CST": 11},
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "CST")

	// Nothing partially applied.
	assert.Equal(t, adminconfig.DefaultHourConfig(), store.Config())
}

func TestAdminConfigService_ConfigLifecycleIndependentOfRoster(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := session.NewStore()
	svc := NewAdminConfigService(store)

	_, err := svc.Replace(ctx, adminconfig.ReplaceRequest{
		Config: map[string]int{"CST": 7},
	})
	require.NoError(t, err)

	// Replacing the roster snapshot leaves the config untouched.
	store.Replace(&session.Snapshot{})
	assert.Equal(t, adminconfig.HourConfig{"CST": 7}, store.Config())
}
