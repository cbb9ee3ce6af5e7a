package adminconfig

import (
	"context"
	"math"

	"github.com/shiftlens/shiftlens-backend-go/internal/domain/adminconfig"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/session"
)

type adminConfigServiceImpl struct {
	store *session.Store
}

func NewAdminConfigService(store *session.Store) adminconfig.AdminConfigService {
	return &adminConfigServiceImpl{
		store: store,
	}
}

func (s *adminConfigServiceImpl) Get(ctx context.Context) (adminconfig.ConfigResponse, error) {
	return configResponseFor(s.store.Config()), nil
}

// Replace swaps in a whole new table. Strict: any invalid entry rejects
// the request, nothing is partially applied.
func (s *adminConfigServiceImpl) Replace(ctx context.Context, req adminconfig.ReplaceRequest) (adminconfig.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return adminconfig.ConfigResponse{}, err
	}

	cfg := adminconfig.HourConfig(req.Config).Clone()
	s.store.SetConfig(cfg)

	return configResponseFor(cfg), nil
}

// Import loads a previously exported mapping. Lenient by contract:
// entries that are non-integer or outside [0,10] are dropped and
// counted, the rest are applied. Codes absent from the import simply
// look up as 0 afterwards.
func (s *adminConfigServiceImpl) Import(ctx context.Context, req adminconfig.ImportRequest) (adminconfig.ImportResponse, error) {
	cfg := make(adminconfig.HourConfig, len(req.Entries))
	rejected := 0
	for code, value := range req.Entries {
		if value != math.Trunc(value) || value < 0 || value > adminconfig.MaxHours {
			rejected++
			continue
		}
		cfg[code] = int(value)
	}
	s.store.SetConfig(cfg)

	return adminconfig.ImportResponse{
		Imported: len(cfg),
		Rejected: rejected,
		Config:   cfg,
	}, nil
}

func (s *adminConfigServiceImpl) Export(ctx context.Context) (adminconfig.ExportResponse, error) {
	return adminconfig.ExportResponse{
		Config: s.store.Config().Clone(),
	}, nil
}

func configResponseFor(cfg adminconfig.HourConfig) adminconfig.ConfigResponse {
	return adminconfig.ConfigResponse{
		Config:           cfg,
		WeekdayGated:     adminconfig.WeekdayGatedShifts,
		MaxHoursPerShift: adminconfig.MaxHours,
	}
}
