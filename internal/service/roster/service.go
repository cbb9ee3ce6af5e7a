package roster

import (
	"bytes"
	"context"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/drive"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/session"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/spreadsheet"
)

type rosterServiceImpl struct {
	store      *session.Store
	reader     spreadsheet.Reader
	fetcher    drive.Fetcher
	normalizer *Normalizer
}

func NewRosterService(
	store *session.Store,
	reader spreadsheet.Reader,
	fetcher drive.Fetcher,
	normalizer *Normalizer,
) roster.RosterService {
	return &rosterServiceImpl{
		store:      store,
		reader:     reader,
		fetcher:    fetcher,
		normalizer: normalizer,
	}
}

// UploadFile parses and normalizes an uploaded roster file, then
// publishes it as the session's current snapshot. Failures leave the
// previous snapshot in place.
func (s *rosterServiceImpl) UploadFile(ctx context.Context, filename string, file io.Reader) (roster.UploadResponse, error) {
	grid, err := s.reader.Read(file, filename)
	if err != nil {
		return roster.UploadResponse{}, err
	}

	result, err := s.normalizer.Normalize(grid)
	if err != nil {
		return roster.UploadResponse{}, err
	}

	snap := &session.Snapshot{
		ID:         uuid.New(),
		SourceName: filename,
		UploadedAt: time.Now(),
		Records:    result.Records,
		Staff:      result.Staff,
	}
	s.store.Replace(snap)

	return uploadResponseFor(snap), nil
}

// ImportFromURL resolves a Google Drive share URL, downloads the file
// and loads it the same way as a direct upload.
func (s *rosterServiceImpl) ImportFromURL(ctx context.Context, req roster.ImportFromURLRequest) (roster.UploadResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.UploadResponse{}, err
	}

	body, filename, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return roster.UploadResponse{}, err
	}

	return s.UploadFile(ctx, filename, bytes.NewReader(body))
}

func (s *rosterServiceImpl) ListRecords(ctx context.Context, filter roster.RecordFilter) (roster.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return roster.ListRecordsResponse{}, err
	}

	snap, ok := s.store.Current()
	if !ok {
		return roster.ListRecordsResponse{}, roster.ErrNoRosterLoaded
	}

	responses := []roster.RecordResponse{}
	for _, r := range snap.Records {
		if filter.Start != nil && r.Date.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && r.Date.After(*filter.End) {
			continue
		}
		responses = append(responses, roster.RecordResponse{
			Name:  r.Name,
			Date:  r.Date.Format("2006-01-02"),
			Shift: r.Shift,
		})
	}

	return roster.ListRecordsResponse{
		TotalCount: len(responses),
		Records:    responses,
	}, nil
}

func (s *rosterServiceImpl) ListStaff(ctx context.Context, filter roster.StaffFilter) (roster.StaffResponse, error) {
	snap, ok := s.store.Current()
	if !ok {
		return roster.StaffResponse{}, roster.ErrNoRosterLoaded
	}

	var allowed map[string]struct{}
	if filter.WithShift != "" {
		allowed = make(map[string]struct{})
		for _, r := range snap.Records {
			if r.Shift == filter.WithShift {
				allowed[r.Name] = struct{}{}
			}
		}
	}

	staff := []string{}
	for _, name := range snap.Staff {
		if filter.ExcludeJuniors && roster.IsJunior(name) {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[name]; !ok {
				continue
			}
		}
		staff = append(staff, name)
	}
	sort.Strings(staff)

	return roster.StaffResponse{
		TotalCount: len(staff),
		Staff:      staff,
	}, nil
}

func uploadResponseFor(snap *session.Snapshot) roster.UploadResponse {
	resp := roster.UploadResponse{
		SessionID:   snap.ID.String(),
		SourceName:  snap.SourceName,
		RecordCount: len(snap.Records),
		StaffCount:  len(snap.Staff),
		UploadedAt:  snap.UploadedAt.Format(time.RFC3339),
	}
	if from, to, ok := snap.Records.DateRange(); ok {
		resp.DateFrom = from.Format("2006-01-02")
		resp.DateTo = to.Format("2006-01-02")
	}
	return resp
}
