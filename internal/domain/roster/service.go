package roster

import (
	"context"
	"io"
)

type RosterService interface {
	// Loading
	UploadFile(ctx context.Context, filename string, file io.Reader) (UploadResponse, error)
	ImportFromURL(ctx context.Context, req ImportFromURLRequest) (UploadResponse, error)

	// Reading
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)
	ListStaff(ctx context.Context, filter StaffFilter) (StaffResponse, error)
}
