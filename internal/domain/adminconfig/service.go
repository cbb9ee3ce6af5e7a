package adminconfig

import "context"

type AdminConfigService interface {
	Get(ctx context.Context) (ConfigResponse, error)
	Replace(ctx context.Context, req ReplaceRequest) (ConfigResponse, error)
	Import(ctx context.Context, req ImportRequest) (ImportResponse, error)
	Export(ctx context.Context) (ExportResponse, error)
}
