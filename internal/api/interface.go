package api

import "context"

// Transport defines the calls the stores make against the franchise API.
// This allows for mock implementations to be used in tests.
type Transport interface {
	Get(ctx context.Context, resource Resource) RawResult
	GetByID(ctx context.Context, resource Resource, id int) RawResult
	GetByName(ctx context.Context, resource Resource, query string) RawResult
	Post(ctx context.Context, resource Resource, body any) RawResult
	Put(ctx context.Context, resource Resource, body any) RawResult
	Delete(ctx context.Context, resource Resource, id int) RawResult
	UploadImage(ctx context.Context, category Category, image Image) UploadResult
}
