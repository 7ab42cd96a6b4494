package interfaces

import "context"

// IReportArchive stores exported report files and returns the object key.
type IReportArchive interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}
