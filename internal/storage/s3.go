// Package storage archives admin exports to S3 for retention. The download
// path never depends on it; archiving is best effort.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportArchive struct {
	client *s3.Client
	bucket string
}

// NewExportArchive returns an archive writer. An empty bucket disables it.
func NewExportArchive(client *s3.Client, bucket string) *ExportArchive {
	return &ExportArchive{client: client, bucket: bucket}
}

func (a *ExportArchive) Enabled() bool {
	return a.bucket != ""
}

// ArchiveWorkbook stores the workbook bytes under a timestamped key and
// returns the key on success.
func (a *ExportArchive) ArchiveWorkbook(ctx context.Context, body []byte, at time.Time) (string, error) {
	if !a.Enabled() {
		return "", fmt.Errorf("export archive not configured")
	}

	key := fmt.Sprintf("exports/%s.xlsx", at.UTC().Format("2006-01-02T15-04-05Z"))

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(xlsxContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive export: %w", err)
	}

	return key, nil
}
