package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/andrepreira/bid-pdf-document-processor/gen/ent"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/extractionlog"
	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// ExtractionLogRepository appends audit rows. The table is insert-only.
type ExtractionLogRepository interface {
	Append(ctx context.Context, row entity.ExtractionLog) (uuid.UUID, error)
	ListByRun(ctx context.Context, runID uuid.UUID) ([]*ent.ExtractionLog, error)
}

type extractionLogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractionLogRepository(client *ent.Client, logger *slog.Logger) ExtractionLogRepository {
	return &extractionLogRepository{client: client, logger: logger}
}

func (r *extractionLogRepository) Append(ctx context.Context, row entity.ExtractionLog) (uuid.UUID, error) {
	runID, err := uuid.Parse(row.RunID)
	if err != nil {
		runID = uuid.Nil
	}

	create := r.client.ExtractionLog.Create().
		SetFilePath(row.FilePath).
		SetDocumentType(row.DocumentType).
		SetStatus(row.Status).
		SetConfidenceScore(row.ConfidenceScore).
		SetProcessingSeconds(row.ProcessingTime.Seconds()).
		SetRecordsExtracted(row.RecordsExtracted).
		SetRunID(runID)
	if row.ExtractionMethod != "" {
		create = create.SetExtractionMethod(row.ExtractionMethod)
	}
	if row.ErrorMessage != "" {
		create = create.SetErrorMessage(row.ErrorMessage)
	}
	if len(row.ValidationFailed) > 0 {
		create = create.SetValidationFailed(row.ValidationFailed)
	}
	if row.FileHash != "" {
		create = create.SetFileHash(row.FileHash)
	}
	if row.FileSizeBytes > 0 {
		create = create.SetFileSizeBytes(row.FileSizeBytes)
	}
	if !row.FileModTime.IsZero() {
		create = create.SetFileModTime(row.FileModTime)
	}
	if !row.ExtractionTime.IsZero() {
		create = create.SetExtractionTime(row.ExtractionTime)
	}

	rec, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to append extraction log", "file", row.FilePath, "error", err)
		return uuid.Nil, err
	}
	return rec.ID, nil
}

func (r *extractionLogRepository) ListByRun(ctx context.Context, runID uuid.UUID) ([]*ent.ExtractionLog, error) {
	return r.client.ExtractionLog.Query().
		Where(extractionlog.RunID(runID)).
		Order(extractionlog.ByExtractionTime()).
		All(ctx)
}
