package postgres

import (
	"database/sql"
	"encoding/json"
	"estimator/pkg/domain"
	"fmt"
	"time"
)

type PgMaterial struct {
	ID          int64   `db:"id"            goqu:"skipinsert"`
	Code        string  `db:"code"`
	Name        string  `db:"name"`
	DensityGCm3 float64 `db:"density_g_cm3"`
	PricePerKg  float64 `db:"price_per_kg"`
	AllowanceMM float64 `db:"allowance_mm"`
}

func (p *PgMaterial) ToDomain() domain.Material {
	return domain.Material{
		ID:          domain.MaterialID(p.ID),
		Code:        p.Code,
		Name:        p.Name,
		DensityGCm3: p.DensityGCm3,
		PricePerKg:  p.PricePerKg,
		AllowanceMM: p.AllowanceMM,
	}
}

func (p *PgMaterial) FromDomain(m domain.Material) {
	*p = PgMaterial{
		ID:          int64(m.ID),
		Code:        m.Code,
		Name:        m.Name,
		DensityGCm3: m.DensityGCm3,
		PricePerKg:  m.PricePerKg,
		AllowanceMM: m.AllowanceMM,
	}
}

type PgPartSummary struct {
	ID          string         `db:"id"`
	Filename    string         `db:"filename"`
	Status      string         `db:"status"`
	MaterialID  int64          `db:"material_id"`
	ModelFormat sql.NullString `db:"model_format" goqu:"skipinsert"`
	CreatedAt   time.Time      `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   time.Time      `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgPartSummary) ToDomain() domain.PartSummary {
	return domain.PartSummary{
		ID:          domain.PartID(p.ID),
		Filename:    p.Filename,
		Status:      domain.PartStatus(p.Status),
		MaterialID:  domain.MaterialID(p.MaterialID),
		ModelFormat: nullString(p.ModelFormat),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PgPart is a parts row. The JSONB blobs are written by updates only, so
// inserts skip them and leave them NULL.
type PgPart struct {
	PgPartSummary

	MachineProfileID string         `db:"machine_profile_id"`
	StorageKey       string         `db:"storage_key"`
	ModelKey         sql.NullString `db:"model_key"          goqu:"skipinsert"`
	ContentHash      string         `db:"content_hash"`
	SizeBytes        int64          `db:"size_bytes"`
	Geometry         []byte         `db:"geometry_json"      goqu:"skipinsert"`
	Stock            []byte         `db:"stock_json"         goqu:"skipinsert"`
	Operations       []byte         `db:"operations_json"    goqu:"skipinsert"`
	Estimate         []byte         `db:"estimate_json"      goqu:"skipinsert"`
}

func (p *PgPart) ToDomain() (*domain.Part, error) {
	part := &domain.Part{
		PartSummary:      p.PgPartSummary.ToDomain(),
		MachineProfileID: p.MachineProfileID,
		StorageKey:       p.StorageKey,
		ModelKey:         nullString(p.ModelKey),
		ContentHash:      p.ContentHash,
		SizeBytes:        p.SizeBytes,
	}

	blobs := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"geometry", p.Geometry, &part.Geometry},
		{"stock", p.Stock, &part.Stock},
		{"operations", p.Operations, &part.Operations},
		{"estimate", p.Estimate, &part.Estimate},
	}
	for _, b := range blobs {
		if len(b.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(b.raw, b.dst); err != nil {
			return nil, fmt.Errorf("could not unmarshal part %s: %w", b.name, err)
		}
	}

	return part, nil
}

func (p *PgPart) FromDomain(part domain.Part) {
	*p = PgPart{
		PgPartSummary: PgPartSummary{
			ID:         string(part.ID),
			Filename:   part.Filename,
			Status:     string(part.Status),
			MaterialID: int64(part.MaterialID),
		},
		MachineProfileID: part.MachineProfileID,
		StorageKey:       part.StorageKey,
		ContentHash:      part.ContentHash,
		SizeBytes:        part.SizeBytes,
	}
}

type PgAnalysisJob struct {
	ID           string         `db:"id"`
	PartID       string         `db:"part_id"`
	QueueJobID   sql.NullInt64  `db:"queue_job_id"`
	Status       string         `db:"status"`
	ErrorMessage sql.NullString `db:"error_message" goqu:"skipinsert"`
	StartedAt    sql.NullTime   `db:"started_at"    goqu:"skipinsert"`
	CompletedAt  sql.NullTime   `db:"completed_at"  goqu:"skipinsert"`
	CreatedAt    time.Time      `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt    time.Time      `db:"updated_at"    goqu:"skipinsert"`
}

func (p *PgAnalysisJob) ToDomain() *domain.AnalysisJob {
	job := &domain.AnalysisJob{
		ID:           domain.JobID(p.ID),
		PartID:       domain.PartID(p.PartID),
		Status:       domain.JobStatus(p.Status),
		ErrorMessage: nullString(p.ErrorMessage),
		StartedAt:    nullTime(p.StartedAt),
		CompletedAt:  nullTime(p.CompletedAt),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.QueueJobID.Valid {
		id := p.QueueJobID.Int64
		job.QueueJobID = &id
	}

	return job
}

func (p *PgAnalysisJob) FromDomain(job domain.AnalysisJob) {
	*p = PgAnalysisJob{
		ID:     string(job.ID),
		PartID: string(job.PartID),
		Status: string(job.Status),
	}
	if job.QueueJobID != nil {
		p.QueueJobID = sql.NullInt64{Int64: *job.QueueJobID, Valid: true}
	}
}

type PgDocument struct {
	Collection string    `db:"collection"`
	ID         string    `db:"id"`
	Fields     []byte    `db:"fields"`
	CreatedAt  time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt  time.Time `db:"updated_at" goqu:"skipinsert"`
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	return &t.Time
}
