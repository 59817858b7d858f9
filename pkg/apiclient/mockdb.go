package apiclient

import (
	"cmp"
	"context"
	"estimator/pkg/blobstore"
	"estimator/pkg/docstore"
	"estimator/pkg/domain"
	"estimator/pkg/heuristic"
	"estimator/pkg/serrors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Collections of the local mock database.
const (
	CollectionMockMaterials = "mockMaterials"
	CollectionMockProfiles  = "mockMachineProfiles"
	CollectionMockParts     = "mockParts"
	CollectionMockJobs      = "mockJobs"
	CollectionMockSettings  = "mockSettings"

	mockModeDocID = "mockMode"
)

// MockGeometryNote marks parts analysed by the client while offline.
const MockGeometryNote = "Generated in local mock mode (backend unavailable)."

// DefaultMaterials are served while no materials were stored locally.
func DefaultMaterials() []domain.Material {
	return []domain.Material{
		{ID: 1, Code: "AISI-1040", Name: "Steel 1040", DensityGCm3: 7.85, PricePerKg: 1.95, AllowanceMM: 3},
		{ID: 2, Code: "AISI-304", Name: "Stainless 304", DensityGCm3: 8.0, PricePerKg: 3.8, AllowanceMM: 3},
		{ID: 3, Code: "AL-6061", Name: "Aluminium 6061", DensityGCm3: 2.7, PricePerKg: 4.2, AllowanceMM: 3},
	}
}

// MockDB is the offline dataset of the client, kept in a docstore.Store.
type MockDB struct {
	store docstore.Store
	now   func() time.Time
}

// NewMockDB returns a mock database kept in store.
func NewMockDB(store docstore.Store) *MockDB {
	return &MockDB{store: store, now: time.Now}
}

// WithClock returns a copy of m using now as its clock.
func (m *MockDB) WithClock(now func() time.Time) *MockDB {
	return &MockDB{store: m.store, now: now}
}

func getAll[T any](ctx context.Context, store docstore.Store, collection string) ([]T, error) {
	docs, err := store.GetAll(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", collection, err)
	}

	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := docstore.Decode(doc, &v); err != nil {
			return nil, err //nolint: wrapcheck
		}
		out = append(out, v)
	}

	return out, nil
}

func put(ctx context.Context, store docstore.Store, collection, id string, v any) error {
	fields, err := docstore.Encode(v)
	if err != nil {
		return err //nolint: wrapcheck
	}
	if err := store.PutDoc(ctx, collection, id, fields); err != nil {
		return fmt.Errorf("could not write %s/%s: %w", collection, id, err)
	}

	return nil
}

// Materials returns the stored materials, or the defaults when none are stored.
func (m *MockDB) Materials(ctx context.Context) ([]domain.Material, error) {
	materials, err := getAll[domain.Material](ctx, m.store, CollectionMockMaterials)
	if err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return DefaultMaterials(), nil
	}
	slices.SortFunc(materials, func(a, b domain.Material) int { return cmp.Compare(a.ID, b.ID) })

	return materials, nil
}

// MachineProfiles returns the stored profiles, or the built-in ones.
func (m *MockDB) MachineProfiles(ctx context.Context) ([]domain.MachineProfile, error) {
	profiles, err := getAll[domain.MachineProfile](ctx, m.store, CollectionMockProfiles)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return domain.DefaultMachineProfiles(), nil
	}

	return profiles, nil
}

// Parts returns the local part summaries, newest first.
func (m *MockDB) Parts(ctx context.Context) ([]domain.PartSummary, error) {
	parts, err := getAll[domain.Part](ctx, m.store, CollectionMockParts)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(parts, func(a, b domain.Part) int { return b.CreatedAt.Compare(a.CreatedAt) })

	out := make([]domain.PartSummary, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.Summary())
	}

	return out, nil
}

// Part returns the mock part id or an ErrNotFound error.
func (m *MockDB) Part(ctx context.Context, id domain.PartID) (*domain.Part, error) {
	parts, err := getAll[domain.Part](ctx, m.store, CollectionMockParts)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(parts, func(p domain.Part) bool { return p.ID == id })
	if idx < 0 {
		return nil, serrors.With(serrors.ErrNotFound, "part not found in local mock database")
	}

	return &parts[idx], nil
}

// Job returns the mock job id or an ErrNotFound error. Mock jobs are stored completed.
func (m *MockDB) Job(ctx context.Context, id domain.JobID) (*domain.AnalysisJob, error) {
	jobs, err := getAll[domain.AnalysisJob](ctx, m.store, CollectionMockJobs)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(jobs, func(j domain.AnalysisJob) bool { return j.ID == id })
	if idx < 0 {
		return nil, serrors.With(serrors.ErrNotFound, "job not found in local mock database")
	}

	return &jobs[idx], nil
}

// Upload analyses a file locally and stores a completed part and job. An
// unknown material falls back to the first one and an unknown profile to
// the default profile.
func (m *MockDB) Upload(ctx context.Context, input UploadInput) (*domain.UploadResult, error) {
	materials, err := m.Materials(ctx)
	if err != nil {
		return nil, err
	}
	material := domain.MaterialByID(materials, input.MaterialID)
	if material == nil {
		material = &materials[0]
	}
	profiles, err := m.MachineProfiles(ctx)
	if err != nil {
		return nil, err
	}
	profile := domain.MachineProfileByID(profiles, input.MachineProfileID)

	result := heuristic.Analyze(heuristic.Input{
		Filename:  input.Filename,
		SizeBytes: int64(len(input.Data)),
		Material:  *material,
		Profile:   profile,
		Note:      MockGeometryNote,
	})

	now := m.now().UTC()
	partID := domain.PartID("part_" + uuid.NewString())
	part := domain.Part{
		PartSummary: domain.PartSummary{
			ID:         partID,
			Filename:   input.Filename,
			Status:     domain.PartStatusCompleted,
			MaterialID: material.ID,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		MachineProfileID: profile.ID,
		StorageKey:       "mock/" + string(partID) + "/" + input.Filename,
		ContentHash:      blobstore.ContentHash(input.Data),
		SizeBytes:        int64(len(input.Data)),
		Geometry:         &result.Geometry,
		Stock:            &result.Stock,
		Operations:       result.Operations,
		Estimate:         &result.Estimate,
	}
	job := domain.AnalysisJob{
		ID:          domain.JobID("job_" + uuid.NewString()),
		PartID:      partID,
		Status:      domain.JobStatusCompleted,
		StartedAt:   &now,
		CompletedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := put(ctx, m.store, CollectionMockParts, string(part.ID), part); err != nil {
		return nil, err
	}
	if err := put(ctx, m.store, CollectionMockJobs, string(job.ID), job); err != nil {
		return nil, err
	}

	return &domain.UploadResult{PartID: part.ID, JobID: job.ID, Status: job.Status}, nil
}

// MockMode reads the persisted mock mode flag.
func (m *MockDB) MockMode(ctx context.Context) (bool, error) {
	docs, err := m.store.GetAll(ctx, CollectionMockSettings)
	if err != nil {
		return false, fmt.Errorf("could not read mock settings: %w", err)
	}
	for _, doc := range docs {
		if doc.ID == mockModeDocID {
			active, _ := doc.Fields["active"].(bool)

			return active, nil
		}
	}

	return false, nil
}

// SetMockMode persists the mock mode flag.
func (m *MockDB) SetMockMode(ctx context.Context, active bool) error {
	if err := m.store.PutDoc(ctx, CollectionMockSettings, mockModeDocID, map[string]any{"active": active}); err != nil {
		return fmt.Errorf("could not write mock mode: %w", err)
	}

	return nil
}

// Clear removes every local mock record together with the mock mode flag.
func (m *MockDB) Clear(ctx context.Context) error {
	for _, collection := range []string{
		CollectionMockMaterials,
		CollectionMockProfiles,
		CollectionMockParts,
		CollectionMockJobs,
		CollectionMockSettings,
	} {
		if err := m.store.DropCollection(ctx, collection); err != nil {
			return fmt.Errorf("could not clear %s: %w", collection, err)
		}
	}

	return nil
}
