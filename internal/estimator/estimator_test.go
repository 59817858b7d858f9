package estimator_test

import (
	"context"
	"errors"
	"estimator/internal/estimator"
	"estimator/pkg/blobstore"
	"estimator/pkg/domain"
	"estimator/pkg/heuristic"
	"estimator/pkg/logger"
	"estimator/pkg/serrors"
	"estimator/pkg/storage"
	mockstorage "estimator/pkg/storage/mock"
	"os"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	rawBucket   = "step-raw"
	modelBucket = "step-model"
)

var (
	testNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

	testMaterial = domain.Material{ //nolint: gochecknoglobals
		ID:          1,
		Code:        "AL6061",
		Name:        "Aluminium 6061",
		DensityGCm3: 2.7,
		PricePerKg:  4.2,
		AllowanceMM: 3,
	}
)

func TestMain(m *testing.M) {
	logger.Setup(logger.TestEnvironment)
	os.Exit(m.Run())
}

type fixture struct {
	ctrl   *gomock.Controller
	st     *mockstorage.MockStorage
	raw    *blobstore.Memory
	models *blobstore.Memory
	est    estimator.Estimator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:   ctrl,
		st:     mockstorage.NewMockStorage(ctrl),
		raw:    blobstore.NewMemory(),
		models: blobstore.NewMemory(),
	}
	f.est = estimator.New(estimator.Deps{
		Storage: f.st,
		Raw:     f.raw,
		Models:  f.models,
		Now:     func() time.Time { return testNow },
	}, estimator.Options{
		RawBucket:         rawBucket,
		ModelBucket:       modelBucket,
		MaxAttempts:       3,
		SyncFallbackAfter: 20 * time.Second,
		MaxUploadBytes:    1 << 20,
	})

	return f
}

// expectWithTx wires Storage.WithTx to run the callback with a MockAllStorage.
func (f *fixture) expectWithTx(fn func(tx *mockstorage.MockAllStorage)) *gomock.Call {
	return f.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestCreateMaterial(t *testing.T) {
	allowance := 1.5
	negative := -1.0

	tests := []struct {
		name    string
		input   domain.MaterialInput
		wantErr error
	}{
		{name: "empty code", input: domain.MaterialInput{Code: " ", Name: "x", DensityGCm3: 1, PricePerKg: 1}, wantErr: serrors.ErrBadRequest},
		{name: "long name", input: domain.MaterialInput{Code: "X", Name: string(make([]byte, 121)), DensityGCm3: 1, PricePerKg: 1}, wantErr: serrors.ErrBadRequest},
		{name: "zero density", input: domain.MaterialInput{Code: "X", Name: "x", PricePerKg: 1}, wantErr: serrors.ErrBadRequest},
		{name: "zero price", input: domain.MaterialInput{Code: "X", Name: "x", DensityGCm3: 1}, wantErr: serrors.ErrBadRequest},
		{name: "negative allowance", input: domain.MaterialInput{Code: "X", Name: "x", DensityGCm3: 1, PricePerKg: 1, AllowanceMM: &negative}, wantErr: serrors.ErrBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.est.CreateMaterial(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("stores upper-cased code with default allowance", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().StoreMaterial(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m domain.Material) (*domain.Material, error) {
				require.Equal(t, "TI-6AL4V", m.Code)
				require.Equal(t, "Titanium", m.Name)
				require.InDelta(t, domain.DefaultAllowanceMM, m.AllowanceMM, 1e-9)
				m.ID = 9

				return &m, nil
			})

		m, err := f.est.CreateMaterial(context.Background(), domain.MaterialInput{
			Code: " ti-6al4v ", Name: "Titanium", DensityGCm3: 4.43, PricePerKg: 30,
		})
		require.NoError(t, err)
		require.Equal(t, domain.MaterialID(9), m.ID)
	})

	t.Run("explicit allowance", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().StoreMaterial(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m domain.Material) (*domain.Material, error) {
				require.InDelta(t, 1.5, m.AllowanceMM, 1e-9)

				return &m, nil
			})

		_, err := f.est.CreateMaterial(context.Background(), domain.MaterialInput{
			Code: "CU", Name: "Copper", DensityGCm3: 8.96, PricePerKg: 9, AllowanceMM: &allowance,
		})
		require.NoError(t, err)
	})

	t.Run("duplicate code conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().StoreMaterial(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)

		_, err := f.est.CreateMaterial(context.Background(), domain.MaterialInput{
			Code: "AL6061", Name: "dup", DensityGCm3: 2.7, PricePerKg: 4,
		})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})
}

func TestMachineProfiles_DefaultCatalog(t *testing.T) {
	f := newFixture(t)

	profiles, err := f.est.MachineProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 5)
	require.Equal(t, domain.DefaultMachineProfileID, profiles[0].ID)
}

func TestUpload_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown material", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().MaterialByID(gomock.Any(), domain.MaterialID(42)).Return(nil, nil)

		_, err := f.est.Upload(ctx, estimator.UploadInput{Filename: "a.step", Data: []byte("x"), MaterialID: 42})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("wrong extension", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().MaterialByID(gomock.Any(), testMaterial.ID).Return(&testMaterial, nil)

		_, err := f.est.Upload(ctx, estimator.UploadInput{Filename: "a.stl", Data: []byte("x"), MaterialID: testMaterial.ID})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.Equal(t, "only .step and .stp files are accepted", serrors.MessageOf(err))
	})

	t.Run("empty file", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().MaterialByID(gomock.Any(), testMaterial.ID).Return(&testMaterial, nil)

		_, err := f.est.Upload(ctx, estimator.UploadInput{Filename: "a.STP", MaterialID: testMaterial.ID})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("too large", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().MaterialByID(gomock.Any(), testMaterial.ID).Return(&testMaterial, nil)

		_, err := f.est.Upload(ctx, estimator.UploadInput{
			Filename: "a.step", Data: make([]byte, 1<<20+1), MaterialID: testMaterial.ID,
		})
		require.ErrorIs(t, err, serrors.ErrTooLarge)
	})
}

func TestUpload_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	data := []byte("ISO-10303-21;")

	f.st.EXPECT().MaterialByID(gomock.Any(), testMaterial.ID).Return(&testMaterial, nil)

	var storedPart domain.Part
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StorePart(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.Part) (*domain.Part, error) {
				storedPart = p

				return &p, nil
			})
		tx.EXPECT().StoreAnalysisJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j domain.AnalysisJob) (*domain.AnalysisJob, error) {
				require.Equal(t, domain.JobStatusQueued, j.Status)
				require.Equal(t, storedPart.ID, j.PartID)

				return &j, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (int64, bool, error) {
				a, ok := args.(estimator.AnalyzePartArgs)
				require.True(t, ok)
				require.Equal(t, storedPart.ID, a.PartID)
				require.Equal(t, 3, a.InsertOpts().MaxAttempts)

				return 77, true, nil
			})
		tx.EXPECT().UpdateAnalysisJob(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id domain.JobID, u storage.AnalysisJobUpdates) (*domain.AnalysisJob, error) {
				require.NotNil(t, u.QueueJobID)
				require.Equal(t, int64(77), *u.QueueJobID)

				return &domain.AnalysisJob{ID: id, PartID: storedPart.ID, Status: domain.JobStatusQueued, QueueJobID: u.QueueJobID}, nil
			})
	})

	res, err := f.est.Upload(ctx, estimator.UploadInput{
		Filename:         `C:\cad\Shaft.STEP`,
		Data:             data,
		MaterialID:       testMaterial.ID,
		MachineProfileID: "does-not-exist",
	})
	require.NoError(t, err)
	require.Equal(t, storedPart.ID, res.PartID)
	require.Equal(t, domain.JobStatusQueued, res.Status)
	require.NotEmpty(t, res.JobID)

	require.Equal(t, "Shaft.STEP", storedPart.Filename)
	require.Equal(t, domain.PartStatusQueued, storedPart.Status)
	require.Equal(t, domain.DefaultMachineProfileID, storedPart.MachineProfileID)
	require.Equal(t, string(storedPart.ID)+"/Shaft.STEP", storedPart.StorageKey)
	require.Equal(t, blobstore.ContentHash(data), storedPart.ContentHash)
	require.Equal(t, int64(len(data)), storedPart.SizeBytes)

	obj, err := f.raw.Get(ctx, rawBucket, storedPart.StorageKey)
	require.NoError(t, err)
	require.Equal(t, data, obj.Data)
	require.Equal(t, "application/step", obj.ContentType)
}

func TestUpload_TxFailureRemovesRawFile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.st.EXPECT().MaterialByID(gomock.Any(), testMaterial.ID).Return(&testMaterial, nil)
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StorePart(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	})

	_, err := f.est.Upload(ctx, estimator.UploadInput{Filename: "a.step", Data: []byte("x"), MaterialID: testMaterial.ID})
	require.Error(t, err)
	require.Empty(t, f.raw.Keys(rawBucket))
}

func TestPart_NotFound(t *testing.T) {
	f := newFixture(t)
	f.st.EXPECT().PartByID(gomock.Any(), domain.PartID("p-1")).Return(nil, nil)

	_, err := f.est.Part(context.Background(), "p-1")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestPartModel(t *testing.T) {
	ctx := context.Background()

	t.Run("not generated", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().PartByID(gomock.Any(), domain.PartID("p-1")).Return(&domain.Part{
			PartSummary: domain.PartSummary{ID: "p-1"},
		}, nil)

		_, err := f.est.PartModel(ctx, "p-1")
		require.ErrorIs(t, err, serrors.ErrNotFound)
		require.Equal(t, "model not generated yet", serrors.MessageOf(err))
	})

	t.Run("stored model", func(t *testing.T) {
		f := newFixture(t)
		key := "p-1/preview.gltf"
		require.NoError(t, f.models.Put(ctx, modelBucket, key, blobstore.Object{Data: []byte("{}"), ContentType: heuristic.ModelContentType}))
		f.st.EXPECT().PartByID(gomock.Any(), domain.PartID("p-1")).Return(&domain.Part{
			PartSummary: domain.PartSummary{ID: "p-1"},
			ModelKey:    &key,
		}, nil)

		obj, err := f.est.PartModel(ctx, "p-1")
		require.NoError(t, err)
		require.Equal(t, heuristic.ModelContentType, obj.ContentType)
	})
}

func TestPartRaw(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.raw.Put(ctx, rawBucket, "p-1/a.step", blobstore.Object{Data: []byte("solid")}))
	f.st.EXPECT().PartByID(gomock.Any(), domain.PartID("p-1")).Return(&domain.Part{
		PartSummary: domain.PartSummary{ID: "p-1", Filename: "a.step"},
		StorageKey:  "p-1/a.step",
	}, nil)

	raw, err := f.est.PartRaw(ctx, "p-1")
	require.NoError(t, err)
	require.Equal(t, "a.step", raw.Filename)
	require.Equal(t, []byte("solid"), raw.Data)
}

func TestDeletePart(t *testing.T) {
	ctx := context.Background()

	t.Run("removes stored files", func(t *testing.T) {
		f := newFixture(t)
		key := "p-1/preview.gltf"
		require.NoError(t, f.raw.Put(ctx, rawBucket, "p-1/a.step", blobstore.Object{Data: []byte("x")}))
		require.NoError(t, f.models.Put(ctx, modelBucket, key, blobstore.Object{Data: []byte("{}")}))
		f.st.EXPECT().DeletePart(gomock.Any(), domain.PartID("p-1")).Return(&domain.Part{
			PartSummary: domain.PartSummary{ID: "p-1"},
			StorageKey:  "p-1/a.step",
			ModelKey:    &key,
		}, nil)

		require.NoError(t, f.est.DeletePart(ctx, "p-1"))
		require.Empty(t, f.raw.Keys(rawBucket))
		require.Empty(t, f.models.Keys(modelBucket))
	})

	t.Run("missing part", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().DeletePart(gomock.Any(), domain.PartID("p-2")).Return(nil, nil)

		require.ErrorIs(t, f.est.DeletePart(ctx, "p-2"), serrors.ErrNotFound)
	})
}

func queuedPart() *domain.Part {
	return &domain.Part{
		PartSummary: domain.PartSummary{
			ID:         "p-1",
			Filename:   "shaft.step",
			Status:     domain.PartStatusProcessing,
			MaterialID: testMaterial.ID,
		},
		MachineProfileID: "cnc_lathe_2axis",
		StorageKey:       "p-1/shaft.step",
		SizeBytes:        1000,
	}
}

// expectPipeline sets up the storage calls of a successful analysis run and
// returns a pointer to the part updates written on completion.
func (f *fixture) expectPipeline(t *testing.T) *storage.PartUpdates {
	t.Helper()

	f.st.EXPECT().UpdatePart(gomock.Any(), domain.PartID("p-1"), storage.PartUpdates{Status: domain.PartStatusProcessing}).
		Return(queuedPart(), nil)
	f.st.EXPECT().MaterialByID(gomock.Any(), testMaterial.ID).Return(&testMaterial, nil)

	var written storage.PartUpdates
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdatePart(gomock.Any(), domain.PartID("p-1"), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.PartID, u storage.PartUpdates) (*domain.Part, error) {
				written = u

				return queuedPart(), nil
			})
		tx.EXPECT().UpdateAnalysisJob(gomock.Any(), domain.JobID("j-1"), gomock.Any()).DoAndReturn(
			func(_ context.Context, id domain.JobID, u storage.AnalysisJobUpdates) (*domain.AnalysisJob, error) {
				require.Equal(t, domain.JobStatusCompleted, u.Status)
				require.NotNil(t, u.ErrorMessage)
				require.Empty(t, *u.ErrorMessage)
				require.NotNil(t, u.CompletedAt)

				return &domain.AnalysisJob{ID: id, PartID: "p-1", Status: u.Status, CompletedAt: u.CompletedAt}, nil
			})
	})

	return &written
}

var (
	workerClaim = storage.ClaimAge{Running: 20 * time.Second}
	syncClaim   = storage.ClaimAge{Queued: 20 * time.Second, Running: 20 * time.Second}
)

func TestAnalyze_Completes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.st.EXPECT().ClaimAnalysisJob(gomock.Any(), domain.JobID("j-1"), workerClaim).
		Return(&domain.AnalysisJob{ID: "j-1", PartID: "p-1", Status: domain.JobStatusRunning}, nil)
	written := f.expectPipeline(t)

	job, err := f.est.Analyze(ctx, "j-1", estimator.TriggerWorker)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusCompleted, job.Status)

	require.Equal(t, domain.PartStatusCompleted, written.Status)
	require.NotNil(t, written.ModelKey)
	require.Equal(t, "p-1/preview.gltf", *written.ModelKey)
	require.Equal(t, heuristic.ModelFormat, *written.ModelFormat)
	require.NotNil(t, written.Estimate)
	require.NotNil(t, written.Estimate.MachineProfile)
	require.Equal(t, "cnc_lathe_2axis", written.Estimate.MachineProfile.ID)
	require.Equal(t, estimator.GeometryNote, written.Geometry.Note)
	require.NotEmpty(t, written.Operations)

	obj, err := f.models.Get(ctx, modelBucket, "p-1/preview.gltf")
	require.NoError(t, err)
	require.Equal(t, heuristic.ModelContentType, obj.ContentType)
}

func TestAnalyze_NotClaimedReturnsCurrent(t *testing.T) {
	f := newFixture(t)
	done := &domain.AnalysisJob{ID: "j-1", PartID: "p-1", Status: domain.JobStatusCompleted}

	f.st.EXPECT().ClaimAnalysisJob(gomock.Any(), domain.JobID("j-1"), workerClaim).Return(nil, nil)
	f.st.EXPECT().AnalysisJobByID(gomock.Any(), domain.JobID("j-1")).Return(done, nil)

	job, err := f.est.Analyze(context.Background(), "j-1", estimator.TriggerWorker)
	require.NoError(t, err)
	require.Equal(t, done, job)
}

func TestAnalyze_WorkerSkipsFreshRun(t *testing.T) {
	f := newFixture(t)
	started := testNow.Add(-2 * time.Second)
	running := &domain.AnalysisJob{ID: "j-1", PartID: "p-1", Status: domain.JobStatusRunning, StartedAt: &started}

	// a sync fallback run started two seconds ago must not be taken over
	f.st.EXPECT().ClaimAnalysisJob(gomock.Any(), domain.JobID("j-1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.JobID, age storage.ClaimAge) (*domain.AnalysisJob, error) {
			require.Zero(t, age.Queued)
			require.Greater(t, age.Running, testNow.Sub(started))

			return nil, nil
		})
	f.st.EXPECT().AnalysisJobByID(gomock.Any(), domain.JobID("j-1")).Return(running, nil)

	job, err := f.est.Analyze(context.Background(), "j-1", estimator.TriggerWorker)
	require.NoError(t, err)
	require.Equal(t, running, job)
	require.Empty(t, f.models.Keys(modelBucket))
}

func TestAnalyze_MissingJob(t *testing.T) {
	f := newFixture(t)

	f.st.EXPECT().ClaimAnalysisJob(gomock.Any(), domain.JobID("j-1"), workerClaim).Return(nil, nil)
	f.st.EXPECT().AnalysisJobByID(gomock.Any(), domain.JobID("j-1")).Return(nil, nil)

	_, err := f.est.Analyze(context.Background(), "j-1", estimator.TriggerWorker)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestAnalyze_MissingMaterial(t *testing.T) {
	f := newFixture(t)

	f.st.EXPECT().ClaimAnalysisJob(gomock.Any(), domain.JobID("j-1"), workerClaim).
		Return(&domain.AnalysisJob{ID: "j-1", PartID: "p-1", Status: domain.JobStatusRunning}, nil)
	f.st.EXPECT().UpdatePart(gomock.Any(), domain.PartID("p-1"), gomock.Any()).Return(queuedPart(), nil)
	f.st.EXPECT().MaterialByID(gomock.Any(), testMaterial.ID).Return(nil, nil)
	// the failed run hands the job back so a retry can claim it at once
	f.st.EXPECT().UpdateAnalysisJob(gomock.Any(), domain.JobID("j-1"),
		storage.AnalysisJobUpdates{Status: domain.JobStatusQueued}).
		Return(&domain.AnalysisJob{ID: "j-1", PartID: "p-1", Status: domain.JobStatusQueued}, nil)

	_, err := f.est.Analyze(context.Background(), "j-1", estimator.TriggerWorker)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Empty(t, f.models.Keys(modelBucket))
}

func TestJob(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().AnalysisJobByID(gomock.Any(), domain.JobID("j-1")).Return(nil, nil)

		_, err := f.est.Job(ctx, "j-1")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("fresh queued job is returned as is", func(t *testing.T) {
		f := newFixture(t)
		queued := &domain.AnalysisJob{ID: "j-1", PartID: "p-1", Status: domain.JobStatusQueued, CreatedAt: testNow.Add(-5 * time.Second)}
		f.st.EXPECT().AnalysisJobByID(gomock.Any(), domain.JobID("j-1")).Return(queued, nil)

		job, err := f.est.Job(ctx, "j-1")
		require.NoError(t, err)
		require.Equal(t, queued, job)
	})

	t.Run("terminal job is returned as is", func(t *testing.T) {
		f := newFixture(t)
		failed := &domain.AnalysisJob{ID: "j-1", Status: domain.JobStatusFailed, CreatedAt: testNow.Add(-time.Hour)}
		f.st.EXPECT().AnalysisJobByID(gomock.Any(), domain.JobID("j-1")).Return(failed, nil)

		job, err := f.est.Job(ctx, "j-1")
		require.NoError(t, err)
		require.Equal(t, domain.JobStatusFailed, job.Status)
	})

	t.Run("stale queued job runs inline", func(t *testing.T) {
		f := newFixture(t)
		stale := &domain.AnalysisJob{ID: "j-1", PartID: "p-1", Status: domain.JobStatusQueued, CreatedAt: testNow.Add(-20 * time.Second)}
		f.st.EXPECT().AnalysisJobByID(gomock.Any(), domain.JobID("j-1")).Return(stale, nil)
		f.st.EXPECT().ClaimAnalysisJob(gomock.Any(), domain.JobID("j-1"), syncClaim).
			Return(&domain.AnalysisJob{ID: "j-1", PartID: "p-1", Status: domain.JobStatusRunning}, nil)
		f.expectPipeline(t)

		job, err := f.est.Job(ctx, "j-1")
		require.NoError(t, err)
		require.Equal(t, domain.JobStatusCompleted, job.Status)
	})

	t.Run("failed inline run marks job failed", func(t *testing.T) {
		f := newFixture(t)
		started := testNow.Add(-time.Minute)
		stale := &domain.AnalysisJob{ID: "j-1", PartID: "p-1", Status: domain.JobStatusRunning, StartedAt: &started}
		f.st.EXPECT().AnalysisJobByID(gomock.Any(), domain.JobID("j-1")).Return(stale, nil)
		f.st.EXPECT().ClaimAnalysisJob(gomock.Any(), domain.JobID("j-1"), syncClaim).
			Return(&domain.AnalysisJob{ID: "j-1", PartID: "p-1", Status: domain.JobStatusRunning}, nil)
		f.st.EXPECT().UpdatePart(gomock.Any(), domain.PartID("p-1"), gomock.Any()).Return(queuedPart(), nil)
		f.st.EXPECT().MaterialByID(gomock.Any(), testMaterial.ID).Return(nil, nil)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UpdateAnalysisJob(gomock.Any(), domain.JobID("j-1"), gomock.Any()).DoAndReturn(
				func(_ context.Context, id domain.JobID, u storage.AnalysisJobUpdates) (*domain.AnalysisJob, error) {
					require.Equal(t, domain.JobStatusFailed, u.Status)
					require.Equal(t, "material not found", *u.ErrorMessage)

					return &domain.AnalysisJob{ID: id, PartID: "p-1", Status: u.Status, ErrorMessage: u.ErrorMessage}, nil
				})
			tx.EXPECT().UpdatePart(gomock.Any(), domain.PartID("p-1"), storage.PartUpdates{Status: domain.PartStatusFailed}).
				Return(queuedPart(), nil)
		})

		job, err := f.est.Job(ctx, "j-1")
		require.NoError(t, err)
		require.Equal(t, domain.JobStatusFailed, job.Status)
		require.Equal(t, "material not found", *job.ErrorMessage)
	})
}
