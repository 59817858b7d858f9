package domain_test

import (
	"estimator/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMachineProfileByID(t *testing.T) {
	profiles := domain.DefaultMachineProfiles()
	require.Len(t, profiles, 5)

	require.Equal(t, "vmc_5axis", domain.MachineProfileByID(profiles, "vmc_5axis").ID)
	require.Equal(t, "auto", domain.MachineProfileByID(profiles, "").ID)
	require.Equal(t, "auto", domain.MachineProfileByID(profiles, "laser").ID)

	custom := []domain.MachineProfile{{ID: "swiss"}, {ID: "edm"}}
	require.Equal(t, "swiss", domain.MachineProfileByID(custom, "unknown").ID)
}

func TestJobStatus(t *testing.T) {
	require.False(t, domain.JobStatusQueued.Terminal())
	require.False(t, domain.JobStatusRunning.Terminal())
	require.True(t, domain.JobStatusCompleted.Terminal())
	require.True(t, domain.JobStatusFailed.Terminal())

	require.True(t, domain.JobStatusRunning.Pending())
	require.False(t, domain.JobStatusFailed.Pending())
}

func TestAnalysisJobSince(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	job := domain.AnalysisJob{CreatedAt: created}
	require.Equal(t, created, job.Since())

	started := created.Add(time.Minute)
	job.StartedAt = &started
	require.Equal(t, started, job.Since())
}

func TestPartHasModel(t *testing.T) {
	var p domain.Part
	require.False(t, p.HasModel())

	key := "p/preview.gltf"
	p.ModelKey = &key
	require.True(t, p.HasModel())
	require.Equal(t, p.PartSummary, p.Summary())
}

func TestPartMachine(t *testing.T) {
	var p domain.Part
	require.Nil(t, p.Machine())

	fit := false
	stock := &domain.MachineRef{ID: "cnc_lathe_2axis", FitForPartBBox: &fit}
	p.Stock = &domain.Stock{MachineProfile: stock}
	p.Estimate = &domain.Estimate{}
	require.Same(t, stock, p.Machine())

	est := &domain.MachineRef{ID: "vmc_3axis"}
	p.Estimate.MachineProfile = est
	require.Same(t, est, p.Machine())
}

func TestMaterialByID(t *testing.T) {
	materials := []domain.Material{{ID: 1, Code: "C45"}, {ID: 2, Code: "AL6061"}}
	require.Equal(t, "AL6061", domain.MaterialByID(materials, 2).Code)
	require.Nil(t, domain.MaterialByID(materials, 9))
}
