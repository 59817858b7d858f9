package apiclient

import (
	"context"
	"estimator/pkg/domain"
	"estimator/pkg/logger"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// User facing messages of failed session actions.
const (
	MsgLoadFailed   = "API connection failed. Check backend service."
	MsgPartFailed   = "Part details could not be loaded."
	MsgUploadFailed = "Upload failed. Check file format and API logs."
)

// Session is the view state of an interactive client: the loaded lists, the
// selected part and the job being followed. Views only read a Snapshot and
// call the intent methods.
type Session struct {
	client *Client

	mu    sync.Mutex
	state Snapshot
}

// Snapshot is an immutable copy of the session state.
type Snapshot struct {
	Materials       []domain.Material
	MachineProfiles []domain.MachineProfile
	Parts           []domain.PartSummary

	SelectedPartID domain.PartID
	SelectedPart   *domain.Part
	ActiveJob      *domain.AnalysisJob

	MockMode bool
	// Error is the message of the last failed action, empty after a success.
	Error string
}

// NewSession returns an empty session over client. Call Load to fill it.
func NewSession(client *Client) *Session {
	return &Session{client: client}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Load fetches materials, machine profiles and parts concurrently. The
// selection is kept when the part is still listed, otherwise the newest
// part is selected.
func (s *Session) Load(ctx context.Context) error {
	s.setError("")

	var (
		materials []domain.Material
		profiles  []domain.MachineProfile
		parts     []domain.PartSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		materials, err = s.client.Materials(gctx)

		return err
	})
	g.Go(func() (err error) {
		profiles, err = s.client.MachineProfiles(gctx)

		return err
	})
	g.Go(func() (err error) {
		parts, err = s.client.Parts(gctx)

		return err
	})
	err := g.Wait()
	mockMode := s.client.MockModeActive(ctx)
	if err != nil {
		logger.Warn(ctx, "could not load session data", zap.Error(err))
		s.mu.Lock()
		s.state.Error = MsgLoadFailed
		s.state.MockMode = mockMode
		s.mu.Unlock()

		return err
	}

	s.mu.Lock()
	s.state.Materials = materials
	s.state.MachineProfiles = profiles
	s.state.Parts = parts
	s.state.MockMode = mockMode
	current := s.state.SelectedPartID
	switch {
	case len(parts) == 0:
		s.state.SelectedPartID = ""
	case current != "" && slices.ContainsFunc(parts, func(p domain.PartSummary) bool { return p.ID == current }):
	default:
		s.state.SelectedPartID = parts[0].ID
	}
	selected := s.state.SelectedPartID
	s.mu.Unlock()

	return s.loadSelected(ctx, selected)
}

// Select makes id the selected part and loads its detail. The previous
// detail is dropped first so a stale part is never shown for id.
func (s *Session) Select(ctx context.Context, id domain.PartID) error {
	s.mu.Lock()
	s.state.SelectedPartID = id
	if s.state.SelectedPart != nil && s.state.SelectedPart.ID != id {
		s.state.SelectedPart = nil
	}
	s.mu.Unlock()

	return s.loadSelected(ctx, id)
}

func (s *Session) loadSelected(ctx context.Context, id domain.PartID) error {
	if id == "" {
		s.mu.Lock()
		s.state.SelectedPart = nil
		s.mu.Unlock()

		return nil
	}

	part, err := s.client.Part(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SelectedPartID != id {
		// selection changed while loading
		return nil
	}
	if err != nil {
		logger.Warn(ctx, "could not load part", zap.String("partID", string(id)), zap.Error(err))
		s.state.Error = MsgPartFailed
		s.state.SelectedPart = nil

		return err
	}
	s.state.SelectedPart = part

	return nil
}

// Upload submits a file, starts following its job, selects the new part
// and reloads the lists.
func (s *Session) Upload(ctx context.Context, input UploadInput) (*domain.AnalysisJob, error) {
	s.setError("")

	result, err := s.client.Upload(ctx, input)
	if err != nil {
		s.setError(MsgUploadFailed)

		return nil, err
	}
	job, err := s.client.Job(ctx, result.JobID)
	if err != nil {
		s.setError(MsgUploadFailed)

		return nil, err
	}

	s.mu.Lock()
	s.state.ActiveJob = job
	s.state.SelectedPartID = result.PartID
	s.mu.Unlock()

	if err := s.Load(ctx); err != nil {
		return job, err
	}

	return job, nil
}

// FollowActiveJob polls the active job until it is terminal, then reloads
// and selects its part. onUpdate sees every poll.
func (s *Session) FollowActiveJob(ctx context.Context, interval time.Duration, onUpdate JobUpdateFunc) (*domain.AnalysisJob, error) {
	s.mu.Lock()
	active := s.state.ActiveJob
	s.mu.Unlock()
	if active == nil {
		return nil, nil //nolint: nilnil
	}
	if active.Status.Terminal() {
		return active, nil
	}

	job, err := s.client.WaitForJob(ctx, active.ID, interval, func(job *domain.AnalysisJob, err error) {
		if err == nil {
			s.mu.Lock()
			s.state.ActiveJob = job
			s.mu.Unlock()
		}
		if onUpdate != nil {
			onUpdate(job, err)
		}
	})
	if err != nil {
		return nil, err
	}

	if err := s.Load(ctx); err != nil {
		return job, err
	}

	return job, s.Select(ctx, job.PartID)
}

// Refresh reloads the lists and the selected part. A followed job that is
// still pending gets its status updated first.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	active := s.state.ActiveJob
	s.mu.Unlock()

	if active != nil && !active.Status.Terminal() {
		job, err := s.client.Job(ctx, active.ID)
		if err != nil {
			logger.Warn(ctx, "could not refresh active job", zap.String("jobID", string(active.ID)), zap.Error(err))
		} else {
			s.mu.Lock()
			if s.state.ActiveJob != nil && s.state.ActiveJob.ID == job.ID {
				s.state.ActiveJob = job
			}
			s.mu.Unlock()
		}
	}

	return s.Load(ctx)
}

// ClearMock drops the local mock data and resets the selection.
func (s *Session) ClearMock(ctx context.Context) error {
	if err := s.client.ClearMockData(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.state.SelectedPartID = ""
	s.state.SelectedPart = nil
	s.state.ActiveJob = nil
	s.mu.Unlock()

	return s.Load(ctx)
}

// ModelURL returns the preview URL of the selected part, or "" when it has
// no model.
func (s *Session) ModelURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := s.state.SelectedPart
	if part == nil || !part.HasModel() {
		return ""
	}

	return s.client.ModelURL(part.ID, part.UpdatedAt.UTC().Format(time.RFC3339Nano))
}

func (s *Session) setError(msg string) {
	s.mu.Lock()
	s.state.Error = msg
	s.mu.Unlock()
}
