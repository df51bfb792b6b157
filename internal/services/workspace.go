package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-reviewer/internal/models"
)

// ErrWorkspaceBusy is returned when a submit is attempted while another
// one is still in flight for the same workspace.
var ErrWorkspaceBusy = errors.New("an analysis is already in progress")

// Workspace holds one browser session's UI state: the selected file, the
// job description, the busy flag and the last result.
type Workspace struct {
	id             uuid.UUID
	mu             sync.Mutex
	candidate      *models.UploadCandidate
	jobDescription string
	busy           bool
	lastResult     *models.AnalysisResult
	lastError      string
	updatedAt      time.Time
	now            func() time.Time
}

func NewWorkspace(id uuid.UUID) *Workspace {
	return newWorkspace(id, time.Now)
}

func newWorkspace(id uuid.UUID, now func() time.Time) *Workspace {
	return &Workspace{id: id, updatedAt: now(), now: now}
}

func (w *Workspace) ID() uuid.UUID {
	return w.id
}

// SelectFile replaces the selected file.
func (w *Workspace) SelectFile(candidate *models.UploadCandidate) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.candidate = candidate
	w.lastError = ""
	w.touch()
}

func (w *Workspace) SetJobDescription(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.jobDescription = text
	w.touch()
}

// RecordError stores a message for the view without touching the last
// result.
func (w *Workspace) RecordError(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.lastError = message
	w.touch()
}

// Submit sends the selected file and job description through svc. Busy is
// set for the duration of the call and released exactly once on every
// path. A failed attempt leaves the previous result in place.
func (w *Workspace) Submit(ctx context.Context, svc ResumeService) (models.RequestOutcome, error) {
	candidate, jobDescription, err := w.begin()
	if err != nil {
		return models.RequestOutcome{}, err
	}
	if candidate == nil {
		outcome := models.Failed[models.AnalysisResult](models.NewValidationError(reasonNoFile))
		w.RecordError(outcome.Message)
		return outcome, nil
	}
	defer w.end()

	outcome := svc.AnalyzeCandidate(ctx, candidate, jobDescription)
	w.record(outcome, candidate)

	return outcome, nil
}

func (w *Workspace) Snapshot() models.WorkspaceSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snapshot := models.WorkspaceSnapshot{
		ID:             w.id.String(),
		JobDescription: w.jobDescription,
		Busy:           w.busy,
		LastError:      w.lastError,
		UpdatedAt:      w.updatedAt,
	}
	if w.candidate != nil {
		c := *w.candidate
		snapshot.SelectedFile = &c
	}
	if w.lastResult != nil {
		r := *w.lastResult
		snapshot.LastResult = &r
	}

	return snapshot
}

func (w *Workspace) IsBusy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

func (w *Workspace) idleSince(cutoff time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.busy && w.updatedAt.Before(cutoff)
}

func (w *Workspace) begin() (*models.UploadCandidate, string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.busy {
		return nil, "", ErrWorkspaceBusy
	}
	if w.candidate == nil {
		return nil, "", nil
	}

	w.busy = true
	w.touch()

	return w.candidate, w.jobDescription, nil
}

func (w *Workspace) end() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.busy = false
	w.touch()
}

// record stores the outcome of submitting submitted. A file selected while
// the call was in flight survives a success.
func (w *Workspace) record(outcome models.RequestOutcome, submitted *models.UploadCandidate) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if outcome.OK() {
		w.lastResult = outcome.Value
		w.lastError = ""
		if w.candidate == submitted {
			w.candidate = nil
		}
		return
	}

	w.lastError = outcome.Message
}

func (w *Workspace) touch() {
	w.updatedAt = w.now()
}

// WorkspaceStore keeps workspaces in memory and evicts idle ones.
type WorkspaceStore interface {
	Get(id string) (*Workspace, bool)
	GetOrCreate(id string) *Workspace
	Len() int
	Sweep(now time.Time) int
	Start(ctx context.Context)
	Stop()
}

type workspaceStore struct {
	mu            sync.RWMutex
	workspaces    map[uuid.UUID]*Workspace
	idleTTL       time.Duration
	sweepInterval time.Duration
	wg            sync.WaitGroup
	stopChan      chan struct{}
	stopOnce      sync.Once
	now           func() time.Time
}

func NewWorkspaceStore(idleTTL, sweepInterval time.Duration) WorkspaceStore {
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}

	return &workspaceStore{
		workspaces:    make(map[uuid.UUID]*Workspace),
		idleTTL:       idleTTL,
		sweepInterval: sweepInterval,
		stopChan:      make(chan struct{}),
		now:           time.Now,
	}
}

// Get implements WorkspaceStore.
func (s *workspaceStore) Get(id string) (*Workspace, bool) {
	wsID, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ws, ok := s.workspaces[wsID]
	return ws, ok
}

// GetOrCreate implements WorkspaceStore. Unknown or malformed ids get a
// fresh workspace with a new id.
func (s *workspaceStore) GetOrCreate(id string) *Workspace {
	if ws, ok := s.Get(id); ok {
		return ws
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ws := newWorkspace(uuid.New(), s.now)
	s.workspaces[ws.id] = ws

	return ws
}

// Len implements WorkspaceStore.
func (s *workspaceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workspaces)
}

// Sweep implements WorkspaceStore. Busy workspaces are never evicted.
func (s *workspaceStore) Sweep(now time.Time) int {
	cutoff := now.Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, ws := range s.workspaces {
		if ws.idleSince(cutoff) {
			delete(s.workspaces, id)
			evicted++
		}
	}

	return evicted
}
