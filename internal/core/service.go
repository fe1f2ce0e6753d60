package core

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/parceldesk/parceldesk/internal/csv"
)

// SessionTTL is how long an idle review session is kept before the
// janitor drops it.
var SessionTTL = 2 * time.Hour

// JanitorInterval is how often expired sessions are swept.
var JanitorInterval = 10 * time.Minute

// Service owns the active review sessions and wires the pipeline to
// its collaborators: the AI analyzer and the downstream batch sink.
type Service struct {
	analyzer Analyzer
	sink     BatchSink

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService creates a Service. analyzer may be nil, in which case
// every analysis request degrades to the static fallback report. sink
// may be nil when no downstream consumer is attached.
func NewService(analyzer Analyzer, sink BatchSink) *Service {
	return &Service{
		analyzer: analyzer,
		sink:     sink,
		sessions: make(map[string]*Session),
	}
}

// Ingest runs the full import pipeline over raw file text: input
// normalization, delimiter sniffing, tokenization, header inference,
// record building, and initial validation. It either creates a fully
// populated session or fails with a single error; a file that yields
// zero records never produces a partial session.
func (s *Service) Ingest(fileName string, raw []byte) (SessionState, error) {
	text := csv.NormalizeInput(string(raw))
	if text == "" {
		return SessionState{}, ErrNoRecords
	}

	rows := csv.Parse(text, csv.DetectDelimiter(text))
	if len(rows) < 2 {
		return SessionState{}, ErrNoRecords
	}

	cols := InferColumns(rows[0])
	records := BuildRecords(rows[1:], cols)
	if len(records) == 0 {
		return SessionState{}, ErrNoRecords
	}

	session := &Session{
		ID:         uuid.New().String(),
		FileName:   fileName,
		CreatedAt:  time.Now(),
		records:    Revalidate(records),
		lastActive: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session.State(), nil
}

// Get returns a snapshot of a session.
func (s *Service) Get(sessionID string) (SessionState, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return SessionState{}, err
	}
	return session.State(), nil
}

// UpdateRecord applies a partial edit and revalidates the whole list.
func (s *Service) UpdateRecord(sessionID, recordID string, edit RecordEdit) (SessionState, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return SessionState{}, err
	}
	return session.updateRecord(recordID, edit)
}

// RemoveRecord drops a record and revalidates the survivors.
func (s *Service) RemoveRecord(sessionID, recordID string) (SessionState, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return SessionState{}, err
	}
	return session.removeRecord(recordID)
}

// Analyze sends the session's records to the AI collaborator and
// overlays the result. A failing (or absent) analyzer is replaced by
// the static fallback report; the caller never sees the failure.
func (s *Service) Analyze(ctx context.Context, sessionID string) (*Analysis, SessionState, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, SessionState{}, err
	}

	analysis := FallbackAnalysis()
	if s.analyzer != nil {
		if got, aerr := s.analyzer.Analyze(ctx, session.snapshotRecords()); aerr == nil && got != nil {
			analysis = got
		}
	}

	state, err := session.applyAnalysis(analysis)
	if err != nil {
		return nil, SessionState{}, err
	}
	return analysis, state, nil
}

// Confirm freezes the session into a Batch and hands it to the sink.
// It fails while any record is in an error or duplicate-warning state,
// and a session confirms at most once.
func (s *Service) Confirm(sessionID string) (Batch, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return Batch{}, err
	}

	batch, frozen, err := session.confirm(uuid.New().String(), time.Now())
	if err != nil {
		return Batch{}, err
	}

	if frozen && s.sink != nil {
		s.sink(batch)
	}
	return batch, nil
}

// SessionCount returns the number of live sessions.
func (s *Service) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartJanitor sweeps idle sessions until ctx is cancelled. Confirmed
// sessions age out the same way as abandoned ones.
func (s *Service) StartJanitor(ctx context.Context) {
	ticker := time.NewTicker(JanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

func (s *Service) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		session.mu.Lock()
		idle := now.Sub(session.lastActive)
		session.mu.Unlock()

		if idle > SessionTTL {
			delete(s.sessions, id)
		}
	}
}

func (s *Service) lookup(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
