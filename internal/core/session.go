package core

import (
	"strings"
	"sync"
	"time"
)

// Session is one interactive review of an imported file. The record
// list is owned exclusively by the session and replaced wholesale on
// every recomputation; callers only ever see copies.
type Session struct {
	ID        string
	FileName  string
	CreatedAt time.Time

	mu         sync.Mutex
	records    []Record
	confirmed  bool
	lastActive time.Time
}

// Summary is a per-status headcount of a session's records.
type Summary struct {
	Total    int `json:"total"`
	Valid    int `json:"valid"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// SessionState is a point-in-time snapshot of a session for callers.
type SessionState struct {
	SessionID string   `json:"sessionId"`
	FileName  string   `json:"fileName"`
	Records   []Record `json:"records"`
	Summary   Summary  `json:"summary"`
	Confirmed bool     `json:"confirmed"`
}

func summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusValid:
			s.Valid++
		case StatusWarning:
			s.Warnings++
		case StatusError:
			s.Errors++
		}
	}
	return s
}

// state builds a snapshot. Caller must hold s.mu.
func (s *Session) state() SessionState {
	records := make([]Record, len(s.records))
	copy(records, s.records)
	return SessionState{
		SessionID: s.ID,
		FileName:  s.FileName,
		Records:   records,
		Summary:   summarize(records),
		Confirmed: s.confirmed,
	}
}

// State returns a snapshot of the session.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.state()
}

// snapshotRecords returns a copy of the current record list for
// read-only collaborators such as the AI analyzer.
func (s *Session) snapshotRecords() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]Record, len(s.records))
	copy(records, s.records)
	return records
}

// touch marks the session as recently used. Caller must hold s.mu.
func (s *Session) touch() {
	s.lastActive = time.Now()
}

// updateRecord applies a partial edit to one record and revalidates
// the whole list. Phone edits are normalized the same way imports are,
// keeping the digit-string invariant; tier edits must name a known
// tier.
func (s *Session) updateRecord(recordID string, edit RecordEdit) (SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.confirmed {
		return SessionState{}, ErrSessionConfirmed
	}
	if edit.Tier != nil && !ValidTier(*edit.Tier) {
		return SessionState{}, ErrInvalidTier
	}

	idx := -1
	for i, r := range s.records {
		if r.ID == recordID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return SessionState{}, ErrRecordNotFound
	}

	next := make([]Record, len(s.records))
	copy(next, s.records)

	r := &next[idx]
	if edit.InvoiceID != nil {
		r.InvoiceID = strings.TrimSpace(*edit.InvoiceID)
	}
	if edit.Name != nil {
		r.Name = strings.TrimSpace(*edit.Name)
	}
	if edit.Phone != nil {
		r.Phone = NormalizePhone(*edit.Phone)
	}
	if edit.Address != nil {
		r.Address = strings.TrimSpace(*edit.Address)
	}
	if edit.CODAmount != nil {
		r.CODAmount = *edit.CODAmount
	}
	if edit.Weight != nil {
		r.Weight = *edit.Weight
	}
	if edit.Note != nil {
		r.Note = strings.TrimSpace(*edit.Note)
	}
	if edit.Tier != nil {
		r.Tier = *edit.Tier
	}

	s.records = Revalidate(next)
	return s.state(), nil
}

// removeRecord drops one record and revalidates the survivors, which
// can heal a duplicate warning on a sibling.
func (s *Session) removeRecord(recordID string) (SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.confirmed {
		return SessionState{}, ErrSessionConfirmed
	}

	next := make([]Record, 0, len(s.records))
	found := false
	for _, r := range s.records {
		if r.ID == recordID {
			found = true
			continue
		}
		next = append(next, r)
	}
	if !found {
		return SessionState{}, ErrRecordNotFound
	}

	s.records = Revalidate(next)
	return s.state(), nil
}

// applyAnalysis overlays an AI report onto the current list. The
// replacement is wholesale, so a slower earlier analysis arriving
// after a newer one simply loses (last write wins); there is no
// request fencing.
func (s *Session) applyAnalysis(analysis *Analysis) (SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.confirmed {
		return SessionState{}, ErrSessionConfirmed
	}

	s.records = ApplyAnalysis(s.records, analysis)
	return s.state(), nil
}

// confirm freezes the session into a Batch. Confirmation is refused
// while any record is in an error state or carries a duplicate
// warning. The returned flag is true only for the call that performed
// the freeze, so the batch sink fires exactly once.
func (s *Session) confirm(batchID string, now time.Time) (Batch, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.confirmed {
		return Batch{}, false, ErrSessionConfirmed
	}
	for _, r := range s.records {
		if blocksConfirmation(r) {
			return Batch{}, false, ErrBatchBlocked
		}
	}

	records := make([]Record, len(s.records))
	copy(records, s.records)

	summary := summarize(records)
	batch := Batch{
		ID:         batchID,
		CreatedAt:  now,
		Records:    records,
		Total:      summary.Total,
		ValidCount: summary.Valid,
		ErrorCount: summary.Errors,
	}

	s.confirmed = true
	return batch, true, nil
}
