package workflow

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// =====================================================
// TEST CONTENT
// =====================================================

type note struct {
	Title *string
	Body  *string
}

func (n note) HasContent() bool {
	return nonBlank(n.Title) || nonBlank(n.Body)
}

func nonBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func (n note) Merge(patch note) note {
	out := n
	if patch.Title != nil {
		out.Title = patch.Title
	}
	if patch.Body != nil {
		out.Body = patch.Body
	}
	return out
}

func str(s string) *string { return &s }

// =====================================================
// IN-MEMORY STORES
// =====================================================

type memDrafts struct {
	mu     sync.Mutex
	byID   map[uuid.UUID]Draft[note]
	failOn string
}

func newMemDrafts() *memDrafts {
	return &memDrafts{byID: map[uuid.UUID]Draft[note]{}}
}

var errStore = errors.New("store unavailable")

func (m *memDrafts) Create(_ context.Context, d *Draft[note]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "create" {
		return errStore
	}
	for _, existing := range m.byID {
		if existing.CampaignID == d.CampaignID {
			return ErrDuplicate
		}
	}
	m.byID[d.ID] = *d
	return nil
}

func (m *memDrafts) GetByID(_ context.Context, id uuid.UUID) (*Draft[note], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "get" {
		return nil, errStore
	}
	d, ok := m.byID[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return &d, nil
}

func (m *memDrafts) GetByCampaignID(_ context.Context, campaignID uuid.UUID) (*Draft[note], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.byID {
		if d.CampaignID == campaignID {
			d := d
			return &d, nil
		}
	}
	return nil, ErrDraftNotFound
}

func (m *memDrafts) Update(_ context.Context, d *Draft[note]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "update" {
		return errStore
	}
	if _, ok := m.byID[d.ID]; !ok {
		return ErrDraftNotFound
	}
	m.byID[d.ID] = *d
	return nil
}

func (m *memDrafts) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrDraftNotFound
	}
	delete(m.byID, id)
	return nil
}

type approvalKey struct {
	entityType EntityType
	entityID   uuid.UUID
}

type memApprovals struct {
	mu      sync.Mutex
	records map[approvalKey]ApprovalRecord
}

func newMemApprovals() *memApprovals {
	return &memApprovals{records: map[approvalKey]ApprovalRecord{}}
}

func (m *memApprovals) Create(_ context.Context, rec *ApprovalRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := approvalKey{rec.EntityType, rec.EntityID}
	if _, ok := m.records[key]; ok {
		return ErrDuplicate
	}
	m.records[key] = *rec
	return nil
}

func (m *memApprovals) GetByEntity(_ context.Context, entityType EntityType, entityID uuid.UUID) (*ApprovalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[approvalKey{entityType, entityID}]
	if !ok {
		return nil, ErrApprovalNotFound
	}
	return &rec, nil
}

func (m *memApprovals) Update(_ context.Context, rec *ApprovalRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := approvalKey{rec.EntityType, rec.EntityID}
	if _, ok := m.records[key]; !ok {
		return ErrApprovalNotFound
	}
	m.records[key] = *rec
	return nil
}

func (m *memApprovals) DeleteByEntity(_ context.Context, entityType EntityType, entityID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := approvalKey{entityType, entityID}
	if _, ok := m.records[key]; !ok {
		return ErrApprovalNotFound
	}
	delete(m.records, key)
	return nil
}

func (m *memApprovals) List(_ context.Context, filter ApprovalFilter) ([]*ApprovalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*ApprovalRecord{}
	for _, rec := range m.records {
		if filter.EntityType != "" && rec.EntityType != filter.EntityType {
			continue
		}
		if filter.Status != nil && rec.Status != *filter.Status {
			continue
		}
		if filter.SubmittedBy != nil && rec.SubmittedBy != *filter.SubmittedBy {
			continue
		}
		rec := rec
		out = append(out, &rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}

type memPublications struct {
	mu        sync.Mutex
	published map[uuid.UUID]note
	fail      bool
	calls     int
}

func newMemPublications() *memPublications {
	return &memPublications{published: map[uuid.UUID]note{}}
}

func (m *memPublications) Publish(_ context.Context, campaignID uuid.UUID, content note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.fail {
		return errStore
	}
	m.published[campaignID] = content
	return nil
}

func (m *memPublications) Get(_ context.Context, campaignID uuid.UUID) (*note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.published[campaignID]
	if !ok {
		return nil, ErrPublicationNotFound
	}
	return &content, nil
}

// memCampaigns: campaign id -> owner id
type memCampaigns map[uuid.UUID]uuid.UUID

func (m memCampaigns) OwnerOf(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	owner, ok := m[id]
	if !ok {
		return uuid.Nil, ErrCampaignNotFound
	}
	return owner, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (p *recordingPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errStore
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
