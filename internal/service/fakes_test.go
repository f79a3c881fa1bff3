package service

import (
	"context"
	"errors"
	"sync"

	"github.com/RubachokBoss/award-tracker/internal/models"
	"github.com/RubachokBoss/award-tracker/internal/service/integration"
)

// In-memory repository fakes mirroring the SQL semantics the services rely
// on, in particular replace-all preserving override rows.

type fakeAwardRepo struct {
	mu     sync.Mutex
	awards []models.AwardDefinition
}

func (f *fakeAwardRepo) Create(_ context.Context, award *models.AwardDefinition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.awards = append(f.awards, *award)
	return nil
}

func (f *fakeAwardRepo) GetByKey(_ context.Context, key string) (*models.AwardDefinition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, award := range f.awards {
		if award.Key == key {
			copied := award
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAwardRepo) GetAll(_ context.Context) ([]models.AwardDefinition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.AwardDefinition, len(f.awards))
	copy(out, f.awards)
	return out, nil
}

func (f *fakeAwardRepo) Update(_ context.Context, award *models.AwardDefinition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.awards {
		if f.awards[i].Key == award.Key {
			f.awards[i] = *award
			return nil
		}
	}
	return errors.New("award not found")
}

func (f *fakeAwardRepo) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.awards {
		if f.awards[i].Key == key {
			f.awards = append(f.awards[:i], f.awards[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeAwardRepo) Count(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.awards), nil
}

func (f *fakeAwardRepo) Exists(_ context.Context, key string) (bool, error) {
	award, _ := f.GetByKey(context.Background(), key)
	return award != nil, nil
}

func (f *fakeAwardRepo) Ping(_ context.Context) error { return nil }

type fakeContentRepo struct {
	mu    sync.Mutex
	items map[string]models.ContentItem
	order []string
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{items: make(map[string]models.ContentItem)}
}

func (f *fakeContentRepo) Create(_ context.Context, item *models.ContentItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = *item
	f.order = append(f.order, item.ID)
	return nil
}

func (f *fakeContentRepo) GetByID(_ context.Context, id string) (*models.ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeContentRepo) GetAll(_ context.Context, kind string, limit, offset int) ([]models.ContentItem, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var filtered []models.ContentItem
	for _, id := range f.order {
		item := f.items[id]
		if kind == "" || item.Kind == kind {
			filtered = append(filtered, item)
		}
	}
	total := len(filtered)
	if offset >= len(filtered) {
		return nil, total, nil
	}
	filtered = filtered[offset:]
	if limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered, total, nil
}

func (f *fakeContentRepo) Update(_ context.Context, item *models.ContentItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.ID]; !ok {
		return errors.New("content not found")
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeContentRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeContentRepo) CountByKind(_ context.Context) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	documents, events := 0, 0
	for _, item := range f.items {
		switch item.Kind {
		case models.ContentKindDocument.String():
			documents++
		case models.ContentKindEvent.String():
			events++
		}
	}
	return documents, events, nil
}

func (f *fakeContentRepo) Exists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeContentRepo) Ping(_ context.Context) error { return nil }

type assignmentKey struct {
	contentID string
	awardKey  string
}

type fakeAssignmentRepo struct {
	mu      sync.Mutex
	rows    map[assignmentKey]models.Assignment
	content *fakeContentRepo
}

func newFakeAssignmentRepo(content *fakeContentRepo) *fakeAssignmentRepo {
	return &fakeAssignmentRepo{
		rows:    make(map[assignmentKey]models.Assignment),
		content: content,
	}
}

func (f *fakeAssignmentRepo) Get(_ context.Context, contentID, awardKey string) (*models.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[assignmentKey{contentID, awardKey}]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeAssignmentRepo) GetByContent(_ context.Context, contentID string) ([]models.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Assignment
	for key, row := range f.rows {
		if key.contentID == contentID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) GetAssignedItems(ctx context.Context, awardKey string) ([]models.AssignedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AssignedItem
	for key, row := range f.rows {
		if key.awardKey != awardKey {
			continue
		}
		item, err := f.content.GetByID(ctx, key.contentID)
		if err != nil || item == nil {
			continue
		}
		out = append(out, models.AssignedItem{
			ContentID:        item.ID,
			Kind:             item.Kind,
			Title:            item.Title,
			AnalyzableText:   item.AnalyzableText,
			IsManualOverride: row.IsManualOverride,
		})
	}
	return out, nil
}

func (f *fakeAssignmentRepo) AwardKeysForContent(_ context.Context, contentID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for key := range f.rows {
		if key.contentID == contentID {
			out = append(out, key.awardKey)
		}
	}
	return out, nil
}

// ReplaceForContent mimics the transactional SQL: automatic rows go, override
// rows survive, and inserts that collide with a surviving override are no-ops.
func (f *fakeAssignmentRepo) ReplaceForContent(_ context.Context, contentID string, assignments []models.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, row := range f.rows {
		if key.contentID == contentID && !row.IsManualOverride {
			delete(f.rows, key)
		}
	}
	for _, assignment := range assignments {
		key := assignmentKey{contentID, assignment.AwardKey}
		if _, exists := f.rows[key]; exists {
			continue
		}
		f.rows[key] = assignment
	}
	return nil
}

func (f *fakeAssignmentRepo) Upsert(_ context.Context, assignment *models.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[assignmentKey{assignment.ContentID, assignment.AwardKey}] = *assignment
	return nil
}

func (f *fakeAssignmentRepo) Delete(_ context.Context, contentID, awardKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, assignmentKey{contentID, awardKey})
	return nil
}

func (f *fakeAssignmentRepo) DeleteByContent(_ context.Context, contentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.rows {
		if key.contentID == contentID {
			delete(f.rows, key)
		}
	}
	return nil
}

func (f *fakeAssignmentRepo) CountAll(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows), nil
}

func (f *fakeAssignmentRepo) CountOverrides(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, row := range f.rows {
		if row.IsManualOverride {
			count++
		}
	}
	return count, nil
}

func (f *fakeAssignmentRepo) Ping(_ context.Context) error { return nil }

type fakeReadinessRepo struct {
	mu       sync.Mutex
	statuses map[string]models.ReadinessStatus
}

func newFakeReadinessRepo() *fakeReadinessRepo {
	return &fakeReadinessRepo{statuses: make(map[string]models.ReadinessStatus)}
}

func (f *fakeReadinessRepo) Replace(_ context.Context, status *models.ReadinessStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[status.AwardKey] = *status
	return nil
}

func (f *fakeReadinessRepo) GetByAwardKey(_ context.Context, awardKey string) (*models.ReadinessStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	status, ok := f.statuses[awardKey]
	if !ok {
		return nil, nil
	}
	return &status, nil
}

func (f *fakeReadinessRepo) GetAll(_ context.Context) ([]models.ReadinessStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ReadinessStatus, 0, len(f.statuses))
	for _, status := range f.statuses {
		out = append(out, status)
	}
	return out, nil
}

func (f *fakeReadinessRepo) Delete(_ context.Context, awardKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.statuses, awardKey)
	return nil
}

func (f *fakeReadinessRepo) Ping(_ context.Context) error { return nil }

type fakeExtractionClient struct {
	texts map[string]string
	err   error
}

func (f *fakeExtractionClient) GetExtractedText(_ context.Context, fileID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	text, ok := f.texts[fileID]
	if !ok {
		return "", errors.New("extracted text not found")
	}
	return text, nil
}

func (f *fakeExtractionClient) GetExtractionInfo(_ context.Context, fileID string) (*integration.ExtractionInfoResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &integration.ExtractionInfoResponse{FileID: fileID}, nil
}
