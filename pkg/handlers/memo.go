package handlers

import (
	"sync"

	"github.com/arnavshah/capacity-planner-api/pkg/models"
)

// resultMemo caches whole calculation results keyed by input equality.
// It is bounded and evicts the oldest entry first. A nil memo or size 0 caches nothing.
type resultMemo struct {
	mu      sync.Mutex
	size    int
	order   []models.PlanningInput
	entries map[models.PlanningInput]models.CalculationResult
}

func newResultMemo(size int) *resultMemo {
	if size <= 0 {
		return nil
	}
	return &resultMemo{
		size:    size,
		entries: make(map[models.PlanningInput]models.CalculationResult, size),
	}
}

// Get returns a copy of the cached result for in
func (m *resultMemo) Get(in models.PlanningInput) (models.CalculationResult, bool) {
	if m == nil {
		return models.CalculationResult{}, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	res, ok := m.entries[in]
	if !ok {
		return models.CalculationResult{}, false
	}
	return cloneResult(res), true
}

// Put stores a copy of res for in
func (m *resultMemo) Put(in models.PlanningInput, res models.CalculationResult) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[in]; ok {
		return
	}
	if len(m.order) >= m.size {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}
	m.order = append(m.order, in)
	m.entries[in] = cloneResult(res)
}

// Len returns the number of cached results
func (m *resultMemo) Len() int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func cloneResult(res models.CalculationResult) models.CalculationResult {
	if res.DailyTimeline != nil {
		timeline := make([]models.DayWorkload, len(res.DailyTimeline))
		copy(timeline, res.DailyTimeline)
		res.DailyTimeline = timeline
	}
	return res
}
