package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/staffdesk/internal/model"
)

// ByID scans a collection for the element with the given id. Collections are
// small, hand-entered and possibly inconsistent, so a miss is an ordinary
// outcome, never an error.
func ByID[T any](items []T, id uuid.UUID, key func(T) uuid.UUID) (T, bool) {
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Where returns the elements matching pred, preserving collection order.
func Where[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// lookup indexes a snapshot's collections by id for the join-heavy
// computations. Built once per computation pass, discarded after.
type lookup struct {
	clients       map[uuid.UUID]model.Client
	contracts     map[uuid.UUID]model.Contract
	stacks        map[uuid.UUID]model.Stack
	categories    map[uuid.UUID]model.StackCategory
	positions     map[uuid.UUID]model.Position
	professionals map[uuid.UUID]model.Professional
	projects      map[uuid.UUID]model.FactoryProject
}

func newLookup(s model.Snapshot) *lookup {
	l := &lookup{
		clients:       make(map[uuid.UUID]model.Client, len(s.Clients)),
		contracts:     make(map[uuid.UUID]model.Contract, len(s.Contracts)),
		stacks:        make(map[uuid.UUID]model.Stack, len(s.Stacks)),
		categories:    make(map[uuid.UUID]model.StackCategory, len(s.StackCategories)),
		positions:     make(map[uuid.UUID]model.Position, len(s.Positions)),
		professionals: make(map[uuid.UUID]model.Professional, len(s.Professionals)),
		projects:      make(map[uuid.UUID]model.FactoryProject, len(s.FactoryProjects)),
	}
	for _, c := range s.Clients {
		l.clients[c.ID] = c
	}
	for _, c := range s.Contracts {
		l.contracts[c.ID] = c
	}
	for _, st := range s.Stacks {
		l.stacks[st.ID] = st
	}
	for _, cat := range s.StackCategories {
		l.categories[cat.ID] = cat
	}
	for _, p := range s.Positions {
		l.positions[p.ID] = p
	}
	for _, p := range s.Professionals {
		l.professionals[p.ID] = p
	}
	for _, p := range s.FactoryProjects {
		l.projects[p.ID] = p
	}
	return l
}

func (l *lookup) stackName(id uuid.UUID) string {
	if st, ok := l.stacks[id]; ok {
		return st.Name
	}
	return ""
}

func (l *lookup) categoryNameOfStack(stackID uuid.UUID) string {
	st, ok := l.stacks[stackID]
	if !ok {
		return ""
	}
	if cat, ok := l.categories[st.CategoryID]; ok {
		return cat.Name
	}
	return ""
}

// EffectiveEndDate resolves an allocation's end date: its own when present,
// the parent position's otherwise. The second return is false when neither
// is available (orphaned position reference).
func EffectiveEndDate(a model.Allocation, position *model.Position) (time.Time, bool) {
	if a.EndDate != nil {
		return *a.EndDate, true
	}
	if position != nil {
		return position.EndDate, true
	}
	return time.Time{}, false
}

func (l *lookup) allocationEnd(a model.Allocation) (time.Time, bool) {
	if a.EndDate != nil {
		return *a.EndDate, true
	}
	if pos, ok := l.positions[a.PositionID]; ok {
		return pos.EndDate, true
	}
	return time.Time{}, false
}

// IsAllocationActive reports whether the allocation's effective end date is
// today or later, dates truncated to midnight.
func IsAllocationActive(a model.Allocation, position *model.Position, today time.Time) bool {
	end, ok := EffectiveEndDate(a, position)
	if !ok {
		return false
	}
	return !DateOnly(end).Before(DateOnly(today))
}
