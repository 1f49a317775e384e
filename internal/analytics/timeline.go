package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/staffdesk/internal/model"
)

// Window derives the month-aligned display window: the first day of today's
// month through the last day of the month months-1 ahead.
func Window(today time.Time, months int) (time.Time, time.Time) {
	if months < 1 {
		months = 1
	}
	day := DateOnly(today)
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, months, 0).AddDate(0, 0, -1)
	return start, end
}

// ClipToWindow clips a date range to the display window and computes the bar
// geometry. Degenerate ranges keep a minimum one-day visual width. The
// second return is false when the range lies wholly outside the window.
func ClipToWindow(start, end, windowStart, windowEnd time.Time) (model.TimelineSegment, bool) {
	start = DateOnly(start)
	end = DateOnly(end)
	windowStart = DateOnly(windowStart)
	windowEnd = DateOnly(windowEnd)

	effectiveStart := start
	if effectiveStart.Before(windowStart) {
		effectiveStart = windowStart
	}
	effectiveEnd := end
	if effectiveEnd.After(windowEnd) {
		effectiveEnd = windowEnd
	}

	if effectiveStart.After(windowEnd) || effectiveEnd.Before(windowStart) {
		return model.TimelineSegment{}, false
	}

	offset := DaysUntil(effectiveStart, windowStart)
	if offset < 0 {
		offset = 0
	}
	duration := DaysUntil(effectiveEnd, effectiveStart) + 1
	if duration < 1 {
		duration = 1
	}

	return model.TimelineSegment{
		EffectiveStart:  effectiveStart,
		EffectiveEnd:    effectiveEnd,
		StartOffsetDays: offset,
		DurationDays:    duration,
	}, true
}

// AllocationTimeline joins allocations with professional, position, contract,
// client and stack data into flat timeline entries. Entries with any
// unresolvable reference are dropped.
func AllocationTimeline(s model.Snapshot) []model.AllocationTimelineEntry {
	l := newLookup(s)

	out := make([]model.AllocationTimelineEntry, 0, len(s.Allocations))
	for _, a := range s.Allocations {
		professional, ok := l.professionals[a.ProfessionalID]
		if !ok {
			continue
		}
		position, ok := l.positions[a.PositionID]
		if !ok {
			continue
		}
		contract, ok := l.contracts[position.ContractID]
		if !ok {
			continue
		}
		client, ok := l.clients[contract.ClientID]
		if !ok {
			continue
		}
		stack, ok := l.stacks[position.StackID]
		if !ok {
			continue
		}

		end, _ := EffectiveEndDate(a, &position)
		out = append(out, model.AllocationTimelineEntry{
			ID:                   a.ID,
			ProfessionalID:       a.ProfessionalID,
			ProfessionalName:     professional.Name,
			PositionTitle:        position.Title,
			StackName:            stack.Name,
			CategoryName:         l.categoryNameOfStack(position.StackID),
			ClientName:           client.Name,
			ProjectName:          contract.Label(),
			ContractType:         contract.Type,
			StartDate:            a.StartDate,
			EndDate:              end,
			AllocationPercentage: a.AllocationPercentage,
		})
	}
	return out
}

// ProfessionalTimelines groups window-clipped timeline entries per
// professional for the Gantt-style per-person view. Group order follows
// first appearance in the allocation collection.
func ProfessionalTimelines(s model.Snapshot, today time.Time, months int) []model.ProfessionalTimeline {
	windowStart, windowEnd := Window(today, months)
	entries := AllocationTimeline(s)

	order := make([]uuid.UUID, 0)
	grouped := make(map[uuid.UUID]*model.ProfessionalTimeline)
	for _, entry := range entries {
		segment, visible := ClipToWindow(entry.StartDate, entry.EndDate, windowStart, windowEnd)
		if !visible {
			continue
		}
		group, ok := grouped[entry.ProfessionalID]
		if !ok {
			group = &model.ProfessionalTimeline{
				ProfessionalID:   entry.ProfessionalID,
				ProfessionalName: entry.ProfessionalName,
			}
			grouped[entry.ProfessionalID] = group
			order = append(order, entry.ProfessionalID)
		}
		group.Entries = append(group.Entries, model.ClippedTimelineEntry{
			AllocationTimelineEntry: entry,
			Segment:                 segment,
		})
	}

	out := make([]model.ProfessionalTimeline, 0, len(order))
	for _, id := range order {
		out = append(out, *grouped[id])
	}
	return out
}
