package analytics

import "github.com/nurpe/staffdesk/internal/model"

// StackDistributions counts, per stack, the positions requiring it and the
// professionals with recorded experience in it.
func StackDistributions(s model.Snapshot) []model.StackDistribution {
	l := newLookup(s)

	out := make([]model.StackDistribution, 0, len(s.Stacks))
	for _, stack := range s.Stacks {
		positions := 0
		filled := 0
		for _, p := range s.Positions {
			if p.StackID != stack.ID {
				continue
			}
			positions++
			if p.Status == model.PositionStatusFilled {
				filled++
			}
		}

		professionals := 0
		for _, p := range s.Professionals {
			for _, exp := range p.StackExperiences {
				if exp.StackID == stack.ID {
					professionals++
					break
				}
			}
		}

		categoryName := ""
		if cat, ok := l.categories[stack.CategoryID]; ok {
			categoryName = cat.Name
		}

		out = append(out, model.StackDistribution{
			StackID:           stack.ID,
			StackName:         stack.Name,
			CategoryID:        stack.CategoryID,
			CategoryName:      categoryName,
			ProfessionalCount: professionals,
			PositionCount:     positions,
			FilledPositions:   filled,
		})
	}
	return out
}
