package analytics

import (
	"github.com/google/uuid"

	"github.com/nurpe/staffdesk/internal/model"
)

// LeaderMetricsAll summarizes each leader's reporting subtree. The leader
// relation is a plain foreign key with no enforced acyclicity, so traversal
// carries a visited set and stops on repeats.
func LeaderMetricsAll(s model.Snapshot) []model.LeaderMetrics {
	reports := make(map[uuid.UUID][]model.Professional)
	for _, p := range s.Professionals {
		if p.LeaderID == nil {
			continue
		}
		reports[*p.LeaderID] = append(reports[*p.LeaderID], p)
	}

	out := make([]model.LeaderMetrics, 0, len(reports))
	for _, leader := range s.Professionals {
		if len(reports[leader.ID]) == 0 {
			continue
		}

		team := collectTeam(leader.ID, reports, map[uuid.UUID]struct{}{leader.ID: {}})
		allocated := 0
		idle := 0
		for _, member := range team {
			switch member.Status {
			case model.ProfessionalStatusAllocated:
				allocated++
			case model.ProfessionalStatusIdle:
				idle++
			}
		}

		out = append(out, model.LeaderMetrics{
			LeaderID:               leader.ID,
			LeaderName:             leader.Name,
			TotalProfessionals:     len(team),
			AllocatedProfessionals: allocated,
			IdleProfessionals:      idle,
			Professionals:          team,
		})
	}
	return out
}

func collectTeam(leaderID uuid.UUID, reports map[uuid.UUID][]model.Professional, visited map[uuid.UUID]struct{}) []model.Professional {
	team := make([]model.Professional, 0, len(reports[leaderID]))
	for _, member := range reports[leaderID] {
		if _, seen := visited[member.ID]; seen {
			continue
		}
		visited[member.ID] = struct{}{}
		team = append(team, member)
		team = append(team, collectTeam(member.ID, reports, visited)...)
	}
	return team
}
