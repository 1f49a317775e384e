package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nurpe/staffdesk/internal/model"
)

func newClient(name string) model.Client {
	return model.Client{ID: uuid.New(), Name: name, TaxID: "00.000.000/0001-00"}
}

func newContract(client model.Client, number string, end time.Time, monthly int64) model.Contract {
	return model.Contract{
		ID:             uuid.New(),
		ClientID:       client.ID,
		ContractNumber: number,
		Type:           model.ContractTypeStaffing,
		StartDate:      end.AddDate(-1, 0, 0),
		EndDate:        end,
		MonthlyValue:   decimal.NewFromInt(monthly),
	}
}

func newPosition(contract model.Contract, stack model.Stack, status model.PositionStatus, end time.Time) model.Position {
	return model.Position{
		ID:                   uuid.New(),
		ContractID:           contract.ID,
		Title:                "Developer",
		StackID:              stack.ID,
		Status:               status,
		StartDate:            end.AddDate(-1, 0, 0),
		EndDate:              end,
		AllocationPercentage: 100,
	}
}

func newStack(name string) model.Stack {
	return model.Stack{ID: uuid.New(), Name: name, CategoryID: uuid.New()}
}

func newProfessional(name string, mode model.WorkMode, stack model.Stack) model.Professional {
	p := model.Professional{
		ID:       uuid.New(),
		Name:     name,
		Status:   model.ProfessionalStatusAllocated,
		WorkMode: mode,
	}
	if stack.ID != uuid.Nil {
		p.StackExperiences = []model.StackExperience{{ProfessionalID: p.ID, StackID: stack.ID, YearsExperience: 3}}
	}
	return p
}

func newAllocation(professional model.Professional, position model.Position, end *time.Time) model.Allocation {
	return model.Allocation{
		ID:                   uuid.New(),
		ProfessionalID:       professional.ID,
		PositionID:           position.ID,
		StartDate:            position.StartDate,
		EndDate:              end,
		AllocationPercentage: 100,
	}
}

func newFactoryProject(name string, status model.FactoryProjectStatus, start, end time.Time) model.FactoryProject {
	return model.FactoryProject{
		ID:                 uuid.New(),
		Name:               name,
		Status:             status,
		StartDate:          start,
		EndDate:            end,
		ProgressPercentage: 50,
	}
}

func newFactoryAllocation(project model.FactoryProject, professional model.Professional, stack model.Stack, start, end time.Time) model.FactoryAllocation {
	return model.FactoryAllocation{
		ID:                   uuid.New(),
		ProjectID:            project.ID,
		ProfessionalID:       professional.ID,
		Role:                 model.FactoryRoleDev,
		StackID:              stack.ID,
		StartDate:            start,
		EndDate:              end,
		AllocationPercentage: 100,
	}
}

func timePtr(t time.Time) *time.Time { return &t }
