package model

// Snapshot is a consistent read of every base collection. Analytics
// functions take a snapshot plus a reference date and never mutate either;
// collections may contain orphaned foreign keys, which readers tolerate.
type Snapshot struct {
	Clients            []Client            `json:"clients"`
	Contracts          []Contract          `json:"contracts"`
	Stacks             []Stack             `json:"stacks"`
	StackCategories    []StackCategory     `json:"stackCategories"`
	Seniorities        []Seniority         `json:"seniorities"`
	GeneralSeniorities []GeneralSeniority  `json:"generalSeniorities"`
	Positions          []Position          `json:"positions"`
	Professionals      []Professional      `json:"professionals"`
	Allocations        []Allocation        `json:"allocations"`
	FactoryProjects    []FactoryProject    `json:"factoryProjects"`
	FactoryAllocations []FactoryAllocation `json:"factoryAllocations"`
}
