package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contract_type') THEN
			CREATE TYPE contract_type AS ENUM ('staffing', 'factory');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'position_status') THEN
			CREATE TYPE position_status AS ENUM ('open', 'filled');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'professional_status') THEN
			CREATE TYPE professional_status AS ENUM ('allocated', 'idle', 'partial', 'vacation', 'notice');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'work_mode') THEN
			CREATE TYPE work_mode AS ENUM ('allocation', 'factory', 'both');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'factory_project_status') THEN
			CREATE TYPE factory_project_status AS ENUM ('planned', 'in_progress', 'finished', 'paused');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'factory_role') THEN
			CREATE TYPE factory_role AS ENUM ('dev', 'qa', 'po', 'pm', 'tech_lead', 'architect', 'scrum_master', 'ux', 'other');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		tax_id VARCHAR(64),
		contact VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS stack_categories (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS stacks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		category_id UUID NOT NULL REFERENCES stack_categories(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS seniorities (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		level INT NOT NULL DEFAULT 0,
		category_id UUID NOT NULL REFERENCES stack_categories(id),
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS general_seniorities (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		level INT NOT NULL DEFAULT 0,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		client_id UUID NOT NULL REFERENCES clients(id),
		contract_number VARCHAR(64) NOT NULL,
		project_name VARCHAR(255),
		type contract_type NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		monthly_value NUMERIC(18,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contract_number ON contracts (contract_number);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_client_id ON contracts (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_end_date ON contracts (end_date);`,
	`CREATE TABLE IF NOT EXISTS positions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID NOT NULL REFERENCES contracts(id),
		title VARCHAR(255) NOT NULL,
		stack_id UUID NOT NULL REFERENCES stacks(id),
		seniority_id UUID REFERENCES seniorities(id),
		status position_status NOT NULL DEFAULT 'open',
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		allocation_percentage INT NOT NULL DEFAULT 100,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_positions_contract_id ON positions (contract_id);`,
	`CREATE TABLE IF NOT EXISTS professionals (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		general_seniority_id UUID REFERENCES general_seniorities(id),
		status professional_status NOT NULL DEFAULT 'idle',
		work_mode work_mode NOT NULL DEFAULT 'allocation',
		leader_id UUID REFERENCES professionals(id),
		total_years_experience INT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_professionals_leader_id ON professionals (leader_id) WHERE leader_id IS NOT NULL;`,
	`CREATE TABLE IF NOT EXISTS stack_experiences (
		professional_id UUID NOT NULL REFERENCES professionals(id) ON DELETE CASCADE,
		stack_id UUID NOT NULL REFERENCES stacks(id),
		years_experience INT NOT NULL DEFAULT 0,
		PRIMARY KEY (professional_id, stack_id)
	);`,
	`CREATE TABLE IF NOT EXISTS allocations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		professional_id UUID NOT NULL REFERENCES professionals(id),
		position_id UUID NOT NULL REFERENCES positions(id),
		start_date DATE NOT NULL,
		end_date DATE,
		allocation_percentage INT NOT NULL DEFAULT 100,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_allocations_professional_id ON allocations (professional_id);`,
	`CREATE INDEX IF NOT EXISTS idx_allocations_position_id ON allocations (position_id);`,
	`CREATE TABLE IF NOT EXISTS factory_projects (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		client_id UUID REFERENCES clients(id),
		description TEXT,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		status factory_project_status NOT NULL DEFAULT 'planned',
		progress_percentage INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS factory_allocations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID NOT NULL REFERENCES factory_projects(id),
		professional_id UUID NOT NULL REFERENCES professionals(id),
		role factory_role NOT NULL DEFAULT 'dev',
		stack_id UUID NOT NULL REFERENCES stacks(id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		allocation_percentage INT NOT NULL DEFAULT 100,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_factory_allocations_project_id ON factory_allocations (project_id);`,
	`CREATE INDEX IF NOT EXISTS idx_factory_allocations_professional_id ON factory_allocations (professional_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
