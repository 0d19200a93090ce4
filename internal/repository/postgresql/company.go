package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/company"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

// Get implements company.CompanyRepository.
func (r *companyRepository) Get(ctx context.Context) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, code FROM company LIMIT 1`

	var c company.Company
	err := q.QueryRow(ctx, query).Scan(&c.ID, &c.Name, &c.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyCodeNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}
