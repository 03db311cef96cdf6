package seeder

import (
	"context"
	"fmt"

	"opocentral/internal/database"
)

type OpportunitiesSeeder struct{}

func (OpportunitiesSeeder) Name() string { return "opportunities" }

// Run inserts the starter listings. IDs are fixed so reruns are no-ops.
func (OpportunitiesSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		ID           string
		Title        string
		Description  string
		Company      string
		Location     string
		Type         string
		Requirements []string
		Benefits     []string
		Salary       string
		Duration     string
	}{
		{
			ID:           "7b2f8a1e-0c3d-4e5f-9a6b-1c2d3e4f5a60",
			Title:        "Estágio em Desenvolvimento Web",
			Description:  "Apoio no desenvolvimento de aplicações web para projetos sociais da região.",
			Company:      "Tech Olinda",
			Location:     "Olinda",
			Type:         "Estágio",
			Requirements: []string{"HTML", "CSS", "JavaScript"},
			Benefits:     []string{"Bolsa auxílio", "Vale transporte"},
			Salary:       "R$ 800,00",
			Duration:     "6 meses",
		},
		{
			ID:           "3e9c4d2b-5a6f-4b7c-8d9e-2f3a4b5c6d71",
			Title:        "Curso de Marketing Digital",
			Description:  "Formação gratuita em marketing digital com foco em redes sociais.",
			Company:      "Instituto Crescer",
			Location:     "Olinda",
			Type:         "Curso",
			Requirements: []string{"Ensino médio em andamento"},
			Benefits:     []string{"Certificado", "Material didático"},
			Salary:       "",
			Duration:     "3 meses",
		},
		{
			ID:           "9d1e5f3c-7b8a-4c9d-a0e1-3b4c5d6e7f82",
			Title:        "Voluntariado em Educação Infantil",
			Description:  "Acompanhamento de crianças em atividades de reforço escolar.",
			Company:      "ONG Semear",
			Location:     "Recife",
			Type:         "Voluntário",
			Requirements: []string{"Paciência", "Comunicação"},
			Benefits:     []string{"Certificado de horas"},
			Salary:       "",
			Duration:     "Indeterminado",
		},
		{
			ID:           "5a7b9c1d-2e3f-4a5b-b6c7-4d5e6f7a8b93",
			Title:        "Jovem Aprendiz Administrativo",
			Description:  "Rotinas administrativas, atendimento e organização de documentos.",
			Company:      "Comercial Norte",
			Location:     "Olinda",
			Type:         "Estágio",
			Requirements: []string{"Excel", "Organização"},
			Benefits:     []string{"Salário", "Vale refeição"},
			Salary:       "R$ 1.100,00",
			Duration:     "12 meses",
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO opportunities (id, title, description, company, location, type,
				requirements, benefits, salary, duration, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'active')
			 ON CONFLICT (id) DO NOTHING`,
			it.ID,
			it.Title,
			it.Description,
			it.Company,
			it.Location,
			it.Type,
			it.Requirements,
			it.Benefits,
			it.Salary,
			it.Duration,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
