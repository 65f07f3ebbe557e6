package services

import (
	"fmt"

	"vitrine.dev/internal/config"
	"vitrine.dev/internal/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{
			ID: "loja-aurora", Title: "Loja Aurora", Client: "Aurora Cosméticos", Category: "ecommerce",
			Technologies: []string{"shopify", "react"}, TechStack: []string{"Shopify", "React", "Node.js", "Stripe"},
			Year: 2024, ShortDescription: "Loja virtual de cosméticos veganos.",
			FullDescription: "Plataforma completa com assinatura mensal.",
		},
		{
			ID: "clinica-vida", Title: "Clínica Vida", Client: "Grupo Vida Saúde", Category: "system",
			Technologies: []string{"laravel", "vue"}, TechStack: []string{"Laravel", "Vue.js", "MySQL"},
			Year: 2023, ShortDescription: "Sistema de agendamento online.",
			FullDescription: "Prontuário eletrônico integrado ao agendamento.",
		},
		{
			ID: "rota-facil", Title: "Rota Fácil", Client: "TransLog", Category: "mobile",
			Technologies: []string{"flutter"}, TechStack: []string{"Flutter", "Firebase"},
			Year: 2024, ShortDescription: "App de rastreamento de entregas.",
			FullDescription: "Acompanhamento em tempo real para motoristas e clientes.",
		},
		{
			ID: "escritorio-lima", Title: "Lima Advogados", Client: "Lima & Associados", Category: "web",
			Technologies: []string{"wordpress"}, TechStack: []string{"WordPress", "PHP"},
			Year: 2022, ShortDescription: "Site institucional.",
			FullDescription: "Site com blog jurídico e formulário de triagem.",
		},
	}
}

// numberedProjects builds n web projects with distinct ids, in order
func numberedProjects(n int) []models.Project {
	out := make([]models.Project, n)
	for i := range out {
		out[i] = models.Project{
			ID:       fmt.Sprintf("p%02d", i+1),
			Title:    fmt.Sprintf("Projeto %d", i+1),
			Category: "web",
			Year:     2020 + i%5,
		}
	}
	return out
}

func testSite(pageSize int) *config.SiteConfig {
	site := config.DefaultSite()
	site.PageSize = pageSize
	return site
}

func newTestService(projects []models.Project, pageSize int) *ProjectService {
	return NewProjectService(NewCatalog("", &models.ProjectList{Projects: projects}), testSite(pageSize))
}

func ids(projects []models.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func cardIDs(cards []models.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}
