package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys used by handlers and templates.
const (
	KeyResultsSummary  = "portfolio.results_summary"
	KeyNoResults       = "portfolio.no_results"
	KeyEndOfResults    = "portfolio.end_of_results"
	KeyLoading         = "portfolio.loading"
	KeyViewProject     = "portfolio.view_project"
	KeyClient          = "portfolio.client"
	KeySearch          = "portfolio.search_placeholder"
	KeyAllCategories   = "portfolio.all_categories"
	KeyAllTechnologies = "portfolio.all_technologies"
	KeyAllYears        = "portfolio.all_years"
	KeyClearFilters    = "portfolio.clear_filters"
	KeyResetSearch     = "portfolio.reset_search"
	KeyDuration        = "project.duration"
	KeyTeam            = "project.team"
	KeyYear            = "project.year"
	KeyChallenge       = "project.challenge"
	KeySolution        = "project.solution"
	KeyResults         = "project.results"
	KeyTechStack       = "project.tech_stack"
	KeyCTATitle        = "project.cta_title"
	KeyCTABody         = "project.cta_body"
	KeyCTAButton       = "project.cta_button"
	KeyClose           = "project.close"
	KeyContactSuccess  = "contact.success"
	KeyContactError    = "contact.error"
	KeyContactInvalid  = "contact.invalid"
	KeyContactSending  = "contact.sending"
	KeyContactSubmit   = "contact.submit"
	KeyContactName     = "contact.name"
	KeyContactEmail    = "contact.email"
	KeyContactMessage  = "contact.message"
	KeyNavHome         = "nav.home"
	KeyNavPortfolio    = "nav.portfolio"
	KeyNavContact      = "nav.contact"
)

var messages = map[language.Tag]map[string]string{
	language.BrazilianPortuguese: {
		KeyResultsSummary:  "Mostrando %d de %d projetos",
		KeyNoResults:       "Nenhum projeto encontrado com esses filtros.",
		KeyEndOfResults:    "Você chegou ao fim! Esses são todos os nossos projetos.",
		KeyLoading:         "Carregando projetos...",
		KeyViewProject:     "Ver Projeto",
		KeyClient:          "Cliente: %s",
		KeySearch:          "Buscar projetos...",
		KeyAllCategories:   "Todos",
		KeyAllTechnologies: "Todas as tecnologias",
		KeyAllYears:        "Todos os anos",
		KeyClearFilters:    "Limpar filtros",
		KeyResetSearch:     "Limpar busca",
		KeyDuration:        "Duração",
		KeyTeam:            "Equipe",
		KeyYear:            "Ano",
		KeyChallenge:       "O Desafio",
		KeySolution:        "Nossa Solução",
		KeyResults:         "Resultados Alcançados",
		KeyTechStack:       "Stack Tecnológico",
		KeyCTATitle:        "Gostou deste projeto?",
		KeyCTABody:         "Vamos criar algo incrível juntos! Entre em contato e transforme sua ideia em realidade.",
		KeyCTAButton:       "Iniciar Meu Projeto",
		KeyClose:           "Fechar",
		KeyContactSuccess:  "Mensagem enviada com sucesso! Em breve entraremos em contato.",
		KeyContactError:    "Ocorreu um erro ao enviar. Tente novamente ou chame no WhatsApp.",
		KeyContactInvalid:  "Preencha seu e-mail e sua mensagem.",
		KeyContactSending:  "Enviando...",
		KeyContactSubmit:   "Enviar mensagem",
		KeyContactName:     "Nome",
		KeyContactEmail:    "E-mail",
		KeyContactMessage:  "Mensagem",
		KeyNavHome:         "Início",
		KeyNavPortfolio:    "Portfólio",
		KeyNavContact:      "Contato",
	},
	language.English: {
		KeyResultsSummary:  "Showing %d of %d projects",
		KeyNoResults:       "No projects match these filters.",
		KeyEndOfResults:    "You reached the end! These are all of our projects.",
		KeyLoading:         "Loading projects...",
		KeyViewProject:     "View Project",
		KeyClient:          "Client: %s",
		KeySearch:          "Search projects...",
		KeyAllCategories:   "All",
		KeyAllTechnologies: "All technologies",
		KeyAllYears:        "All years",
		KeyClearFilters:    "Clear filters",
		KeyResetSearch:     "Clear search",
		KeyDuration:        "Duration",
		KeyTeam:            "Team",
		KeyYear:            "Year",
		KeyChallenge:       "The Challenge",
		KeySolution:        "Our Solution",
		KeyResults:         "Results",
		KeyTechStack:       "Tech Stack",
		KeyCTATitle:        "Like this project?",
		KeyCTABody:         "Let's build something great together! Get in touch and turn your idea into reality.",
		KeyCTAButton:       "Start My Project",
		KeyClose:           "Close",
		KeyContactSuccess:  "Message sent! We'll be in touch soon.",
		KeyContactError:    "Something went wrong while sending. Please try again or reach us on WhatsApp.",
		KeyContactInvalid:  "Please fill in your e-mail and message.",
		KeyContactSending:  "Sending...",
		KeyContactSubmit:   "Send message",
		KeyContactName:     "Name",
		KeyContactEmail:    "E-mail",
		KeyContactMessage:  "Message",
		KeyNavHome:         "Home",
		KeyNavPortfolio:    "Portfolio",
		KeyNavContact:      "Contact",
	},
}

func init() {
	for tag, entries := range messages {
		for key, msg := range entries {
			if err := message.SetString(tag, key, msg); err != nil {
				panic("i18n: register " + key + ": " + err.Error())
			}
		}
	}
}
