package main

import "vitrine.dev/internal/models"

// Card backgrounds
const (
	purple = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	pink   = "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)"
	blue   = "linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)"
	green  = "linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)"
	orange = "linear-gradient(135deg, #fa709a 0%, #fee140 100%)"
	dark   = "linear-gradient(135deg, #30cfd0 0%, #330867 100%)"
)

// seedProjects is the catalog written to projects.json
var seedProjects = []models.Project{
	{
		ID:               "loja-aurora",
		Title:            "Loja Aurora",
		Client:           "Aurora Cosméticos",
		Category:         "ecommerce",
		Technologies:     []string{"shopify", "react"},
		TechStack:        []string{"Shopify", "React", "Node.js", "Stripe", "Klaviyo"},
		Year:             2024,
		Icon:             "🛍️",
		Image:            pink,
		ShortDescription: "Loja virtual de cosméticos veganos com assinatura mensal.",
		FullDescription:  "Plataforma de e-commerce completa com clube de assinatura, recomendação de produtos e checkout em uma etapa.",
		Duration:         "4 meses",
		Team:             "5 pessoas",
		Challenge:        "A marca vendia apenas por redes sociais e perdia pedidos na troca de mensagens.",
		Solution:         "Criamos uma loja integrada ao estoque, com assinatura recorrente e recuperação de carrinho.",
		Results: []string{
			"+180% em vendas online no primeiro trimestre",
			"Taxa de recompra de 42%",
			"Checkout 3x mais rápido",
		},
	},
	{
		ID:               "clinica-vida",
		Title:            "Clínica Vida",
		Client:           "Grupo Vida Saúde",
		Category:         "system",
		Technologies:     []string{"laravel", "vue"},
		TechStack:        []string{"Laravel", "Vue.js", "MySQL", "Redis"},
		Year:             2023,
		Icon:             "🩺",
		Image:            blue,
		ShortDescription: "Sistema de agendamento e prontuário eletrônico.",
		FullDescription:  "Sistema web para três unidades com agenda compartilhada, prontuário eletrônico e lembretes automáticos por WhatsApp.",
		Duration:         "6 meses",
		Team:             "6 pessoas",
		Challenge:        "Agendas em planilhas separadas geravam conflitos de horário e faltas frequentes.",
		Solution:         "Unificamos as agendas em um sistema único com confirmação automática de consultas.",
		Results: []string{
			"Faltas reduzidas em 35%",
			"Atendimento de recepção 50% mais rápido",
			"Prontuário acessível em todas as unidades",
		},
	},
	{
		ID:               "rota-facil",
		Title:            "Rota Fácil",
		Client:           "TransLog Logística",
		Category:         "mobile",
		Technologies:     []string{"flutter", "firebase"},
		TechStack:        []string{"Flutter", "Firebase", "Google Maps API"},
		Year:             2024,
		Icon:             "🚚",
		Image:            orange,
		ShortDescription: "App de rastreamento de entregas em tempo real.",
		FullDescription:  "Aplicativo para motoristas e clientes acompanharem entregas, com prova de entrega por foto e assinatura.",
		Duration:         "5 meses",
		Team:             "4 pessoas",
		Challenge:        "Clientes ligavam várias vezes ao dia para saber onde estava a carga.",
		Solution:         "Desenvolvemos um app com rastreamento ao vivo e notificações em cada etapa da entrega.",
		Results: []string{
			"-70% em ligações de suporte",
			"Entregas comprovadas digitalmente",
			"Nota 4,8 nas lojas de apps",
		},
	},
	{
		ID:               "lima-advogados",
		Title:            "Lima Advogados",
		Client:           "Lima & Associados",
		Category:         "web",
		Technologies:     []string{"wordpress"},
		TechStack:        []string{"WordPress", "PHP", "Elementor"},
		Year:             2022,
		Icon:             "⚖️",
		Image:            dark,
		ShortDescription: "Site institucional com blog jurídico.",
		FullDescription:  "Site institucional com blog jurídico, páginas por área de atuação e formulário de triagem de casos.",
		Duration:         "2 meses",
		Team:             "3 pessoas",
		Challenge:        "O escritório não aparecia nas buscas por suas áreas de atuação.",
		Solution:         "Estruturamos o conteúdo por área e publicamos artigos otimizados para busca.",
		Results: []string{
			"Tráfego orgânico 4x maior",
			"+60 contatos qualificados por mês",
		},
	},
	{
		ID:               "sabor-da-terra",
		Title:            "Sabor da Terra",
		Client:           "Restaurante Sabor da Terra",
		Category:         "web",
		Technologies:     []string{"nextjs"},
		TechStack:        []string{"Next.js", "Tailwind CSS", "Vercel"},
		Year:             2024,
		Icon:             "🍲",
		Image:            green,
		ShortDescription: "Site com cardápio digital e reservas online.",
		FullDescription:  "Site rápido com cardápio atualizável pelo próprio restaurante e reservas integradas ao WhatsApp.",
		Duration:         "1 mês",
		Team:             "2 pessoas",
		Challenge:        "O cardápio em PDF era difícil de ler no celular e sempre desatualizado.",
		Solution:         "Criamos um cardápio digital leve, editável pelo gerente sem ajuda técnica.",
		Results: []string{
			"Reservas online dobraram",
			"Carregamento abaixo de 1 segundo",
		},
	},
	{
		ID:               "mercado-verde",
		Title:            "Mercado Verde",
		Client:           "Mercado Verde Orgânicos",
		Category:         "ecommerce",
		Technologies:     []string{"woocommerce", "wordpress"},
		TechStack:        []string{"WooCommerce", "WordPress", "PagSeguro"},
		Year:             2023,
		Icon:             "🥬",
		Image:            green,
		ShortDescription: "E-commerce de orgânicos com entrega agendada.",
		FullDescription:  "Loja de produtos orgânicos com janelas de entrega, cestas personalizadas e pagamento via Pix.",
		Duration:         "3 meses",
		Team:             "4 pessoas",
		Challenge:        "Pedidos por telefone limitavam o crescimento e geravam erros de separação.",
		Solution:         "Lançamos uma loja com agendamento de entrega e lista de separação automática.",
		Results: []string{
			"+250 pedidos semanais",
			"Erros de separação praticamente zerados",
		},
	},
	{
		ID:               "finance-hub",
		Title:            "Finance Hub",
		Client:           "Contabilidade Prisma",
		Category:         "system",
		Technologies:     []string{"react", "node"},
		TechStack:        []string{"React", "Node.js", "PostgreSQL", "Docker", "AWS"},
		Year:             2024,
		Icon:             "📊",
		Image:            purple,
		ShortDescription: "Portal de documentos e indicadores para clientes.",
		FullDescription:  "Portal onde os clientes da contabilidade enviam documentos, acompanham obrigações e veem indicadores financeiros.",
		Duration:         "7 meses",
		Team:             "6 pessoas",
		Challenge:        "Documentos chegavam por e-mail e se perdiam entre dezenas de caixas de entrada.",
		Solution:         "Centralizamos o envio de documentos com prazos, alertas e painel por cliente.",
		Results: []string{
			"80% dos documentos recebidos no prazo",
			"Economia de 20 horas semanais da equipe",
		},
	},
	{
		ID:               "pet-amigo",
		Title:            "Pet Amigo",
		Client:           "Rede Pet Amigo",
		Category:         "mobile",
		Technologies:     []string{"react-native", "firebase"},
		TechStack:        []string{"React Native", "Firebase", "Stripe"},
		Year:             2023,
		Icon:             "🐾",
		Image:            orange,
		ShortDescription: "App de agendamento de banho e tosa.",
		FullDescription:  "Aplicativo para agendar serviços, acompanhar o pet em tempo real e acumular pontos de fidelidade.",
		Duration:         "4 meses",
		Team:             "4 pessoas",
		Challenge:        "A rede queria fidelizar clientes e reduzir horários ociosos.",
		Solution:         "Criamos um app com agenda em tempo real e programa de pontos.",
		Results: []string{
			"Ocupação da agenda subiu para 92%",
			"30 mil downloads no primeiro ano",
		},
	},
	{
		ID:               "construtora-alicerce",
		Title:            "Construtora Alicerce",
		Client:           "Alicerce Engenharia",
		Category:         "web",
		Technologies:     []string{"nextjs"},
		TechStack:        []string{"Next.js", "Sanity", "Vercel"},
		Year:             2023,
		Icon:             "🏗️",
		Image:            dark,
		ShortDescription: "Site de lançamentos imobiliários.",
		FullDescription:  "Site com páginas de empreendimentos, tour virtual e captação de leads integrada ao CRM.",
		Duration:         "3 meses",
		Team:             "3 pessoas",
		Challenge:        "Cada lançamento exigia um site novo feito do zero.",
		Solution:         "Construímos uma base única onde cada empreendimento é publicado pelo time de marketing.",
		Results: []string{
			"Novos lançamentos no ar em 2 dias",
			"Custo por lead 40% menor",
		},
	},
	{
		ID:               "escola-saber",
		Title:            "Escola Saber",
		Client:           "Colégio Saber",
		Category:         "system",
		Technologies:     []string{"laravel"},
		TechStack:        []string{"Laravel", "Livewire", "MySQL"},
		Year:             2022,
		Icon:             "🎓",
		Image:            blue,
		ShortDescription: "Plataforma de notas e comunicação escolar.",
		FullDescription:  "Sistema para lançamento de notas, frequência e comunicados entre escola e famílias.",
		Duration:         "5 meses",
		Team:             "5 pessoas",
		Challenge:        "Comunicados em papel não chegavam às famílias.",
		Solution:         "Criamos um portal com notificações e boletim online.",
		Results: []string{
			"95% das famílias ativas no portal",
			"Fim dos boletins impressos",
		},
	},
	{
		ID:               "moda-brisa",
		Title:            "Moda Brisa",
		Client:           "Brisa Confecções",
		Category:         "ecommerce",
		Technologies:     []string{"shopify"},
		TechStack:        []string{"Shopify", "Liquid", "Google Analytics"},
		Year:             2022,
		Icon:             "👗",
		Image:            pink,
		ShortDescription: "Loja de moda praia com provador de tamanhos.",
		FullDescription:  "Loja virtual com guia de tamanhos interativo, lookbook e integração com marketplaces.",
		Duration:         "2 meses",
		Team:             "3 pessoas",
		Challenge:        "Muitas trocas por escolha errada de tamanho.",
		Solution:         "Implementamos um guia de medidas interativo em cada produto.",
		Results: []string{
			"Trocas reduzidas em 45%",
			"Ticket médio 25% maior",
		},
	},
	{
		ID:               "agenda-beleza",
		Title:            "Agenda Beleza",
		Client:           "Studio Bella",
		Category:         "mobile",
		Technologies:     []string{"flutter"},
		TechStack:        []string{"Flutter", "Supabase"},
		Year:             2024,
		Icon:             "💅",
		Image:            purple,
		ShortDescription: "App de agendamento para salão de beleza.",
		FullDescription:  "App para clientes agendarem serviços, pagarem sinal via Pix e receberem lembretes.",
		Duration:         "3 meses",
		Team:             "3 pessoas",
		Challenge:        "Clientes esqueciam horários e o salão perdia receita com faltas.",
		Solution:         "Criamos agendamento com sinal antecipado e lembretes automáticos.",
		Results: []string{
			"Faltas caíram 60%",
			"Agenda cheia com 2 semanas de antecedência",
		},
	},
}
