package catalog

import "passabola/models"

// seeded is the stock reference catalog the shop ships with. These
// records are read-only: the admin UI can neither edit nor delete them,
// and their numeric ids stay disjoint from the millisecond ids of
// admin-created products.
var seeded = []models.Product{
	{
		ID: "1", Name: "Kit de Treinamento Completo", Category: "equipamentos",
		Price: 299.90, OriginalPrice: 399.90,
		Description: "Kit completo com cones, escadas de agilidade e equipamentos profissionais",
		Rating:      5, RatingCount: 127, Badge: "Novo", BadgeType: "new",
		Features:  []string{"15 cones coloridos", "Escada de agilidade", "Bolas de treino", "Bolsa transportadora"},
		Stock:     50, Published: true, Seeded: true,
	},
	{
		ID: "2", Name: "Óculos VR Training", Category: "tecnologia",
		Price: 599.90, OriginalPrice: 799.90,
		Description: "Treinamento imersivo com realidade virtual para jogadores profissionais",
		Rating:      4, RatingCount: 89, Badge: "-25%", BadgeType: "sale",
		Features:  []string{"Realidade virtual", "Simulação de jogos", "Análise de movimento", "Controle por gestos"},
		Stock:     20, Published: true, Seeded: true,
	},
	{
		ID: "3", Name: "Smart Watch Esportivo", Category: "acessorios",
		Price:       149.90,
		Description: "Relógio inteligente com GPS e monitoramento de performance",
		Rating:      5, RatingCount: 203,
		Features:  []string{"GPS integrado", "Monitor cardíaco", "Resistente à água", "Bateria de 7 dias"},
		Stock:     80, Published: true, Seeded: true,
	},
	{
		ID: "4", Name: "Camisa Técnica Esportiva", Category: "uniformes",
		Price:       89.90,
		Description: "Camisa técnica com material respirável e design moderno",
		Rating:      4, RatingCount: 156, Badge: "Popular", BadgeType: "popular",
		Features:  []string{"Material respirável", "Secagem rápida", "Design moderno", "Lavagem fácil"},
		Stock:     120, Published: true, Seeded: true,
	},
	{
		ID: "5", Name: "Tênis Smart Pro", Category: "equipamentos",
		Price:       199.90,
		Description: "Tênis com sensores de pressão e análise de movimento",
		Rating:      5, RatingCount: 94,
		Features:  []string{"Sensores de pressão", "Análise de movimento", "Sola inteligente", "Conforto máximo"},
		Stock:     40, Published: true, Seeded: true,
	},
	{
		ID: "6", Name: "Comunicador de Campo", Category: "tecnologia",
		Price:       399.90,
		Description: "Sistema de comunicação sem fio para treinadores e jogadores",
		Rating:      4, RatingCount: 67, Badge: "Novo", BadgeType: "new",
		Features:  []string{"Comunicação sem fio", "Alcance de 500m", "Resistente à água", "Bateria de 8 horas"},
		Stock:     35, Published: true, Seeded: true,
	},
	{
		ID: "7", Name: "Tênis de Corrida Premium", Category: "equipamentos",
		Price: 249.90, OriginalPrice: 299.90,
		Description: "Tênis de corrida com tecnologia de amortecimento e design moderno",
		Rating:      5, RatingCount: 142, Badge: "-17%", BadgeType: "sale",
		Features:  []string{"Amortecimento avançado", "Material respirável", "Sola antiderrapante", "Design moderno"},
		Stock:     60, Published: true, Seeded: true,
	},
	{
		ID: "8", Name: "Tablet Esportivo Pro", Category: "tecnologia",
		Price:       799.90,
		Description: "Tablet profissional para análise de jogos e treinamentos",
		Rating:      5, RatingCount: 45, Badge: "Premium", BadgeType: "premium",
		Features:  []string{"Tela 12 polegadas", "Processador rápido", "Resistente à água", "App esportivo incluído"},
		Stock:     15, Published: true, Seeded: true,
	},
	{
		ID: "9", Name: "Kit de Treinamento", Category: "equipamentos",
		Price:       179.90,
		Description: "Kit completo com cones, escadas e equipamentos de treinamento",
		Rating:      4, RatingCount: 78,
		Features:  []string{"10 cones coloridos", "Escada de agilidade", "Bolas de treino", "Bolsa inclusa"},
		Stock:     55, Published: true, Seeded: true,
	},
	{
		ID: "10", Name: "Fones de Ouvido Esportivos", Category: "acessorios",
		Price: 129.90, OriginalPrice: 159.90,
		Description: "Fones de ouvido com cancelamento de ruído e qualidade premium",
		Rating:      4, RatingCount: 89, Badge: "-19%", BadgeType: "sale",
		Features:  []string{"Cancelamento de ruído", "Qualidade premium", "Resistente à água", "Bateria de 20 horas"},
		Stock:     90, Published: true, Seeded: true,
	},
	{
		ID: "11", Name: "Uniforme Completo", Category: "uniformes",
		Price:       199.90,
		Description: "Kit completo com camisa, short e meião para times",
		Rating:      5, RatingCount: 156, Badge: "Combo", BadgeType: "combo",
		Features:  []string{"Camisa personalizada", "Short esportivo", "Meião técnico", "Personalização grátis"},
		Stock:     70, Published: true, Seeded: true,
	},
	{
		ID: "12", Name: "Câmera de Campo", Category: "tecnologia",
		Price:       499.90,
		Description: "Câmera 4K para análise de jogos e treinamentos",
		Rating:      5, RatingCount: 67, Badge: "Pro", BadgeType: "pro",
		Features:  []string{"Gravação 4K", "Estabilização", "Zoom óptico", "Armazenamento em nuvem"},
		Stock:     25, Published: true, Seeded: true,
	},
	{
		ID: "13", Name: "Bola de Treino", Category: "equipamentos",
		Price:       79.90,
		Description: "Bola oficial para treinamentos e práticas",
		Rating:      4, RatingCount: 234,
		Features:  []string{"Material premium", "Durabilidade", "Grip superior", "Tamanho oficial"},
		Stock:     200, Published: true, Seeded: true,
	},
	{
		ID: "14", Name: "Relógio Esportivo Digital", Category: "acessorios",
		Price: 99.90, OriginalPrice: 129.90,
		Description: "Relógio digital com cronômetro e alarmes para treinos",
		Rating:      4, RatingCount: 112, Badge: "-23%", BadgeType: "sale",
		Features:  []string{"Cronômetro preciso", "Alarmes múltiplos", "Resistente à água", "Bateria de 2 anos"},
		Stock:     110, Published: true, Seeded: true,
	},
	{
		ID: "15", Name: "Moletom Esportivo", Category: "uniformes",
		Price:       119.90,
		Description: "Moletom com tecnologia de aquecimento e design moderno",
		Rating:      5, RatingCount: 89, Badge: "Conforto", BadgeType: "comfort",
		Features:  []string{"Tecnologia de aquecimento", "Material macio", "Design moderno", "Lavagem fácil"},
		Stock:     65, Published: true, Seeded: true,
	},
}

// Seeded returns a copy of the reference catalog.
func Seeded() []models.Product {
	out := make([]models.Product, len(seeded))
	copy(out, seeded)
	return out
}
