package news

import (
	"time"

	"passabola/models"
)

// fallbackArticles is the stock feed used whenever the store holds no
// articles, so the news page is never empty. Dates are relative to the
// clock because the stock copy describes "today", "yesterday" and so on.
func fallbackArticles(now time.Time) []models.Article {
	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}

	return []models.Article{
		{
			ID:          "1",
			Title:       "Passa Bola Lança Nova Tecnologia de Análise em Tempo Real",
			Category:    "tecnologia",
			Date:        day(0),
			Description: "Nova tecnologia permite análise completa do jogo em tempo real",
			Content:     "A Passa Bola revoluciona novamente o mundo do futebol com o lançamento de sua mais recente tecnologia de análise em tempo real, com sensores avançados e inteligência artificial processando milhões de dados por segundo.",
			Source:      "Passa Bola",
			Author:      "Equipe Passa Bola",
			ReadTime:    3,
			Published:   true,
		},
		{
			ID:          "2",
			Title:       "Seleção Brasileira Feminina Anuncia Novos Talentos",
			Category:    "futebol",
			Date:        day(1),
			Description: "Novas convocações trazem jovens talentos para a seleção feminina",
			Content:     "A Seleção Brasileira Feminina anunciou a convocação de novos talentos para a próxima temporada, com destaque para jovens promessas dos campeonatos nacionais.",
			Source:      "CBF",
			Author:      "Redação CBF",
			ReadTime:    4,
			Published:   true,
		},
		{
			ID:          "3",
			Title:       "Campeonato Brasileiro Feminino 2024: Novas Regras",
			Category:    "eventos",
			Date:        day(2),
			Description: "Novas regras prometem tornar o campeonato mais competitivo",
			Content:     "O Campeonato Brasileiro Feminino terá VAR em todos os jogos, cinco substituições por partida e um calendário reorganizado a partir da próxima temporada.",
			Source:      "CBF",
			Author:      "Redação CBF",
			ReadTime:    3,
			Published:   true,
		},
		{
			ID:          "4",
			Title:       "Nike Anuncia Parceria com Passa Bola",
			Category:    "parcerias",
			Date:        day(3),
			Description: "Parceria estratégica para inovação no futebol feminino",
			Content:     "A Nike anunciou uma parceria estratégica com a Passa Bola para desenvolver tecnologias inovadoras no futebol feminino, com foco em performance e prevenção de lesões.",
			Source:      "Nike",
			Author:      "Equipe Nike",
			ReadTime:    4,
			Published:   true,
		},
		{
			ID:          "5",
			Title:       "IA Coach: Nova Funcionalidade da Passa Bola",
			Category:    "tecnologia",
			Date:        day(4),
			Description: "Nova IA Coach oferece treinamento personalizado para jogadoras",
			Content:     "A Passa Bola lançou a IA Coach, uma assistente virtual especializada em futebol feminino, disponível 24/7 com dicas personalizadas por posição.",
			Source:      "Passa Bola",
			Author:      "Equipe Passa Bola",
			ReadTime:    3,
			Published:   true,
		},
		{
			ID:          "6",
			Title:       "Copa do Mundo Feminina 2024: Preparações Iniciadas",
			Category:    "eventos",
			Date:        day(5),
			Description: "O maior evento da história do futebol feminino, com 32 seleções",
			Content:     "As preparações para a Copa do Mundo Feminina começaram oficialmente: 32 seleções, transmissão em mais de 200 países e a maior premiação da história da modalidade.",
			Source:      "FIFA",
			Author:      "Redação FIFA",
			ReadTime:    3,
			Published:   true,
		},
	}
}
