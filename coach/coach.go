package coach

import (
	"context"
	"math/rand"
	"strings"
	"sync"
)

// fallbackReply is what the assistant says when nothing else applies.
const fallbackReply = "Desculpe, ocorreu um erro ao processar sua mensagem. Tente novamente em alguns instantes."

// WelcomeReply opens every fresh conversation.
const WelcomeReply = "Olá! Sou sua IA Coach personalizada! 💪 Estou aqui para te ajudar com treinamentos, técnicas de futebol feminino e motivação. Como posso te ajudar hoje?"

type topic struct {
	keywords []string
	replies  []string
}

var topics = []topic{
	{
		keywords: []string{"treino", "treinamento", "exercício", "exercicio"},
		replies: []string{
			"Ótima pergunta! 💪 Para evoluir no futebol feminino, combine treinos de força duas vezes por semana com trabalho técnico de bola. Comece com condução em velocidade e finalizações curtas.",
			"Monte sua semana assim: dois dias de técnica (passe, domínio, finalização), um de força e um de jogo reduzido. Descanso também é treino! ⚽",
		},
	},
	{
		keywords: []string{"lesão", "lesao", "dor", "joelho", "tornozelo"},
		replies: []string{
			"Prevenção é tudo! Fortaleça quadríceps e posteriores de coxa, e nunca pule o aquecimento. Programas como o FIFA 11+ reduzem muito o risco de lesão de joelho no futebol feminino.",
			"Se há dor persistente, procure avaliação profissional antes de voltar a treinar. Enquanto isso, trabalhe mobilidade de tornozelo e estabilidade de core. 🙏",
		},
	},
	{
		keywords: []string{"nutrição", "nutricao", "alimentação", "alimentacao", "comer", "dieta"},
		replies: []string{
			"Nutrição faz diferença no campo! 🥗 Priorize carboidratos complexos antes do jogo, proteína na recuperação e hidratação constante. Ferro é especialmente importante para atletas mulheres.",
		},
	},
	{
		keywords: []string{"motivação", "motivacao", "desanimada", "desistir", "medo"},
		replies: []string{
			"Toda grande jogadora já pensou em desistir um dia. O que separa quem chega lá é voltar ao treino no dia seguinte. Você consegue! 🔥",
			"Foque no seu progresso, não no das outras. Cada toque de bola a mais é uma vitória sua. Bola pra frente! ⚽💜",
		},
	},
	{
		keywords: []string{"chute", "finalização", "finalizacao", "gol"},
		replies: []string{
			"Para melhorar a finalização, treine repetição com os dois pés: 20 chutes colocados no canto, 20 de força. Olhe o canto, não a bola, no último passo. 🎯",
		},
	},
	{
		keywords: []string{"passe", "domínio", "dominio", "drible", "técnica", "tecnica"},
		replies: []string{
			"Técnica se constrói com volume: 10 minutos diários de domínio contra a parede valem mais que uma hora por semana. Varie a superfície de contato a cada toque.",
		},
	},
	{
		keywords: []string{"olá", "ola", "oi", "bom dia", "boa tarde", "boa noite"},
		replies:  []string{WelcomeReply},
	},
}

// call identifies one in-flight question, so a finished request can
// tell whether the registration under its account is still its own.
type call struct {
	cancel context.CancelFunc
}

// Assistant answers one user at a time per account. Submitting a new
// question cancels the one still being answered.
type Assistant struct {
	mu       sync.Mutex
	inflight map[string]*call

	// pick is swapped in tests for deterministic replies.
	pick func(replies []string) string
}

func NewAssistant() *Assistant {
	return &Assistant{
		inflight: map[string]*call{},
		pick: func(replies []string) string {
			return replies[rand.Intn(len(replies))]
		},
	}
}

// Ask resolves a reply for the account's question. The previous
// in-flight question for the same account, if any, is cancelled.
func (a *Assistant) Ask(ctx context.Context, accountID, question string) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	this := &call{cancel: cancel}

	a.mu.Lock()
	if prev, ok := a.inflight[accountID]; ok {
		prev.cancel()
	}
	a.inflight[accountID] = this
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		// A newer question may have replaced the registration while
		// this one was running; only remove our own.
		if a.inflight[accountID] == this {
			delete(a.inflight, accountID)
		}
		a.mu.Unlock()
		cancel()
	}()

	reply := a.reply(question)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		return reply, nil
	}
}

func (a *Assistant) reply(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return fallbackReply
	}
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(q, kw) {
				return a.pick(t.replies)
			}
		}
	}
	return a.pick(genericReplies)
}

var genericReplies = []string{
	"Boa pergunta! Me conta um pouco mais: você quer focar em técnica, preparo físico ou parte mental? Assim monto uma orientação sob medida. ⚽",
	"Posso te ajudar com treinos, técnica, prevenção de lesões, nutrição e motivação. Sobre qual desses você quer conversar? 💪",
}
