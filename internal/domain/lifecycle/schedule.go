package lifecycle

import (
	"fmt"
	"time"
)

const (
	DefaultOnboardingAction = "Boas-vindas"
	DefaultMaturityAction   = "Renovação"
)

// Node é um ponto de contato calculado pelo gerador de agenda
type Node struct {
	Month  int       `json:"month"`
	Date   time.Time `json:"date"`
	Phase  Phase     `json:"phase"`
	Action string    `json:"action"`
}

// RetentionAction monta o rótulo de uma manutenção a partir do mês
func RetentionAction(month int) string {
	return fmt.Sprintf("Manutenção - mês %d", month)
}

// GenerateSchedule calcula a sequência de pontos de contato de um ciclo de vida.
//
// A função é pura: não faz I/O e as mesmas entradas sempre produzem a mesma
// sequência. Ela é usada tanto pela materialização das tarefas quanto pela
// pré-visualização. Os nós saem em ordem crescente de mês.
func GenerateSchedule(anchor time.Time, lifecycleMonths, intervalMonths int, cfg FlowConfig) []Node {
	nodes := make([]Node, 0)
	if lifecycleMonths <= 0 {
		return nodes
	}

	anchor = DateOnly(anchor)

	if cfg.Onboarding.Enabled {
		nodes = append(nodes, Node{
			Month:  0,
			Date:   anchor,
			Phase:  PhaseOnboarding,
			Action: actionOrDefault(cfg.Onboarding.TaskName, DefaultOnboardingAction),
		})
	}

	// intervalo zero não gera manutenções (evita laço infinito)
	if cfg.Retention.Enabled && intervalMonths > 0 {
		for month := intervalMonths; month < lifecycleMonths; month += intervalMonths {
			nodes = append(nodes, Node{
				Month:  month,
				Date:   AddMonths(anchor, month),
				Phase:  PhaseRetention,
				Action: RetentionAction(month),
			})
		}
	}

	if cfg.Maturity.Enabled {
		nodes = append(nodes, Node{
			Month:  lifecycleMonths,
			Date:   AddMonths(anchor, lifecycleMonths),
			Phase:  PhaseMaturity,
			Action: actionOrDefault(cfg.Maturity.TaskName, DefaultMaturityAction),
		})
	}

	return nodes
}

func actionOrDefault(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
