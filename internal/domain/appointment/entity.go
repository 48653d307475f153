package appointment

import "github.com/BruksfildServices01/barber-booking-web/internal/httperr"

// ===============================
// Domain Actions
// ===============================

// Action é uma transição de status pedida à API (/appointments/{action}/{id}/).
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

func ParseAction(s string) (Action, error) {
	a := Action(s)
	switch a {
	case ActionConfirm, ActionCancel, ActionComplete:
		return a, nil
	}
	return "", httperr.ErrBusiness("invalid_action")
}

// Guard diz se a ação pode ser oferecida para o status atual.
func (a Action) Guard(current Status) error {
	switch a {
	case ActionConfirm:
		return CanConfirm(current)
	case ActionCancel:
		return CanCancel(current)
	case ActionComplete:
		return CanComplete(current)
	}
	return httperr.ErrBusiness("invalid_action")
}

func (a Action) Target() Status {
	switch a {
	case ActionConfirm:
		return StatusConfirmed
	case ActionCancel:
		return StatusCanceled
	case ActionComplete:
		return StatusCompleted
	}
	return ""
}

func (a Action) Prompt() string {
	switch a {
	case ActionConfirm:
		return "Tem certeza que deseja confirmar este agendamento?"
	case ActionCancel:
		return "Tem certeza que deseja cancelar este agendamento? Você não poderá reverter essa ação!"
	default:
		return "Tem certeza que deseja marcar este agendamento como atendido?"
	}
}

func (a Action) SuccessMessage() string {
	switch a {
	case ActionConfirm:
		return "Agendamento confirmado com sucesso!"
	case ActionCancel:
		return "Agendamento cancelado com sucesso!"
	default:
		return "Agendamento marcado como atendido!"
	}
}

// FailureMessage é o fallback quando a API não manda detail.
func (a Action) FailureMessage() string {
	switch a {
	case ActionConfirm:
		return "Erro ao confirmar o agendamento"
	case ActionCancel:
		return "Erro ao cancelar o agendamento"
	default:
		return "Erro ao marcar o agendamento como atendido"
	}
}

// Allowed devolve as ações disponíveis para um status, na ordem dos botões.
func Allowed(current Status) []Action {
	var out []Action
	for _, a := range []Action{ActionConfirm, ActionCancel, ActionComplete} {
		if a.Guard(current) == nil {
			out = append(out, a)
		}
	}
	return out
}
