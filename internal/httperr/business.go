package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nareguabarber/naregua-api/internal/domain/booking"
)

// FromDomain traduz a taxonomia do núcleo para HTTP:
// validação → 400, slot perdido → 409, transição inválida → 422,
// id desconhecido → 404. Nada é engolido: o resto vira 500.
func FromDomain(c *gin.Context, err error) {
	var de booking.DomainError
	if !errors.As(err, &de) {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch de.Kind {
	case booking.KindValidation:
		BadRequest(c, de.Code, messageFor(de.Code))
	case booking.KindSlotConflict:
		Conflict(c, de.Code, "Esse horário acabou de ser reservado. Escolha outro.")
	case booking.KindInvalidTransition:
		Unprocessable(c, de.Code, "Transição de status inválida.")
	case booking.KindNotFound:
		NotFound(c, de.Code, "Registro não encontrado.")
	default:
		Internal(c, de.Code, "Erro interno.")
	}
}

func messageFor(code string) string {
	switch code {
	case "missing_fields":
		return "Preencha todos os campos obrigatórios."
	case "invalid_date_or_time", "invalid_date", "invalid_time":
		return "Data ou horário inválido."
	case "sunday_not_bookable":
		return "Não abrimos aos domingos."
	case "insufficient_points":
		return "Pontos insuficientes para o resgate."
	case "service_not_offered":
		return "O barbeiro escolhido não atende esse serviço."
	case "barber_inactive", "service_inactive":
		return "Opção indisponível no momento."
	default:
		return "Dados inválidos."
	}
}
