package lifecycle

import "time"

// daysPerSummaryMonth é o tamanho fixo de mês usado nos campos de resumo
// (garantia e próxima manutenção) do cliente-produto
const daysPerSummaryMonth = 30

// DateOnly normaliza um instante para meia-noite UTC do mesmo dia do calendário
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths soma meses de calendário a uma data. Quando o dia não existe no mês
// de destino, a data é ajustada para o último dia desse mês (31/01 + 1 = 28/02).
func AddMonths(anchor time.Time, months int) time.Time {
	anchor = DateOnly(anchor)
	y, m, d := anchor.Date()

	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, time.UTC)
}

// AddSummaryMonths soma meses de 30 dias fixos a uma data
func AddSummaryMonths(anchor time.Time, months int) time.Time {
	return DateOnly(anchor).AddDate(0, 0, months*daysPerSummaryMonth)
}
