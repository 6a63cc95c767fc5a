package lifecycle

import "time"

const (
	// DefaultUsageDurationDays é usado na garantia quando o produto não tem ciclo de vida
	DefaultUsageDurationDays = 365
	// DefaultServiceIntervalMonths é usado na próxima manutenção quando o intervalo não foi definido
	DefaultServiceIntervalMonths = 6
)

// SummaryDates contém as datas de resumo gravadas no cliente-produto
type SummaryDates struct {
	WarrantyEnd time.Time
	NextService time.Time
}

// ComputeSummaryDates calcula garantia e próxima manutenção com meses fixos de 30 dias.
// A agenda detalhada (GenerateSchedule) usa meses de calendário, então as datas
// podem divergir; unificar depende de decisão do responsável pelo domínio.
func ComputeSummaryDates(anchor time.Time, lifecycleMonths, intervalMonths int, usageDurationDays *int) SummaryDates {
	anchor = DateOnly(anchor)

	var warrantyEnd time.Time
	if lifecycleMonths > 0 {
		warrantyEnd = AddSummaryMonths(anchor, lifecycleMonths)
	} else {
		days := DefaultUsageDurationDays
		if usageDurationDays != nil && *usageDurationDays > 0 {
			days = *usageDurationDays
		}
		warrantyEnd = anchor.AddDate(0, 0, days)
	}

	if intervalMonths <= 0 {
		intervalMonths = DefaultServiceIntervalMonths
	}

	return SummaryDates{
		WarrantyEnd: warrantyEnd,
		NextService: AddSummaryMonths(anchor, intervalMonths),
	}
}
