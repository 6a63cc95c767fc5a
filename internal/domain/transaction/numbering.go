package transaction

import (
	"fmt"
	"strings"
	"time"
)

const (
	numberPrefix      = "INV"
	customerCodeChars = 6
)

// NumberPrefix monta o prefixo mês + cliente usado na numeração, ex.: INV-202501-3F2A9C-
func NumberPrefix(transactionDate time.Time, customerID string) string {
	code := strings.ToUpper(customerID)
	if len(code) > customerCodeChars {
		code = code[:customerCodeChars]
	}
	return fmt.Sprintf("%s-%s-%s-", numberPrefix, transactionDate.Format("200601"), code)
}

// FormatNumber gera o número da transação a partir da quantidade já existente com o mesmo prefixo.
// A contagem seguida de inserção não é protegida contra concorrência.
func FormatNumber(transactionDate time.Time, customerID string, existing int) string {
	return fmt.Sprintf("%s%03d", NumberPrefix(transactionDate, customerID), existing+1)
}
