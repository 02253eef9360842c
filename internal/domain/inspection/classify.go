package inspection

import "fmt"

type Verdict string

const (
	VerdictSafe        Verdict = "SEGURO"
	VerdictWithWarning Verdict = "SEGURO CON ADVERTENCIA"
	VerdictRecheck     Verdict = "RECHEQUEAR"
)

const (
	recheckBelow = 40
	safeFrom     = 80
)

// Classify applies the verdict rules in precedence order: a low total or any
// critical failure forces a recheck before the safe threshold is considered.
func Classify(total int, criticalFailure bool) Verdict {
	switch {
	case total < recheckBelow || criticalFailure:
		return VerdictRecheck
	case total >= safeFrom:
		return VerdictSafe
	default:
		return VerdictWithWarning
	}
}

// AutoNote is the human-readable summary stored on the result header.
func AutoNote(verdict Verdict, total int) string {
	return fmt.Sprintf("Resultado automatico: %s con %d/%d puntos.", verdict, total, MaxTotal)
}
