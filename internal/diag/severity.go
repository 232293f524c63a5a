package diag

// Severity это уровень диагностики. Порядок значений важен:
// HasWarnings и HasErrors сравнивают уровни через >=.
type Severity uint8

const (
	SevInfo    Severity = iota // справка, формат не страдает
	SevWarning                 // конструкция закрыта принудительно
	SevError                   // файл не обработан
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

// String возвращает имя уровня в верхнем регистре, для неизвестных UNKNOWN.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
