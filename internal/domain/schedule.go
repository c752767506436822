package domain

import "time"

// ScheduleEntry é a menor unidade do cronograma: um produto em um dia
type ScheduleEntry struct {
	Date           string `json:"date"` // YYYY-MM-DD
	ProductID      int    `json:"product_id"`
	ProductName    string `json:"product_name"`
	ScheduledUnits int    `json:"scheduled_units"`
}

// ScheduleSource indica de onde veio o cronograma em memória
type ScheduleSource string

const (
	// SourceDefault é o cronograma padrão do serviço, obtido sem parâmetros
	SourceDefault ScheduleSource = "default"
	// SourceRegeneration é o cronograma gerado a partir de parâmetros editados
	SourceRegeneration ScheduleSource = "regeneration"
)

// ScheduleSnapshot é o cronograma mantido em memória
type ScheduleSnapshot struct {
	Revision    string          `json:"revision"`
	Source      ScheduleSource  `json:"source"`
	GeneratedAt time.Time       `json:"generated_at"`
	Entries     []ScheduleEntry `json:"entries"`
}

// IsEmpty indica que nenhum cronograma foi carregado ainda
func (s ScheduleSnapshot) IsEmpty() bool {
	return s.Revision == "" && len(s.Entries) == 0
}

// CloneEntries copia as entradas. Nunca retorna nil.
func CloneEntries(entries []ScheduleEntry) []ScheduleEntry {
	out := make([]ScheduleEntry, len(entries))
	copy(out, entries)
	return out
}

// DailySchedule é o detalhe de um dia do cronograma
type DailySchedule struct {
	Date    string          `json:"date"`
	Entries []ScheduleEntry `json:"entries"`
}
