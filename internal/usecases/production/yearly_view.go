package production

import (
	"sync"

	"github.com/vfg2006/production-dashboard-api/internal/domain"
)

// YearlyView mantém a matriz mês × produto atualizada a cada novo cronograma
type YearlyView struct {
	mu          sync.RWMutex
	yearly      domain.YearlyProduction
	revision    string
	unsubscribe func()
}

func NewYearlyView(store *Store) *YearlyView {
	view := &YearlyView{}
	view.unsubscribe = store.subscribeCurrent(view.refresh)
	return view
}

func (v *YearlyView) refresh(snapshot domain.ScheduleSnapshot) {
	yearly := domain.AggregateYearly(snapshot.Entries)

	v.mu.Lock()
	v.yearly = yearly
	v.revision = snapshot.Revision
	v.mu.Unlock()
}

// Yearly retorna a última matriz calculada
func (v *YearlyView) Yearly() domain.YearlyProduction {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.yearly
}

// Revision é a revisão do cronograma usada no último cálculo
func (v *YearlyView) Revision() string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.revision
}

func (v *YearlyView) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
	}
}
