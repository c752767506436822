package production

import (
	"sync"

	"github.com/vfg2006/production-dashboard-api/internal/domain"
)

// Store guarda o último cronograma e avisa os inscritos a cada troca.
// Escritas concorrentes não são ordenadas: vale a última. As publicações são
// serializadas e sempre enviam o cronograma vigente, então o último aviso
// recebido pelos inscritos é o que está no cache. Inscritos não podem escrever
// no Store de dentro do callback.
type Store struct {
	mu          sync.RWMutex
	pubMu       sync.Mutex
	snapshot    domain.ScheduleSnapshot
	subscribers map[int]func(domain.ScheduleSnapshot)
	nextID      int
}

func NewStore() *Store {
	return &Store{
		snapshot:    domain.ScheduleSnapshot{Entries: []domain.ScheduleEntry{}},
		subscribers: make(map[int]func(domain.ScheduleSnapshot)),
	}
}

// Snapshot retorna uma cópia do cronograma atual
func (s *Store) Snapshot() domain.ScheduleSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copySnapshot(s.snapshot)
}

// Entries retorna uma cópia das entradas do cronograma atual
func (s *Store) Entries() []domain.ScheduleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CloneEntries(s.snapshot.Entries)
}

// Replace substitui o cronograma e publica a nova versão
func (s *Store) Replace(snapshot domain.ScheduleSnapshot) {
	s.mu.Lock()
	s.snapshot = copySnapshot(snapshot)
	s.mu.Unlock()

	s.publish()
}

// CompareAndReplace substitui o cronograma apenas se a revisão atual for a esperada
func (s *Store) CompareAndReplace(expectedRevision string, snapshot domain.ScheduleSnapshot) bool {
	s.mu.Lock()
	if s.snapshot.Revision != expectedRevision {
		s.mu.Unlock()
		return false
	}
	s.snapshot = copySnapshot(snapshot)
	s.mu.Unlock()

	s.publish()
	return true
}

// Subscribe registra fn para receber cada novo cronograma. A função retornada cancela a inscrição.
func (s *Store) Subscribe(fn func(domain.ScheduleSnapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// subscribeCurrent inscreve fn e já entrega o cronograma atual, sem deixar
// uma publicação passar entre as duas coisas.
func (s *Store) subscribeCurrent(fn func(domain.ScheduleSnapshot)) func() {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	unsubscribe := s.Subscribe(fn)
	fn(s.Snapshot())
	return unsubscribe
}

func (s *Store) publish() {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.RLock()
	snapshot := s.snapshot
	subscribers := make([]func(domain.ScheduleSnapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subscribers {
		fn(copySnapshot(snapshot))
	}
}

func copySnapshot(snapshot domain.ScheduleSnapshot) domain.ScheduleSnapshot {
	snapshot.Entries = domain.CloneEntries(snapshot.Entries)
	return snapshot
}
