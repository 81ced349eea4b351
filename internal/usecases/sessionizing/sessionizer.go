// Package sessionizing agrupa os eventos de um usuário em sessões por dispositivo
package sessionizing

import (
	"sort"
	"time"

	"github.com/vfg2006/adtech-pipeline/internal/domain"
)

// DefaultInactivityGap é o intervalo máximo entre eventos de uma mesma sessão
const DefaultInactivityGap = 30 * time.Minute

type Sessionizer struct {
	gap time.Duration
}

func New(gap time.Duration) *Sessionizer {
	if gap <= 0 {
		gap = DefaultInactivityGap
	}
	return &Sessionizer{gap: gap}
}

func (s *Sessionizer) Gap() time.Duration {
	return s.gap
}

// DeviceGroup são os eventos consecutivos de um usuário em um mesmo dispositivo
type DeviceGroup struct {
	Device string
	Events []domain.Event
}

// SortEvents ordena os eventos por usuário, dispositivo e horário.
// A ordenação é estável: empates mantêm a ordem original do arquivo.
func SortEvents(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		if a.Device != b.Device {
			return a.Device < b.Device
		}
		return a.Timestamp.Before(b.Timestamp)
	})
}

// GroupByDevice separa os eventos já ordenados de um usuário em grupos por dispositivo
func GroupByDevice(events []domain.Event) []DeviceGroup {
	groups := make([]DeviceGroup, 0)
	for i, event := range events {
		if i == 0 || event.Device != events[i-1].Device {
			groups = append(groups, DeviceGroup{Device: event.Device})
		}
		last := &groups[len(groups)-1]
		last.Events = append(last.Events, event)
	}
	return groups
}

// Tags devolve o número da sessão de cada evento.
// Os eventos devem estar em ordem crescente de horário; um intervalo maior
// que o gap abre uma nova sessão, intervalo igual ao gap não.
func (s *Sessionizer) Tags(events []domain.Event) []int {
	tags := make([]int, len(events))
	session := 0
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Sub(events[i-1].Timestamp) > s.gap {
			session++
		}
		tags[i] = session
	}
	return tags
}

// Split materializa as sessões de um grupo usuário/dispositivo
func (s *Sessionizer) Split(events []domain.Event) [][]domain.Event {
	if len(events) == 0 {
		return nil
	}

	tags := s.Tags(events)
	sessions := make([][]domain.Event, tags[len(tags)-1]+1)
	for i, tag := range tags {
		sessions[tag] = append(sessions[tag], events[i])
	}
	return sessions
}
