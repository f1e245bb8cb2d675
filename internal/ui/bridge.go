package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/entity"
	"github.com/five82/shelf/internal/state"
)

type filmsMsg struct{ snap state.Snapshot[entity.Film] }

type peopleMsg struct{ snap state.Snapshot[entity.Person] }

// bridge forwards store publications into the Bubble Tea loop.
//
// Listeners run on the goroutine that mutated the store, which is the update
// loop itself, so they must never block on the program. Each store gets a
// one-slot mailbox that keeps only the newest snapshot; a waiting command
// drains it and turns it into a message.
type bridge struct {
	films  chan state.Snapshot[entity.Film]
	people chan state.Snapshot[entity.Person]
	subs   []*state.Subscription

	done      chan struct{}
	closeOnce sync.Once
}

func newBridge(films *state.FilmStore, people *state.PersonStore) *bridge {
	b := &bridge{
		films:  make(chan state.Snapshot[entity.Film], 1),
		people: make(chan state.Snapshot[entity.Person], 1),
		done:   make(chan struct{}),
	}
	if films != nil {
		b.subs = append(b.subs, films.Subscribe(func(s state.Snapshot[entity.Film]) { offer(b.films, s) }))
	}
	if people != nil {
		b.subs = append(b.subs, people.Subscribe(func(s state.Snapshot[entity.Person]) { offer(b.people, s) }))
	}
	return b
}

// offer replaces whatever is waiting in ch with v.
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (b *bridge) waitFilms() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-b.films:
			return filmsMsg{snap: s}
		case <-b.done:
			return nil
		}
	}
}

func (b *bridge) waitPeople() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-b.people:
			return peopleMsg{snap: s}
		case <-b.done:
			return nil
		}
	}
}

// close unsubscribes from both stores and releases pending waits. It is
// safe to call more than once.
func (b *bridge) close() {
	b.closeOnce.Do(func() {
		for _, sub := range b.subs {
			sub.Unsubscribe()
		}
		close(b.done)
	})
}
