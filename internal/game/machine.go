package game

import (
	"fmt"
	"time"

	"trivia-night/internal/domain"
)

// DefaultRevealDelay is how long the answered question stays on screen before
// the leaderboard is shown.
const DefaultRevealDelay = 2 * time.Second

// Machine holds the fixed inputs of the state machine: content, randomness and
// timing. Transition itself keeps no state between calls.
type Machine struct {
	catalog     domain.Catalog
	rnd         RandomSource
	revealDelay time.Duration
}

// Option customizes a Machine.
type Option func(*Machine)

// WithRevealDelay overrides DefaultRevealDelay.
func WithRevealDelay(d time.Duration) Option {
	return func(m *Machine) {
		if d >= 0 {
			m.revealDelay = d
		}
	}
}

// NewMachine validates the catalog and builds a machine around it.
func NewMachine(catalog domain.Catalog, rnd RandomSource, opts ...Option) (*Machine, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, fmt.Errorf("game: nil random source")
	}
	m := &Machine{
		catalog:     catalog,
		rnd:         rnd,
		revealDelay: DefaultRevealDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Catalog exposes the content the machine plays with.
func (m *Machine) Catalog() domain.Catalog {
	return m.catalog
}

// Transition applies ev to s. Events that do not apply to the current state
// return s unchanged with no commands. The input session is never mutated.
func (m *Machine) Transition(s Session, ev Event) (Session, []Command) {
	if _, ok := ev.(Reset); ok {
		return NewSession(), nil
	}

	switch st := s.State.(type) {
	case nil, Profile:
		if e, ok := ev.(SubmitProfile); ok {
			return m.submitProfile(s, e), nil
		}
	case PackSelection:
		if e, ok := ev.(SelectPack); ok {
			return m.selectPack(s, e), nil
		}
	case Lobby:
		if _, ok := ev.(StartGame); ok {
			s.State = QuestionActive{Index: 0}
			return s, []Command{PlayCue{Cue: domain.CueStart}}
		}
	case QuestionActive:
		switch e := ev.(type) {
		case SubmitAnswer:
			if !st.Answered {
				return m.submitAnswer(s, st, e)
			}
		case RevealElapsed:
			if st.Answered && e.Index == st.Index {
				s.State = Leaderboard{Index: st.Index}
				return s, nil
			}
		}
	case Leaderboard:
		if _, ok := ev.(Next); ok {
			if s.Pack != nil && st.Index < len(s.Pack.Questions)-1 {
				s.State = QuestionActive{Index: st.Index + 1}
				return s, nil
			}
			s.State = GameOver{}
			return s, []Command{PlayCue{Cue: domain.CueGameOver}}
		}
	case GameOver:
		if _, ok := ev.(Next); ok {
			return NewSession(), nil
		}
	}
	return s, nil
}

func (m *Machine) submitProfile(s Session, e SubmitProfile) Session {
	s.Host = &domain.Player{
		ID:     domain.HostID,
		Name:   e.Name,
		Avatar: e.Avatar,
		IsHost: true,
	}
	s.State = PackSelection{}
	return s
}

func (m *Machine) selectPack(s Session, e SelectPack) Session {
	if s.Host == nil {
		return s
	}
	pack, ok := m.catalog.Pack(e.PackID)
	if !ok {
		return s
	}

	players := make([]domain.Player, 0, 1+len(m.catalog.Bots))
	players = append(players, *s.Host)
	players = append(players, NewBots(m.catalog.Bots)...)

	scores := make([]domain.PlayerScore, len(players))
	for i, p := range players {
		scores[i] = domain.PlayerScore{Player: p}
	}

	s.Pack = &pack
	s.RoomCode = NewRoomCode(m.rnd)
	s.Players = players
	s.Scores = scores
	s.State = Lobby{}
	return s
}

func (m *Machine) submitAnswer(s Session, st QuestionActive, e SubmitAnswer) (Session, []Command) {
	if s.Pack == nil || st.Index < 0 || st.Index >= len(s.Pack.Questions) {
		return s, nil
	}
	question := s.Pack.Questions[st.Index]
	hostCorrect := e.AnswerIndex == question.CorrectAnswerIndex

	scores := make([]domain.PlayerScore, len(s.Scores))
	for i, ps := range s.Scores {
		points := 0
		if ps.IsHost {
			points = Award(question.Points, e.TimeTaken, hostCorrect)
		} else {
			points = SimulateBot(m.rnd, question.Points).Points
		}
		ps.Score += points
		ps.LastAnswerPoints = points
		scores[i] = ps
	}

	s.Scores = scores
	s.State = QuestionActive{Index: st.Index, Answered: true}

	cue := domain.CueIncorrect
	if hostCorrect {
		cue = domain.CueCorrect
	}
	return s, []Command{
		PlayCue{Cue: cue},
		ScheduleReveal{After: m.revealDelay, Index: st.Index},
	}
}
