package game

import (
	"time"

	"trivia-night/internal/domain"
)

// State is one node of the game state machine. Each variant carries only the
// data valid while it is current.
type State interface {
	Screen() domain.Screen
	isState()
}

type Profile struct{}

type PackSelection struct{}

type Lobby struct{}

// QuestionActive is a live question. Answered is set once scores for the round
// have been applied and the reveal is pending.
type QuestionActive struct {
	Index    int
	Answered bool
}

type Leaderboard struct {
	Index int
}

type GameOver struct{}

func (Profile) Screen() domain.Screen        { return domain.ScreenProfile }
func (PackSelection) Screen() domain.Screen  { return domain.ScreenPackSelection }
func (Lobby) Screen() domain.Screen          { return domain.ScreenLobby }
func (QuestionActive) Screen() domain.Screen { return domain.ScreenQuestionActive }
func (Leaderboard) Screen() domain.Screen    { return domain.ScreenLeaderboard }
func (GameOver) Screen() domain.Screen       { return domain.ScreenGameOver }

func (Profile) isState()        {}
func (PackSelection) isState()  {}
func (Lobby) isState()          {}
func (QuestionActive) isState() {}
func (Leaderboard) isState()    {}
func (GameOver) isState()       {}

// Event is an input to the state machine.
type Event interface {
	isEvent()
}

// SubmitProfile carries the host's profile form.
type SubmitProfile struct {
	Name   string
	Avatar string
}

// SelectPack chooses the pack to play.
type SelectPack struct {
	PackID string
}

type StartGame struct{}

// SubmitAnswer is the host's answer. A negative AnswerIndex means no answer.
type SubmitAnswer struct {
	AnswerIndex int
	TimeTaken   float64
}

// RevealElapsed fires once the reveal delay for question Index has passed.
type RevealElapsed struct {
	Index int
}

type Next struct{}

// Reset abandons the current game and returns to the profile screen.
type Reset struct{}

func (SubmitProfile) isEvent() {}
func (SelectPack) isEvent()    {}
func (StartGame) isEvent()     {}
func (SubmitAnswer) isEvent()  {}
func (RevealElapsed) isEvent() {}
func (Next) isEvent()          {}
func (Reset) isEvent()         {}

// Command is a side effect requested by a transition, executed by the caller.
type Command interface {
	isCommand()
}

// ScheduleReveal asks for RevealElapsed{Index} to be delivered after After.
type ScheduleReveal struct {
	After time.Duration
	Index int
}

// PlayCue asks for a sound to be played without waiting for it.
type PlayCue struct {
	Cue domain.Cue
}

func (ScheduleReveal) isCommand() {}
func (PlayCue) isCommand()        {}

// Session is everything that lives for one game.
type Session struct {
	State    State
	Host     *domain.Player
	Players  []domain.Player
	RoomCode string
	Pack     *domain.Pack
	Scores   []domain.PlayerScore
}

// NewSession returns the empty initial session.
func NewSession() Session {
	return Session{
		State:   Profile{},
		Players: []domain.Player{},
		Scores:  []domain.PlayerScore{},
	}
}

// Screen reports the current screen.
func (s Session) Screen() domain.Screen {
	if s.State == nil {
		return domain.ScreenProfile
	}
	return s.State.Screen()
}

// QuestionIndex is the 0-based index of the current round, or 0 outside one.
func (s Session) QuestionIndex() int {
	switch st := s.State.(type) {
	case QuestionActive:
		return st.Index
	case Leaderboard:
		return st.Index
	}
	return 0
}
