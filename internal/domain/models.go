package domain

// HostID is the fixed identifier given to the human-controlled participant.
const HostID = "host-user"

// Question is a multiple-choice question with exactly one correct option.
type Question struct {
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Points             int      `json:"points"`
}

// Pack is a themed, ordered collection of questions.
type Pack struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	Questions   []Question `json:"questions"`
}

// Player is a participant in a game session.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	IsHost bool   `json:"isHost"`
}

// PlayerScore tracks a participant's cumulative score and the points awarded
// for the most recent question.
type PlayerScore struct {
	Player
	Score            int `json:"score"`
	LastAnswerPoints int `json:"lastAnswerPoints"`
}

// BotSeed is the static identity a simulated player is built from.
type BotSeed struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Catalog is the read-only content a game is played with.
type Catalog struct {
	Packs []Pack    `json:"packs"`
	Bots  []BotSeed `json:"bots"`
}

// Pack looks up a pack by id.
func (c Catalog) Pack(id string) (Pack, bool) {
	for _, p := range c.Packs {
		if p.ID == id {
			return p, true
		}
	}
	return Pack{}, false
}

// Cue identifies a sound played on game events.
type Cue string

const (
	CueStart     Cue = "start"
	CueCorrect   Cue = "correct"
	CueIncorrect Cue = "incorrect"
	CueTick      Cue = "tick"
	CueGameOver  Cue = "game-over"
)

// Screen names the state a session is in.
type Screen string

const (
	ScreenProfile        Screen = "profile"
	ScreenPackSelection  Screen = "pack-selection"
	ScreenLobby          Screen = "lobby"
	ScreenQuestionActive Screen = "question-active"
	ScreenLeaderboard    Screen = "leaderboard"
	ScreenGameOver       Screen = "game-over"
)

// PackSummary describes a pack without its questions.
type PackSummary struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Color          string `json:"color"`
	TotalQuestions int    `json:"totalQuestions"`
}

// Summary strips the questions from a pack.
func (p Pack) Summary() PackSummary {
	return PackSummary{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Color:          p.Color,
		TotalQuestions: len(p.Questions),
	}
}

// QuestionView is the question as shown to players. CorrectAnswerIndex is nil
// until the round has been answered.
type QuestionView struct {
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	Points             int      `json:"points"`
	Number             int      `json:"number"`
	Total              int      `json:"total"`
	Answered           bool     `json:"answered"`
	CorrectAnswerIndex *int     `json:"correctAnswerIndex,omitempty"`
}

// Snapshot is the read model of a session handed to screens and feeds.
type Snapshot struct {
	GameID    string        `json:"gameId,omitempty"`
	Screen    Screen        `json:"screen"`
	Host      *Player       `json:"host,omitempty"`
	Players   []Player      `json:"players"`
	RoomCode  string        `json:"roomCode"`
	Pack      *PackSummary  `json:"pack,omitempty"`
	Question  *QuestionView `json:"question,omitempty"`
	Scores    []PlayerScore `json:"scores"`
	Standings []PlayerScore `json:"standings"`
	Final     bool          `json:"final"`
}
