package game

import (
	"sort"

	"trivia-night/internal/domain"
)

// Snapshot renders the session into the read model used by screens and feeds.
// Slices are copied so callers may keep the result.
func (s Session) Snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Screen:    s.Screen(),
		Players:   append([]domain.Player{}, s.Players...),
		RoomCode:  s.RoomCode,
		Scores:    append([]domain.PlayerScore{}, s.Scores...),
		Standings: Standings(s.Scores),
	}
	if s.Host != nil {
		host := *s.Host
		snap.Host = &host
	}
	if s.Pack != nil {
		summary := s.Pack.Summary()
		snap.Pack = &summary
	}

	switch st := s.State.(type) {
	case QuestionActive:
		snap.Question = s.questionView(st.Index, st.Answered)
	case Leaderboard:
		snap.Question = s.questionView(st.Index, true)
	case GameOver:
		snap.Final = true
	}
	return snap
}

func (s Session) questionView(index int, answered bool) *domain.QuestionView {
	if s.Pack == nil || index < 0 || index >= len(s.Pack.Questions) {
		return nil
	}
	q := s.Pack.Questions[index]
	view := &domain.QuestionView{
		Text:     q.Text,
		Options:  append([]string{}, q.Options...),
		Points:   q.Points,
		Number:   index + 1,
		Total:    len(s.Pack.Questions),
		Answered: answered,
	}
	if answered {
		correct := q.CorrectAnswerIndex
		view.CorrectAnswerIndex = &correct
	}
	return view
}

// Standings orders scores by total descending, then by points earned in the
// last round, then by name.
func Standings(scores []domain.PlayerScore) []domain.PlayerScore {
	out := append([]domain.PlayerScore{}, scores...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].LastAnswerPoints != out[j].LastAnswerPoints {
			return out[i].LastAnswerPoints > out[j].LastAnswerPoints
		}
		return out[i].Name < out[j].Name
	})
	return out
}
