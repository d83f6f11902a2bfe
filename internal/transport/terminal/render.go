package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"trivia-night/internal/content"
	"trivia-night/internal/domain"
)

type styles struct {
	r      *lipgloss.Renderer
	title  lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	winner lipgloss.Style
	code   lipgloss.Style
	border lipgloss.Style
	header lipgloss.Style
	host   lipgloss.Style
}

// newStyles binds styles to out so colour is dropped when out is not a terminal.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		r:      r,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).MarginTop(1),
		muted:  r.NewStyle().Foreground(lipgloss.Color("8")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("#EAB308")),
		good:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#16A34A")),
		bad:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC2626")),
		winner: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EAB308")),
		code:   r.NewStyle().Bold(true).Padding(0, 2).Border(lipgloss.RoundedBorder()),
		border: r.NewStyle().Foreground(lipgloss.Color("#7C3AED")),
		header: r.NewStyle().Bold(true).Padding(0, 1),
		host:   r.NewStyle().Bold(true).Padding(0, 1),
	}
}

func (u *UI) renderPacks(packs []domain.Pack) string {
	var b strings.Builder
	for i, p := range packs {
		name := u.styles.r.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Color)).Render(p.Title)
		fmt.Fprintf(&b, "%2d) %s %s\n", i+1, name, u.styles.muted.Render(fmt.Sprintf("[%s, %d questions]", p.ID, len(p.Questions))))
		fmt.Fprintf(&b, "    %s\n", p.Description)
	}
	return b.String()
}

func (u *UI) renderLobby(snap domain.Snapshot) string {
	var b strings.Builder
	if snap.Pack != nil {
		fmt.Fprintln(&b, u.styles.title.Render(snap.Pack.Title))
	}
	fmt.Fprintln(&b, "Room code")
	fmt.Fprintln(&b, u.styles.code.Render(snap.RoomCode))
	fmt.Fprintf(&b, "Players (%d):\n", len(snap.Players))
	for _, p := range snap.Players {
		tag := ""
		if p.IsHost {
			tag = u.styles.muted.Render(" (host)")
		}
		fmt.Fprintf(&b, "  %s %s%s\n", p.Avatar, p.Name, tag)
	}
	return b.String()
}

func (u *UI) renderQuestion(snap domain.Snapshot) string {
	q := snap.Question
	var b strings.Builder
	fmt.Fprintln(&b, u.styles.title.Render(fmt.Sprintf("Question %d of %d", q.Number, q.Total)))
	fmt.Fprintf(&b, "%s %s\n", q.Text, u.styles.muted.Render(fmt.Sprintf("(%d pts, %s)", q.Points, u.window)))
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "  %d) %s %s\n", i+1, u.optionMark(i), opt)
	}
	return b.String()
}

func (u *UI) optionMark(i int) string {
	style := content.OptionStyles[i%len(content.OptionStyles)]
	return u.styles.r.NewStyle().Foreground(lipgloss.Color(style.Color)).Render(style.Shape)
}

// renderReveal shows the host's outcome once the answer is locked in.
func (u *UI) renderReveal(snap domain.Snapshot, chosen int) string {
	q := snap.Question
	if q == nil || q.CorrectAnswerIndex == nil {
		return ""
	}
	correct := *q.CorrectAnswerIndex
	points := 0
	for _, s := range snap.Scores {
		if s.IsHost {
			points = s.LastAnswerPoints
		}
	}

	var b strings.Builder
	if chosen == correct {
		fmt.Fprintln(&b, u.styles.good.Render(fmt.Sprintf("Correct! +%d", points)))
	} else {
		fmt.Fprintln(&b, u.styles.bad.Render("Wrong!"))
	}
	if correct >= 0 && correct < len(q.Options) {
		fmt.Fprintf(&b, "Answer: %s %s\n", u.optionMark(correct), q.Options[correct])
	}
	return b.String()
}

// renderStandings draws the scores table. withRound adds the points earned in
// the last question.
func (u *UI) renderStandings(standings []domain.PlayerScore, withRound bool) string {
	headers := []string{"#", "Player", "Score"}
	if withRound {
		headers = append(headers, "Last")
	}
	rows := make([][]string, 0, len(standings))
	hostRow := -1
	for i, s := range standings {
		row := []string{strconv.Itoa(i + 1), s.Avatar + " " + s.Name, strconv.Itoa(s.Score)}
		if withRound {
			row = append(row, fmt.Sprintf("%+d", s.LastAnswerPoints))
		}
		if s.IsHost {
			hostRow = i
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(u.styles.border).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return u.styles.header
			case row == hostRow:
				return u.styles.host
			}
			return u.styles.r.NewStyle().Padding(0, 1)
		})
	return t.Render()
}
