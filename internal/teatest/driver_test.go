package teatest

import (
	"testing"
	"time"

	"github.com/alexanderramin/studyai/internal/schedule"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawViewModel renders whatever text it was last handed, escapes included.
type rawViewModel struct {
	view string
}

type setViewMsg string

func (m rawViewModel) Init() tea.Cmd { return nil }

func (m rawViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case setViewMsg:
		m.view = string(msg)
	case tea.KeyMsg:
		if msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m rawViewModel) View() string { return m.view }

func TestContains_IgnoresTerminalEscapes(t *testing.T) {
	cases := []struct {
		name string
		view string
		want string
	}{
		{"sgr color", "\x1b[38;5;99mStudyAI\x1b[0m", "StudyAI"},
		{"osc hyperlink", "\x1b]8;;https://example.com\x07notes.pdf\x1b]8;;\x07 ready", "notes.pdf ready"},
		{"tilde terminated", "\x1b[2~Upload", "Upload"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := New(t, rawViewModel{})
			d.Send(setViewMsg(tc.view))
			assert.True(t, d.Contains(tc.want))
			assert.False(t, d.Contains("\x1b"))
		})
	}
}

func TestSend_DetectsQuit(t *testing.T) {
	d := New(t, rawViewModel{})
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.Send(setViewMsg("ignored"))
	assert.Empty(t, d.View(), "no messages are delivered after quit")
}

func TestAdvance_RunsDueCallbacks(t *testing.T) {
	clock := schedule.NewManual(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	d := New(t, rawViewModel{}, WithClock(clock))

	fired := 0
	clock.After(time.Second, func() { fired++ })

	d.Advance(500*time.Millisecond, nil)
	assert.Zero(t, fired)
	d.Advance(500*time.Millisecond, setViewMsg("done"))
	require.Equal(t, 1, fired)
	assert.True(t, d.Contains("done"))
}
