package tui

import (
	"context"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vango-dev/accordion/pkg/accordion"
	"github.com/vango-dev/accordion/pkg/pref"
	"github.com/vango-dev/accordion/pkg/vdom"
)

// DefaultWidth is the terminal width assumed before the first resize.
const DefaultWidth = 80

// Config configures the terminal accordion.
type Config struct {
	// Title is shown above the items.
	Title string

	// Options are passed to the group. Breakpoints are in columns.
	Options []accordion.Option

	// ReducedMotion disables height animation; toggled with "m".
	ReducedMotion bool

	// FrameInterval is the animation frame period (default: 16ms).
	FrameInterval time.Duration

	// Clock returns the current time (default: time.Now).
	Clock func() time.Time
}

type frameMsg time.Time

// Model is a bubbletea model rendering one accordion group.
type Model struct {
	config Config
	host   *termHost
	group  *accordion.Group

	titles []string
	bodies map[string][]string // wrapper id -> paragraphs

	cursor  int
	width   int
	height  int
	ticking bool
}

// New binds the accordion inside container to a terminal host.
func New(container *vdom.VNode, config Config) *Model {
	if config.FrameInterval <= 0 {
		config.FrameInterval = 16 * time.Millisecond
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	m := &Model{
		config: config,
		width:  DefaultWidth,
		bodies: make(map[string][]string),
	}
	m.host = &termHost{
		width:     DefaultWidth,
		motion:    pref.ReducedMotion(config.ReducedMotion),
		now:       config.Clock,
		listeners: make(map[int]func()),
		measure:   m.measure,
	}
	m.group = accordion.New(container, m.host, config.Options...)

	for _, it := range m.group.Items() {
		m.titles = append(m.titles, itemTitle(it, m.group.Options().Classes.Icon))
		if it.Wrapper() != nil {
			m.bodies[it.ID()] = paragraphs(it.Content())
		}
	}
	return m
}

// Run starts an interactive program until the user quits or ctx is done.
func Run(ctx context.Context, m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// Group returns the underlying group.
func (m *Model) Group() *accordion.Group { return m.group }

// Cursor returns the index of the selected item.
func (m *Model) Cursor() int { return m.cursor }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.host.resize(float64(msg.Width))
		return m, nil

	case frameMsg:
		m.ticking = false
		m.host.runFrames(time.Time(msg))
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.group.Len()-1 {
				m.cursor++
			}
		case "enter", " ":
			// Controls are inert while the breakpoints disable the group.
			if it := m.group.Item(m.cursor); it != nil && !it.Disabled() {
				m.group.Toggle(it)
			}
		case "a":
			m.group.OpenAll()
		case "c":
			m.group.CloseAll()
		case "m":
			m.host.motion.Set(!m.host.motion.Get())
		}
		return m, m.tick()
	}
	return m, nil
}

// tick schedules the next frame while transitions are pending.
func (m *Model) tick() tea.Cmd {
	if m.ticking || len(m.host.frames) == 0 {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.config.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) View() string {
	var b strings.Builder

	if m.config.Title != "" {
		b.WriteString(styleTitle.Render(m.config.Title))
		b.WriteString("\n")
	}

	for i, it := range m.group.Items() {
		b.WriteString(m.renderHead(i, it))
		b.WriteString("\n")

		if it.Wrapper() == nil {
			continue
		}
		lines := m.bodyLines(it.ID())
		visible := int(math.Round(it.RenderedHeight(float64(len(lines)))))
		if visible > len(lines) {
			visible = len(lines)
		}
		if visible > 0 {
			b.WriteString(styleBody.Render(strings.Join(lines[:visible], "\n")))
			b.WriteString("\n")
		}
	}

	help := "↑/↓ move • enter toggle • a open all • c close all • m motion • q quit"
	if m.host.PrefersReducedMotion() {
		help += " • reduced motion"
	}
	b.WriteString(styleHelp.Render(help))
	return b.String()
}

func (m *Model) renderHead(i int, it *accordion.Item) string {
	icon := "▸"
	if it.Expanded() {
		icon = "▾"
	}
	line := icon + " " + m.titles[i]

	switch {
	case it.Disabled():
		return styleDisabled.Render("  " + m.titles[i])
	case i == m.cursor:
		return styleSelected.Render(line)
	default:
		return styleHead.Render(line)
	}
}

// measure returns the number of lines a wrapper's body occupies at the
// current width.
func (m *Model) measure(wrapper *vdom.VNode) float64 {
	return float64(len(m.bodyLines(wrapper.GetString("id"))))
}

func (m *Model) bodyLines(id string) []string {
	paras := m.bodies[id]
	if len(paras) == 0 {
		return nil
	}
	width := m.width - bodyIndent
	if width < 10 {
		width = 10
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(strings.Join(paras, "\n"))
	return strings.Split(wrapped, "\n")
}

// itemTitle returns the control's text, leaving out the icon.
func itemTitle(it *accordion.Item, iconClass string) string {
	node := it.Control()
	if node == nil {
		node = it.Head()
	}
	if node == nil {
		return "Item"
	}

	var text []string
	vdom.Walk(node, func(n, _ *vdom.VNode) bool {
		if n.HasClass(iconClass) {
			return false
		}
		if n.Kind == vdom.KindText {
			text = append(text, n.Text)
		}
		return true
	})
	if title := strings.Join(strings.Fields(strings.Join(text, " ")), " "); title != "" {
		return title
	}
	return "Item"
}

// paragraphs returns the non-empty text blocks of content, one per child.
func paragraphs(content *vdom.VNode) []string {
	var out []string
	add := func(s string) {
		if s = strings.Join(strings.Fields(s), " "); s != "" {
			out = append(out, s)
		}
	}
	for _, child := range content.Children {
		if child == nil {
			continue
		}
		if child.Kind == vdom.KindText {
			add(child.Text)
		} else {
			add(vdom.TextContent(child))
		}
	}
	if len(out) == 0 {
		add(vdom.TextContent(content))
	}
	return out
}
