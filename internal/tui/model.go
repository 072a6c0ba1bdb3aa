package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/sky-xo/treediff/internal/config"
	"github.com/sky-xo/treediff/internal/difftree"
	"github.com/sky-xo/treediff/internal/document"
)

// Options configures the viewer.
type Options struct {
	LeftPath  string
	RightPath string
	Format    document.Format
	Watch     bool
	Config    *config.Config
}

// Model is the TUI state.
type Model struct {
	opts Options

	comparison difftree.Comparison
	collapsed  difftree.CollapseSet
	rows       []renderedRow
	flat       []difftree.FlatRow
	nodeByPath map[string]*difftree.DiffNode

	cursor   int
	width    int
	height   int
	viewport viewport.Model

	leftMod  time.Time
	rightMod time.Time

	searching bool
	query     string
	matches   []int

	showHelp   bool
	showDetail bool
	statusMsg  string
	err        error
}

// NewModel creates a new viewer model.
func NewModel(opts Options) Model {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	return Model{
		opts:      opts,
		collapsed: difftree.NewCollapseSet(),
		viewport:  viewport.New(0, 0),
	}
}

// Run starts the viewer and blocks until the user quits.
func Run(opts Options) error {
	if opts.Config != nil {
		applyColors(opts.Config.Colors)
	}
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadFilesCmd(m.opts.LeftPath, m.opts.RightPath)}
	if m.opts.Watch {
		cmds = append(cmds, tickCmd(m.watchInterval()))
	}
	return tea.Batch(cmds...)
}

func (m Model) watchInterval() time.Duration {
	return time.Duration(m.opts.Config.WatchIntervalMs) * time.Millisecond
}

// formatFor resolves the parse format for one side: explicit flag first,
// then the file extension, then the configured default.
func (m Model) formatFor(path string) document.Format {
	if m.opts.Format != document.FormatAuto {
		return m.opts.Format
	}
	if f := document.DetectFormat(path); f != document.FormatAuto {
		return f
	}
	return document.ParseFormat(m.opts.Config.DefaultFormat)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg), nil
		}
		return m.updateKeys(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportDimensions()
		m.updateContent()

	case tickMsg:
		cmds = append(cmds,
			tickCmd(m.watchInterval()),
			checkFilesCmd(m.opts.LeftPath, m.opts.RightPath, m.leftMod, m.rightMod),
		)

	case loadedMsg:
		m.leftMod = msg.leftMod
		m.rightMod = msg.rightMod
		m.recompare(msg.leftText, msg.rightText)

	case errMsg:
		m.err = msg
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "esc":
		m.showHelp = false
		m.showDetail = false
		m.statusMsg = ""
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "g":
		m.cursor = 0
		m.viewport.GotoTop()
		m.updateContent()
	case "G":
		if n := len(m.rows); n > 0 {
			m.cursor = n - 1
		}
		m.viewport.GotoBottom()
		m.updateContent()
	case " ", "enter":
		m.toggleAtCursor()
	case "c":
		m.collapsed.CollapseAll(m.comparison.Root)
		m.cursor = 0
		m.rebuildRows()
		m.viewport.GotoTop()
	case "e":
		m.collapsed.ExpandAll()
		m.rebuildRows()
	case "d":
		m.showDetail = !m.showDetail
		m.updateViewportDimensions()
		m.updateContent()
	case "y":
		m.copyCursorPath()
	case "/":
		m.searching = true
		m.query = ""
	case "n":
		m.jumpToMatch(false)
	case "N":
		m.jumpToMatch(true)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEscape:
		m.searching = false
		m.query = ""
		m.matches = nil
	case tea.KeyEnter:
		m.searching = false
		m.matches = searchMatches(m.rows, m.query)
		m.jumpToMatch(false)
	case tea.KeyBackspace:
		if len(m.query) > 0 {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.query += string(msg.Runes)
	}
	return m
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionRelease {
		return
	}

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.viewport.LineUp(3)
			m.updateContent()
			return
		case tea.MouseButtonWheelDown:
			m.viewport.LineDown(3)
			m.updateContent()
			return
		}
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return
	}

	contentY := msg.Y - 1 // top border
	if contentY < 0 || contentY >= m.viewport.Height {
		return
	}

	if m.inMinimap(msg.X) {
		ratio := minimapClickRatio(contentY, m.viewport.Height)
		offset := difftree.ClickOffset(ratio, float64(len(m.rows)), float64(m.viewport.Height))
		m.viewport.SetYOffset(int(offset))
		m.updateContent()
		return
	}

	// Click on a row selects it; a second click on the selected row
	// toggles collapse.
	row := m.viewport.YOffset + contentY
	if row >= 0 && row < len(m.rows) {
		if row == m.cursor {
			m.toggleAtCursor()
		} else {
			m.cursor = row
			m.updateContent()
		}
	}
}

// inMinimap reports whether a click column lands in the minimap gutter.
func (m Model) inMinimap(x int) bool {
	return x >= m.width-1-minimapWidth && x < m.width-1
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.rows) {
		return
	}
	m.cursor = next
	if m.showDetail {
		m.updateViewportDimensions()
	}
	m.ensureCursorVisible()
	m.updateContent()
}

func (m *Model) ensureCursorVisible() {
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m *Model) toggleAtCursor() {
	if m.cursor >= len(m.rows) {
		return
	}
	path := m.rows[m.cursor].row.Path
	node := m.nodeByPath[path]
	if node == nil || !node.Collapsible {
		return
	}
	m.collapsed.Toggle(path)
	m.rebuildRows()

	// Keep the cursor on the toggled node.
	for i, r := range m.rows {
		if r.row.Path == path && r.row.Kind == difftree.RowNode {
			m.cursor = i
			break
		}
	}
	m.ensureCursorVisible()
	m.updateContent()
}

func (m *Model) copyCursorPath() {
	if m.cursor >= len(m.rows) {
		return
	}
	path := displayPath(m.rows[m.cursor].row.Path)
	if err := copyToClipboard(path); err != nil {
		m.statusMsg = "clipboard unavailable"
		return
	}
	m.statusMsg = "copied " + path
}

func (m *Model) jumpToMatch(backwards bool) {
	if m.matches == nil {
		m.matches = searchMatches(m.rows, m.query)
	}
	var idx int
	var ok bool
	if backwards {
		idx, ok = prevMatch(m.matches, m.cursor)
	} else {
		idx, ok = nextMatch(m.matches, m.cursor+1)
	}
	if !ok {
		m.statusMsg = "no match"
		return
	}
	m.cursor = idx
	m.ensureCursorVisible()
	m.updateContent()
}

// recompare parses both sides and rebuilds the diff from scratch. The
// previous tree is discarded wholesale; only the collapse set survives.
func (m *Model) recompare(leftText, rightText string) {
	left := document.Parse(leftText, m.formatFor(m.opts.LeftPath))
	right := document.Parse(rightText, m.formatFor(m.opts.RightPath))
	m.comparison = difftree.Evaluate(left, right)

	m.nodeByPath = make(map[string]*difftree.DiffNode)
	var index func(n *difftree.DiffNode)
	index = func(n *difftree.DiffNode) {
		m.nodeByPath[n.Path] = n
		for _, c := range n.Children {
			index(c)
		}
	}
	if m.comparison.Root != nil {
		index(m.comparison.Root)
	}

	m.rebuildRows()
	if m.cursor >= len(m.rows) {
		m.cursor = 0
		m.viewport.GotoTop()
	}
	m.updateContent()
}

func (m *Model) rebuildRows() {
	m.rows = renderRows(m.comparison.Root, m.collapsed)
	m.flat = difftree.Flatten(m.comparison.Root, m.collapsed)
	m.matches = nil
	m.updateContent()
}

func (m *Model) updateViewportDimensions() {
	vpWidth, vpHeight := m.layout()
	m.viewport.Width = vpWidth
	m.viewport.Height = vpHeight
}

// layout computes the viewer dimensions: full width minus borders and the
// minimap gutter, full height minus the status bar, borders and the detail
// pane when open.
func (m Model) layout() (vpWidth, vpHeight int) {
	vpWidth = m.width - 2 - minimapWidth
	if vpWidth < 10 {
		vpWidth = 10
	}
	vpHeight = m.height - 3 // status bar + borders
	if m.showDetail {
		vpHeight -= m.detailHeight()
	}
	if vpHeight < 3 {
		vpHeight = 3
	}
	return
}

func (m Model) detailHeight() int {
	detail := renderDetail(m.cursorNode())
	if detail == "" {
		return 0
	}
	lines := strings.Count(detail, "\n") + 1
	if lines > 8 {
		lines = 8
	}
	return lines + 2 // borders
}

func (m Model) cursorNode() *difftree.DiffNode {
	if m.cursor >= len(m.rows) {
		return nil
	}
	return m.nodeByPath[m.rows[m.cursor].row.Path]
}

// updateContent reassembles the viewport lines. Styling happens here so the
// row computation stays pure and testable.
func (m *Model) updateContent() {
	switch m.comparison.Outcome {
	case difftree.OutcomeInvalid:
		m.viewport.SetContent(m.renderInvalid())
		return
	case difftree.OutcomeEmpty:
		m.viewport.SetContent(mutedStyle.Render("both documents are empty"))
		return
	}

	colWidth := (m.viewport.Width - 5) / 2
	if colWidth < 4 {
		colWidth = 4
	}
	sep := mutedStyle.Render(" │ ")

	lines := make([]string, len(m.rows))
	for i, r := range m.rows {
		if i == m.cursor {
			// The cursor row trades diff colors for a background so it
			// stays visible regardless of row type.
			body := fitCell(r.left, colWidth) + " │ " + fitCell(r.right, colWidth)
			lines[i] = keyStyle.Render("▸ ") + cursorBgStyle.Render(body)
			continue
		}

		style := diffStyle(r.row.Type)
		left := r.left
		right := r.right
		if r.row.Type != difftree.DiffUnchanged {
			if left != "" {
				left = style.Render(left)
			}
			if right != "" {
				right = style.Render(right)
			}
		}
		lines[i] = "  " + fitCell(left, colWidth) + sep + fitCell(right, colWidth)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m Model) renderInvalid() string {
	lines := []string{removedStyle.Render("no diff available")}
	if m.comparison.LeftErr != "" {
		lines = append(lines, "", "left: "+m.comparison.LeftErr)
	}
	if m.comparison.RightErr != "" {
		lines = append(lines, "", "right: "+m.comparison.RightErr)
	}
	return strings.Join(lines, "\n")
}

// fitCell pads or truncates a styled cell to an exact visual width.
func fitCell(s string, width int) string {
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.showHelp {
		help := renderPanelWithTitle("help", renderHelp(m.width-4), m.width, m.height-1, focusedBorderColor)
		return lipgloss.JoinVertical(lipgloss.Left, help, m.statusBar())
	}

	title := fmt.Sprintf("%s ⇄ %s", m.opts.LeftPath, m.opts.RightPath)
	minimap := renderMinimap(m.flat, m.viewport.Height, m.viewport.YOffset, m.viewport.Height)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), strings.Join(minimap, "\n"))
	panel := renderPanelWithTitle(title, body, m.width, m.viewport.Height+2, focusedBorderColor)

	sections := []string{panel}
	if m.showDetail {
		if detail := renderDetail(m.cursorNode()); detail != "" {
			sections = append(sections,
				renderPanelWithTitle("detail", detail, m.width, m.detailHeight(), unfocusedBorderColor))
		}
	}
	sections = append(sections, m.statusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) statusBar() string {
	if m.searching {
		return searchStyle.Render("/" + m.query + "▌")
	}
	if m.err != nil {
		return removedStyle.Render("error: " + m.err.Error())
	}

	var parts []string
	s := m.comparison.Summary
	switch m.comparison.Outcome {
	case difftree.OutcomeIdentical:
		parts = append(parts, "identical")
	case difftree.OutcomeDifferent:
		parts = append(parts, fmt.Sprintf("%s %s %s",
			addedStyle.Render(fmt.Sprintf("+%d", s.Added)),
			removedStyle.Render(fmt.Sprintf("-%d", s.Removed)),
			changedStyle.Render(fmt.Sprintf("~%d", s.Changed))))
	}
	if m.cursor < len(m.rows) {
		parts = append(parts, keyStyle.Render(displayPath(m.rows[m.cursor].row.Path)))
	}
	if m.opts.Watch {
		parts = append(parts, "watching")
	}
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	parts = append(parts, "?: help | q: quit")

	return statusBarStyle.Render(strings.Join(parts, "  •  "))
}

// renderPanelWithTitle renders a panel with the title embedded in the top
// border like: ╭─ Title ────────╮
func renderPanelWithTitle(title, content string, width, height int, borderColor lipgloss.Color) string {
	topLeft := "╭"
	topRight := "╮"
	bottomLeft := "╰"
	bottomRight := "╯"
	horizontal := "─"
	vertical := "│"

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(borderColor).Bold(true)

	contentWidth := width - 2
	if contentWidth < 0 {
		contentWidth = 0
	}

	var topBorder string
	if title == "" {
		topBorder = borderStyle.Render(topLeft + strings.Repeat(horizontal, contentWidth) + topRight)
	} else {
		titleText := " " + title + " "
		titleLen := len([]rune(titleText))

		remainingWidth := contentWidth - titleLen
		leftDashes := 1
		rightDashes := remainingWidth - leftDashes
		if rightDashes < 0 {
			rightDashes = 0
		}

		topBorder = borderStyle.Render(topLeft+strings.Repeat(horizontal, leftDashes)) +
			titleStyle.Render(titleText) +
			borderStyle.Render(strings.Repeat(horizontal, rightDashes)+topRight)
	}

	bottomBorder := borderStyle.Render(bottomLeft + strings.Repeat(horizontal, contentWidth) + bottomRight)

	lines := strings.Split(content, "\n")
	contentLines := height - 2
	if contentLines < 0 {
		contentLines = 0
	}

	var middleLines []string
	for i := 0; i < contentLines; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		line = fitCell(line, contentWidth)
		middleLines = append(middleLines, borderStyle.Render(vertical)+line+borderStyle.Render(vertical))
	}

	allLines := []string{topBorder}
	allLines = append(allLines, middleLines...)
	allLines = append(allLines, bottomBorder)

	return strings.Join(allLines, "\n")
}
