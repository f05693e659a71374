package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/receipt-split/internal/format/table"
	"github.com/atomicstack/receipt-split/internal/ledger"
	"github.com/atomicstack/receipt-split/internal/theme"
	uistate "github.com/atomicstack/receipt-split/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/shopspring/decimal"
)

const (
	headerSeparator      = "→"
	appTitle             = "receipt split"
	defaultWidth         = 80
	peoplePanelMinWidth  = 24
	peoplePanelFraction  = 0.2
	addPersonPanelHeight = 4
	minPanelHeight       = 3
)

type styledLine struct {
	text  string
	style *lipgloss.Style
}

type layout struct {
	itemsWidth  int
	peopleWidth int
	panelHeight int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.syncViewports()
	lay := m.layout()
	focus := m.app.Focus

	sections := make([]string, 0, 5)
	sections = append(sections, renderLines(applyWidth([]styledLine{{text: m.header(), style: styles.Header}}, m.width)))

	items := m.renderItemsPanel(lay)
	people := m.renderPeoplePanel(lay)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, items, people))

	if f, ok := focus.(uistate.AddPerson); ok {
		sections = append(sections, m.renderAddPersonPanel(f, lay.itemsWidth+lay.peopleWidth))
	}

	sections = append(sections, renderLines(applyWidth([]styledLine{m.statusLine()}, m.width)))
	if m.showFooter {
		m.help.Width = m.width
		sections = append(sections, m.help.ShortHelpView(m.keys.bindingsFor(focus)))
	}
	return strings.Join(sections, "\n")
}

func (m *Model) header() string {
	return appTitle + headerSeparator + m.modeLabel()
}

func (m *Model) modeLabel() string {
	l := m.app.Ledger
	switch f := m.app.Focus.(type) {
	case uistate.People:
		return "people"
	case uistate.OwnerSelector:
		if item, ok := l.Item(f.Item); ok {
			return "owners" + headerSeparator + item.Description
		}
		return "owners"
	case uistate.RestOwnerSelector:
		return "rest owner"
	case uistate.AddPerson:
		return "add person"
	default:
		return "items"
	}
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	l := m.app.Ledger
	text := fmt.Sprintf("Total %s  Unassigned %s", money(l.Total()), money(l.Unassigned()))
	style := styles.Footer
	if l.Unassigned().IsPositive() {
		style = styles.Unassigned
	}
	return styledLine{text: text, style: style}
}

func (m *Model) layout() layout {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	peopleW := int(float64(width) * peoplePanelFraction)
	if peopleW < peoplePanelMinWidth {
		peopleW = peoplePanelMinWidth
	}
	if peopleW > width/2 {
		peopleW = width / 2
	}
	lay := layout{itemsWidth: width - peopleW, peopleWidth: peopleW}

	if m.height <= 0 {
		// natural height: every row visible
		rows := m.app.Ledger.Len()
		if n := m.app.Ledger.PeopleLen(); n > rows {
			rows = n
		}
		if rows < 1 {
			rows = 1
		}
		lay.panelHeight = rows + 3
		return lay
	}
	used := 2 // header + status
	if m.showFooter {
		used++
	}
	if _, ok := m.app.Focus.(uistate.AddPerson); ok {
		used += addPersonPanelHeight
	}
	lay.panelHeight = m.height - used
	if lay.panelHeight < minPanelHeight {
		lay.panelHeight = minPanelHeight
	}
	return lay
}

// visibleRows is the number of table rows that fit under a panel's border
// and column header.
func (lay layout) visibleRows() int {
	rows := lay.panelHeight - 3
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) syncViewports() {
	lay := m.layout()
	m.itemsOffset = uistate.ViewportOffset(m.itemCursor(), m.itemsOffset, m.app.Ledger.Len(), lay.visibleRows())
	m.peopleOffset = uistate.ViewportOffset(m.personCursor(), m.peopleOffset, m.app.Ledger.PeopleLen(), lay.visibleRows())
}

// itemCursor is the highlighted item row, or -1 when the item table has no
// cursor in the active mode.
func (m *Model) itemCursor() int {
	switch f := m.app.Focus.(type) {
	case uistate.Items:
		return f.Selected
	case uistate.OwnerSelector:
		return f.Item
	}
	return -1
}

func (m *Model) personCursor() int {
	switch f := m.app.Focus.(type) {
	case uistate.People:
		return f.Selected
	case uistate.OwnerSelector:
		return f.Cursor
	case uistate.RestOwnerSelector:
		return f.Cursor
	}
	return -1
}

func (m *Model) renderItemsPanel(lay layout) string {
	l := m.app.Ledger
	innerW := lay.itemsWidth - 2
	items := l.Items()
	focused := false
	if _, ok := m.app.Focus.(uistate.Items); ok {
		focused = true
	}
	if len(items) == 0 {
		return renderPanel("Items", []string{styles.Info.Render("(no items)")}, lay.itemsWidth, lay.panelHeight, focused)
	}

	textRows := make([][]string, 0, len(items)+1)
	textRows = append(textRows, []string{"Description", "Qty", "Price"})
	for _, item := range items {
		textRows = append(textRows, []string{item.Description, fmt.Sprintf("%d", item.Quantity), money(item.Price)})
	}
	// leave at least two fifths of the row for owner chips
	formatted := table.FormatWidth(textRows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignRight}, innerW*3/5)

	rows := make([]string, 0, lay.visibleRows()+1)
	rows = append(rows, styles.ColumnHeader.Render("  "+formatted[0]+"  Owners"))
	start, end := window(m.itemsOffset, len(items), lay.visibleRows())
	cursor := m.itemCursor()
	for idx := start; idx < end; idx++ {
		rows = append(rows, buildRow("", formatted[idx+1], ownerChips(l, items[idx]), idx == cursor, innerW))
	}
	return renderPanel("Items", rows, lay.itemsWidth, lay.panelHeight, focused)
}

func (m *Model) renderPeoplePanel(lay layout) string {
	l := m.app.Ledger
	innerW := lay.peopleWidth - 2
	title := "People"
	focused := true
	var pending *uistate.OwnerSelector
	switch f := m.app.Focus.(type) {
	case uistate.OwnerSelector:
		title = "Owners"
		pending = &f
	case uistate.RestOwnerSelector:
		title = "Rest to…"
	case uistate.People:
	default:
		focused = false
	}
	people := l.People()
	if len(people) == 0 {
		return renderPanel(title, []string{styles.Info.Render("(press a to add)")}, lay.peopleWidth, lay.panelHeight, focused)
	}

	totals := l.Totals()
	textRows := make([][]string, 0, len(people)+1)
	textRows = append(textRows, []string{"Name", "Total"})
	for i, name := range people {
		textRows = append(textRows, []string{displayName(name), money(totals[i])})
	}
	formatted := table.FormatWidth(textRows, []table.Alignment{table.AlignLeft, table.AlignRight}, innerW-4)

	rows := make([]string, 0, lay.visibleRows()+1)
	rows = append(rows, styles.ColumnHeader.Render("    "+formatted[0]))
	start, end := window(m.peopleOffset, len(people), lay.visibleRows())
	cursor := m.personCursor()
	for idx := start; idx < end; idx++ {
		marker := theme.PersonMarker(idx).Render("●")
		if pending != nil && pending.IsPending(idx) {
			marker = styles.Pending.Render("✓")
		}
		rows = append(rows, buildRow(marker, formatted[idx+1], "", idx == cursor, innerW))
	}
	return renderPanel(title, rows, lay.peopleWidth, lay.panelHeight, focused)
}

func (m *Model) renderAddPersonPanel(f uistate.AddPerson, width int) string {
	l := m.app.Ledger
	prompt := styles.InputPrompt.Render("Name: ")
	var input string
	if f.Buffer == "" {
		input = styles.InputPlaceholder.Render("type a name") + m.nameCursor.View()
	} else {
		input = styles.Input.Render(f.Buffer) + m.nameCursor.View()
	}
	hint := ""
	if matches := uistate.SimilarPeople(f.Buffer, l.People()); len(matches) > 0 {
		names := make([]string, 0, len(matches))
		for _, idx := range matches {
			name, _ := l.Person(idx)
			names = append(names, theme.PersonMarker(idx).Render(displayName(name)))
		}
		hint = styles.Info.Render("already added: ") + strings.Join(names, ", ")
	}
	return renderPanel("New person", []string{prompt + input, hint}, width, addPersonPanelHeight, true)
}

// buildRow renders one table row with a selection indicator. text is plain;
// marker and chips may already carry ANSI styling. The selected row's
// background spans the full inner width.
func buildRow(marker, text, chips string, selected bool, width int) string {
	indicatorStyle := styles.ItemIndicator
	lineStyle := styles.Item
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	row := indicatorStyle.Render("▌") + lineStyle.Render(" ")
	if marker != "" {
		row += marker + lineStyle.Render(" ")
	}
	row += lineStyle.Render(text)
	if chips != "" {
		row += lineStyle.Render("  ") + chips
	}
	if pad := width - lipgloss.Width(row); pad > 0 {
		row += lineStyle.Render(strings.Repeat(" ", pad))
	}
	return row
}

func ownerChips(l *ledger.Ledger, item ledger.Item) string {
	if len(item.Owners) == 0 {
		return ""
	}
	chips := make([]string, 0, len(item.Owners))
	for _, o := range item.Owners {
		name, _ := l.Person(o.Person)
		label := displayName(name)
		if o.Percentage < 1 {
			label = fmt.Sprintf("%s %.0f%%", label, o.Percentage*100)
		}
		chips = append(chips, theme.PersonChip(o.Person).Render(" "+label+" "))
	}
	return strings.Join(chips, " ")
}

// renderPanel draws a rounded box with title in the top border. The result
// has exactly height rows of exactly width columns.
func renderPanel(title string, rows []string, width, height int, focused bool) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	border := styles.PanelBorder
	if focused {
		border = styles.FocusedPanelBorder
	}
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	titleSeg := " " + title + " "
	dashes := innerW - 1 - lipgloss.Width(titleSeg)
	if dashes < 0 {
		titleSeg = ""
		dashes = innerW - 1
	}
	out := make([]string, 0, innerH+2)
	out = append(out, border.Render(tlc+hz)+styles.PanelTitle.Render(titleSeg)+border.Render(strings.Repeat(hz, dashes)+trc))
	for i := 0; i < innerH; i++ {
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		out = append(out, border.Render(vt)+fitWidth(row, innerW)+border.Render(vt))
	}
	out = append(out, border.Render(blc+strings.Repeat(hz, innerW)+brc))
	return strings.Join(out, "\n")
}

// fitWidth pads or truncates an ANSI string to exactly width columns.
func fitWidth(row string, width int) string {
	w := lipgloss.Width(row)
	if w > width {
		row = truncate.StringWithTail(row, uint(width-1), "…")
		w = lipgloss.Width(row)
	}
	if w < width {
		row += strings.Repeat(" ", width-w)
	}
	return row
}

// window returns the visible slice bounds for a list scrolled to offset.
func window(offset, total, visible int) (int, int) {
	if offset < 0 || total <= visible {
		offset = 0
	}
	if offset > total-visible && total > visible {
		offset = total - visible
	}
	end := offset + visible
	if end > total {
		end = total
	}
	return offset, end
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func displayName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewports()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{text: truncateText(line.text, width), style: line.style}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
