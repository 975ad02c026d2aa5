package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pet-locator/internal/app"
	"github.com/MKhiriev/go-pet-locator/internal/service"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
)

const (
	tickInterval   = 500 * time.Millisecond
	scopeClipboard = "clipboard"
)

type screen int

const (
	screenList screen = iota
	screenAdd
	screenDetail
)

// model is the single bubbletea model of the client. Every long operation
// runs in a tea.Cmd and reports through the status board, so the view only
// reads service state.
type model struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	now       func() time.Time
	copyText  func(string) error

	screen        screen
	records       []models.Record
	idx           int
	detailID      string
	form          recordForm
	spinner       spinner.Model
	loading       bool
	showBuildInfo bool
}

func newModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		now:       time.Now,
		copyText:  clipboard.WriteAll,
		records:   services.Records.Records(),
		spinner:   s,
		loading:   true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.cmdRefresh(), m.spinner.Tick, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.syncRecords(m.services.Records.Records())
		return m, tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case refreshDoneMsg:
		m.loading = false
		m.syncRecords(msg.records)
		return m, nil
	case createDoneMsg:
		if msg.err != nil {
			return m, nil
		}
		m.syncRecords(m.services.Records.Records())
		m.selectRecord(msg.record.ID)
		m.screen = screenList
		return m, nil
	case revealDoneMsg:
		m.syncRecords(m.services.Records.Records())
		return m, nil
	case copiedMsg:
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.screen == screenAdd {
		var cmd tea.Cmd
		m.form, _, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(k, keys.esc) || key.Matches(k, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.screen {
	case screenAdd:
		return m.updateAdd(k)
	case screenDetail:
		return m.updateDetail(k)
	default:
		return m.updateList(k)
	}
}

func (m model) updateList(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, keys.quit):
		return m, tea.Quit
	case key.Matches(k, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(k, keys.down):
		if m.idx < len(m.records)-1 {
			m.idx++
		}
	case key.Matches(k, keys.enter):
		if r, ok := m.current(); ok {
			m.detailID = r.ID
			m.screen = screenDetail
		}
	case key.Matches(k, keys.newItem):
		m.form = newRecordForm()
		m.screen = screenAdd
	case key.Matches(k, keys.sync):
		return m, m.cmdRefresh()
	case key.Matches(k, keys.version):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m model) updateAdd(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(k, keys.esc) {
		m.screen = screenList
		return m, nil
	}

	var (
		submit bool
		cmd    tea.Cmd
	)
	m.form, submit, cmd = m.form.update(k)
	if submit && !m.services.Records.Adding() {
		return m, m.cmdCreate(m.form.value())
	}
	return m, cmd
}

func (m model) updateDetail(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	records := m.services.Records

	switch {
	case key.Matches(k, keys.esc), key.Matches(k, keys.quit):
		records.Close(m.detailID)
		m.screen = screenList
	case key.Matches(k, keys.reveal), key.Matches(k, keys.enter):
		if !records.Revealing(m.detailID) {
			return m, m.cmdReveal(m.detailID)
		}
	case key.Matches(k, keys.copy):
		if coords, ok := records.Revealed(m.detailID); ok {
			return m, m.cmdCopy(coords)
		}
	}
	return m, nil
}

// syncRecords replaces the list keeping the cursor on the same record.
func (m *model) syncRecords(records []models.Record) {
	var selected string
	if r, ok := m.current(); ok {
		selected = r.ID
	}

	m.records = records
	if len(records) > 0 {
		m.loading = false
	}
	m.selectRecord(selected)
}

func (m *model) selectRecord(id string) {
	for i, r := range m.records {
		if r.ID == id {
			m.idx = i
			return
		}
	}
	if m.idx >= len(m.records) {
		m.idx = len(m.records) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m model) current() (models.Record, bool) {
	if m.idx < 0 || m.idx >= len(m.records) {
		return models.Record{}, false
	}
	return m.records[m.idx], true
}

func (m model) detailRecord() (models.Record, bool) {
	for _, r := range m.records {
		if r.ID == m.detailID {
			return r, true
		}
	}
	return models.Record{}, false
}

func (m model) cmdRefresh() tea.Cmd {
	ctx, records := m.ctx, m.services.Records
	return func() tea.Msg {
		list, _ := records.Refresh(ctx)
		return refreshDoneMsg{records: list}
	}
}

func (m model) cmdCreate(in models.NewRecord) tea.Cmd {
	ctx, records := m.ctx, m.services.Records
	return func() tea.Msg {
		record, err := records.Create(ctx, in)
		return createDoneMsg{record: record, err: err}
	}
}

func (m model) cmdReveal(id string) tea.Cmd {
	ctx, records := m.ctx, m.services.Records
	return func() tea.Msg {
		_, _ = records.Reveal(ctx, id)
		return revealDoneMsg{id: id}
	}
}

func (m model) cmdCopy(coords models.Coordinates) tea.Cmd {
	copyText, status := m.copyText, m.services.Status
	return func() tea.Msg {
		if err := copyText(coords.String()); err != nil {
			status.Set(scopeClipboard, models.StatusError, fmt.Sprintf(app.StatusCopyFailed, err.Error()))
		} else {
			status.Set(scopeClipboard, models.StatusSuccess, app.StatusCopied)
		}
		return copiedMsg{}
	}
}

func (m model) header() string {
	title := "PET LOCATOR"
	if address, ok := m.services.Session.CurrentIdentity(); ok {
		title += "  " + utils.ShortAddress(address)
	} else {
		title += "  (wallet not connected)"
	}
	if m.services.Records.Refreshing() {
		title += "  " + m.spinner.View()
	}
	return title
}

func (m model) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	banner := renderStatus(m.services.Status.Banner())

	switch m.screen {
	case screenAdd:
		status := renderStatus(m.services.Status.Get(service.ScopeCreate))
		hotKeys := "tab: next field  enter: submit  esc: back"
		if m.services.Records.Adding() {
			hotKeys = m.spinner.View() + " submitting..."
		}
		return renderPage(m.header()+"  NEW PET", m.form.View(), status, hotKeys)
	case screenDetail:
		r, ok := m.detailRecord()
		if !ok {
			return renderPage(m.header(), "Record not found", banner, "esc: back")
		}
		records := m.services.Records
		state := records.RevealState(r.ID)
		coords, held := records.Revealed(r.ID)

		status := renderStatus(m.services.Status.Get(service.RevealScope(r.ID)))
		if clip := m.services.Status.Get(scopeClipboard); clip.Visible() {
			status = renderStatus(clip)
		}
		return renderPage(m.header()+"  "+r.Name, renderDetail(r, state, coords, held), status, detailHotKeys(state, held))
	default:
		stats := m.services.Records.Stats(m.now())
		return renderPage(m.header(), renderList(m.records, m.idx, stats, m.loading), banner,
			"n: new  s: refresh  enter: open  v: version  q: quit")
	}
}
