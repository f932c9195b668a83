package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/logmind/moodlog/internal/service"
	"github.com/logmind/moodlog/internal/stats"
	"github.com/logmind/moodlog/internal/viewstate"
	"github.com/logmind/moodlog/models"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenHome screen = iota
	screenDetail
	screenWrite
	screenStats
	screenSettings
	screenProfile
)

type appModel struct {
	ctx      context.Context
	services *service.Services

	homeState     *viewstate.Home
	writeState    *viewstate.Write
	statsState    *viewstate.Statistics
	settingsState *viewstate.Settings
	profileState  *viewstate.Profile

	currentScreen screen

	home        homeModel
	detail      detailModel
	write       writeModel
	statsScreen statsModel
	settings    settingsModel
	profile     profileModel

	err            error
	showError      bool
	errorOverlay   errorOverlayModel
	showConfirm    bool
	confirm        confirmModel
	pendingDelete  int64
	pendingSignOut bool
	showBuildInfo  bool
	buildInfo      models.AppBuildInfo
	reminder       string
}

func newAppModel(
	ctx context.Context,
	services *service.Services,
	home *viewstate.Home,
	write *viewstate.Write,
	statistics *viewstate.Statistics,
	settings *viewstate.Settings,
	profile *viewstate.Profile,
	buildInfo models.AppBuildInfo,
) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		homeState:     home,
		writeState:    write,
		statsState:    statistics,
		settingsState: settings,
		profileState:  profile,
		currentScreen: screenHome,
		home:          newHomeModel(),
		write:         newWriteModel(),
		profile:       newProfileModel(),
		buildInfo:     buildInfo,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdWaitHome(), m.cmdWaitProfile(), m.home.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.reminder = ""
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingSignOut {
					m.pendingSignOut = false
					m.profile.submitting = true
					return m, m.cmdSignOut()
				}
				if m.pendingDelete == 0 {
					return m, nil
				}
				id := m.pendingDelete
				m.pendingDelete = 0
				return m, m.cmdDeleteEntry(id)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
				m.pendingSignOut = false
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case spinner.TickMsg:
		if !m.home.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.home.spinner, cmd = m.home.spinner.Update(msg)
		return m, cmd
	case homeUpdatedMsg:
		m.home.state = msg.state
		m.home.loading = false
		if m.home.idx >= len(m.home.state.DayJournals) {
			m.home.idx = len(m.home.state.DayJournals) - 1
		}
		if m.home.idx < 0 {
			m.home.idx = 0
		}
		return m, m.cmdWaitHome()
	case profileUpdatedMsg:
		m.profile.state = msg.state
		m.profile.submitting = false
		return m, m.cmdWaitProfile()
	case saveDoneMsg:
		m.write.saving = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenHome
		m.home.status = "Entry saved."
		if msg.outcome.Message != "" {
			m.home.status = msg.outcome.Message
		}
		return m, cmdClearStatus()
	case entryDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenHome
		m.home.status = "Entry deleted."
		return m, cmdClearStatus()
	case tagsLoadedMsg:
		m.write.loadingTags = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.write.tags = msg.tags
		return m, nil
	case tagCreatedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.write.tags = append(m.write.tags, msg.tag)
		m.write.selected[msg.tag.ID] = true
		m.write.addingTag = false
		m.write.tagInput.SetValue("")
		m.write.tagInput.Blur()
		return m, nil
	case statisticsMsg:
		m.statsScreen.state = msg.state
		m.statsScreen.loading = false
		return m, nil
	case settingsMsg:
		m.settings.state = msg.state
		return m, nil
	case authDoneMsg:
		m.profile.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
		}
		return m, nil
	case copiedMsg:
		m.detail.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.home.status = ""
		m.detail.status = ""
		m.profile.status = ""
		return m, nil
	case reminderMsg:
		m.reminder = msg.text
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenHome:
		return m.updateHome(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenWrite:
		return m.updateWrite(msg)
	case screenStats:
		return m.updateStats(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenHome:
		body = m.home.View()
	case screenDetail:
		body = m.detail.View()
	case screenWrite:
		body = m.write.View()
	case screenStats:
		body = m.statsScreen.View()
	case screenSettings:
		body = m.settings.View()
	case screenProfile:
		body = m.profile.View()
	}

	if m.reminder != "" {
		body = overlayBoxStyle.Render(m.reminder) + "\n\n" + body
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}
	if m.showBuildInfo {
		body += "\n\n" + renderBuildInfoWindow(m.buildInfo)
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// ── home ──

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.state.DayJournals)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.left):
		m.home.loading = true
		return m, tea.Batch(m.cmdSelectDate(m.home.state.SelectedDate.AddDate(0, 0, -1)), m.home.spinner.Tick)
	case key.Matches(keyMsg, keys.right):
		m.home.loading = true
		return m, tea.Batch(m.cmdSelectDate(m.home.state.SelectedDate.AddDate(0, 0, 1)), m.home.spinner.Tick)
	case key.Matches(keyMsg, keys.prevMonth):
		m.home.loading = true
		return m, tea.Batch(m.cmdSelectDate(m.home.state.SelectedDate.AddDate(0, -1, 0)), m.home.spinner.Tick)
	case key.Matches(keyMsg, keys.nextMonth):
		m.home.loading = true
		return m, tea.Batch(m.cmdSelectDate(m.home.state.SelectedDate.AddDate(0, 1, 0)), m.home.spinner.Tick)
	case key.Matches(keyMsg, keys.reload):
		m.home.loading = true
		return m, tea.Batch(m.cmdReloadHome(), m.home.spinner.Tick)
	case key.Matches(keyMsg, keys.enter):
		journal, ok := m.home.current()
		if !ok {
			m.home.status = "No entries"
			return m, cmdClearStatus()
		}
		m.detail = detailModel{journal: journal}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.delete):
		journal, ok := m.home.current()
		if !ok {
			return m, nil
		}
		m.pendingDelete = journal.ID
		m.confirm.message = "Delete this entry?"
		m.showConfirm = true
	case key.Matches(keyMsg, keys.newEntry):
		m.write = m.write.startCreate()
		m.currentScreen = screenWrite
		return m, m.cmdLoadTags()
	case key.Matches(keyMsg, keys.stats):
		m.statsScreen.loading = true
		m.currentScreen = screenStats
		return m, m.cmdStatsReload()
	case key.Matches(keyMsg, keys.settings):
		m.currentScreen = screenSettings
		return m, m.cmdSettingsReload()
	case key.Matches(keyMsg, keys.profile):
		m.currentScreen = screenProfile
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	}
	return m, nil
}

// ── detail ──

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.edit):
		m.write = m.write.startEdit(m.detail.journal)
		m.currentScreen = screenWrite
		return m, m.cmdLoadTags()
	case key.Matches(keyMsg, keys.delete):
		m.pendingDelete = m.detail.journal.ID
		m.confirm.message = "Delete this entry?"
		m.showConfirm = true
	case key.Matches(keyMsg, keys.copy):
		if m.detail.journal.Content == nil || *m.detail.journal.Content == "" {
			m.detail.status = "Nothing to copy"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(*m.detail.journal.Content)
	}
	return m, nil
}

// ── write ──

func (m appModel) updateWrite(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.write.addingTag {
		return m.updateWriteTagInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = backFromWrite(m.write.editing)
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.write = focusNextZone(m.write)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.write = focusPrevZone(m.write)
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			return m.submitWrite()
		}

		switch m.write.zone {
		case zoneMood:
			if m.write.editing {
				return m, nil
			}
			switch {
			case key.Matches(keyMsg, keys.left):
				if m.write.moodIdx > 0 {
					m.write.moodIdx--
				}
			case key.Matches(keyMsg, keys.right):
				if m.write.moodIdx < len(models.AllMoods())-1 {
					m.write.moodIdx++
				}
			}
			return m, nil
		case zoneTags:
			switch {
			case key.Matches(keyMsg, keys.up):
				if m.write.tagIdx > 0 {
					m.write.tagIdx--
				}
			case key.Matches(keyMsg, keys.down):
				if m.write.tagIdx < len(m.write.tags)-1 {
					m.write.tagIdx++
				}
			case key.Matches(keyMsg, keys.space):
				if m.write.tagIdx < len(m.write.tags) {
					id := m.write.tags[m.write.tagIdx].ID
					m.write.selected[id] = !m.write.selected[id]
				}
			case key.Matches(keyMsg, keys.addTag):
				m.write.addingTag = true
				m.write.tagInput.Focus()
			}
			return m, nil
		}
	}

	if m.write.zone == zoneContent {
		var cmd tea.Cmd
		m.write.content, cmd = m.write.content.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateWriteTagInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.write.addingTag = false
			m.write.tagInput.SetValue("")
			m.write.tagInput.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.write.tagInput.Value())
			if name == "" {
				m.write.formErr = "Tag name is required."
				return m, nil
			}
			m.write.formErr = ""
			return m, m.cmdCreateTag(name)
		}
	}

	var cmd tea.Cmd
	m.write.tagInput, cmd = m.write.tagInput.Update(msg)
	return m, cmd
}

func (m appModel) submitWrite() (tea.Model, tea.Cmd) {
	if m.write.saving {
		return m, nil
	}

	content := strings.TrimSpace(m.write.content.Value())

	if m.write.editing {
		req := models.UpdateJournalRequest{ID: m.write.journalID, Content: &content}
		// Until the tag list has loaded the selection is incomplete; nil
		// leaves the persisted tags untouched.
		var tagIDs []int64
		if !m.write.loadingTags {
			tagIDs = m.write.selectedTagIDs()
		}
		m.write.saving = true
		m.write.formErr = ""
		return m, m.cmdUpdateEntry(req, tagIDs)
	}

	if content == "" {
		m.write.formErr = "Write something first."
		return m, nil
	}

	req := models.CreateJournalRequest{
		Content: &content,
		Mood:    m.write.mood(),
		TagIDs:  m.write.selectedTagIDs(),
	}
	m.write.saving = true
	m.write.formErr = ""
	return m, m.cmdSaveEntry(req)
}

// ── statistics ──

func (m appModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "1":
		return m.selectPeriod(stats.PeriodWeek)
	case "2":
		return m.selectPeriod(stats.PeriodMonth)
	case "3":
		return m.selectPeriod(stats.PeriodThreeMonths)
	case "4":
		return m.selectPeriod(stats.PeriodYear)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.reload):
		m.statsScreen.loading = true
		return m, m.cmdStatsReload()
	}
	return m, nil
}

func (m appModel) selectPeriod(period stats.Period) (tea.Model, tea.Cmd) {
	m.statsScreen.loading = true
	return m, m.cmdStatsSelect(period)
}

// ── settings ──

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.up):
		if m.settings.idx > 0 {
			m.settings.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.settings.idx < settingsRowCount-1 {
			m.settings.idx++
		}
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.space), key.Matches(keyMsg, keys.right):
		return m, m.cmdChangeSetting(m.settings.idx)
	}
	return m, nil
}

// ── profile ──

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.profile.input != profileInputNone {
		return m.updateProfileInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
		return m, nil
	}

	if m.profile.state.User == nil {
		switch {
		case key.Matches(keyMsg, keys.anon):
			m.profile.submitting = true
			return m, m.cmdSignInAnonymously()
		case key.Matches(keyMsg, keys.google):
			m.profile = m.profile.startInput(profileInputToken, "Paste ID token", "")
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.edit):
		m.profile = m.profile.startInput(profileInputName, "Display name", m.profile.state.User.DisplayName)
	case key.Matches(keyMsg, keys.photo):
		m.profile = m.profile.startInput(profileInputPhoto, "Photo URL", m.profile.state.User.PhotoURL)
	case key.Matches(keyMsg, keys.signOut):
		m.pendingSignOut = true
		m.confirm.message = "Sign out?"
		m.showConfirm = true
	}
	return m, nil
}

func (m appModel) updateProfileInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.profile = m.profile.stopInput()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			value := strings.TrimSpace(m.profile.text.Value())
			if value == "" {
				return m, nil
			}
			kind := m.profile.input
			m.profile = m.profile.stopInput()
			m.profile.submitting = true
			switch kind {
			case profileInputName:
				return m, m.cmdUpdateDisplayName(value)
			case profileInputPhoto:
				return m, m.cmdUpdateProfileImage(value)
			default:
				return m, m.cmdSignInWithGoogle(value)
			}
		}
	}

	var cmd tea.Cmd
	m.profile.text, cmd = m.profile.text.Update(msg)
	return m, cmd
}

// ── commands ──

func (m appModel) cmdWaitHome() tea.Cmd {
	updates := m.homeState.Updates()
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return nil
		}
		return homeUpdatedMsg{state: state}
	}
}

func (m appModel) cmdWaitProfile() tea.Cmd {
	updates := m.profileState.Updates()
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return nil
		}
		return profileUpdatedMsg{state: state}
	}
}

func (m appModel) cmdSelectDate(date time.Time) tea.Cmd {
	ctx := m.ctx
	home := m.homeState
	return func() tea.Msg {
		home.SelectDate(ctx, date)
		return nil
	}
}

func (m appModel) cmdReloadHome() tea.Cmd {
	ctx := m.ctx
	home := m.homeState
	return func() tea.Msg {
		home.Reload(ctx)
		return nil
	}
}

func (m appModel) cmdLoadTags() tea.Cmd {
	ctx := m.ctx
	write := m.writeState
	return func() tea.Msg {
		tags, err := write.AvailableTags(ctx)
		return tagsLoadedMsg{tags: tags, err: err}
	}
}

func (m appModel) cmdCreateTag(name string) tea.Cmd {
	ctx := m.ctx
	write := m.writeState
	return func() tea.Msg {
		tag, err := write.CreateTag(ctx, name, nil)
		return tagCreatedMsg{tag: tag, err: err}
	}
}

func (m appModel) cmdSaveEntry(req models.CreateJournalRequest) tea.Cmd {
	ctx := m.ctx
	write := m.writeState
	return func() tea.Msg {
		outcome, err := write.Save(ctx, req)
		return saveDoneMsg{outcome: outcome, err: err}
	}
}

func (m appModel) cmdUpdateEntry(req models.UpdateJournalRequest, tagIDs []int64) tea.Cmd {
	ctx := m.ctx
	write := m.writeState
	return func() tea.Msg {
		outcome, err := write.Update(ctx, req, tagIDs)
		return saveDoneMsg{outcome: outcome, err: err}
	}
}

func (m appModel) cmdDeleteEntry(id int64) tea.Cmd {
	ctx := m.ctx
	write := m.writeState
	return func() tea.Msg {
		err := write.Delete(ctx, id)
		return entryDeletedMsg{err: err}
	}
}

func (m appModel) cmdStatsSelect(period stats.Period) tea.Cmd {
	ctx := m.ctx
	holder := m.statsState
	return func() tea.Msg {
		return statisticsMsg{state: holder.SelectPeriod(ctx, period)}
	}
}

func (m appModel) cmdStatsReload() tea.Cmd {
	ctx := m.ctx
	holder := m.statsState
	return func() tea.Msg {
		return statisticsMsg{state: holder.Reload(ctx)}
	}
}

func (m appModel) cmdSettingsReload() tea.Cmd {
	ctx := m.ctx
	holder := m.settingsState
	return func() tea.Msg {
		return settingsMsg{state: holder.Reload(ctx)}
	}
}

func (m appModel) cmdChangeSetting(row settingsRow) tea.Cmd {
	ctx := m.ctx
	holder := m.settingsState
	current := m.settings.state.Settings
	return func() tea.Msg {
		var state viewstate.SettingsState
		switch row {
		case rowNotifications:
			state = holder.ToggleNotifications(ctx)
		case rowAutoSync:
			state = holder.ToggleAutoSync(ctx)
		case rowThemeMode:
			state = holder.SetThemeMode(ctx, nextThemeMode(current.ThemeMode))
		case rowColorTheme:
			state = holder.SetColorTheme(ctx, nextColorTheme(current.ColorTheme))
		case rowLanguage:
			state = holder.SetLanguage(ctx, nextLanguage(current.LanguageCode))
		case rowPersonality:
			state = holder.SetAIPersonality(ctx, nextPersonality(current.AIPersonality))
		case rowFont:
			state = holder.SetFontFamily(ctx, nextFont(current.FontFamily))
		case rowTextAlign:
			state = holder.CycleTextAlign(ctx)
		default:
			state = holder.State()
		}
		return settingsMsg{state: state}
	}
}

func (m appModel) cmdSignInAnonymously() tea.Cmd {
	ctx := m.ctx
	profile := m.profileState
	return func() tea.Msg {
		return authDoneMsg{err: profile.SignInAnonymously(ctx)}
	}
}

func (m appModel) cmdSignInWithGoogle(idToken string) tea.Cmd {
	ctx := m.ctx
	profile := m.profileState
	return func() tea.Msg {
		return authDoneMsg{err: profile.SignInWithGoogle(ctx, idToken)}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	profile := m.profileState
	return func() tea.Msg {
		profile.SignOut(ctx)
		return authDoneMsg{}
	}
}

func (m appModel) cmdUpdateDisplayName(name string) tea.Cmd {
	ctx := m.ctx
	profile := m.profileState
	return func() tea.Msg {
		return authDoneMsg{err: profile.UpdateDisplayName(ctx, name)}
	}
}

func (m appModel) cmdUpdateProfileImage(photoURL string) tea.Cmd {
	ctx := m.ctx
	profile := m.profileState
	return func() tea.Msg {
		return authDoneMsg{err: profile.UpdateProfileImage(ctx, photoURL)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return authDoneMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func backFromWrite(editing bool) screen {
	if editing {
		return screenDetail
	}
	return screenHome
}

func focusNextZone(m writeModel) writeModel {
	switch m.zone {
	case zoneMood:
		m.zone = zoneContent
		m.content.Focus()
	case zoneContent:
		m.zone = zoneTags
		m.content.Blur()
	case zoneTags:
		if m.editing {
			m.zone = zoneContent
			m.content.Focus()
		} else {
			m.zone = zoneMood
		}
	}
	return m
}

func focusPrevZone(m writeModel) writeModel {
	switch m.zone {
	case zoneMood:
		m.zone = zoneTags
	case zoneContent:
		m.content.Blur()
		if m.editing {
			m.zone = zoneTags
		} else {
			m.zone = zoneMood
		}
	case zoneTags:
		m.zone = zoneContent
		m.content.Focus()
	}
	return m
}
