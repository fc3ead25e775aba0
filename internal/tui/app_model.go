// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-weather-term/internal/app"
	"github.com/MKhiriev/go-weather-term/internal/format"
	"github.com/MKhiriev/go-weather-term/internal/service"
	"github.com/MKhiriev/go-weather-term/internal/validators"
	"github.com/MKhiriev/go-weather-term/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenLocation
	screenReport
	screenSettings
	screenAbout
)

const defaultForecastDays = 3

type appModel struct {
	ctx           context.Context
	services      *service.Services
	keyErr        error
	currentScreen screen

	menu     menuModel
	location locationModel
	report   reportModel
	settings settingsModel

	prefs          models.UnitPreferences
	activeLocation string
	showError      bool
	errorOverlay   errorOverlayModel
	width, height  int
}

func newAppModel(ctx context.Context, services *service.Services, keyErr error) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		keyErr:        keyErr,
		currentScreen: screenMenu,
		location:      newLocationModel(),
		report:        newReportModel(),
		prefs:         models.MetricPreferences(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadPrefs(), m.cmdLoadHistory())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.report.resize(msg.Width, msg.Height)
		return m, nil
	case prefsLoadedMsg:
		m.settings.saving = false
		if msg.err != nil {
			m.showErrorf(app.HumanizeError(msg.err))
			return m, nil
		}
		m.prefs = msg.prefs
		if m.activeLocation == "" {
			m.activeLocation = msg.prefs.DefaultLocation
		}
		if msg.saved {
			m.settings.status = "Saved!"
			return m, cmdClearStatus()
		}
		return m, nil
	case historyLoadedMsg:
		if msg.err != nil {
			m.showErrorf(app.HumanizeError(msg.err))
			return m, nil
		}
		m.location.history = msg.entries
		m.location.historyIdx = -1
		if msg.cleared {
			m.settings.status = "History cleared"
			return m, cmdClearStatus()
		}
		return m, nil
	case reportLoadedMsg:
		if msg.kind != m.report.kind || msg.location != m.report.location {
			return m, nil
		}
		m.report.loading = false
		if msg.err != nil {
			m.showErrorf(app.HumanizeError(msg.err))
			m.currentScreen = screenMenu
			return m, nil
		}
		m.report.setContent(msg.text)
		return m, m.cmdLoadHistory()
	case copiedMsg:
		m.report.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(fmt.Sprintf("Could not copy to clipboard: %v", msg.err))
		return m, nil
	case clearStatusMsg:
		m.menu.status = ""
		m.report.status = ""
		m.settings.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenLocation:
		return m.updateLocation(msg)
	case screenReport:
		return m.updateReport(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenAbout:
		return m.updateAbout(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.menu.View(m.activeLocation, m.prefs.Preset, m.keyErr != nil)
	case screenLocation:
		body = m.location.View()
	case screenReport:
		body = m.report.View()
	case screenSettings:
		body = m.settings.View(m.prefs, m.buildInfo().KeySource(), m.keyErr)
	case screenAbout:
		body = renderBuildInfoWindow(m.buildInfo(), m.keyErr)
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View(m.width)
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) buildInfo() models.AppBuildInfo {
	return m.services.AppInfoService.GetBuildInfo(m.ctx)
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(menuLabels)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		return m.selectMenuItem(m.menu.selected())
	}
	return m, nil
}

func (m appModel) selectMenuItem(item menuItem) (tea.Model, tea.Cmd) {
	switch item {
	case itemEnterLocation:
		m.currentScreen = screenLocation
		m.location.input.SetValue("")
		m.location.historyIdx = -1
		cmd := m.location.input.Focus()
		return m, cmd
	case itemCurrentWeather:
		return m.startReport(reportCurrent)
	case itemAirQuality:
		return m.startReport(reportAirQuality)
	case itemForecast:
		return m.startReport(reportForecast)
	case itemAstronomy:
		return m.startReport(reportAstronomy)
	case itemSettings:
		m.currentScreen = screenSettings
	case itemAbout:
		m.currentScreen = screenAbout
	case itemExit:
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) startReport(kind reportKind) (tea.Model, tea.Cmd) {
	if m.keyErr != nil {
		m.showErrorf(app.HumanizeError(m.keyErr))
		return m, nil
	}
	if m.activeLocation == "" {
		m.menu.status = warnStyle.Render(app.MsgNoLocation)
		return m, cmdClearStatus()
	}

	m.currentScreen = screenReport
	m.report.kind = kind
	m.report.location = m.activeLocation
	m.report.loading = true
	m.report.status = ""
	m.report.setContent("")
	return m, tea.Batch(m.report.spinner.Tick, m.cmdFetchReport(kind, m.activeLocation))
}

func (m appModel) updateLocation(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.location.input.Blur()
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.location.cycleHistory()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			location := validators.SanitizeLocation(m.location.input.Value())
			if !validators.IsValidLocation(location) {
				m.showErrorf(app.MsgInvalidLocation)
				return m, nil
			}
			m.activeLocation = location
			m.location.input.Blur()
			m.currentScreen = screenMenu
			m.menu.status = "Location set to " + location
			return m, tea.Batch(m.cmdSaveDefaultLocation(location), cmdClearStatus())
		}
	}

	var cmd tea.Cmd
	m.location.input, cmd = m.location.input.Update(msg)
	return m, cmd
}

func (m appModel) updateReport(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.report.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.report.spinner, cmd = m.report.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			if m.report.loading || m.report.content == "" {
				return m, nil
			}
			return m, cmdCopyToClipboard(m.report.content)
		case key.Matches(msg, keys.refresh):
			if m.report.loading {
				return m, nil
			}
			return m.startReport(m.report.kind)
		}
	}

	var cmd tea.Cmd
	m.report.viewport, cmd = m.report.viewport.Update(msg)
	return m, cmd
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.settings.idx > 0 {
			m.settings.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.settings.idx < len(settingsActions)-1 {
			m.settings.idx++
		}
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.clearHistory):
		return m, m.cmdClearHistory()
	case key.Matches(keyMsg, keys.enter):
		if m.settings.saving {
			return m, nil
		}
		m.settings.saving = true
		action := m.settings.selected()
		if action.field != "" {
			return m, m.cmdToggle(action.field)
		}
		return m, m.cmdSetPreset(action.preset)
	}
	return m, nil
}

func (m appModel) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) cmdLoadPrefs() tea.Cmd {
	ctx, prefs := m.ctx, m.services.PreferencesService
	return func() tea.Msg {
		p, err := prefs.Get(ctx)
		return prefsLoadedMsg{prefs: p, err: err}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx, history := m.ctx, m.services.HistoryService
	return func() tea.Msg {
		entries, err := history.Recent(ctx, 0)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdFetchReport(kind reportKind, location string) tea.Cmd {
	ctx, weather, prefs := m.ctx, m.services.WeatherService, m.prefs
	return func() tea.Msg {
		text, err := fetchReport(ctx, weather, kind, location, prefs)
		return reportLoadedMsg{kind: kind, location: location, text: text, err: err}
	}
}

func fetchReport(ctx context.Context, weather service.WeatherService, kind reportKind, location string, prefs models.UnitPreferences) (string, error) {
	switch kind {
	case reportAirQuality:
		aq, err := weather.AirQuality(ctx, location)
		if err != nil {
			return "", err
		}
		return format.AirQualityReport(aq), nil
	case reportForecast:
		days := prefs.ForecastDays
		if days <= 0 {
			days = defaultForecastDays
		}
		f, err := weather.Forecast(ctx, location, days)
		if err != nil {
			return "", err
		}
		return format.ForecastReport(f, prefs), nil
	case reportAstronomy:
		a, err := weather.Astronomy(ctx, location, "")
		if err != nil {
			return "", err
		}
		return format.AstronomyReport(a), nil
	default:
		w, err := weather.Current(ctx, location)
		if err != nil {
			return "", err
		}
		return format.CurrentReport(w, prefs), nil
	}
}

func (m appModel) cmdToggle(field string) tea.Cmd {
	ctx, prefs := m.ctx, m.services.PreferencesService
	return func() tea.Msg {
		p, err := prefs.Toggle(ctx, field)
		return prefsLoadedMsg{prefs: p, saved: err == nil, err: err}
	}
}

func (m appModel) cmdSetPreset(preset string) tea.Cmd {
	ctx, prefs := m.ctx, m.services.PreferencesService
	return func() tea.Msg {
		p, err := prefs.SetPreset(ctx, preset)
		return prefsLoadedMsg{prefs: p, saved: err == nil, err: err}
	}
}

func (m appModel) cmdSaveDefaultLocation(location string) tea.Cmd {
	ctx, prefs, current := m.ctx, m.services.PreferencesService, m.prefs
	current.DefaultLocation = location
	return func() tea.Msg {
		p, err := prefs.Save(ctx, current)
		return prefsLoadedMsg{prefs: p, err: err}
	}
}

func (m appModel) cmdClearHistory() tea.Cmd {
	ctx, history := m.ctx, m.services.HistoryService
	return func() tea.Msg {
		if err := history.Clear(ctx); err != nil {
			return historyLoadedMsg{err: err}
		}
		return historyLoadedMsg{cleared: true}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
