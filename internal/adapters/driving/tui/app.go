package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/components/status"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/keymap"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/messages"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/styles"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/views/menu"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/views/projects"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/views/schedule"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/views/settings"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// projectsView is the project board view component.
	projectsView *projects.View

	// scheduleView is the monthly schedule view component.
	scheduleView *schedule.View

	// settingsView is the settings configuration view component.
	settingsView *settings.View

	// statusBar shows the signed-in account and keybinding hints.
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	projectsView := projects.NewView(s, ports.Project)
	scheduleView := schedule.NewView(s, ports.Schedule)
	settingsView := settings.NewView(s, ports.Settings)
	statusBar := status.NewBar(s, keymap.DefaultKeyMap())

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menuView,
		projectsView: projectsView,
		scheduleView: scheduleView,
		settingsView: settingsView,
		statusBar:    statusBar,
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("senteng - Studio Console"),
		a.loadSession(),
	)
}

// loadSession restores the persisted sign-in so the status bar can show
// who is operating the console.
func (a *App) loadSession() tea.Cmd {
	return func() tea.Msg {
		if a.ports.Session == nil {
			return messages.SessionLoaded{}
		}

		a.ports.Session.Initialize(a.ctx)

		session, err := a.ports.Session.Current()
		if err != nil {
			// Not signed in yet.
			return messages.SessionLoaded{}
		}

		access, err := a.ports.Session.Access(a.ctx)
		if err != nil {
			return messages.SessionLoaded{Session: session}
		}

		return messages.SessionLoaded{Session: session, Access: access}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.projectsView.SetDimensions(msg.Width, msg.Height)
		a.scheduleView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewProjects:
			// Esc from projects goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				a.statusBar.Clear()
				return a, nil
			}
			a.projectsView, cmd = a.projectsView.Update(msg)
			return a, cmd

		case messages.ViewSchedule:
			// Esc from schedule goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				a.statusBar.Clear()
				return a, nil
			}
			a.scheduleView, cmd = a.scheduleView.Update(msg)
			return a, cmd

		case messages.ViewSettings:
			// Settings handles esc itself to back out of an edit first
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				a.statusBar.Clear()
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SessionLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		if msg.Session == nil {
			return a, nil
		}
		identity := msg.Session.Profile.Email
		if identity == "" {
			identity = msg.Session.Profile.Name
		}
		if msg.Access.Role != "" {
			identity = fmt.Sprintf("%s (%s)", identity, msg.Access.Role)
		}
		a.statusBar.SetIdentity(identity)
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewProjects:
			a.statusBar.Clear()
			return a, a.projectsView.Init()
		case messages.ViewSchedule:
			a.statusBar.SetState(status.StateSchedule)
			return a, a.scheduleView.Init()
		case messages.ViewSettings:
			a.statusBar.Clear()
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewHelp:
			a.statusBar.SetState(status.StateHelp)
		case messages.ViewMenu:
			a.statusBar.Clear()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit

	case messages.ProjectsLoaded, messages.ProjectStatusChanged:
		// Forward to projects view
		if a.currentView == messages.ViewProjects {
			a.projectsView, cmd = a.projectsView.Update(msg)
			return a, cmd
		}

	case messages.ScheduleLoaded:
		// Forward to schedule view
		if a.currentView == messages.ViewSchedule {
			a.scheduleView, cmd = a.scheduleView.Update(msg)
			return a, cmd
		}

	case messages.SettingsLoaded, messages.SettingsSaved:
		// Forward to settings view
		if a.currentView == messages.ViewSettings {
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd
		}
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewProjects:
		a.projectsView, cmd = a.projectsView.Update(msg)
	case messages.ViewSchedule:
		a.scheduleView, cmd = a.scheduleView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view with the status bar underneath.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string

	switch a.currentView {
	case messages.ViewMenu:
		body = a.menuView.View()
	case messages.ViewProjects:
		body = a.projectsView.View()
	case messages.ViewSchedule:
		body = a.scheduleView.View()
	case messages.ViewSettings:
		body = a.settingsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Projects:
  j/k, ↑/↓    Navigate projects
  s           Cycle project status
  r           Reload from the project sheet

Schedule:
  h/l, ←/→    Previous / next month
  j/k, ↑/↓    Navigate appointments
  r           Reload the month

Settings:
  enter       Edit the highlighted setting
  esc         Back out of the editor

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Identity returns the account shown on the status bar.
func (a *App) Identity() string {
	return a.statusBar.Identity()
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.projectsView.SetDimensions(width, height)
	a.scheduleView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
