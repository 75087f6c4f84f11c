// Command senteng is the operations console for the Senteng design
// studio. It keeps the project list in a Google Sheet, client folders
// on Drive and site visits on the studio calendar.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driven/access"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driven/auth"
	configfile "github.com/xiangteng007/senteng-design-system/internal/adapters/driven/config/file"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driven/google"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driven/oauth"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driven/storage/memory"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driven/storage/sqlite"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/cli"
	browser "github.com/xiangteng007/senteng-design-system/internal/adapters/driving/oauth"
	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
	"github.com/xiangteng007/senteng-design-system/internal/core/services"
	"github.com/xiangteng007/senteng-design-system/internal/logger"
)

// version is set via ldflags at build time.
var version = "dev"

// consoleServices bundles the driving services every surface shares.
type consoleServices struct {
	session  *services.SessionService
	project  *services.ProjectService
	schedule *services.ScheduleService
	storage  *services.StorageService
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	var svcs consoleServices
	if settings.DemoMode {
		svcs = wireDemo(settings)
	} else {
		store, wired, err := wireWorkspace(settings)
		if err != nil {
			return err
		}
		defer store.Close()
		svcs = wired
	}

	cli.SetVersion(version)
	cli.SetSessionService(svcs.session)
	cli.SetProjectService(svcs.project)
	cli.SetScheduleService(svcs.schedule)
	cli.SetStorageService(svcs.storage)
	cli.SetSettingsService(settingsService)
	cli.SetTUIConfig(&cli.TUIConfig{
		SessionService:  svcs.session,
		ProjectService:  svcs.project,
		ScheduleService: svcs.schedule,
		SettingsService: settingsService,
	})

	return cli.Execute()
}

// wireWorkspace builds the console against the live Google Workspace
// APIs, with session state persisted in the local SQLite store.
func wireWorkspace(settings *domain.AppSettings) (*sqlite.Store, consoleServices, error) {
	store, err := sqlite.NewStore("")
	if err != nil {
		return nil, consoleServices{}, fmt.Errorf("open state store: %w", err)
	}

	sessions := store.SessionStore()
	exchanger := oauth.NewExchanger(settings.Google.ClientID, settings.Google.ClientSecret)
	tokens := auth.NewSessionTokenProvider(sessions, exchanger)
	flow := browser.NewBrowserFlow(settings.Google.ClientID)
	identity := google.NewIdentityAdapter()

	var directory driven.AccessDirectory
	if settings.Access.File != "" {
		dir, err := access.NewDirectory(settings.Access.File)
		if err != nil {
			logger.Warn("Access directory unavailable: %v", err)
		} else {
			directory = dir
		}
	}

	boot := google.NewBootstrap(google.DefaultBuild(
		settings.Google.ClientID,
		google.NewTokenSource(context.Background(), tokens),
	))

	svcs := consoleServices{
		session: services.NewSessionService(sessions, flow, exchanger, identity, tokens, directory),
		project: services.NewProjectService(
			google.NewSheetsAdapter(boot, settings.Sheets.SpreadsheetID),
			settings.Sheets.ProjectsSheet,
		),
		schedule: services.NewScheduleService(
			google.NewCalendarAdapter(boot, settings.Calendar.ID, settings.Calendar.TimeZone),
			services.ScheduleOptions{
				Zone:        settings.Calendar.TimeZone,
				DefaultTime: settings.Calendar.DefaultTime,
			},
		),
		storage: services.NewStorageService(
			google.NewDriveAdapter(boot, settings.Drive.RootFolderID),
		),
	}
	return store, svcs, nil
}

// wireDemo builds the console against in-memory fixtures, so every
// surface works without a Google account.
func wireDemo(settings *domain.AppSettings) consoleServices {
	ctx := context.Background()

	spreadsheet := memory.NewSpreadsheet()
	spreadsheet.Seed(settings.Sheets.ProjectsSheet, demoProjects())

	sessions := memory.NewSessionStore()
	if err := sessions.Save(ctx, demoSession()); err != nil {
		logger.Debug("Demo session seed failed: %v", err)
	}

	directory := memory.NewAccessDirectory()
	directory.SetProfile(domain.AccessProfile{
		Email: "mei@senteng.design",
		Role:  domain.RoleAdmin,
		Pages: []string{"projects", "schedule", "settings"},
	})

	svcs := consoleServices{
		session: services.NewSessionService(
			sessions, nil, nil, nil, auth.NewNullTokenProvider(), directory),
		project: services.NewProjectService(spreadsheet, settings.Sheets.ProjectsSheet),
		schedule: services.NewScheduleService(memory.NewCalendar(), services.ScheduleOptions{
			Zone:        settings.Calendar.TimeZone,
			DefaultTime: settings.Calendar.DefaultTime,
		}),
		storage: services.NewStorageService(memory.NewFileStore()),
	}

	seedDemoSchedule(ctx, svcs.schedule)
	return svcs
}

// demoProjects returns the seeded project sheet, header row included.
func demoProjects() [][]string {
	return [][]string{
		{"id", "name", "client", "type", "budget", "dueDate", "status", "folderUrl"},
		{"prj-001", "木質宅", "林公館", "住宅", "1500000", "2026-10-31", "進行中", ""},
		{"prj-002", "老屋翻新", "陳小姐", "住宅", "2300000", "2026-12-15", "規劃中", ""},
		{"prj-003", "恆光咖啡", "恆光商行", "商業空間", "900000", "2026-08-30", "已完工", ""},
	}
}

// demoSession returns a permanently valid signed-in session.
func demoSession() *domain.Session {
	return &domain.Session{
		ID: "demo-session",
		Token: domain.OAuthToken{
			AccessToken: "demo-token",
			TokenType:   "Bearer",
		},
		Profile: domain.UserProfile{
			Name:  "林美惠",
			Email: "mei@senteng.design",
		},
		CreatedAt: time.Now(),
	}
}

// seedDemoSchedule plans a few appointments around today so the month
// view has content. Failures only cost demo data.
func seedDemoSchedule(ctx context.Context, schedule *services.ScheduleService) {
	now := time.Now()
	appointments := []domain.ScheduleEvent{
		{
			Title:    "林公館 丈量",
			Date:     now.AddDate(0, 0, 2).Format("2006-01-02"),
			Time:     "14:00",
			Location: "台北市大安區",
		},
		{
			Title:       "建材挑選",
			Date:        now.AddDate(0, 0, 5).Format("2006-01-02"),
			Time:        "10:00",
			Description: "木地板與塗料樣品",
		},
		{
			Title:    "恆光咖啡 驗收",
			Date:     now.AddDate(0, 0, 9).Format("2006-01-02"),
			Location: "恆光咖啡 中山店",
		},
	}
	for _, event := range appointments {
		if _, err := schedule.Plan(ctx, event); err != nil {
			logger.Debug("Demo appointment seed failed: %v", err)
		}
	}
}
