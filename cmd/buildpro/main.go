package main

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/buildpro/buildpro-go/internal/backend"
	"github.com/buildpro/buildpro-go/internal/config"
	"github.com/buildpro/buildpro-go/internal/credstore"
	"github.com/buildpro/buildpro-go/internal/mapper"
	"github.com/buildpro/buildpro-go/internal/model"
	"github.com/buildpro/buildpro-go/internal/notify"
	"github.com/buildpro/buildpro-go/internal/store"
	"github.com/buildpro/buildpro-go/internal/transport"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the wired client stack shared by every subcommand.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	creds  *credstore.Store
	api    *backend.Client
	store  *store.Store
}

func (a *app) close() {
	if a.creds != nil {
		a.creds.Close()
	}
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logWriter := os.Stderr
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	if logPath := os.Getenv("BUILDPRO_LOG_PATH"); logPath != "" {
		fileWriter, _, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			logger = slog.New(slog.NewTextHandler(fileWriter, &slog.HandlerOptions{
				Level: parseLogLevel(cfg.Log.Level),
			}))
		}
	}

	creds, err := credstore.Open(cfg.State.Path)
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}

	tc := transport.New(transport.Config{
		BaseURL: cfg.API.BaseURL,
		Tokens:  creds,
		Logger:  logger,
		Timeout: cfg.API.Timeout,
		OnSessionExpired: func() {
			fmt.Fprintln(os.Stderr, "session expired, please log in again")
		},
	})
	api := backend.New(tc)

	st := store.New(store.Config{
		API:         api,
		Tokens:      creds,
		DemoEnabled: cfg.Demo.Enabled,
		Logger:      logger,
	})

	return &app{cfg: cfg, logger: logger, creds: creds, api: api, store: st}, nil
}

func newRootCommand() *cobra.Command {
	var a *app

	root := &cobra.Command{
		Use:           "buildpro",
		Short:         "BuildPro construction management client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				a.close()
			}
		},
	}

	root.AddCommand(
		newLoginCommand(&a),
		newLogoutCommand(&a),
		newWhoamiCommand(&a),
		newOrgCommand(&a),
		newSyncCommand(&a),
		newNotificationsCommand(&a),
		newExportCommand(&a),
	)
	return root
}

func newLoginCommand(a **app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("BUILDPRO_PASSWORD")
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}
			result, err := (*a).api.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("logged in as %s %s (%s)\n",
				result.User.FirstName, result.User.LastName, result.User.Email)
			if result.ActiveOrganizationID != "" {
				fmt.Printf("organization: %s\n", result.ActiveOrganizationID)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (or BUILDPRO_PASSWORD)")
	return cmd
}

func newLogoutCommand(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear persisted tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).api.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}

func newWhoamiCommand(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(*a).api.HasSession() {
				return fmt.Errorf("not logged in")
			}
			user, err := (*a).api.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s <%s> role=%s\n", user.FirstName, user.LastName, user.Email, user.Role)
			for _, org := range user.Organizations {
				fmt.Printf("  org %s (%s) %s\n", org.OrganizationName, org.OrgRole, org.OrganizationID)
			}
			return nil
		},
	}
}

func newOrgCommand(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "org [organization-id]",
		Short: "Show or select the active organization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := (*a).creds.SetOrgID(args[0]); err != nil {
					return err
				}
				fmt.Printf("organization set to %s\n", args[0])
				return nil
			}
			orgID, err := (*a).creds.OrgID()
			if err != nil {
				return err
			}
			if orgID == "" {
				fmt.Println("no organization selected")
				return nil
			}
			fmt.Println(orgID)
			return nil
		},
	}
}

func newSyncCommand(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Synchronize local collections from the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := (*a).store
			if err := st.Resynchronize(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("state: %s\n", st.State())
			if notice := st.Notice(); notice != "" {
				fmt.Println(notice)
			}
			fmt.Printf("projects=%d tasks=%d risks=%d expenses=%d documents=%d messages=%d milestones=%d\n",
				len(st.Projects()), len(st.Tasks()), len(st.Risks()), len(st.Expenses()),
				len(st.Documents()), len(st.Messages()), len(st.Milestones()))
			return nil
		},
	}
}

func newNotificationsCommand(a **app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications, optionally polling for new ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			print := func(ns []model.Notification) {
				for _, n := range ns {
					marker := " "
					if !n.Read {
						marker = "*"
					}
					fmt.Printf("%s [%s] %s: %s\n", marker, n.Type, n.Title, n.Body)
				}
			}

			if !watch {
				recs, err := (*a).api.ListNotifications(cmd.Context())
				if err != nil {
					return err
				}
				ns := make([]model.Notification, 0, len(recs))
				for i, rec := range recs {
					ns = append(ns, mapper.Notification(rec, i))
				}
				print(ns)
				return nil
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			poller := notify.New(notify.Config{
				Source:   (*a).api,
				Interval: (*a).cfg.Notifications.PollInterval,
				Logger:   (*a).logger,
				OnUpdate: print,
			})
			poller.Start(ctx)
			<-ctx.Done()
			poller.Stop()
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "poll on the configured interval until interrupted")
	return cmd
}

func newExportCommand(a **app) *cobra.Command {
	var project, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if project != "" {
				query.Set("project_id", project)
			}
			dl, err := (*a).api.ExportReport(cmd.Context(), query)
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				path = dl.Filename
			}
			if err := os.WriteFile(path, dl.Data, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Printf("wrote %s (%d bytes, %s)\n", path, len(dl.Data), dl.ContentType)
			return nil
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "project canonical ID to scope the report")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (defaults to the server-provided filename)")
	return cmd
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
