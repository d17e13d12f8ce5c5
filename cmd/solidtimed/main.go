package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/1M4nt0/solidtime-tracker/internal/activity"
	"github.com/1M4nt0/solidtime-tracker/internal/api"
	"github.com/1M4nt0/solidtime-tracker/internal/config"
	"github.com/1M4nt0/solidtime-tracker/internal/ipc"
	"github.com/1M4nt0/solidtime-tracker/internal/logind"
	"github.com/1M4nt0/solidtime-tracker/internal/notify"
	"github.com/1M4nt0/solidtime-tracker/internal/tracker"
)

func main() {
	argPath := defaultConfigPath()
	if len(os.Args) > 1 {
		argPath = os.Args[1]
	}
	log.Println("Using config file at:", argPath)

	cfg, err := config.LoadConfigFromFile(argPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Refusing to start: ", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	client := api.NewClient(api.Config{BaseURL: cfg.APIURL, APIKey: cfg.APIKey})

	member, err := client.CurrentMember(ctx, cfg.OrganizationID)
	if err != nil {
		log.Fatal("Failed to resolve organization member: ", err)
	}

	projectID, err := resolveProject(ctx, client, cfg, member)
	if err != nil {
		log.Fatal("Failed to resolve project: ", err)
	}
	log.Printf("tracking project %s (%s)", cfg.ProjectName, projectID)

	status := notify.NewStatus()
	spend := notify.Multi{status}
	if desktop, err := notify.NewDesktop(); err != nil {
		log.Println("Desktop notifications unavailable:", err)
	} else {
		spend = append(spend, desktop)
	}

	tr := tracker.New(tracker.Config{
		OrgID:            cfg.OrganizationID,
		MemberID:         member.ID,
		ProjectID:        projectID,
		MaxOpenSliceSpan: cfg.MaxOpenSliceSpan.Duration,
		BeatTimeout:      cfg.BeatTimeout.Duration,
	}, client, spend)
	tr.Subscribe(func(ev tracker.Event) {
		log.Printf("tracker event: %s", ev)
	})
	tr.Resume(ctx)

	var wg sync.WaitGroup

	// Filesystem activity feeds the tracker
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Watching", cfg.WatchDir, "for activity...")
		watcher, err := activity.NewWatcher(cfg.WatchDir, cfg.ChangeEventThrottle.Duration)
		if err != nil {
			log.Println("Failed to create activity watcher:", err)
			cancel()
			return
		}
		if err := watcher.Run(ctx, func() { tr.OnActivity(ctx) }); err != nil {
			log.Println("activity watcher error:", err)
		}
	}()

	// Sleep/lock signals drive the lifecycle, like editor focus does
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Monitoring dbus for sleep and lock signals...")
		err := logind.Watch(ctx,
			func() { tr.Stop(ctx) },
			func() { tr.Resume(ctx) },
		)
		if err != nil {
			log.Println("logind watcher error:", err)
		}
	}()

	// Control service for stctl
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Opening D-Bus control service...")
		if err := ipc.Serve(ctx, &ipc.Manager{Tracker: tr, Status: status}); err != nil {
			log.Println("control service error:", err)
		}
	}()

	wg.Wait()
	tr.Dispose(context.Background())
	fmt.Println("Shutdown complete")
}

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "solidtime-tracker", "config.toml")
	}
	return "/etc/solidtime-tracker/config.toml"
}

// resolveProject finds the configured project by name, creating it when
// it does not exist yet.
func resolveProject(ctx context.Context, client *api.Client, cfg *config.Config, member api.Member) (string, error) {
	projects, err := client.ListProjects(ctx, cfg.OrganizationID)
	if err != nil {
		return "", fmt.Errorf("failed to list projects: %w", err)
	}
	for _, p := range projects {
		if p.Name == cfg.ProjectName {
			return p.ID, nil
		}
	}

	log.Printf("project %s does not exist, creating...", cfg.ProjectName)
	project, err := client.CreateProject(ctx, cfg.OrganizationID, api.CreateProjectBody{
		Name:       cfg.ProjectName,
		Color:      "#000000",
		ClientID:   nil,
		IsBillable: false,
		MemberIDs:  []string{member.ID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create project: %w", err)
	}
	log.Printf("project created: %s", project.ID)
	return project.ID, nil
}
