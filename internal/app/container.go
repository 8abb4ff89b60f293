// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/doeshing/wf-go/internal/domain"
	"github.com/doeshing/wf-go/internal/infrastructure/awscli"
	"github.com/doeshing/wf-go/internal/infrastructure/cache"
	"github.com/doeshing/wf-go/internal/infrastructure/config"
	"github.com/doeshing/wf-go/internal/infrastructure/history"
	"github.com/doeshing/wf-go/internal/infrastructure/jisho"
	"github.com/doeshing/wf-go/internal/infrastructure/runner"
	"github.com/doeshing/wf-go/internal/infrastructure/slack"
	"github.com/doeshing/wf-go/internal/pkg/logger"
	"github.com/doeshing/wf-go/internal/ports"
	"github.com/doeshing/wf-go/internal/services"
)

// Container holds the dependency graph for one invocation.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Log          zerolog.Logger
	Runner       ports.CommandRunner
	Cache        ports.CacheRepository
	History      ports.HistoryRepository
	Opener       ports.Opener

	Resolver *services.Resolver
	Issues   *services.IssueService
	Kana     *services.KanaService
	Channels *services.ChannelService
	Doctor   *services.DoctorService
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	log := logger.New(verbose)

	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	run := runner.NewLocal(log)
	cacheStore := cache.New(cfg.CacheDir)
	historyStore := history.NewFileStore(cfg.HistoryFile)
	awsProvider := awscli.NewProvider(run, cfg.DefaultRegion, log)
	ssoResolver := awscli.NewSharedConfigResolver("", cfg.SSOStartURLs)

	registry := &services.Registry{
		Cache:  cacheStore,
		Runner: run,
		SSO:    ssoResolver,
		Log:    log,
	}
	resolver := &services.Resolver{
		Config:      cfg,
		Registry:    registry,
		Credentials: awsProvider,
		Regions:     awsProvider,
		History:     historyStore,
		SSO:         ssoResolver,
		Log:         log,
	}

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Log:          log,
		Runner:       run,
		Cache:        cacheStore,
		History:      historyStore,
		Opener:       runner.NewURLOpener(run),
		Resolver:     resolver,
		Issues: &services.IssueService{
			Settings: cfg.Jira,
			Cache:    cacheStore,
			Runner:   run,
			Log:      log,
		},
		Kana: &services.KanaService{
			Source: jisho.NewClient(log),
			Cache:  cacheStore,
			Log:    log,
		},
		Channels: &services.ChannelService{
			Source: slack.NewEnvStore(cfg.Slack.EnvFile),
			Log:    log,
		},
		Doctor: &services.DoctorService{
			ConfigPath: cfgLoader.Path(),
			Cache:      cacheStore,
			History:    historyStore,
			Runner:     run,
		},
	}, nil
}
