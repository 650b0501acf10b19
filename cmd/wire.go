package cmd

import (
	"fmt"
	"net/http"

	promptsyaml "github.com/bnema/bundesliga-context-cli/internal/adapters/prompts/yaml"
	"github.com/bnema/bundesliga-context-cli/internal/adapters/ratelimit"
	chatrender "github.com/bnema/bundesliga-context-cli/internal/adapters/render/chat"
	clubsrender "github.com/bnema/bundesliga-context-cli/internal/adapters/render/clubs"
	"github.com/bnema/bundesliga-context-cli/internal/adapters/wikidata"
	"github.com/bnema/bundesliga-context-cli/internal/adapters/wikipedia"
	"github.com/bnema/bundesliga-context-cli/internal/application"
	"github.com/bnema/bundesliga-context-cli/internal/config"
	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/bnema/bundesliga-context-cli/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	config        *config.Config
	logger        *zap.Logger
	service       *application.Service
	clubsRenderer func(domain.CityClubIndex, clubsrender.RenderOptions) (string, error)
	chatPrinter   application.ChatPrinter
	noSpinner     bool
}

func wireApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	v := viper.New()
	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("log.level", flags.Lookup("log-level")); err != nil {
		return nil, fmt.Errorf("bind log-level flag: %w", err)
	}
	if err := v.BindPFlag("log.format", flags.Lookup("log-format")); err != nil {
		return nil, fmt.Errorf("bind log-format flag: %w", err)
	}

	cfg, err := config.Load(v, opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}
	log.Debug("configuration loaded", zap.String("source", cfg.Source))

	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}

	source := &wikidata.Client{
		Endpoint:   cfg.Wikidata.Endpoint,
		Language:   cfg.Wikidata.Language,
		UserAgent:  cfg.HTTP.UserAgent,
		HTTPClient: httpClient,
		Limiter:    ratelimit.New(cfg.Wikidata.RateLimit),
		Logger:     log.Named("wikidata"),
	}
	encyclopedia := &wikipedia.Client{
		APIURL:     cfg.Wikipedia.APIURL(),
		UserAgent:  cfg.HTTP.UserAgent,
		HTTPClient: httpClient,
		Limiter:    ratelimit.New(cfg.Wikipedia.RateLimit),
		Logger:     log.Named("wikipedia"),
	}
	templates := promptsyaml.NewStore(cfg.Prompts.Path)

	return &app{
		config: cfg,
		logger: log,
		service: application.NewService(source, encyclopedia, templates, application.Options{
			TemplateName: cfg.Prompts.Name,
			Logger:       log.Named("service"),
		}),
		clubsRenderer: clubsrender.Render,
		chatPrinter:   chatrender.NewPrinter(),
		noSpinner:     opts.noSpinner,
	}, nil
}
