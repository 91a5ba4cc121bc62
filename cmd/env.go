package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/a1s/w1s/internal/config"
	"github.com/a1s/w1s/internal/config/data"
	"github.com/a1s/w1s/internal/dao"
	"github.com/a1s/w1s/internal/graphql"
	"github.com/a1s/w1s/internal/model"
	"github.com/a1s/w1s/internal/model1"
	"github.com/a1s/w1s/internal/slogs"
)

var saveConfig = (*config.Config).Save

// env carries the resolved configuration and connection.
type env struct {
	cfg     *config.Config
	conn    *graphql.APIClient
	factory *dao.APIFactory
	cache   *dao.ResourceCache
	logger  *zap.Logger
}

// bootstrap resolves locations, configuration and logging, then connects.
func bootstrap(flags *data.Flags) (*env, error) {
	if err := config.InitLocs(); err != nil {
		return nil, fmt.Errorf("failed to initialize locations: %w", err)
	}
	logFile := config.AppLogFile
	if config.IsStringSet(flags.LogFile) {
		logFile = *flags.LogFile
	}
	if err := config.InitLogLoc(logFile); err != nil {
		return nil, fmt.Errorf("failed to initialize log location: %w", err)
	}

	settings, err := graphql.NewProfileManager(config.AppEndpointsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load endpoint profiles: %w", err)
	}
	cfg := config.NewConfig(settings)
	if err := cfg.Load(config.AppConfigFile, false); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	// Seed the config file with defaults before flags are merged in.
	var seedErr error
	if !data.Exists(config.AppConfigFile) {
		seedErr = saveConfig(cfg, config.AppConfigFile, true)
	}
	if err := cfg.Refine(flags, settings); err != nil {
		return nil, fmt.Errorf("failed to refine configuration: %w", err)
	}

	logger, err := slogs.New(cfg.W1s.Logger.Level, logFile)
	if err != nil {
		return nil, err
	}
	if seedErr != nil {
		logger.Warn("Unable to seed configuration file",
			zap.String("path", config.AppConfigFile),
			zap.Error(seedErr))
	}

	return newEnv(cfg, logger)
}

// newEnv connects to the resolved endpoint.
func newEnv(cfg *config.Config, logger *zap.Logger) (*env, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cc, err := cfg.W1s.ClientConfig()
	if err != nil {
		return nil, err
	}
	ttl, err := cfg.W1s.GetCacheTTL()
	if err != nil {
		return nil, err
	}
	conn, err := graphql.NewAPIClient(cc, graphql.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	cfg.SetConnection(conn)
	logger.Debug("Connected",
		zap.String(slogs.EndpointKey, cc.Endpoint),
		zap.String(slogs.ProfileKey, cfg.W1s.ActiveProfile()),
	)

	return &env{
		cfg:     cfg,
		conn:    conn,
		factory: dao.NewFactory(conn),
		cache:   dao.NewResourceCache(ttl),
		logger:  logger,
	}, nil
}

func (e *env) close() {
	_ = e.logger.Sync()
}

// tableModel returns an initialized country table model.
func (e *env) tableModel() (*model.Table, error) {
	t := model.NewTable(&dao.CountryRID, e.factory, e.cfg.W1s.PageSize)
	t.SetLogger(e.logger.With(zap.String(slogs.RIDKey, dao.CountryRID.String())))
	t.SetComparer(model1.NewComparer(e.cfg.W1s.Locale))
	if err := t.Init(); err != nil {
		return nil, err
	}
	t.SetCache(e.cache)

	return t, nil
}

// chartModel returns an initialized continent chart model.
func (e *env) chartModel() (*model.Chart, error) {
	c := model.NewChart(e.factory)
	c.SetLogger(e.logger.With(zap.String(slogs.RIDKey, dao.ContinentRID.String())))
	if err := c.Init(); err != nil {
		return nil, err
	}
	c.SetCache(e.cache)

	return c, nil
}
