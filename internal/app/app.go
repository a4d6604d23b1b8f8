// Package app wires configuration, logging, the model artifact and the form
// binding into a ready adapter. The artifact is loaded once here and handed
// to its consumers; nothing reloads it.
package app

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"diabetesrisk/internal/config"
	"diabetesrisk/internal/features"
	"diabetesrisk/internal/inference"
	"diabetesrisk/internal/models"
	"diabetesrisk/internal/schema"
	"diabetesrisk/pkg/utils"
)

type Env struct {
	Config   *config.Config
	Logger   *zap.Logger
	Artifact *models.Artifact
	Adapter  *inference.Adapter
}

// Bootstrap loads everything a binary needs from the config at path.
func Bootstrap(path string) (*Env, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger, err := utils.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, errors.Wrap(err, "logger")
	}
	art, err := models.Load(cfg.Model.Path)
	if err != nil {
		return nil, err
	}
	adapter, err := Wire(cfg, art, logger)
	if err != nil {
		return nil, err
	}
	return &Env{Config: cfg, Logger: logger, Artifact: art, Adapter: adapter}, nil
}

// Wire binds art to the configured layout and builds the adapter. In strict
// mode any model feature the layout never places is a startup error.
func Wire(cfg *config.Config, art *models.Artifact, logger *zap.Logger) (*inference.Adapter, error) {
	reg := schema.Default()
	if len(cfg.Texts) > 0 {
		reg = reg.WithTexts(cfg.Texts)
	}
	layout, err := schema.LayoutByName(cfg.Schema.Layout)
	if err != nil {
		return nil, err
	}
	b, err := features.Bind(reg, layout, art.FeatureNames)
	if err != nil {
		return nil, errors.Wrap(err, "bind model features")
	}
	if unused := b.Unused(); len(unused) > 0 {
		logger.Debug("layout fields not used by the model", zap.Strings("fields", unused))
	}
	if err := b.Check(); err != nil {
		if cfg.Schema.Strict {
			return nil, errors.Wrap(err, "model features missing from form")
		}
		for _, e := range multierr.Errors(err) {
			logger.Warn("schema drift", zap.Error(e))
		}
	}
	logger.Info("model ready",
		zap.String("path", cfg.Model.Path),
		zap.String("model", art.Model.Name()),
		zap.Strings("features", art.FeatureNames),
		zap.Int("positive_class", art.PositiveClass()),
	)
	return inference.New(art, b, logger), nil
}
