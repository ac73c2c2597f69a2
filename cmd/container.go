package cmd

import (
	"go.uber.org/dig"

	"github.com/olivvybee/emojitools/application"
	"github.com/olivvybee/emojitools/config"
	"github.com/olivvybee/emojitools/domain"
	"github.com/olivvybee/emojitools/infrastructure/actions"
	ghProvider "github.com/olivvybee/emojitools/infrastructure/provider/github"
	"github.com/olivvybee/emojitools/infrastructure/render"
	"github.com/olivvybee/emojitools/infrastructure/staging"
)

// buildContainer wires every constructor the commands need. The configuration
// is loaded once and shared by both services.
func buildContainer() (*dig.Container, error) {
	container := dig.New()

	constructors := []interface{}{
		func() (*config.Config, error) {
			return config.Load(configPath)
		},
		func(cfg *config.Config) domain.ReleaseProvider {
			return ghProvider.New(cfg.Release.Owner, cfg.Release.Repo, cfg.Release.Token)
		},
		func() domain.OutputSink {
			return actions.NewSink()
		},
		func() application.AssetStager {
			return &staging.Stager{SourceRoot: "."}
		},
		func() domain.Renderer {
			return render.NewSVGRenderer()
		},
		application.NewReleaseService,
		application.NewConvertService,
	}

	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return nil, err
		}
	}

	return container, nil
}
