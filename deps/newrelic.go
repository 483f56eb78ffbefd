package deps

import (
	newrelic "github.com/newrelic/go-agent"
)

func IgniteNewRelic(container Deps) (Deps, error) {
	license := container.Config().UString("newrelic.license")
	if license == "" {
		return container, nil
	}

	cfg := newrelic.NewConfig(container.Config().UString("newrelic.app", "orders"), license)
	app, err := newrelic.NewApplication(cfg)
	if err != nil {
		return container, err
	}

	container.TracerProvider = app
	return container, nil
}
