package deps

import (
	"github.com/getsentry/raven-go"
)

// IgniteSentry always provides a client, without a dsn it drops every packet.
func IgniteSentry(container Deps) (Deps, error) {
	conf := container.Config()
	client, err := raven.NewWithTags(conf.UString("sentry.dsn"), map[string]string{
		"environment": conf.UString("environment", "development"),
		"config_file": EnvFile(),
	})
	if err != nil {
		return container, err
	}

	container.ErrorsProvider = client
	return container, nil
}
