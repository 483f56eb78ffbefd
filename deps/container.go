package deps

// Contains bootstraped dependencies.
var Container Deps

// An ignitor takes a Container and injects bootstraped dependencies.
type Ignitor func(Deps) (Deps, error)

// Default ignitors, backed by mongodb.
var Default = []Ignitor{
	IgniteConfig,
	IgniteLogger,
	IgniteSentry,
	IgniteNewRelic,
	IgniteMongoDB,
	IgniteCache,
}

// Runs ignitors to fulfill deps container.
func Bootstrap(ignitors ...Ignitor) (container Deps, err error) {
	for _, fn := range ignitors {
		container, err = fn(container)
		if err != nil {
			return
		}
	}
	Container = container
	return
}
