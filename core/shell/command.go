package shell

import (
	"errors"

	"github.com/abiosoft/ishell"
	"github.com/tryanzu/orders/deps"
)

// ErrUnsupported is returned when the configured store cannot run a command.
var ErrUnsupported = errors.New("command not supported by the configured store")

// New shell with the maintenance commands bound to container.
func New(container deps.Deps) *ishell.Shell {
	shell := ishell.New()
	shell.Println("Orders Interactive Shell 0.1")

	shell.AddCmd(&ishell.Cmd{
		Name: "duplicates",
		Help: "Report natural keys held by more than one document: duplicates [collection...]",
		Func: func(c *ishell.Context) {
			auditor, ok := container.Auditor()
			if !ok {
				c.Println("error:", ErrUnsupported)
				return
			}
			found, err := Duplicates(auditor, shellWriter{c}, c.Args...)
			if err != nil {
				c.Println("error:", err)
				return
			}
			c.Printf("%d duplicated keys found\n", found)
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "indexes",
		Help: "Ensure the unique natural key indexes.",
		Func: func(c *ishell.Context) {
			db := container.Mgo()
			if db == nil {
				c.Println("error:", ErrUnsupported)
				return
			}
			if err := db.EnsureIndexes(deps.Indexes...); err != nil {
				c.Println("error:", err)
				return
			}
			c.Println("indexes ensured")
		},
	})

	return shell
}

// RunShell runs a single command when args are given, otherwise it starts
// the interactive shell.
func RunShell(container deps.Deps, args ...string) error {
	shell := New(container)
	if len(args) > 0 {
		return shell.Process(args...)
	}
	shell.Run()
	return nil
}

type shellWriter struct {
	c *ishell.Context
}

func (w shellWriter) Write(p []byte) (int, error) {
	w.c.Print(string(p))
	return len(p), nil
}
