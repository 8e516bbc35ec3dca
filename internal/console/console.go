// Package console is the view layer: it renders cached data as terminal
// tables and drives mutations from subcommands. No business rules live here.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
	"github.com/Shahriyor2077/ayoqsh-console/internal/data"
	"github.com/Shahriyor2077/ayoqsh-console/internal/session"
)

// Console binds the session manager and data service to the CLI.
type Console struct {
	session *session.Manager
	data    *data.Service
	out     io.Writer
}

// New wires the console.
func New(sess *session.Manager, svc *data.Service, out io.Writer) *Console {
	return &Console{session: sess, data: svc, out: out}
}

// Run dispatches one subcommand.
func (c *Console) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.usage()
		return errors.New("buyruq ko'rsatilmadi")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return c.cmdLogin(ctx, rest)
	case "logout":
		return c.cmdLogout(ctx)
	case "whoami":
		return c.cmdWhoami(ctx)
	case "dashboard":
		return c.cmdDashboard(ctx)
	case "operator":
		return c.cmdOperator(ctx)
	case "checks":
		return c.cmdChecks(ctx, rest)
	case "stations":
		return c.cmdStations(ctx, rest)
	case "users":
		return c.cmdUsers(ctx, rest)
	case "messages":
		return c.cmdMessages(ctx, rest)
	case "report":
		return c.cmdReport(ctx, rest)
	case "help", "-h", "--help":
		c.usage()
		return nil
	default:
		c.usage()
		return fmt.Errorf("noma'lum buyruq: %s", cmd)
	}
}

func (c *Console) usage() {
	fmt.Fprint(c.out, `ayoqsh - AYoQSH chek boshqaruv konsoli

Buyruqlar:
  login -u USERNAME -p PASSWORD   tizimga kirish
  logout                          tizimdan chiqish
  whoami                          joriy foydalanuvchi
  dashboard                       umumiy statistika (admin)
  operator                        operator paneli
  checks list|create|confirm|cancel
  stations list|create|update|delete
  users list|create|update|delete
  messages list|send
  report [--order asc|desc] [--top N] [--export]
`)
}

// currentUser resolves the session and fails the command when nobody is
// logged in.
func (c *Console) currentUser(ctx context.Context) (*api.User, error) {
	user, err := c.session.Current(ctx)
	if err != nil && user == nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("avval tizimga kiring: ayoqsh login")
	}
	return user, nil
}
