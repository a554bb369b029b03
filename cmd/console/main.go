// Entry point for the HRMS Lite admin console. The controllers, session
// gate and API client carry all behaviour; this loop only renders their
// state and forwards keyboard input.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"hrms.lite/internal/config"
	"hrms.lite/internal/console/gateway"
	"hrms.lite/internal/console/hrms"
	"hrms.lite/internal/console/keystore"
	"hrms.lite/internal/console/pages"
	"hrms.lite/internal/console/session"
	"hrms.lite/pkg/logger"

	"github.com/rs/zerolog/log"
)

// terminalNotifier prints transient notifications straight to the terminal.
type terminalNotifier struct{}

func (terminalNotifier) Success(message string) { fmt.Println("[ok] " + message) }
func (terminalNotifier) Error(message string)   { fmt.Println("[error] " + message) }

type console struct {
	gate       *session.Gate
	keys       *keystore.Store
	signIn     *pages.SignInController
	dashboard  *pages.DashboardController
	employees  *pages.EmployeesController
	attendance *pages.AttendanceController
	in         *bufio.Scanner
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}
	logger.Setup(cfg.IsLocalDev)

	keys := keystore.New(cfg.ConsoleStateDir)
	api := hrms.NewClient(gateway.NewClient(cfg.APIBaseURL, keys))
	notify := terminalNotifier{}

	c := &console{
		gate:       session.NewGate(keys),
		keys:       keys,
		signIn:     pages.NewSignInController(api, keys, notify),
		dashboard:  pages.NewDashboardController(api),
		employees:  pages.NewEmployeesController(api, notify),
		attendance: pages.NewAttendanceController(api, notify),
		in:         bufio.NewScanner(os.Stdin),
	}

	c.run(context.Background(), session.RouteDashboard)
}

// run navigates between pages. Every hop goes through the gate, so a
// cleared credential drops straight back to sign-in.
func (c *console) run(ctx context.Context, requested session.Route) {
	for {
		route := c.gate.Resolve(requested)
		var next session.Route
		var quit bool

		switch route {
		case session.RouteSignIn:
			next, quit = c.showSignIn(ctx)
		case session.RouteDashboard:
			next, quit = c.showDashboard(ctx)
		case session.RouteEmployees:
			next, quit = c.showEmployees(ctx)
		case session.RouteAttendance:
			next, quit = c.showAttendance(ctx)
		}
		if quit {
			return
		}
		requested = next
	}
}

func (c *console) showSignIn(ctx context.Context) (session.Route, bool) {
	fmt.Println("\n== Admin Entrance ==")
	fmt.Println("Enter the shared superadmin key (or 'quit'):")

	for {
		input, ok := c.prompt("key> ")
		if !ok || input == "quit" {
			return "", true
		}

		c.signIn.Key = input
		if c.signIn.Submit(ctx) {
			return session.RouteDashboard, false
		}
		fmt.Println(c.signIn.Error)
	}
}

func (c *console) showDashboard(ctx context.Context) (session.Route, bool) {
	c.dashboard.Load(ctx)

	fmt.Println("\n== Dashboard ==")
	if c.dashboard.Error != "" {
		fmt.Println("[alert] " + c.dashboard.Error)
	} else {
		fmt.Printf("Total Employees: %d\n", c.dashboard.EmployeeCount)
	}

	return c.navPrompt()
}

func (c *console) showEmployees(ctx context.Context) (session.Route, bool) {
	c.employees.Load(ctx)

	for {
		fmt.Println("\n== Employees ==")
		if c.employees.PageError != "" {
			fmt.Println("[alert] " + c.employees.PageError)
		}
		for _, e := range c.employees.Employees {
			fmt.Printf("  %-10s %-24s %-28s %s\n", e.EmployeeID, e.FullName, e.Email, e.Department)
		}
		if len(c.employees.Employees) == 0 {
			fmt.Println("  No employees found")
		}

		fmt.Println("Commands: add <id> <name> <email> <department> | delete <id> | nav | quit")
		input, ok := c.prompt("employees> ")
		if !ok || input == "quit" {
			return "", true
		}

		switch {
		case input == "nav":
			return c.navPrompt()
		case strings.HasPrefix(input, "add "):
			fields := strings.Fields(input)[1:]
			form := pages.EmployeeForm{}
			if len(fields) > 0 {
				form.EmployeeID = fields[0]
			}
			if len(fields) > 1 {
				form.FullName = fields[1]
			}
			if len(fields) > 2 {
				form.Email = fields[2]
			}
			if len(fields) > 3 {
				form.Department = strings.Join(fields[3:], " ")
			}
			c.employees.Form = form
			c.employees.Submit(ctx)
			for field, msg := range c.employees.FormErrors {
				fmt.Printf("  %s: %s\n", field, msg)
			}
		case strings.HasPrefix(input, "delete "):
			id := strings.TrimSpace(strings.TrimPrefix(input, "delete "))
			for _, e := range c.employees.Employees {
				if e.EmployeeID == id {
					c.employees.RequestDelete(e)
				}
			}
			if pending := c.employees.PendingDelete(); pending != nil {
				answer, _ := c.prompt(fmt.Sprintf("Delete employee %s? (y/n) ", pending.EmployeeID))
				if answer == "y" {
					c.employees.ConfirmDelete(ctx)
				} else {
					c.employees.CancelDelete()
				}
			} else {
				fmt.Println("  Unknown employee id")
			}
		}
	}
}

func (c *console) showAttendance(ctx context.Context) (session.Route, bool) {
	c.attendance.Load(ctx)

	for {
		fmt.Println("\n== Attendance ==")
		if c.attendance.PageError != "" {
			fmt.Println("[alert] " + c.attendance.PageError)
		}
		if s := c.attendance.Summary; s != nil {
			fmt.Printf("Employee %s: %d records, %d present\n", s.EmployeeID, s.TotalRecords, s.TotalPresent)
			for _, rec := range s.Records {
				fmt.Printf("  %s  [%s]\n", rec.Date, rec.Status)
			}
		}

		fmt.Println("Commands: mark <id> <date> <PRESENT|ABSENT> | fetch <id> [date=YYYY-MM-DD] [month=YYYY-MM] | nav | quit")
		input, ok := c.prompt("attendance> ")
		if !ok || input == "quit" {
			return "", true
		}

		switch {
		case input == "nav":
			return c.navPrompt()
		case strings.HasPrefix(input, "mark "):
			fields := strings.Fields(input)[1:]
			form := pages.AttendanceForm{}
			if len(fields) > 0 {
				form.EmployeeID = fields[0]
			}
			if len(fields) > 1 {
				form.Date = fields[1]
			}
			if len(fields) > 2 {
				form.Status = hrms.Status(fields[2])
			}
			c.attendance.Form = form
			c.attendance.Mark(ctx)
			if c.attendance.FormError != "" {
				fmt.Println("  " + c.attendance.FormError)
			}
		case strings.HasPrefix(input, "fetch "):
			fields := strings.Fields(input)[1:]
			lookup := pages.AttendanceLookup{}
			if len(fields) == 0 {
				continue
			}
			lookup.EmployeeID = fields[0]
			for _, f := range fields[1:] {
				if v, found := strings.CutPrefix(f, "date="); found {
					lookup.Date = v
				}
				if v, found := strings.CutPrefix(f, "month="); found {
					lookup.Month = v
				}
			}
			c.attendance.Lookup = lookup
			c.attendance.FetchRecords(ctx)
		}
	}
}

// navPrompt is the main navigation menu shared by the signed-in pages.
func (c *console) navPrompt() (session.Route, bool) {
	for {
		input, ok := c.prompt("go to (dashboard|employees|attendance|logout|quit)> ")
		if !ok || input == "quit" {
			return "", true
		}
		switch input {
		case "logout":
			if err := c.keys.Clear(); err != nil {
				fmt.Println("[error] " + err.Error())
			}
			return session.RouteSignIn, false
		case "dashboard", "employees", "attendance":
			return session.Route(input), false
		}
	}
}

func (c *console) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}
