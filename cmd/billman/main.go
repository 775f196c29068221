// Command billman is a terminal front end for the billing core: a
// simulated login followed by a single "page" of customers, items,
// and dashboard stats, all held in memory for the session.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/mmynk/billman/internal/auth"
	"github.com/mmynk/billman/internal/calculator"
	"github.com/mmynk/billman/internal/config"
	"github.com/mmynk/billman/internal/idgen"
	"github.com/mmynk/billman/internal/models"
	"github.com/mmynk/billman/internal/service"
	"github.com/mmynk/billman/internal/storage/memory"
	"github.com/mmynk/billman/pkg/logging"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	store := memory.New(memory.WithIDGenerator(idgen.FromScheme(cfg.IDScheme)))
	defer store.Close()

	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)
	authSvc := service.NewAuthService(
		auth.NewPlaceholderAuthenticator(),
		sessions,
		cfg.AuthDelay,
		slog.Default(),
	)
	billing := service.NewBillingService(store)

	ui := &ui{
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
		auth:    authSvc,
		billing: billing,
	}
	if err := ui.run(context.Background()); err != nil {
		slog.Error("billman exited", "error", err)
		os.Exit(1)
	}
}

type ui struct {
	in      *bufio.Scanner
	out     *os.File
	auth    *service.AuthService
	billing *service.BillingService
	session *service.Session
}

func (u *ui) run(ctx context.Context) error {
	fmt.Fprintln(u.out, "billman — customer, item & invoice management")

	for {
		if u.session == nil {
			if !u.login(ctx) {
				return nil
			}
		}
		if !u.commandLoop(ctx) {
			return nil
		}
	}
}

// login runs the simulated auth form until a session opens or input
// ends. Returns false when stdin is exhausted.
func (u *ui) login(ctx context.Context) bool {
	for {
		mode, ok := u.prompt("login or signup [login]: ")
		if !ok {
			return false
		}
		email, ok := u.prompt("email: ")
		if !ok {
			return false
		}
		password, ok := u.prompt("password: ")
		if !ok {
			return false
		}
		roleInput, ok := u.prompt("role (User/Admin) [User]: ")
		if !ok {
			return false
		}

		role := models.Role(strings.TrimSpace(roleInput))
		fmt.Fprintln(u.out, "Please wait…")

		var (
			session *service.Session
			err     error
		)
		if strings.EqualFold(strings.TrimSpace(mode), "signup") {
			session, err = u.auth.Register(ctx, email, password, role)
		} else {
			session, err = u.auth.Login(ctx, email, password, role)
		}
		if err != nil {
			fmt.Fprintf(u.out, "Authentication failed: %v\n", err)
			continue
		}

		u.session = session
		fmt.Fprintf(u.out, "Welcome %s · %s\n", session.User.Email, session.User.Role)
		fmt.Fprintln(u.out, `Type "help" for commands.`)
		return true
	}
}

// commandLoop handles one authenticated session. Returns false to
// quit entirely, true after a logout.
func (u *ui) commandLoop(ctx context.Context) bool {
	for {
		line, ok := u.prompt("> ")
		if !ok {
			return false
		}
		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)

		var err error
		switch cmd {
		case "":
		case "help":
			u.printHelp()
		case "dash":
			err = u.showDashboard(ctx)
		case "customers":
			err = u.showCustomers(ctx, rest)
		case "customer":
			err = u.customerCommand(ctx, rest)
		case "select":
			err = u.billing.SelectCustomer(ctx, rest)
		case "items":
			err = u.showItems(ctx)
		case "item":
			err = u.itemCommand(ctx, rest)
		case "filter":
			err = u.filterCommand(rest)
		case "logout":
			u.auth.Logout(ctx, u.session)
			u.session = nil
			return true
		case "quit", "exit":
			return false
		default:
			fmt.Fprintf(u.out, "unknown command %q; try help\n", cmd)
		}
		if err != nil {
			fmt.Fprintf(u.out, "error: %v\n", err)
		}
	}
}

func (u *ui) printHelp() {
	fmt.Fprint(u.out, `commands:
  dash                                     dashboard totals
  customers [query]                        list/search customers
  customer add <name>|<phone>[|<address>]  create customer
  customer edit <id> <field>=<value>...    patch name/phone/address
  customer del <id>                        delete customer (+ items)
  select [id]                              set or clear active customer
  items                                    active customer's items (filtered)
  item add <name>|<amount>[|rate|status|date]
  item edit <id> <field>=<value>...        patch name/amount/rate/status/date
  item del <id>                            delete item
  filter <field>=<value>... | filter clear set item filter
  logout / quit
`)
}

func (u *ui) showDashboard(ctx context.Context) error {
	stats, err := u.billing.Dashboard(ctx)
	if err != nil {
		return err
	}
	u.printStats(stats)
	return nil
}

func (u *ui) printStats(stats calculator.Stats) {
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Total Customers\tTotal Paid\tTotal Due\tPending Balance")
	fmt.Fprintf(w, "%d\t$%.2f\t$%.2f\t$%.2f\n",
		stats.TotalCustomers, stats.TotalPaid, stats.TotalDue, stats.PendingBalance)
	w.Flush()
}

func (u *ui) showCustomers(ctx context.Context, query string) error {
	customers, err := u.billing.SearchCustomers(ctx, query)
	if err != nil {
		return err
	}
	active, err := u.billing.ActiveCustomer(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tName\tPhone\tAddress")
	for _, c := range customers {
		marker := ""
		if active != nil && active.ID == c.ID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", marker, c.ID, c.Name, c.Phone, orDash(c.Address))
	}
	return w.Flush()
}

func (u *ui) showItems(ctx context.Context) error {
	active, err := u.billing.ActiveCustomer(ctx)
	if err != nil {
		return err
	}
	if active == nil {
		fmt.Fprintln(u.out, "Select a customer to manage their items.")
		return nil
	}
	fmt.Fprintf(u.out, "Active customer: %s\n", active.Name)
	if !u.billing.Filter().IsZero() {
		fmt.Fprintln(u.out, "(filter active)")
	}

	items, err := u.billing.VisibleItems(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tAmount\tRate %\tTotal\tStatus\tDate")
	for _, item := range items {
		rate := "—"
		if item.Rate != 0 {
			rate = strconv.FormatFloat(item.Rate, 'f', -1, 64)
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%.2f\t%s\t%s\n",
			item.ID, item.Name, item.Amount, rate, item.Total, item.Status, item.Date)
	}
	return w.Flush()
}

func (u *ui) customerCommand(ctx context.Context, rest string) error {
	sub, args, _ := strings.Cut(rest, " ")
	args = strings.TrimSpace(args)

	switch sub {
	case "add":
		fields := strings.Split(args, "|")
		name := field(fields, 0)
		phone := field(fields, 1)
		address := field(fields, 2)
		customer, err := u.billing.CreateCustomer(ctx, name, phone, address)
		if err != nil {
			return err
		}
		fmt.Fprintf(u.out, "created customer %s\n", customer.ID)
		return nil
	case "edit":
		id, assignments, _ := strings.Cut(args, " ")
		patch, err := parseCustomerPatch(assignments)
		if err != nil {
			return err
		}
		return u.billing.UpdateCustomer(ctx, id, patch)
	case "del":
		return u.billing.DeleteCustomer(ctx, args)
	default:
		return fmt.Errorf("unknown customer subcommand %q", sub)
	}
}

func (u *ui) itemCommand(ctx context.Context, rest string) error {
	sub, args, _ := strings.Cut(rest, " ")
	args = strings.TrimSpace(args)

	switch sub {
	case "add":
		draft, err := parseItemDraft(args)
		if err != nil {
			return err
		}
		item, err := u.billing.CreateItem(ctx, draft)
		if err != nil {
			return err
		}
		fmt.Fprintf(u.out, "created item %s (total %.2f)\n", item.ID, item.Total)
		return nil
	case "edit":
		id, assignments, _ := strings.Cut(args, " ")
		patch, err := parseItemPatch(assignments)
		if err != nil {
			return err
		}
		return u.billing.UpdateItem(ctx, id, patch)
	case "del":
		return u.billing.DeleteItem(ctx, args)
	default:
		return fmt.Errorf("unknown item subcommand %q", sub)
	}
}

func (u *ui) filterCommand(rest string) error {
	if rest == "clear" || rest == "" {
		u.billing.SetFilter(models.FilterSpec{})
		return nil
	}

	spec := u.billing.Filter()
	for _, assignment := range strings.Fields(rest) {
		key, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return fmt.Errorf("expected field=value, got %q", assignment)
		}
		switch key {
		case "query":
			spec.Query = value
		case "status":
			spec.Status = models.ItemStatus(value)
		case "from":
			spec.StartDate = value
		case "to":
			spec.EndDate = value
		case "min", "max":
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("bad %s amount %q", key, value)
			}
			if key == "min" {
				spec.MinAmount = &n
			} else {
				spec.MaxAmount = &n
			}
		default:
			return fmt.Errorf("unknown filter field %q", key)
		}
	}
	u.billing.SetFilter(spec)
	return nil
}

func (u *ui) prompt(label string) (string, bool) {
	fmt.Fprint(u.out, label)
	if !u.in.Scan() {
		fmt.Fprintln(u.out)
		return "", false
	}
	return u.in.Text(), true
}

func parseCustomerPatch(assignments string) (models.CustomerPatch, error) {
	var patch models.CustomerPatch
	for _, assignment := range strings.Fields(assignments) {
		key, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return patch, fmt.Errorf("expected field=value, got %q", assignment)
		}
		switch key {
		case "name":
			patch.Name = &value
		case "phone":
			patch.Phone = &value
		case "address":
			patch.Address = &value
		default:
			return patch, fmt.Errorf("unknown customer field %q", key)
		}
	}
	return patch, nil
}

func parseItemDraft(args string) (models.ItemDraft, error) {
	fields := strings.Split(args, "|")
	draft := models.ItemDraft{
		Name:   field(fields, 0),
		Status: models.ItemStatus(field(fields, 3)),
		Date:   field(fields, 4),
	}

	if raw := field(fields, 1); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return draft, fmt.Errorf("bad amount %q", raw)
		}
		draft.Amount = amount
	}
	if raw := field(fields, 2); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return draft, fmt.Errorf("bad rate %q", raw)
		}
		draft.Rate = rate
	}
	return draft, nil
}

func parseItemPatch(assignments string) (models.ItemPatch, error) {
	var patch models.ItemPatch
	for _, assignment := range strings.Fields(assignments) {
		key, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return patch, fmt.Errorf("expected field=value, got %q", assignment)
		}
		switch key {
		case "name":
			patch.Name = &value
		case "amount", "rate":
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return patch, fmt.Errorf("bad %s %q", key, value)
			}
			if key == "amount" {
				patch.Amount = &n
			} else {
				patch.Rate = &n
			}
		case "status":
			status := models.ItemStatus(value)
			patch.Status = &status
		case "date":
			patch.Date = &value
		default:
			return patch, fmt.Errorf("unknown item field %q", key)
		}
	}
	return patch, nil
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return strings.TrimSpace(fields[i])
	}
	return ""
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
