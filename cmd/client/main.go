// Command client is a small CLI for the expense-tracker API. It covers the
// full flow exposed by the server: account registration, login, and
// owner-scoped expense management using the issued bearer token.
//
// Usage:
//
//	client -s http://localhost:8080 register -email a@b.com -password secret123
//	client -s http://localhost:8080 login -email a@b.com -password secret123
//	client -s http://localhost:8080 add -token <jwt> -amount 12.50 -description lunch -category food
//	client -s http://localhost:8080 list -token <jwt>
//	client -s http://localhost:8080 delete -token <jwt> -id 7
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/ledgerly/go-expense-tracker/internal/adapter"
	"github.com/ledgerly/go-expense-tracker/internal/logger"
	"github.com/ledgerly/go-expense-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const requestTimeout = 15 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("expense-client")

	serverAddress := flag.String("s", "http://localhost:8080", "expense-tracker server address")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal().Msg("no command given: want register, login, add, list or delete")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *serverAddress,
		Timeout: requestTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	command, args := flag.Arg(0), flag.Args()[1:]
	if err = runCommand(ctx, serverAdapter, command, args); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}
}

func runCommand(ctx context.Context, a adapter.ServerAdapter, command string, args []string) error {
	switch command {
	case "register":
		return runRegister(ctx, a, args)
	case "login":
		return runLogin(ctx, a, args)
	case "add":
		return runAdd(ctx, a, args)
	case "list":
		return runList(ctx, a, args)
	case "delete":
		return runDelete(ctx, a, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runRegister(ctx context.Context, a adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (at least 8 characters)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.Register(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	fmt.Printf("%s (user id %d)\n", resp.Message, resp.UserID)
	return nil
}

func runLogin(ctx context.Context, a adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.Login(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	fmt.Printf("token (valid for %ds):\n%s\n", resp.ExpiresInSeconds, resp.Token)
	return nil
}

func runAdd(ctx context.Context, a adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	token := fs.String("token", "", "bearer token from login")
	amount := fs.Float64("amount", 0, "expense amount")
	description := fs.String("description", "", "what the money was spent on")
	category := fs.String("category", "", "expense category")
	if err := fs.Parse(args); err != nil {
		return err
	}
	a.SetToken(*token)

	expense, err := a.CreateExpense(ctx, models.ExpenseInput{
		Amount:      *amount,
		Description: *description,
		Category:    *category,
	})
	if err != nil {
		return err
	}

	fmt.Printf("expense %d recorded\n", expense.ExpenseID)
	return nil
}

func runList(ctx context.Context, a adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	token := fs.String("token", "", "bearer token from login")
	if err := fs.Parse(args); err != nil {
		return err
	}
	a.SetToken(*token)

	expenses, err := a.ListExpenses(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tCATEGORY\tDESCRIPTION")
	for _, e := range expenses {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\n",
			e.ExpenseID, e.Date.Format("2006-01-02"), e.Amount, e.Category, e.Description)
	}
	return w.Flush()
}

func runDelete(ctx context.Context, a adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	token := fs.String("token", "", "bearer token from login")
	id := fs.Int64("id", 0, "expense id to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	a.SetToken(*token)

	if err := a.DeleteExpense(ctx, *id); err != nil {
		return err
	}

	fmt.Printf("expense %d deleted\n", *id)
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
