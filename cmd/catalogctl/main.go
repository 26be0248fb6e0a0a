// Command catalogctl drives the product-catalog API from the terminal.
// The session persists in a JSON file under the user config directory, so
// a login survives across invocations the way a browser session would.
//
// Usage:
//
//	catalogctl -base https://localhost:7175/api login -user admin -pass secret
//	catalogctl -base https://localhost:7175/api products -page 1 -size 10
//	catalogctl -base https://localhost:7175/api purchase -product <id>
//	catalogctl logout
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	catalogkit "github.com/catalogkit/catalogkit"
	"github.com/catalogkit/catalogkit/catalog"
	"github.com/catalogkit/catalogkit/guard"
	"github.com/catalogkit/catalogkit/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "catalogctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("catalogctl", flag.ExitOnError)
	baseURL := global.String("base", "https://localhost:7175/api", "API base URL")
	verbose := global.Bool("v", false, "debug logging")
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() < 1 {
		return fmt.Errorf("expected a command: login, logout, products, categories, purchase, whoami")
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("locating config dir: %w", err)
	}
	store := session.NewFileStore(filepath.Join(configDir, "catalogctl", "session.json"))

	client, err := catalogkit.New().
		WithBaseURL(*baseURL).
		WithStore(store).
		WithLogger(log).
		WithNavigator(guard.NavigatorFunc(func(path string) {
			log.WithField("path", path).Debug("session redirect")
		})).
		Build()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	command, rest := global.Arg(0), global.Args()[1:]
	switch command {
	case "login":
		return cmdLogin(ctx, client, rest)
	case "logout":
		client.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return cmdWhoami(ctx, client)
	case "products":
		return cmdProducts(ctx, client, rest)
	case "categories":
		return cmdCategories(ctx, client)
	case "purchase":
		return cmdPurchase(ctx, client, rest)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func cmdLogin(ctx context.Context, client *catalogkit.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("user", "", "username")
	pass := fs.String("pass", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" || *pass == "" {
		return fmt.Errorf("login requires -user and -pass")
	}

	if err := client.Login(ctx, *user, *pass); err != nil {
		return err
	}
	snap := client.Session().Snapshot()
	fmt.Printf("logged in as %s (roles: %s)\n", snap.Username, strings.Join(snap.Roles, ", "))
	return nil
}

func cmdWhoami(ctx context.Context, client *catalogkit.Client) error {
	snap := client.Session().Snapshot()
	if !snap.LoggedIn {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s (roles: %s, token expired: %v)\n",
		snap.Username, strings.Join(snap.Roles, ", "), client.IsExpired(ctx))
	return nil
}

func cmdProducts(ctx context.Context, client *catalogkit.Client, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 10, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := client.Catalog().Products().List(ctx, *page, *size)
	if err != nil {
		return err
	}
	for _, p := range result.Items {
		fmt.Printf("%-36s  %-30s  %s\n", p.ID, p.Name, p.Category.Name)
	}
	fmt.Printf("page %d/%d, %d products total\n", result.PageNumber, result.TotalPages, result.TotalCount)
	return nil
}

func cmdCategories(ctx context.Context, client *catalogkit.Client) error {
	categories, err := client.Catalog().Categories().List(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		fmt.Printf("%-36s  %s\n", c.ID, c.Name)
	}
	return nil
}

func cmdPurchase(ctx context.Context, client *catalogkit.Client, args []string) error {
	fs := flag.NewFlagSet("purchase", flag.ExitOnError)
	productID := fs.String("product", "", "product id")
	quantity := fs.Int("quantity", 1, "quantity")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *productID == "" {
		return fmt.Errorf("purchase requires -product")
	}

	var (
		res *catalog.PurchaseResponse
		err error
	)
	if *quantity == 1 {
		res, err = client.Catalog().Purchases().QuickPurchase(ctx, *productID)
	} else {
		res, err = client.Catalog().Purchases().Purchase(ctx, catalog.PurchaseRequest{
			ProductID: *productID,
			Quantity:  *quantity,
		})
	}
	if err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("purchase rejected: %s", res.Message)
	}
	fmt.Printf("%s (order %s)\n", res.Message, res.OrderID)
	return nil
}
