package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/noteloft/noteloft/internal/adapter/postgres"
	"github.com/noteloft/noteloft/internal/config"
	"github.com/noteloft/noteloft/internal/domain/user"
	"github.com/noteloft/noteloft/internal/service"
)

// runAdmin dispatches admin subcommands (seed, create-user, list-users).
func runAdmin(args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "--help" {
		printAdminHelp()
		return nil
	}

	switch args[0] {
	case "seed":
		return runAdminSeed(args[1:])
	case "create-user":
		return runAdminCreateUser(args[1:])
	case "list-users":
		return runAdminListUsers(args[1:])
	default:
		printAdminHelp()
		return fmt.Errorf("unknown admin command: %s", args[0])
	}
}

func printAdminHelp() {
	fmt.Fprintf(os.Stderr, `Usage: noteloft admin <command> [options]

Commands:
  seed             Seed the demo tenants and accounts (idempotent)
  create-user      Create a new user in a tenant
  list-users       List a tenant's users
  help             Show this help message

Examples:
  noteloft admin seed
  noteloft admin create-user --email new@acme.test --tenant acme --admin
  noteloft admin list-users --tenant acme
`)
}

type adminDeps struct {
	store *postgres.Store
	auth  *service.AuthService
	seed  *service.SeedService
}

func loadAdminDeps(ctx context.Context) (*adminDeps, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	store := postgres.NewStore(pool)
	authSvc := service.NewAuthService(store, &cfg.Auth, nil)

	deps := &adminDeps{
		store: store,
		auth:  authSvc,
		seed:  service.NewSeedService(store, authSvc),
	}
	return deps, pool.Close, nil
}

func runAdminSeed(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	deps, cleanup, err := loadAdminDeps(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := deps.seed.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Seeded %d tenants: %d new users, %d already present\n",
		len(result.Tenants), result.NewUsersCreated, result.ExistingUsers)
	return nil
}

func runAdminCreateUser(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	email := fs.String("email", "", "user email address (required)")
	tenantSlug := fs.String("tenant", "", "tenant slug (required)")
	password := fs.String("password", "", "password (prompted if not provided)") //nolint:gosec // CLI flag
	admin := fs.Bool("admin", false, "grant admin role")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return fmt.Errorf("--email is required")
	}
	if *tenantSlug == "" {
		return fmt.Errorf("--tenant is required")
	}

	pass := *password
	if pass == "" {
		var err error
		pass, err = promptPassword("Password: ")
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		if pass != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	role := user.RoleMember
	if *admin {
		role = user.RoleAdmin
	}

	ctx := context.Background()
	deps, cleanup, err := loadAdminDeps(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := deps.store.GetTenantBySlug(ctx, *tenantSlug)
	if err != nil {
		return fmt.Errorf("tenant %q: %w", *tenantSlug, err)
	}

	u, err := deps.auth.CreateUser(ctx, &user.CreateRequest{
		Email:    *email,
		Password: pass,
		Role:     role,
		TenantID: t.ID,
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Fprintf(os.Stderr, "User created: %s (id=%s, role=%s, tenant=%s)\n", u.Email, u.ID, u.Role, t.Slug)
	return nil
}

func runAdminListUsers(args []string) error {
	fs := flag.NewFlagSet("list-users", flag.ContinueOnError)
	tenantSlug := fs.String("tenant", "", "tenant slug (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *tenantSlug == "" {
		return fmt.Errorf("--tenant is required")
	}

	ctx := context.Background()
	deps, cleanup, err := loadAdminDeps(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := deps.store.GetTenantBySlug(ctx, *tenantSlug)
	if err != nil {
		return fmt.Errorf("tenant %q: %w", *tenantSlug, err)
	}

	users, err := deps.store.ListUsers(ctx, t.ID)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tEMAIL\tROLE\tCREATED")
	for i := range users {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			users[i].ID, users[i].Email, users[i].Role, users[i].CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// promptPassword reads a password from the terminal without echoing.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin)) //nolint:unconvert // int conversion needed on some platforms
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
