package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"github.com/storekeep/storekeep"
	"github.com/storekeep/storekeep/renderer"
)

type sessionCmd struct {
	configPath string
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start the interactive store session" }
func (*sessionCmd) Usage() string {
	return `skp session [-config <file>]

  Starts the interactive store session: a credential gate followed by the
  main menu (Manage Inventory, Record Sale, Record Purchase, Reports, Exit).
  All state lives in memory and is discarded on exit.
`
}

func (p *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.configPath, "config", "storekeep.yaml", "Path to the session configuration file.")
}

func (p *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "Error: session requires an interactive terminal")
		return subcommands.ExitFailure
	}

	cfg, err := storekeep.LoadConfig(p.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printTitle("Welcome to the Storekeep Inventory System")

	if !login(cfg.Credentials()) {
		log.Println("authentication failed")
		fmt.Fprintln(os.Stderr, "Authentication failed")
		return subcommands.ExitFailure
	}

	s := &session{store: storekeep.NewStore(), cfg: cfg}
	if err := s.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Goodbye")
	return subcommands.ExitSuccess
}

// login prompts for the credential pair and checks it against the verifier.
func login(v storekeep.CredentialVerifier) bool {
	var username, password string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Username").Value(&username),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return v.Verify(strings.TrimSpace(username), strings.TrimSpace(password))
}

// session drives the interactive menu loop over a single in-memory store.
type session struct {
	store *storekeep.Store
	cfg   storekeep.Config
}

func (s *session) run() error {
	for {
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Menu").
				Options(
					huh.NewOption("Manage Inventory", "inventory"),
					huh.NewOption("Record Sale", "sale"),
					huh.NewOption("Record Purchase", "purchase"),
					huh.NewOption("Reports", "reports"),
					huh.NewOption("Exit", "exit"),
				).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch choice {
		case "inventory":
			s.manageInventory()
		case "sale":
			s.recordSale()
		case "purchase":
			s.recordPurchase()
		case "reports":
			printMarkdown(renderer.ReportMarkdown(s.store), s.cfg.Theme)
		case "exit":
			return nil
		}
	}
}

func (s *session) manageInventory() {
	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Manage Inventory").
			Options(
				huh.NewOption("Add", "add"),
				huh.NewOption("Edit", "edit"),
				huh.NewOption("Delete", "delete"),
				huh.NewOption("List", "list"),
				huh.NewOption("Back", "back"),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return
	}

	switch choice {
	case "add":
		s.addProduct()
	case "edit":
		s.editProduct()
	case "delete":
		s.deleteProduct()
	case "list":
		printMarkdown(renderer.InventoryMarkdown(s.store.Catalog()), s.cfg.Theme)
	}
}

func (s *session) addProduct() {
	var name, description, price, quantity string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Validate(validateName).Value(&name),
		huh.NewInput().Title("Description").Value(&description),
		huh.NewInput().Title("Price").Validate(s.validatePrice).Value(&price),
		huh.NewInput().Title("Quantity").Validate(validateQuantity).Value(&quantity),
	))
	if err := form.Run(); err != nil {
		return
	}

	m, _ := storekeep.ParseMoney(strings.TrimSpace(price), s.cfg.Currency)
	q, _ := storekeep.ParseQuantity(strings.TrimSpace(quantity))
	if err := s.store.Catalog().Add(strings.TrimSpace(name), strings.TrimSpace(description), m, q); err != nil {
		printError(err)
		return
	}
	printOK("Product added")
}

func (s *session) editProduct() {
	var name, description, price, quantity string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Validate(validateName).Value(&name),
		huh.NewInput().Title("New Description (blank to keep)").Value(&description),
		huh.NewInput().Title("New Price (blank to keep)").Validate(optional(s.validatePrice)).Value(&price),
		huh.NewInput().Title("New Quantity (blank to keep)").Validate(optional(validateQuantity)).Value(&quantity),
	))
	if err := form.Run(); err != nil {
		return
	}

	var u storekeep.ProductUpdate
	if d := strings.TrimSpace(description); d != "" {
		u.Description = &d
	}
	if v := strings.TrimSpace(price); v != "" {
		m, _ := storekeep.ParseMoney(v, s.cfg.Currency)
		u.Price = &m
	}
	if v := strings.TrimSpace(quantity); v != "" {
		q, _ := storekeep.ParseQuantity(v)
		u.Quantity = &q
	}
	if err := s.store.Catalog().Edit(strings.TrimSpace(name), u); err != nil {
		printError(err)
		return
	}
	printOK("Product edited")
}

func (s *session) deleteProduct() {
	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Validate(validateName).Value(&name),
	))
	if err := form.Run(); err != nil {
		return
	}
	if err := s.store.Catalog().Delete(strings.TrimSpace(name)); err != nil {
		printError(err)
		return
	}
	printOK("Product deleted")
}

func (s *session) recordSale() {
	name, qty, unit, ok := s.transactionForm("Sale Price")
	if !ok {
		return
	}
	tx, err := s.store.RecordSale(name, qty, unit)
	if err != nil {
		printError(err)
		return
	}
	printOK(renderer.Transaction(tx))
}

func (s *session) recordPurchase() {
	name, qty, unit, ok := s.transactionForm("Purchase Price")
	if !ok {
		return
	}
	tx, err := s.store.RecordPurchase(name, qty, unit)
	if err != nil {
		printError(err)
		return
	}
	printOK(renderer.Transaction(tx))
}

// transactionForm prompts for the arguments common to both record operations.
func (s *session) transactionForm(priceTitle string) (name string, qty storekeep.Quantity, unit storekeep.Money, ok bool) {
	var rawName, rawQty, rawPrice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Product").Validate(validateName).Value(&rawName),
		huh.NewInput().Title("Quantity").Validate(validatePositiveQuantity).Value(&rawQty),
		huh.NewInput().Title(priceTitle).Validate(s.validatePrice).Value(&rawPrice),
	))
	if err := form.Run(); err != nil {
		return "", storekeep.Quantity{}, storekeep.Money{}, false
	}
	qty, _ = storekeep.ParseQuantity(strings.TrimSpace(rawQty))
	unit, _ = storekeep.ParseMoney(strings.TrimSpace(rawPrice), s.cfg.Currency)
	return strings.TrimSpace(rawName), qty, unit, true
}

// Form validators. Malformed numeric input is rejected here, before it
// reaches the core: there is no silent zero-defaulting.

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

func (s *session) validatePrice(raw string) error {
	m, err := storekeep.ParseMoney(strings.TrimSpace(raw), s.cfg.Currency)
	if err != nil {
		return errors.New("price must be a number")
	}
	if m.IsNegative() {
		return errors.New("price must not be negative")
	}
	return nil
}

func validateQuantity(raw string) error {
	if _, err := storekeep.ParseQuantity(strings.TrimSpace(raw)); err != nil {
		return errors.New("quantity must be a whole non-negative number")
	}
	return nil
}

func validatePositiveQuantity(raw string) error {
	q, err := storekeep.ParseQuantity(strings.TrimSpace(raw))
	if err != nil || !q.IsPositive() {
		return errors.New("quantity must be a whole positive number")
	}
	return nil
}

// optional wraps a validator to accept blank input (meaning "keep").
func optional(validate func(string) error) func(string) error {
	return func(raw string) error {
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		return validate(raw)
	}
}
