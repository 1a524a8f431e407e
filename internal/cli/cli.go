// Package cli renders the numbered menus and dispatches user choices to the
// services. It reads from and writes to injected streams, so the whole flow
// runs under tests without a console.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	authapp "github.com/annie29007/ds-cart/internal/auth/app"
	cartapp "github.com/annie29007/ds-cart/internal/cart/app"
	catalogapp "github.com/annie29007/ds-cart/internal/catalog/app"
	"github.com/annie29007/ds-cart/internal/catalog/domain"
	checkoutapp "github.com/annie29007/ds-cart/internal/checkout/app"
	checkoutdomain "github.com/annie29007/ds-cart/internal/checkout/domain"
	"github.com/annie29007/ds-cart/internal/session"
)

type Services struct {
	Auth     *authapp.Service
	Catalog  *catalogapp.Service
	Cart     *cartapp.Service
	Checkout *checkoutapp.Service
}

type CLI struct {
	in   *bufio.Scanner
	out  io.Writer
	log  *slog.Logger
	sess *session.Session
	svc  Services
}

func New(in io.Reader, out io.Writer, log *slog.Logger, svc Services) *CLI {
	return &CLI{
		in:   bufio.NewScanner(in),
		out:  out,
		log:  log,
		sess: session.New(),
		svc:  svc,
	}
}

// Run drives the menu loop until Exit, end of input, or context
// cancellation. User and data errors are reported and the loop continues.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "===== Welcome to DS Cart =====")

	for ctx.Err() == nil {
		var done bool
		switch c.sess.State() {
		case session.LoggedOut:
			done = c.mainMenu(ctx)
		case session.UserSession:
			done = c.userMenu(ctx)
		case session.AdminSession:
			done = c.adminMenu()
		}
		if done {
			return nil
		}
	}
	c.log.Info("shutdown requested")
	return ctx.Err()
}

func (c *CLI) mainMenu(ctx context.Context) (done bool) {
	fmt.Fprintln(c.out, "\nMain Menu")
	fmt.Fprintln(c.out, "1. Register\n2. Login\n3. Admin\n4. Exit")

	choice, ok := c.readChoice()
	if !ok {
		return true
	}

	switch choice {
	case 1:
		c.register(ctx)
	case 2:
		c.login(ctx)
	case 3:
		c.enterAdmin()
	case 4:
		fmt.Fprintln(c.out, "Goodbye!")
		return true
	default:
		fmt.Fprintln(c.out, "Invalid choice.")
	}
	return false
}

func (c *CLI) register(ctx context.Context) {
	username, ok := c.readLine("Username: ")
	if !ok {
		return
	}
	password, ok := c.readLine("Password: ")
	if !ok {
		return
	}

	switch err := c.svc.Auth.Register(ctx, username, password); {
	case err == nil:
		fmt.Fprintln(c.out, "Registered successfully!")
	case errors.Is(err, authapp.ErrInvalidInput):
		fmt.Fprintln(c.out, "Username and password must be non-empty and contain no spaces.")
	default:
		c.log.Error("register failed", slog.Any("err", err))
		fmt.Fprintln(c.out, "Error registering user.")
	}
}

func (c *CLI) login(ctx context.Context) {
	username, ok := c.readLine("Username: ")
	if !ok {
		return
	}
	password, ok := c.readLine("Password: ")
	if !ok {
		return
	}

	if err := c.svc.Auth.Login(ctx, username, password); err != nil {
		if !errors.Is(err, authapp.ErrAuthentication) {
			c.log.Error("login failed", slog.Any("err", err))
		}
		fmt.Fprintln(c.out, "Login failed.")
		return
	}

	if err := c.sess.Login(username); err != nil {
		fmt.Fprintln(c.out, "Login failed.")
		return
	}
	c.log.Info("user logged in", slog.String("user", username))
	fmt.Fprintf(c.out, "Login success! Welcome, %s\n", username)
}

func (c *CLI) enterAdmin() {
	password, ok := c.readLine("Enter admin password: ")
	if !ok {
		return
	}
	if err := c.svc.Auth.VerifyAdmin(password); err != nil {
		fmt.Fprintln(c.out, "Wrong password!")
		return
	}
	if err := c.sess.EnterAdmin(); err != nil {
		fmt.Fprintln(c.out, "Wrong password!")
	}
}

func (c *CLI) userMenu(ctx context.Context) (done bool) {
	fmt.Fprintf(c.out, "\n=== User Menu (%s) ===\n", c.sess.User())
	fmt.Fprintln(c.out, "1. View Products\n2. Add to Cart\n3. Remove Last from Cart\n4. View Cart\n5. Checkout\n6. Logout")

	choice, ok := c.readChoice()
	if !ok {
		return true
	}

	switch choice {
	case 1:
		c.showProducts()
	case 2:
		c.addToCart()
	case 3:
		if _, ok := c.svc.Cart.RemoveLast(); ok {
			fmt.Fprintln(c.out, "Removed last item from cart.")
		} else {
			fmt.Fprintln(c.out, "Cart empty.")
		}
	case 4:
		c.showCart()
	case 5:
		c.checkout(ctx)
	case 6:
		if err := c.sess.Logout(); err == nil {
			c.svc.Cart.Clear()
		}
	default:
		fmt.Fprintln(c.out, "Invalid choice.")
	}
	return false
}

func (c *CLI) showProducts() {
	fmt.Fprintf(c.out, "\n%-5s %-15s %-12s %-10s %-8s\n", "ID", "Name", "Category", "Price", "Stock")
	fmt.Fprintln(c.out, "-------------------------------------------------------------")
	for p := range c.svc.Catalog.All() {
		fmt.Fprintf(c.out, "%-5d %-15s %-12s %-10s %-8d\n",
			p.ID, p.Name, p.Category, p.Price.String(), p.Stock)
	}
}

func (c *CLI) addToCart() {
	id := c.readInt("Enter product ID: ")
	p, err := c.svc.Catalog.GetProduct(id)
	if err != nil {
		fmt.Fprintln(c.out, "No such product.")
		return
	}

	qty := c.readInt("Enter quantity: ")
	switch _, err := c.svc.Cart.Add(id, qty); {
	case err == nil:
		fmt.Fprintf(c.out, "Added %d x %s to cart.\n", qty, p.Name)
	case errors.Is(err, cartapp.ErrInsufficientStock):
		fmt.Fprintf(c.out, "Only %d left in stock.\n", p.Stock)
	case errors.Is(err, cartapp.ErrInvalidQuantity):
		fmt.Fprintln(c.out, "Quantity must be at least 1.")
	case errors.Is(err, catalogapp.ErrNotFound):
		fmt.Fprintln(c.out, "No such product.")
	default:
		c.log.Error("add to cart failed", slog.Any("err", err))
		fmt.Fprintln(c.out, "Could not add to cart.")
	}
}

func (c *CLI) showCart() {
	items := c.svc.Cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(c.out, "\nCart is empty.")
		return
	}

	fmt.Fprintln(c.out, "\nYour Cart:")
	fmt.Fprintf(c.out, "%-5s %-15s %-8s %-10s\n", "ID", "Name", "Qty", "Price")
	fmt.Fprintln(c.out, "--------------------------------------")
	for _, it := range items {
		name, price := it.Name, domain.FormatAmount(it.UnitAmount)
		if it.Unavailable {
			name, price = "(unavailable)", "-"
		}
		fmt.Fprintf(c.out, "%-5d %-15s %-8d %-10s\n", it.ProductID, name, it.Quantity, price)
	}
}

func (c *CLI) checkout(ctx context.Context) {
	st, err := c.svc.Checkout.Checkout(ctx, c.sess.User())
	if err != nil && errors.Is(err, checkoutapp.ErrEmptyCart) {
		fmt.Fprintln(c.out, "Cart empty! Add items first.")
		return
	}

	fmt.Fprintln(c.out, "\n--- Checkout ---")
	fmt.Fprintf(c.out, "%-15s %-8s %-10s %-10s\n", "Item", "Qty", "Price", "LineTotal")
	fmt.Fprintln(c.out, "----------------------------------------------")
	for _, l := range st.Lines {
		fmt.Fprintf(c.out, "%-15s %-8d %-10s %-10s\n",
			l.Name, l.Quantity, domain.FormatAmount(l.UnitPrice.Amount), domain.FormatAmount(l.LineTotal.Amount))
	}
	for _, sk := range st.Skipped {
		name := sk.Name
		if name == "" {
			name = fmt.Sprintf("Product %d", sk.ProductID)
		}
		if sk.Reason == checkoutdomain.ReasonOutOfStock {
			fmt.Fprintf(c.out, "%s: Not enough stock!\n", name)
		} else {
			fmt.Fprintf(c.out, "%s: %s\n", name, sk.Reason)
		}
	}
	fmt.Fprintln(c.out, "----------------------------------------------")
	fmt.Fprintf(c.out, "Total: %s\n", domain.FormatAmount(st.Total.Amount))

	c.log.Info("checkout settled",
		slog.String("user", st.UserID),
		slog.String("total", domain.FormatAmount(st.Total.Amount)),
		slog.Int("lines", len(st.Lines)),
		slog.Int("skipped", len(st.Skipped)),
	)

	if err != nil {
		c.log.Warn("receipt not persisted", slog.Any("err", err))
		fmt.Fprintln(c.out, "Warning: could not save the bill; your order still went through.")
		return
	}
	fmt.Fprintln(c.out, "Bill saved. Thank you for shopping with DS Cart!")
}

func (c *CLI) adminMenu() (done bool) {
	fmt.Fprintln(c.out, "\n=== Admin Menu ===")
	fmt.Fprintln(c.out, "1. View Products\n2. Add Product\n3. Delete Product\n4. Update Stock\n5. Back")

	choice, ok := c.readChoice()
	if !ok {
		return true
	}

	switch choice {
	case 1:
		c.showProducts()
	case 2:
		c.addProduct()
	case 3:
		id := c.readInt("ID to delete: ")
		if err := c.svc.Catalog.DeleteProduct(id); err != nil {
			fmt.Fprintln(c.out, "Not found.")
		} else {
			fmt.Fprintln(c.out, "Deleted.")
		}
	case 4:
		c.updateStock()
	case 5:
		c.sess.LeaveAdmin()
	default:
		fmt.Fprintln(c.out, "Invalid.")
	}
	return false
}

func (c *CLI) addProduct() {
	id := c.readInt("New ID: ")
	if _, err := c.svc.Catalog.GetProduct(id); err == nil {
		fmt.Fprintln(c.out, "ID already exists.")
		return
	}

	name, ok := c.readLine("Name: ")
	if !ok {
		return
	}
	category, ok := c.readLine("Category: ")
	if !ok {
		return
	}
	priceText, ok := c.readLine("Price: ")
	if !ok {
		return
	}
	amount, err := domain.ParseAmount(priceText)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid price.")
		return
	}
	stock := c.readInt("Stock: ")

	price := domain.Money{Currency: c.currency(), Amount: amount}
	switch _, err := c.svc.Catalog.AddProduct(id, name, category, price, stock); {
	case err == nil:
		fmt.Fprintln(c.out, "Product added successfully!")
	case errors.Is(err, catalogapp.ErrDuplicateID):
		fmt.Fprintln(c.out, "ID already exists.")
	default:
		fmt.Fprintln(c.out, "Invalid product details.")
	}
}

func (c *CLI) updateStock() {
	id := c.readInt("ID to update stock: ")
	if _, err := c.svc.Catalog.GetProduct(id); err != nil {
		fmt.Fprintln(c.out, "Not found.")
		return
	}

	stock := c.readInt("New stock: ")
	if err := c.svc.Catalog.SetStock(id, stock); err != nil {
		fmt.Fprintln(c.out, "Invalid stock value.")
		return
	}
	fmt.Fprintln(c.out, "Stock updated.")
}

// currency picks the catalog's currency for admin-created products, falling
// back to the first product seen.
func (c *CLI) currency() string {
	for p := range c.svc.Catalog.All() {
		return p.Price.Currency
	}
	return "INR"
}

func (c *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readChoice reads a menu selection; unparseable input maps to 0, which no
// menu accepts.
func (c *CLI) readChoice() (int, bool) {
	line, ok := c.readLine("Choose: ")
	if !ok {
		return 0, false
	}
	n, _ := strconv.Atoi(line)
	return n, true
}

func (c *CLI) readInt(prompt string) int {
	line, ok := c.readLine(prompt)
	if !ok {
		return 0
	}
	n, _ := strconv.Atoi(line)
	return n
}
