package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jakindah/motorshop-api/internal/config"
	"github.com/jakindah/motorshop-api/internal/terminal"
	"github.com/jakindah/motorshop-api/pkg/invoice"
)

func main() {
	cfg := config.Load()
	if cfg.Terminal.APIBaseURL == "" {
		log.Fatal("TERMINAL_API_URL is not set")
	}

	ctx := context.Background()

	client := terminal.NewClient(cfg.Terminal.APIBaseURL)
	if err := client.Login(ctx, cfg.Terminal.Email, cfg.Terminal.Password); err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	session, err := terminal.NewSession(client.Token())
	if err != nil {
		log.Fatalf("Could not read session token: %v", err)
	}

	term := terminal.New(client, session)
	if err := term.Start(ctx); err != nil {
		log.Fatalf("Terminal startup failed: %v", err)
	}

	fmt.Printf("Signed in as %s (%s)\n", session.Email(), session.CurrentRole())
	fmt.Printf("Catalog loaded: %d parts, tax rate %s\n", term.Catalog().Len(), term.TaxRate().String())
	fmt.Println("Type 'help' for commands.")

	runShell(ctx, term, cfg.Terminal.InvoicePath)
}

func runShell(ctx context.Context, term *terminal.Terminal, invoicePath string) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "help":
			printHelp()
		case "parts":
			printParts(term, "")
		case "search":
			printParts(term, strings.Join(args, " "))
		case "add":
			addToCart(term, args)
		case "qty":
			changeQuantity(term, args)
		case "remove":
			removeFromCart(term, args)
		case "cart":
			printCart(term)
		case "clear":
			term.Reset()
			fmt.Println("Cart cleared.")
		case "sale":
			recordSale(ctx, term, strings.Join(args, " "), invoicePath)
		case "summary":
			printSummary(term)
		case "refresh":
			if err := term.RefreshCatalog(ctx); err != nil {
				fmt.Printf("Catalog refresh failed: %v\n", err)
			} else {
				fmt.Printf("Catalog refreshed, %d parts.\n", term.Catalog().Len())
			}
		case "quit", "exit":
			return
		default:
			fmt.Printf("Unknown command %q, type 'help'.\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Println(`Commands:
  parts                 list catalog with available stock
  search <text>         filter catalog by name
  add <n> [qty]         add catalog item n to the cart
  qty <n> <+|-delta>    change quantity of cart line n
  remove <n>            remove cart line n
  cart                  show the cart with totals
  clear                 abandon the cart
  sale [customer name]  submit the cart as a sale
  summary               show today's figures
  refresh               re-read the catalog from the server
  quit                  exit`)
}

func printParts(term *terminal.Terminal, query string) {
	query = strings.ToLower(query)
	parts := term.Catalog().Parts()
	shown := 0
	for i, part := range parts {
		if query != "" && !strings.Contains(strings.ToLower(part.Name), query) {
			continue
		}
		available := term.Cart().Available(part.ID)
		fmt.Printf("%3d. %-30s %10s  available %d  [%s]\n",
			i+1, part.Name, part.UnitPrice.StringFixed(2), available, part.RackLocation)
		shown++
	}
	if shown == 0 {
		fmt.Println("No parts matched.")
	}
}

func addToCart(term *terminal.Terminal, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: add <n> [qty]")
		return
	}
	part, ok := partByIndex(term, args[0])
	if !ok {
		return
	}
	qty := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			fmt.Println("Quantity must be a positive number.")
			return
		}
		qty = n
	}
	for i := 0; i < qty; i++ {
		if err := term.Cart().Add(part.ID); err != nil {
			if errors.Is(err, terminal.ErrOutOfStock) {
				fmt.Printf("No more stock available for %s.\n", part.Name)
			} else {
				fmt.Printf("Could not add %s: %v\n", part.Name, err)
			}
			break
		}
	}
	printCart(term)
}

func changeQuantity(term *terminal.Terminal, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: qty <line> <+n|-n>")
		return
	}
	line, ok := cartLineByIndex(term, args[0])
	if !ok {
		return
	}
	delta, err := strconv.Atoi(args[1])
	if err != nil || delta == 0 {
		fmt.Println("Delta must be a non-zero number.")
		return
	}
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	for i := 0; i < delta; i++ {
		if err := term.Cart().UpdateQuantity(line.Part.ID, step); err != nil {
			switch {
			case errors.Is(err, terminal.ErrOutOfStock):
				fmt.Printf("No more stock available for %s.\n", line.Part.Name)
			case errors.Is(err, terminal.ErrMinQuantity):
				fmt.Println("Quantity cannot go below 1, use 'remove' instead.")
			default:
				fmt.Printf("Could not update quantity: %v\n", err)
			}
			break
		}
	}
	printCart(term)
}

func removeFromCart(term *terminal.Terminal, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: remove <line>")
		return
	}
	line, ok := cartLineByIndex(term, args[0])
	if !ok {
		return
	}
	if err := term.Cart().Remove(line.Part.ID); err != nil {
		fmt.Printf("Could not remove line: %v\n", err)
		return
	}
	printCart(term)
}

func printCart(term *terminal.Terminal) {
	lines := term.Cart().Lines()
	if len(lines) == 0 {
		fmt.Println("Cart is empty.")
		return
	}
	for i, line := range lines {
		fmt.Printf("%3d. %-30s x%-3d  %10s\n",
			i+1, line.Part.Name, line.Quantity, line.LineTotal().StringFixed(2))
	}
	totals := term.Totals()
	fmt.Printf("     %-30s       %10s\n", "Subtotal", totals.Subtotal.StringFixed(2))
	fmt.Printf("     %-30s       %10s\n", "Tax", totals.Tax.StringFixed(2))
	fmt.Printf("     %-30s       %10s\n", "Total", totals.Total.StringFixed(2))
}

func recordSale(ctx context.Context, term *terminal.Terminal, customerName string, invoicePath string) {
	inv, err := term.RecordSale(ctx, customerName)
	if err != nil {
		if errors.Is(err, terminal.ErrEmptyCart) {
			fmt.Println("Cart is empty, nothing to record.")
			return
		}
		var saleErr *terminal.SaleError
		if errors.As(err, &saleErr) {
			fmt.Println(saleErr.Message)
			if saleErr.Kind == terminal.SaleErrorStockConflict {
				fmt.Println("Adjust the cart and try again, or refresh the catalog.")
			}
			return
		}
		fmt.Printf("Sale failed: %v\n", err)
		return
	}

	fmt.Printf("Sale recorded, invoice %s, total %.2f\n", inv.ID, inv.Total)
	if invoicePath != "" {
		if path, err := writeInvoice(inv, invoicePath); err != nil {
			fmt.Printf("Could not write invoice file: %v\n", err)
		} else {
			fmt.Printf("Invoice written to %s\n", path)
		}
	}

	term.FinalizeSale(ctx)
	printSummary(term)
}

func printSummary(term *terminal.Terminal) {
	if !term.Summary().Loaded() {
		fmt.Println("Daily summary not available yet.")
		return
	}
	s := term.Summary().Current()
	fmt.Printf("Today: gross %.2f, tax %.2f, net %.2f over %d transactions\n",
		s.GrossSalesAmount, s.TaxCollectedAmount, s.NetRevenueAmount, s.TotalTransactions)
}

func writeInvoice(inv *invoice.Invoice, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("invoice-%s-%s.html", inv.ID, time.Now().Format("20060102")))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := inv.Render(f); err != nil {
		return "", err
	}
	return path, nil
}

func partByIndex(term *terminal.Terminal, arg string) (*terminal.PartMirror, bool) {
	n, err := strconv.Atoi(arg)
	parts := term.Catalog().Parts()
	if err != nil || n < 1 || n > len(parts) {
		fmt.Println("No catalog item with that number, run 'parts' first.")
		return nil, false
	}
	return parts[n-1], true
}

func cartLineByIndex(term *terminal.Terminal, arg string) (*terminal.CartLine, bool) {
	n, err := strconv.Atoi(arg)
	lines := term.Cart().Lines()
	if err != nil || n < 1 || n > len(lines) {
		fmt.Println("No cart line with that number, run 'cart' first.")
		return nil, false
	}
	return lines[n-1], true
}
