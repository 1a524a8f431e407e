// Package flatfile persists orders as append-only text blocks:
//
//	USER:<user> DATE:<yyyy-mm-dd_hh:mm:ss> TOTAL:<total>
//	  <product id> <name> <qty> <unit price>
//	------------------------------------
//
// Item lines appear in settlement order. Amounts carry two decimals.
package flatfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/annie29007/ds-cart/internal/order/domain"
)

const (
	timeLayout = "2006-01-02_15:04:05"
	separator  = "------------------------------------"
)

type OrderRepo struct {
	path string
}

func NewOrderRepo(path string) *OrderRepo {
	return &OrderRepo{path: path}
}

// Append writes one block to the end of the bills file.
func (r *OrderRepo) Append(ctx context.Context, order domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open bills file: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "\nUSER:%s DATE:%s TOTAL:%s\n",
		order.UserID, order.CreatedAt.Format(timeLayout), formatAmount(order.TotalAmount))
	for _, l := range order.Lines {
		fmt.Fprintf(&b, "  %d %s %d %s\n", l.ProductID, l.Name, l.Quantity, formatAmount(l.UnitAmount))
	}
	b.WriteString(separator + "\n")

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("append bill: %w", err)
	}
	return nil
}

// ReadAll parses the bills file back into orders, oldest first. The file does
// not record currency or order ids, so those fields come back empty.
func (r *OrderRepo) ReadAll(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open bills file: %w", err)
	}
	defer f.Close()

	var orders []domain.Order
	var cur *domain.Order

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.TrimSpace(line) == "":
			continue
		case strings.HasPrefix(line, "USER:"):
			order, err := parseHeader(line)
			if err != nil {
				return nil, err
			}
			orders = append(orders, order)
			cur = &orders[len(orders)-1]
		case strings.HasPrefix(line, separator):
			cur = nil
		default:
			if cur == nil {
				return nil, fmt.Errorf("item line outside a bill block: %q", line)
			}
			item, err := parseItem(line)
			if err != nil {
				return nil, err
			}
			cur.Lines = append(cur.Lines, item)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read bills file: %w", err)
	}
	return orders, nil
}

func parseHeader(line string) (domain.Order, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return domain.Order{}, fmt.Errorf("malformed bill header: %q", line)
	}

	user, okU := strings.CutPrefix(fields[0], "USER:")
	date, okD := strings.CutPrefix(fields[1], "DATE:")
	total, okT := strings.CutPrefix(fields[2], "TOTAL:")
	if !okU || !okD || !okT {
		return domain.Order{}, fmt.Errorf("malformed bill header: %q", line)
	}

	at, err := time.ParseInLocation(timeLayout, date, time.Local)
	if err != nil {
		return domain.Order{}, fmt.Errorf("malformed bill date %q: %w", date, err)
	}
	amount, err := parseAmount(total)
	if err != nil {
		return domain.Order{}, fmt.Errorf("malformed bill total %q: %w", total, err)
	}

	return domain.Order{UserID: user, CreatedAt: at, TotalAmount: amount}, nil
}

func parseItem(line string) (domain.Line, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return domain.Line{}, fmt.Errorf("malformed bill item: %q", line)
	}

	// Product names may contain spaces; quantity and price are always the
	// last two fields.
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Line{}, fmt.Errorf("malformed bill item id: %q", line)
	}
	qty, err := strconv.Atoi(fields[len(fields)-2])
	if err != nil {
		return domain.Line{}, fmt.Errorf("malformed bill item quantity: %q", line)
	}
	unit, err := parseAmount(fields[len(fields)-1])
	if err != nil {
		return domain.Line{}, fmt.Errorf("malformed bill item price: %q", line)
	}

	return domain.Line{
		ProductID:       id,
		Name:            strings.Join(fields[1:len(fields)-2], " "),
		UnitAmount:      unit,
		Quantity:        qty,
		LineTotalAmount: unit * int64(qty),
	}, nil
}

func formatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

func parseAmount(s string) (int64, error) {
	whole, frac, found := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	if !found {
		return units * 100, nil
	}
	if len(frac) != 2 {
		return 0, fmt.Errorf("expected two decimals, got %q", s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, err
	}
	return units*100 + cents, nil
}
