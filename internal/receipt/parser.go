// Package receipt reads the plain-text receipt export into ledger items.
//
// Each item spans four indented lines: description, quantity, a discount
// line whose value is ignored, and the price written as whole,cents.
//
//	    Bread
//	    2
//	    -1,00
//	    2,48
//
// Lines that do not fit the expected shape are skipped. A partially read
// item at end of input is dropped.
package receipt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/atomicstack/receipt-split/internal/ledger"
	"github.com/shopspring/decimal"
)

type lineState int

const (
	expectDescription lineState = iota
	expectQuantity
	expectDiscount
	expectPrice
)

var (
	descriptionPattern = regexp.MustCompile(`^\s+(\S.*?)\s*$`)
	quantityPattern    = regexp.MustCompile(`^\s+(\d+)\s*$`)
	discountPattern    = regexp.MustCompile(`^\s+-?\d+,\d+\s*$`)
	pricePattern       = regexp.MustCompile(`^\s+(\d+),(\d+)\s*$`)
)

type parser struct {
	state   lineState
	pending ledger.Item
	items   []ledger.Item
}

// Parse consumes r line by line and returns the items it could read. Only
// read errors are reported.
func Parse(r io.Reader) ([]ledger.Item, error) {
	p := &parser{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.feed(strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return p.items, fmt.Errorf("read receipt: %w", err)
	}
	return p.items, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]ledger.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open receipt: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func (p *parser) feed(line string) {
	switch p.state {
	case expectDescription:
		m := descriptionPattern.FindStringSubmatch(line)
		if m == nil {
			return
		}
		p.pending = ledger.Item{Description: m[1]}
		p.state = expectQuantity
	case expectQuantity:
		m := quantityPattern.FindStringSubmatch(line)
		if m == nil {
			p.state = expectDescription
			return
		}
		qty, err := strconv.Atoi(m[1])
		if err != nil {
			p.state = expectDescription
			return
		}
		p.pending.Quantity = qty
		p.state = expectDiscount
	case expectDiscount:
		if discountPattern.MatchString(line) {
			p.state = expectPrice
		}
	case expectPrice:
		m := pricePattern.FindStringSubmatch(line)
		if m == nil {
			return
		}
		price, ok := parsePrice(m[1], m[2])
		if !ok {
			return
		}
		p.pending.Price = price
		p.items = append(p.items, p.pending)
		p.pending = ledger.Item{}
		p.state = expectDescription
	}
}

// parsePrice reads whole and cents as whole + cents/100.
func parsePrice(whole, cents string) (decimal.Decimal, bool) {
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return decimal.Decimal{}, false
	}
	c, err := strconv.ParseInt(cents, 10, 64)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromInt(w).Add(decimal.New(c, -2)), true
}
