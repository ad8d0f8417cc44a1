package main

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-multiorder/collections"
	"github.com/hasbyte1/go-multiorder/internal/logging"
)

// printer receives the demo's output one line at a time.
type printer interface {
	Info(line string)
	Error(line string)
}

// demoConfig holds the settings of one demo run.
type demoConfig struct {
	// Type is the element type: "int", "float" or "string".
	Type string
	// Name is the collection's display name.
	Name string
	// Remove lists values to remove, in order.
	Remove []string
	// Orders lists the traversals to print.
	Orders []collections.Order
}

func defaultDemoConfig() demoConfig {
	return demoConfig{
		Type:   "int",
		Name:   collections.DefaultName,
		Orders: collections.Orders(),
	}
}

// defaultValues is the sample data used when no values are given.
var defaultValues = map[string][]string{
	"int":    {"10", "20", "30", "20"},
	"float":  {"2.5", "0.5", "1.25"},
	"string": {"Apple", "Banana", "Cherry"},
}

func runDemo(cfg demoConfig, args []string, p printer) error {
	if len(args) == 0 {
		args = defaultValues[cfg.Type]
	}
	switch cfg.Type {
	case "int":
		return demo(cfg, args, strconv.Atoi, p)
	case "float":
		return demo(cfg, args, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }, p)
	case "string":
		return demo(cfg, args, func(s string) (string, error) { return s, nil }, p)
	default:
		return fmt.Errorf("unsupported element type %q", cfg.Type)
	}
}

func parseAll[T any](raw []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, s := range raw {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func demo[T constraints.Ordered](cfg demoConfig, args []string, parse func(string) (T, error), p printer) error {
	values, err := parseAll(args, parse)
	if err != nil {
		return err
	}
	removals, err := parseAll(cfg.Remove, parse)
	if err != nil {
		return err
	}

	c := collections.New(values...).Configure(collections.Config{Name: cfg.Name})
	logging.Debug().Str("type", cfg.Type).Int("size", c.Size()).Msg("built collection")

	p.Info(c.String())
	p.Info(fmt.Sprintf("size: %d", c.Size()))

	for _, v := range removals {
		if err := c.Remove(v); err != nil {
			p.Error(err.Error())
			continue
		}
		p.Info(fmt.Sprintf("after removing %v: %s", v, c))
		p.Info(fmt.Sprintf("size: %d", c.Size()))
	}

	for _, o := range cfg.Orders {
		p.Info(fmt.Sprintf("%s: %s", o, collections.Join(c.Walk(o), " ")))
	}
	return nil
}
