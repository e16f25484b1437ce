package fielddata

import (
	"fmt"
	"sort"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// DefaultName is the dataset shipped with every build and used when the
// caller does not pick one.
const DefaultName = "field-trend"

// minTrendPoints is the smallest dataset that can support the standard cubic
// trend fit (degree 3 needs 4 points). Smaller datasets still load, but the
// client warns about them at startup.
const minTrendPoints = 4

// Client provides lookups over the embedded field datasets.
type Client struct {
	logger zerolog.Logger

	// Thread-safe initialization
	once sync.Once
	err  error

	datasets map[string]Dataset
}

// NewClient parses the embedded dataset files and returns a ready client.
// The provided logger is used for data-quality warnings during parsing.
// It returns a non-nil error if any embedded file is malformed or the
// default dataset is missing.
func NewClient(logger zerolog.Logger) (*Client, error) {
	c := &Client{logger: logger}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// init parses embedded dataset files exactly once.
func (c *Client) init() error {
	c.once.Do(func() {
		c.datasets = make(map[string]Dataset)

		entries, err := datasetFS.ReadDir("data")
		if err != nil {
			c.err = fmt.Errorf("failed to list embedded datasets: %w", err)
			return
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			raw, err := datasetFS.ReadFile("data/" + entry.Name())
			if err != nil {
				c.err = fmt.Errorf("failed to read dataset %s: %w", entry.Name(), err)
				return
			}

			var ds Dataset
			if err := json.Unmarshal(raw, &ds); err != nil {
				c.err = fmt.Errorf("failed to parse dataset %s: %w", entry.Name(), err)
				return
			}
			if err := validateDataset(ds); err != nil {
				c.err = fmt.Errorf("invalid dataset %s: %w", entry.Name(), err)
				return
			}

			if len(ds.Points) < minTrendPoints {
				c.logger.Warn().
					Str("dataset", ds.Name).
					Int("points", len(ds.Points)).
					Msg("dataset too small for a cubic trend fit")
			}

			c.datasets[ds.Name] = ds
		}

		if _, ok := c.datasets[DefaultName]; !ok {
			c.err = fmt.Errorf("default dataset %q missing from embedded data", DefaultName)
		}
	})
	return c.err
}

// validateDataset enforces the dataset contract: a name, at least two points,
// strictly increasing temperatures, and positive COP values.
func validateDataset(d Dataset) error {
	if d.Name == "" {
		return fmt.Errorf("dataset name is required")
	}
	if len(d.Points) < 2 {
		return fmt.Errorf("dataset %q needs at least 2 points, got %d", d.Name, len(d.Points))
	}
	for i, p := range d.Points {
		if p.MeanCOP <= 0 {
			return fmt.Errorf("dataset %q point %d: COP %.3f must be positive", d.Name, i, p.MeanCOP)
		}
		if i > 0 && p.TemperatureC <= d.Points[i-1].TemperatureC {
			return fmt.Errorf("dataset %q point %d: temperatures must strictly increase (%.2f after %.2f)",
				d.Name, i, p.TemperatureC, d.Points[i-1].TemperatureC)
		}
	}
	return nil
}

// Dataset returns the dataset with the given name.
// Returns (dataset, true) if found, (zero, false) if not found.
func (c *Client) Dataset(name string) (Dataset, bool) {
	if err := c.init(); err != nil {
		return Dataset{}, false
	}
	ds, ok := c.datasets[name]
	return ds, ok
}

// Names returns the available dataset names in sorted order.
func (c *Client) Names() []string {
	if err := c.init(); err != nil {
		return nil
	}
	names := make([]string, 0, len(c.datasets))
	for name := range c.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the dataset registered under DefaultName. The client
// refuses to construct without it, so the lookup cannot miss.
func (c *Client) Default() Dataset {
	ds, _ := c.Dataset(DefaultName)
	return ds
}
