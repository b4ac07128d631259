package llm

import (
	"encoding/json"
	"fmt"
)

type ReplyKind int

const (
	ReplyText ReplyKind = iota
	ReplyTextWithCharts
)

// Reply is what a provider hands back: plain text, or text plus charts.
// Rejected holds chart descriptors the provider received but could not decode.
type Reply struct {
	Text     string
	Charts   []Chart
	Rejected []error
}

func (r *Reply) Kind() ReplyKind {
	if len(r.Charts) > 0 {
		return ReplyTextWithCharts
	}
	return ReplyText
}

const (
	ChartLine    = "line"
	ChartBar     = "bar"
	ChartScatter = "scatter"
)

// Chart is one plot descriptor as emitted by the FloatChat agent.
type Chart struct {
	Title  string        `json:"title"`
	Kind   string        `json:"kind"`
	XLabel string        `json:"x_label"`
	YLabel string        `json:"y_label"`
	X      []interface{} `json:"x"`
	Y      []interface{} `json:"y"`
	XType  string        `json:"x_type,omitempty"`
	YType  string        `json:"y_type,omitempty"`
}

func (c Chart) Validate() error {
	switch c.Kind {
	case ChartLine, ChartBar, ChartScatter:
	default:
		return fmt.Errorf("chart %q: unsupported kind %q", c.Title, c.Kind)
	}
	if len(c.X) == 0 || len(c.Y) == 0 {
		return fmt.Errorf("chart %q: no points", c.Title)
	}
	if len(c.X) != len(c.Y) {
		return fmt.Errorf("chart %q: x has %d values, y has %d", c.Title, len(c.X), len(c.Y))
	}
	for i, v := range c.X {
		if !isScalar(v) {
			return fmt.Errorf("chart %q: x[%d] is not a number or string", c.Title, i)
		}
	}
	for i, v := range c.Y {
		if !isScalar(v) {
			return fmt.Errorf("chart %q: y[%d] is not a number or string", c.Title, i)
		}
	}
	return nil
}

// FilterCharts splits charts into the ones safe to persist and the reasons
// the others were rejected.
func FilterCharts(charts []Chart) ([]Chart, []error) {
	var valid []Chart
	var rejected []error
	for _, c := range charts {
		if err := c.Validate(); err != nil {
			rejected = append(rejected, err)
			continue
		}
		valid = append(valid, c)
	}
	return valid, rejected
}

// DecodeCharts decodes a raw "plots" value element by element, so one
// malformed descriptor does not cost the others. A value that is not an
// array at all is rejected as a whole.
func DecodeCharts(raw json.RawMessage) ([]Chart, []error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, []error{fmt.Errorf("plots is not an array: %v", err)}
	}

	var charts []Chart
	var rejected []error
	for i, elem := range elems {
		var c Chart
		if err := json.Unmarshal(elem, &c); err != nil {
			rejected = append(rejected, fmt.Errorf("plots[%d]: %v", i, err))
			continue
		}
		charts = append(charts, c)
	}
	return charts, rejected
}

func isScalar(v interface{}) bool {
	switch v.(type) {
	case string, float64, float32, int, int32, int64:
		return true
	default:
		return false
	}
}
