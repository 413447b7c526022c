package feature

import (
	"reflect"
	"testing"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain number", raw: "25.00", want: 25.0},
		{name: "free sentinel", raw: "Free", want: 0.0},
		{name: "free lowercase", raw: "free", want: 0.0},
		{name: "empty string", raw: "", want: 0.0},
		{name: "currency symbol", raw: "€15.50", want: 15.5},
		{name: "malformed coerces to zero", raw: "N/A", want: 0.0},
		{name: "negative coerces to zero", raw: "-5", want: 0.0},
		{name: "whitespace", raw: "  10 ", want: 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePrice(tt.raw); got != tt.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestOneHotEncoder_EncodeWithKey(t *testing.T) {
	encoder := NewOneHotEncoder(map[string][]string{
		"category": {"Art", "Music", "Sports"},
	})

	tests := []struct {
		name  string
		key   string
		value interface{}
		want  map[string]float64
	}{
		{
			name:  "known value",
			key:   "category",
			value: "Music",
			want: map[string]float64{
				"category_Art":    0.0,
				"category_Music":  1.0,
				"category_Sports": 0.0,
			},
		},
		{
			name:  "unknown value encodes all zero",
			key:   "category",
			value: "Circus",
			want: map[string]float64{
				"category_Art":    0.0,
				"category_Music":  0.0,
				"category_Sports": 0.0,
			},
		},
		{
			name:  "unknown key encodes nothing",
			key:   "city",
			value: "Athens",
			want:  map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encoder.EncodeWithKey(tt.key, tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EncodeWithKey(%q, %v) = %v, want %v", tt.key, tt.value, got, tt.want)
			}
		})
	}
}

func TestFitMinMaxNormalizer(t *testing.T) {
	rows := []map[string]float64{
		{"price": 0.0, "flag": 1.0},
		{"price": 50.0, "flag": 1.0},
		{"price": 100.0, "flag": 1.0},
	}

	n := FitMinMaxNormalizer(rows)

	if got := n.NormalizeValueWithKey("price", 0.0); got != 0.0 {
		t.Errorf("min price should scale to 0, got %v", got)
	}
	if got := n.NormalizeValueWithKey("price", 100.0); got != 1.0 {
		t.Errorf("max price should scale to 1, got %v", got)
	}
	if got := n.NormalizeValueWithKey("price", 50.0); got != 0.5 {
		t.Errorf("mid price should scale to 0.5, got %v", got)
	}

	// 常数列不做特殊处理，原样返回
	if got := n.NormalizeValueWithKey("flag", 1.0); got != 1.0 {
		t.Errorf("constant column should pass through, got %v", got)
	}
}
