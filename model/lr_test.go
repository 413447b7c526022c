package model

import (
	"testing"

	"github.com/rushteam/feedkit/core"
)

func TestLogisticRegression_Fit_DegenerateCases(t *testing.T) {
	tests := []struct {
		name   string
		rows   []map[string]float64
		labels []int
	}{
		{
			name:   "no samples",
			rows:   nil,
			labels: nil,
		},
		{
			name:   "single class",
			rows:   []map[string]float64{{"f": 0.1}, {"f": 0.9}},
			labels: []int{1, 1},
		},
		{
			name:   "mismatched lengths",
			rows:   []map[string]float64{{"f": 0.1}},
			labels: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clf := &LogisticRegression{}
			err := clf.Fit(tt.rows, tt.labels)
			if !core.IsNoTrainingData(err) {
				t.Errorf("Fit() error = %v, want no-training-data", err)
			}
		})
	}
}

func TestLogisticRegression_FitPredict_Separable(t *testing.T) {
	rows := []map[string]float64{
		{"x": 0.0}, {"x": 0.1}, {"x": 0.9}, {"x": 1.0},
	}
	labels := []int{1, 1, 2, 2}

	clf := &LogisticRegression{}
	if err := clf.Fit(rows, labels); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	tests := []struct {
		x    float64
		want int
	}{
		{x: 0.05, want: 1},
		{x: 0.95, want: 2},
	}
	for _, tt := range tests {
		if got := clf.Predict(map[string]float64{"x": tt.x}); got != tt.want {
			t.Errorf("Predict(x=%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestLogisticRegression_MulticlassLabels(t *testing.T) {
	// 标签直接用带符号交互权重，不提前二值化
	rows := []map[string]float64{
		{"a": 1, "b": 0, "c": 0},
		{"a": 0, "b": 1, "c": 0},
		{"a": 0, "b": 0, "c": 1},
	}
	labels := []int{-1, 1, 2}

	clf := &LogisticRegression{}
	if err := clf.Fit(rows, labels); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	for i, row := range rows {
		if got := clf.Predict(row); got != labels[i] {
			t.Errorf("Predict(row %d) = %d, want %d", i, got, labels[i])
		}
	}
}

func TestLogisticRegression_Deterministic(t *testing.T) {
	rows := []map[string]float64{
		{"x": 0.2, "y": 0.8}, {"x": 0.7, "y": 0.1}, {"x": 0.9, "y": 0.4},
	}
	labels := []int{1, 2, 2}

	first := &LogisticRegression{}
	second := &LogisticRegression{}
	if err := first.Fit(rows, labels); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if err := second.Fit(rows, labels); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	probe := []map[string]float64{
		{"x": 0.0, "y": 0.0},
		{"x": 0.5, "y": 0.5},
		{"x": 1.0, "y": 0.2},
	}
	for _, p := range probe {
		if first.Predict(p) != second.Predict(p) {
			t.Errorf("two fits on identical data disagree at %v", p)
		}
	}
}
