package cli

import (
	"testing"

	"github.com/theirongolddev/bakecost/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1, "$1.00"},
		{2.006, "$2.01"},
		{4.999, "$5.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-3.5, "-$3.50"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatUnitPrice(t *testing.T) {
	tests := []struct {
		price float64
		unit  model.Unit
		want  string
	}{
		{2, model.UnitKilogram, "$2.00/kg"},
		{0.035, model.UnitGram, "$0.035/g"},
		{0.5, model.UnitMilliliter, "$0.50/ml"},
		{0.0042, model.UnitGram, "$0.0042/g"},
		{12.75, model.UnitLiter, "$12.75/L"},
	}
	for _, tt := range tests {
		if got := FormatUnitPrice(tt.price, tt.unit); got != tt.want {
			t.Errorf("FormatUnitPrice(%v, %s) = %q, want %q", tt.price, tt.unit, got, tt.want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		q    float64
		unit model.Unit
		want string
	}{
		{0.5, model.UnitKilogram, "0.5 kg"},
		{3, model.UnitCount, "3 unit"},
		{0.1 + 0.2, model.UnitLiter, "0.3 L"},
		{250, model.UnitGram, "250 g"},
		{1.23456, model.UnitMilliliter, "1.235 ml"},
	}
	for _, tt := range tests {
		if got := FormatQuantity(tt.q, tt.unit); got != tt.want {
			t.Errorf("FormatQuantity(%v, %s) = %q, want %q", tt.q, tt.unit, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0%"},
		{30, "30%"},
		{12.5, "12.5%"},
		{99.99, "100%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
