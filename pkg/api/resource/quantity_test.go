/*
Copyright 2024 The Kubewire Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package resource

import (
	"encoding/json"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/spf13/pflag"
	inf "gopkg.in/inf.v0"
)

// dec builds an inf.Dec from a mantissa and a base-10 exponent. Scale is the
// negative of an exponent, which keeps the tables below readable.
func dec(i int64, exponent int) *inf.Dec {
	return inf.NewDec(i, inf.Scale(-exponent))
}

func TestDecHelper(t *testing.T) {
	cases := []struct {
		mantissa int64
		exponent int
		want     string
	}{
		{1, 0, "1"},
		{1, 1, "10"},
		{5, 2, "500"},
		{8, 3, "8000"},
		{1, -1, "0.1"},
		{3, -2, "0.03"},
		{4, -3, "0.004"},
	}
	for _, c := range cases {
		if got := dec(c.mantissa, c.exponent).String(); got != c.want {
			t.Errorf("dec(%d, %d) = %s, want %s", c.mantissa, c.exponent, got, c.want)
		}
	}
}

func TestQuantityZero(t *testing.T) {
	zero := MustParse("0")
	if got := zero.String(); got != "0" {
		t.Errorf("got %q, want %q", got, "0")
	}

	// A value that becomes zero must canonicalize to bare "0", never "0<suffix>".
	val := MustParse("1000m")
	val.Sub(MustParse("1"))
	if got := val.String(); got != "0" {
		t.Errorf("got %q, want %q", got, "0")
	}
}

func TestQuantityCmp(t *testing.T) {
	cases := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"100m", "50m", 1},
		{"50m", "100m", -1},
		{"10000T", "100Gi", 1},
	}
	for _, c := range cases {
		x, y := MustParse(c.x), MustParse(c.y)
		if got := x.Cmp(y); got != c.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestQuantityArithmetic(t *testing.T) {
	cases := []struct {
		op   string
		x, y string
		want string
	}{
		{"add", "1", "2", "3"},
		{"add", "500m", "500m", "1"},
		{"add", "1Gi", "1Gi", "2Gi"},
		{"add", "0", "1Mi", "1Mi"},
		{"sub", "3", "1", "2"},
		{"sub", "1", "1500m", "-500m"},
		{"sub", "2Gi", "1Gi", "1Gi"},
		{"neg", "0", "5", "-5"},
		{"neg", "0", "-300m", "300m"},
	}
	for _, c := range cases {
		t.Run(c.op+" "+c.x+" "+c.y, func(t *testing.T) {
			q := MustParse(c.x)
			var err error
			switch c.op {
			case "add":
				err = q.Add(MustParse(c.y))
			case "sub":
				err = q.Sub(MustParse(c.y))
			case "neg":
				err = q.Neg(MustParse(c.y))
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := q.String(); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

// parseCases are the canonical parsing vectors: every accepted spelling of a
// quantity, its exact amount, and the format it must be remembered in.
var parseCases = []struct {
	in   string
	want Quantity
}{
	{"0", Quantity{dec(0, 0), DecimalSI}},
	{"0m", Quantity{dec(0, 0), DecimalSI}},
	{"0Ki", Quantity{dec(0, 0), BinarySI}},
	{"0k", Quantity{dec(0, 0), DecimalSI}},
	{"0Mi", Quantity{dec(0, 0), BinarySI}},
	{"0M", Quantity{dec(0, 0), DecimalSI}},
	{"0Gi", Quantity{dec(0, 0), BinarySI}},
	{"0G", Quantity{dec(0, 0), DecimalSI}},
	{"0Ti", Quantity{dec(0, 0), BinarySI}},
	{"0T", Quantity{dec(0, 0), DecimalSI}},

	// Binary suffixes
	{"1Ki", Quantity{dec(1024, 0), BinarySI}},
	{"8Ki", Quantity{dec(8*1024, 0), BinarySI}},
	{"7Mi", Quantity{dec(7*1024*1024, 0), BinarySI}},
	{"6Gi", Quantity{dec(6*1024*1024*1024, 0), BinarySI}},
	{"5Ti", Quantity{dec(5*1024*1024*1024*1024, 0), BinarySI}},
	{"4Pi", Quantity{dec(4*1024*1024*1024*1024*1024, 0), BinarySI}},
	{"3Ei", Quantity{dec(3*1024*1024*1024*1024*1024*1024, 0), BinarySI}},
	{"10Ti", Quantity{dec(10*1024*1024*1024*1024, 0), BinarySI}},
	{"100Ti", Quantity{dec(100*1024*1024*1024*1024, 0), BinarySI}},

	// Decimal suffixes
	{"3m", Quantity{dec(3, -3), DecimalSI}},
	{"9", Quantity{dec(9, 0), DecimalSI}},
	{"8k", Quantity{dec(8, 3), DecimalSI}},
	{"7M", Quantity{dec(7, 6), DecimalSI}},
	{"6G", Quantity{dec(6, 9), DecimalSI}},
	{"5T", Quantity{dec(5, 12), DecimalSI}},
	{"40T", Quantity{dec(4, 13), DecimalSI}},
	{"300T", Quantity{dec(3, 14), DecimalSI}},
	{"2P", Quantity{dec(2, 15), DecimalSI}},
	{"1E", Quantity{dec(1, 18), DecimalSI}},

	// Decimal exponents
	{"1E-3", Quantity{dec(1, -3), DecimalExponent}},
	{"1e3", Quantity{dec(1, 3), DecimalExponent}},
	{"1E6", Quantity{dec(1, 6), DecimalExponent}},
	{"1e9", Quantity{dec(1, 9), DecimalExponent}},
	{"1E12", Quantity{dec(1, 12), DecimalExponent}},
	{"1e15", Quantity{dec(1, 15), DecimalExponent}},
	{"1E18", Quantity{dec(1, 18), DecimalExponent}},
	{"1e14", Quantity{dec(1, 14), DecimalExponent}},
	{"1e13", Quantity{dec(1, 13), DecimalExponent}},
	{"100.035k", Quantity{dec(100035, 0), DecimalSI}},

	// Fractional decimal values
	{"0.001", Quantity{dec(1, -3), DecimalSI}},
	{"0.0005k", Quantity{dec(5, -1), DecimalSI}},
	{"0.005", Quantity{dec(5, -3), DecimalSI}},
	{"0.05", Quantity{dec(5, -2), DecimalSI}},
	{"0.5", Quantity{dec(5, -1), DecimalSI}},
	{"0.00050k", Quantity{dec(5, -1), DecimalSI}},
	{"0.00500", Quantity{dec(5, -3), DecimalSI}},
	{"0.05000", Quantity{dec(5, -2), DecimalSI}},
	{"0.50000", Quantity{dec(5, -1), DecimalSI}},
	{"0.5e0", Quantity{dec(5, -1), DecimalExponent}},
	{"0.5e-1", Quantity{dec(5, -2), DecimalExponent}},
	{"0.5e-2", Quantity{dec(5, -3), DecimalExponent}},
	{"10.035M", Quantity{dec(10035, 3), DecimalSI}},
	{"1.2e3", Quantity{dec(12, 2), DecimalExponent}},
	{"1.3E+6", Quantity{dec(13, 5), DecimalExponent}},
	{"1.40e9", Quantity{dec(14, 8), DecimalExponent}},
	{"1.53E12", Quantity{dec(153, 10), DecimalExponent}},
	{"1.6e15", Quantity{dec(16, 14), DecimalExponent}},
	{"1.7E18", Quantity{dec(17, 17), DecimalExponent}},
	{"9.01", Quantity{dec(901, -2), DecimalSI}},
	{"8.1k", Quantity{dec(81, 2), DecimalSI}},
	{"7.123456M", Quantity{dec(7123456, 0), DecimalSI}},
	{"6.987654321G", Quantity{dec(6987654321, 0), DecimalSI}},
	{"5.444T", Quantity{dec(5444, 9), DecimalSI}},
	{"40.1T", Quantity{dec(401, 11), DecimalSI}},
	{"300.2T", Quantity{dec(3002, 11), DecimalSI}},
	{"2.5P", Quantity{dec(25, 14), DecimalSI}},
	{"1.01E", Quantity{dec(101, 16), DecimalSI}},

	// Values below milli precision round away from zero; values above the
	// int64 range saturate at the maximum.
	{"3.001m", Quantity{dec(4, -3), DecimalSI}},
	{"1.1E-3", Quantity{dec(2, -3), DecimalExponent}},
	{"0.0001", Quantity{dec(1, -3), DecimalSI}},
	{"0.0005", Quantity{dec(1, -3), DecimalSI}},
	{"0.00050", Quantity{dec(1, -3), DecimalSI}},
	{"0.5e-3", Quantity{dec(1, -3), DecimalExponent}},
	{"0.9m", Quantity{dec(1, -3), DecimalSI}},
	{"0.12345", Quantity{dec(124, -3), DecimalSI}},
	{"0.12354", Quantity{dec(124, -3), DecimalSI}},
	{"9Ei", Quantity{maxAllowed, BinarySI}},
	{"9223372036854775807Ki", Quantity{maxAllowed, BinarySI}},
	{"12E", Quantity{maxAllowed, DecimalSI}},

	// Fractional binary values are accepted too
	{"100.035Ki", Quantity{dec(10243584, -2), BinarySI}},
	{"0.5Mi", Quantity{dec(.5*1024*1024, 0), BinarySI}},
	{"0.05Gi", Quantity{dec(536870912, -1), BinarySI}},
	{"0.025Ti", Quantity{dec(274877906944, -1), BinarySI}},

	// Degenerate but legal spellings
	{"0.000001Ki", Quantity{dec(2, -3), DecimalSI}}, // rounds up, changes format
	{".001", Quantity{dec(1, -3), DecimalSI}},
	{".0001k", Quantity{dec(100, -3), DecimalSI}},
	{"1.", Quantity{dec(1, 0), DecimalSI}},
	{"1.G", Quantity{dec(1, 9), DecimalSI}},
}

func TestQuantityParse(t *testing.T) {
	// Each vector must also parse with an explicit sign, negating the
	// amount for "-" and leaving it untouched for "+".
	signs := []struct {
		prefix string
		negate bool
	}{
		{"", false},
		{"+", false},
		{"-", true},
	}
	for _, sign := range signs {
		for _, c := range parseCases {
			in := sign.prefix + c.in
			got, err := ParseQuantity(in)
			if err != nil {
				t.Errorf("%s: unexpected error: %v", in, err)
				continue
			}
			want := &inf.Dec{}
			want.Set(c.want.Amount)
			if sign.negate {
				want.Neg(want)
			}
			if want.Cmp(got.Amount) != 0 {
				t.Errorf("%s: got amount %v, want %v", in, got.Amount, want)
			}
			if got.Format != c.want.Format {
				t.Errorf("%s: got format %v, want %v", in, got.Format, c.want.Format)
			}
		}
	}
}

func TestQuantityParseErrors(t *testing.T) {
	invalid := []string{
		"1.1.M",
		"1+1.0M",
		"0.1mi",
		"0.1am",
		"aoeu",
		".5i",
		"1i",
		"-3.01i",
	}
	for _, in := range invalid {
		if _, err := ParseQuantity(in); err == nil {
			t.Errorf("%q parsed unexpectedly", in)
		}
	}
}

func TestQuantityString(t *testing.T) {
	cases := []struct {
		in   Quantity
		want string
	}{
		{Quantity{dec(1024*1024*1024, 0), BinarySI}, "1Gi"},
		{Quantity{dec(300*1024*1024, 0), BinarySI}, "300Mi"},
		{Quantity{dec(6*1024, 0), BinarySI}, "6Ki"},
		{Quantity{dec(1001*1024*1024*1024, 0), BinarySI}, "1001Gi"},
		{Quantity{dec(1024*1024*1024*1024, 0), BinarySI}, "1Ti"},
		{Quantity{dec(5, 0), BinarySI}, "5"},
		{Quantity{dec(500, -3), BinarySI}, "500m"},
		{Quantity{dec(1, 9), DecimalSI}, "1G"},
		{Quantity{dec(1000, 6), DecimalSI}, "1G"},
		{Quantity{dec(1000000, 3), DecimalSI}, "1G"},
		{Quantity{dec(1000000000, 0), DecimalSI}, "1G"},
		{Quantity{dec(1, -3), DecimalSI}, "1m"},
		{Quantity{dec(80, -3), DecimalSI}, "80m"},
		{Quantity{dec(1080, -3), DecimalSI}, "1080m"},
		{Quantity{dec(108, -2), DecimalSI}, "1080m"},
		{Quantity{dec(10800, -4), DecimalSI}, "1080m"},
		{Quantity{dec(300, 6), DecimalSI}, "300M"},
		{Quantity{dec(1, 12), DecimalSI}, "1T"},
		{Quantity{dec(1234567, 6), DecimalSI}, "1234567M"},
		{Quantity{dec(1234567, -3), BinarySI}, "1234567m"},
		{Quantity{dec(3, 3), DecimalSI}, "3k"},
		{Quantity{dec(1025, 0), BinarySI}, "1025"},
		{Quantity{dec(0, 0), DecimalSI}, "0"},
		{Quantity{dec(0, 0), BinarySI}, "0"},
		{Quantity{dec(1, 9), DecimalExponent}, "1e9"},
		{Quantity{dec(1, -3), DecimalExponent}, "1e-3"},
		{Quantity{dec(80, -3), DecimalExponent}, "80e-3"},
		{Quantity{dec(300, 6), DecimalExponent}, "300e6"},
		{Quantity{dec(1, 12), DecimalExponent}, "1e12"},
		{Quantity{dec(1, 3), DecimalExponent}, "1e3"},
		{Quantity{dec(3, 3), DecimalExponent}, "3e3"},
		{Quantity{dec(0, 0), DecimalExponent}, "0"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("%#v: got %q, want %q", c.in, got, c.want)
		}
	}
	// Negated amounts print with a leading minus. Zero never prints "-0".
	for _, c := range cases {
		if c.in.Amount.Cmp(decZero) == 0 {
			continue
		}
		neg := Quantity{Format: c.in.Format}
		neg.Neg(c.in)
		if got, want := neg.String(), "-"+c.want; got != want {
			t.Errorf("%#v: got %q, want %q", c.in, got, want)
		}
	}
}

func TestQuantityCanonicalRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1Ki", "1Ki"},
		{"1Mi", "1Mi"},
		{"1Gi", "1Gi"},
		{"1024Mi", "1Gi"},
		{"1000M", "1G"},
		{".000001Ki", "2m"},
	}
	for _, c := range cases {
		q, err := ParseQuantity(c.in)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.in, err)
			continue
		}
		if got := q.String(); got != c.want {
			t.Errorf("%s: got %q, want %q", c.in, got, c.want)
		}
		if q.Amount.Cmp(decZero) == 0 {
			continue
		}
		neg, err := ParseQuantity("-" + c.in)
		if err != nil {
			t.Errorf("-%s: unexpected error: %v", c.in, err)
			continue
		}
		if got, want := neg.String(), "-"+c.want; got != want {
			t.Errorf("-%s: got %q, want %q", c.in, got, want)
		}
	}
}

var quantityFuzzer = fuzz.New().Funcs(
	func(q *Quantity, c fuzz.Continue) {
		q.Amount = &inf.Dec{}
		if c.RandBool() {
			q.Format = BinarySI
			if c.RandBool() {
				q.Amount.SetScale(0)
				q.Amount.SetUnscaled(c.Int63())
				return
			}
			// Power-of-two multiples hit the 1Mi-style fast path.
			q.Amount.SetScale(0)
			q.Amount.SetUnscaled(c.Int63n(1024) << uint(10*c.Intn(5)))
			return
		}
		if c.RandBool() {
			q.Format = DecimalSI
		} else {
			q.Format = DecimalExponent
		}
		if c.RandBool() {
			q.Amount.SetScale(inf.Scale(c.Intn(4)))
			q.Amount.SetUnscaled(c.Int63())
			return
		}
		// Round suffix multiples hit the 1M-style fast path.
		q.Amount.SetScale(inf.Scale(3 - c.Intn(15)))
		q.Amount.SetUnscaled(c.Int63n(1000))
	},
)

func TestQuantityJSONRoundTrip(t *testing.T) {
	for i := 0; i < 500; i++ {
		q := &Quantity{}
		quantityFuzzer.Fuzz(q)
		data, err := json.Marshal(q)
		if err != nil {
			t.Fatalf("%v: marshal error: %v", q, err)
		}
		out := &Quantity{}
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("%v: unmarshal error on %s: %v", q, data, err)
		}
		if out.Amount.Cmp(q.Amount) != 0 {
			t.Errorf("got %v, want %v (wire form %s)", out, q, data)
		}
	}
}

func TestNewMilliQuantity(t *testing.T) {
	cases := []struct {
		value  int64
		format Format
		want   string
		exact  bool
	}{
		{1, DecimalSI, "1m", true},
		{1000, DecimalSI, "1", true},
		{1234000, DecimalSI, "1234", true},
		{1024, BinarySI, "1024m", false}, // format changes
		{1000000, "invalidFormatDefaultsToExponent", "1e3", true},
		{1024 * 1024, BinarySI, "1048576m", false}, // format changes
	}
	for _, c := range cases {
		q := NewMilliQuantity(c.value, c.format)
		if got := q.String(); got != c.want {
			t.Errorf("NewMilliQuantity(%d, %v) = %q, want %q", c.value, c.format, got, c.want)
		}
		set := NewQuantity(0, c.format)
		set.SetMilli(c.value)
		if got := set.String(); got != c.want {
			t.Errorf("SetMilli(%d) = %q, want %q", c.value, got, c.want)
		}
		if !c.exact {
			continue
		}
		back, err := ParseQuantity(q.String())
		if err != nil {
			t.Errorf("%v: unexpected error: %v", q, err)
			continue
		}
		if got := back.MilliValue(); got != c.value {
			t.Errorf("round trip of %v: got %d, want %d", q, got, c.value)
		}
	}
}

func TestNewQuantity(t *testing.T) {
	cases := []struct {
		value  int64
		format Format
		want   string
	}{
		{1, DecimalSI, "1"},
		{1000, DecimalSI, "1k"},
		{1234000, DecimalSI, "1234k"},
		{1024, BinarySI, "1Ki"},
		{1000000, "invalidFormatDefaultsToExponent", "1e6"},
		{1024 * 1024, BinarySI, "1Mi"},
	}
	for _, c := range cases {
		q := NewQuantity(c.value, c.format)
		if got := q.String(); got != c.want {
			t.Errorf("NewQuantity(%d, %v) = %q, want %q", c.value, c.format, got, c.want)
		}
		set := NewQuantity(0, c.format)
		set.Set(c.value)
		if got := set.String(); got != c.want {
			t.Errorf("Set(%d) = %q, want %q", c.value, got, c.want)
		}
		back, err := ParseQuantity(q.String())
		if err != nil {
			t.Errorf("%v: unexpected error: %v", q, err)
			continue
		}
		if got := back.Value(); got != c.value {
			t.Errorf("round trip of %v: got %d, want %d", q, got, c.value)
		}
	}
}

func TestUninitializedNoCrash(t *testing.T) {
	var q Quantity

	q.Value()
	q.MilliValue()
	q.Copy()
	_ = q.String()
	q.MarshalJSON()
}

func TestCopyDoesNotAlias(t *testing.T) {
	q := NewQuantity(5, DecimalSI)
	c := q.Copy()
	c.Set(6)
	if q.Value() != 5 {
		t.Errorf("mutating the copy changed the original: %v", q)
	}
}

func TestQuantityFlagValue(t *testing.T) {
	var q Quantity
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(NewQuantityFlagValue(&q), "memory", "")

	if err := fs.Parse([]string{"--memory=1Ki"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := q.String(); got != "1Ki" {
		t.Errorf("got %q, want %q", got, "1Ki")
	}
	if err := fs.Parse([]string{"--memory=1.1.M"}); err == nil {
		t.Fatal("expected error for malformed quantity")
	}

	var pfv pflag.Value = qFlag{&q}
	if got := pfv.Type(); got != "quantity" {
		t.Errorf("got flag type %q, want %q", got, "quantity")
	}
}
