package amount

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/xionmarket/domain"
)

type AmountTestSuite struct {
	suite.Suite
}

func TestAmountTestSuite(t *testing.T) {
	suite.Run(t, new(AmountTestSuite))
}

func (s *AmountTestSuite) TestToBaseUnits() {
	tests := []struct {
		desc   string
		input  string
		exp    string
		expErr bool
	}{
		{desc: "no unit is XION", input: "10", exp: "10000000"},
		{desc: "XION suffix", input: "10 XION", exp: "10000000"},
		{desc: "lower case xion without space", input: "10xion", exp: "10000000"},
		{desc: "uxion suffix passes through", input: "10000000 uxion", exp: "10000000"},
		{desc: "mixed case uxion", input: "42 UXION", exp: "42"},
		{desc: "fraction of XION", input: "2.5", exp: "2500000"},
		{desc: "below one base unit floors", input: "0.0000019", exp: "1"},
		{desc: "fractional uxion", input: "10.5 uxion", expErr: true},
		{desc: "fractional uxion below one", input: "0.9uxion", expErr: true},
		{desc: "uxion with zero fraction", input: "10.0 uxion", exp: "10"},
		{desc: "zero", input: "0", exp: "0"},
		{desc: "surrounding spaces", input: "  1 XION ", exp: "1000000"},
		{desc: "negative", input: "-1", expErr: true},
		{desc: "not a number", input: "ten XION", expErr: true},
		{desc: "empty", input: "", expErr: true},
		{desc: "unit only", input: "uxion", expErr: true},
	}

	for _, t := range tests {
		res, err := ToBaseUnits(t.input)
		if t.expErr {
			s.Error(err, t.desc)
			s.True(errors.Is(err, domain.ErrInvalidAmount), t.desc)
			s.True(errors.Is(err, domain.ErrInvalidInput), t.desc)
			continue
		}
		s.NoError(err, t.desc)
		s.Equal(t.exp, res, t.desc)
	}
}

func (s *AmountTestSuite) TestEquivalentForms() {
	a, err := ToBaseUnits("10")
	s.NoError(err)
	b, err := ToBaseUnits("10 XION")
	s.NoError(err)
	c, err := ToBaseUnits("10000000 uxion")
	s.NoError(err)
	s.Equal("10000000", a)
	s.Equal(a, b)
	s.Equal(b, c)
}

func (s *AmountTestSuite) TestRoundTrip() {
	for _, x := range []string{"0.000001", "1.000000", "12.345678", "999999.999999", "0.000000"} {
		base, err := ToBaseUnits(x + " XION")
		s.NoError(err, x)
		display, err := ToDisplayUnits(base)
		s.NoError(err, x)
		s.Equal(x+" XION", display)
	}
}

func (s *AmountTestSuite) TestToDisplayUnits() {
	res, err := ToDisplayUnits("15000000")
	s.NoError(err)
	s.Equal("15.000000 XION", res)

	_, err = ToDisplayUnits("1.5")
	s.True(errors.Is(err, domain.ErrInvalidAmount))

	_, err = ToDisplayUnits("abc")
	s.True(errors.Is(err, domain.ErrInvalidAmount))

	s.Equal("abc uxion", MustDisplay("abc"))
}

func (s *AmountTestSuite) TestTierOf() {
	s.Equal(TierLow, TierOf(decimal.NewFromInt(9999999)))
	s.Equal(TierMid, TierOf(decimal.NewFromInt(10000000)))
	s.Equal(TierMid, TierOf(decimal.NewFromInt(99999999)))
	s.Equal(TierHigh, TierOf(decimal.NewFromInt(100000000)))
}
